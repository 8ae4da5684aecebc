package notify

import (
	"fmt"
	"time"

	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
)

// Opaque icon names carried on items and resolved by the presentation layer.
const (
	IconReminder = "reminder"
	IconBell     = "bell"
	IconProgram  = "program"
)

// FormatRelativeTime renders the age of a notification created at the given
// time, observed at now. Buckets, from newest to oldest: "Just now" under ten
// seconds, then seconds, minutes and hours, "Yesterday" at exactly one day,
// and days beyond that.
func FormatRelativeTime(now, created time.Time) string {
	diff := now.Sub(created)
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff < config.RelTimeJustNowMax:
		return config.NotifTimeJustNow
	case diff < config.RelTimeSecondsMax:
		return fmt.Sprintf(config.NotifTimeSecFormat, int(diff.Seconds()))
	case diff < config.RelTimeMinutesMax:
		return fmt.Sprintf(config.NotifTimeMinFormat, int(diff.Minutes()))
	case diff < config.RelTimeHoursMax:
		return fmt.Sprintf(config.NotifTimeHrFormat, int(diff.Hours()))
	}

	days := int(diff.Hours() / 24)
	if days == 1 {
		return config.NotifTimeYesterday
	}
	return fmt.Sprintf(config.NotifTimeDayFormat, days)
}
