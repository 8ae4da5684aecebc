// Package programs holds the barangay health program catalog: the schedule
// data shown by the Programs and ProgramDetails screens, reminder-key
// derivation, and iCalendar generation for the local subscription feed.
package programs

import (
	"fmt"
	"time"

	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
)

// ID identifies one catalog program.
type ID string

const (
	IDWellness ID = "wellness"
	IDNutri    ID = "nutri"
	IDAnti     ID = "anti"
)

// Status is the schedule phase of a program relative to a point in time.
type Status int

const (
	StatusUpcoming Status = iota
	StatusOngoing
	StatusCompleted
)

// Program is one barangay health program occurrence.
type Program struct {
	ID          ID
	Title       string
	Tagline     string
	Description string
	Categories  []string
	Venue       string
	Start       time.Time
	End         time.Time
}

var catalog = []Program{
	{
		ID:      IDWellness,
		Title:   "Barangay Wellness Check Program",
		Tagline: `"Early check, healthy life."`,
		Description: "A free community-based service where residents can have their " +
			"blood pressure, blood sugar, weight, and BMI monitored regularly to " +
			"prevent lifestyle diseases like diabetes and hypertension.",
		Categories: []string{"Preventive Care & Screening"},
		Venue:      "Barangay Health Station, Mahayahay, Iligan City",
		Start:      time.Date(2025, time.September, 6, 8, 0, 0, 0, time.Local),
		End:        time.Date(2025, time.September, 6, 12, 0, 0, 0, time.Local),
	},
	{
		ID:      IDNutri,
		Title:   "NutriLIFE Feeding Program",
		Tagline: `"Healthy meals for healthy kids."`,
		Description: "The NutriLIFE Feeding Program provides nutritious meals and " +
			"education to improve child health and development.",
		Categories: []string{"Nutrition & Feeding"},
		Venue:      "Barangay Health Station, Mahayahay, Iligan City",
		Start:      time.Date(2025, time.September, 9, 10, 0, 0, 0, time.Local),
		End:        time.Date(2025, time.September, 9, 12, 0, 0, 0, time.Local),
	},
	{
		ID:      IDAnti,
		Title:   "Seminar: Anti-Smoking & Substance Abuse Awareness Program",
		Tagline: `"Breathe clean, live clean."`,
		Description: "Raises awareness about the dangers of smoking, alcohol, and " +
			"drugs. Provides counseling, peer support, and referrals for rehabilitation.",
		Categories: []string{"Seminar", "Lifestyle & Wellness"},
		Venue:      "Barangay Health Station, Mahayahay, Iligan City",
		Start:      time.Date(2025, time.March, 2, 8, 0, 0, 0, time.Local),
		End:        time.Date(2025, time.March, 2, 15, 0, 0, 0, time.Local),
	},
}

// All returns the catalog in display order.
func All() []Program {
	out := make([]Program, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a catalog program.
func ByID(id ID) (Program, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Program{}, false
}

// Status derives the schedule phase of the program at the given time.
func (p Program) Status(now time.Time) Status {
	switch {
	case now.Before(p.Start):
		return StatusUpcoming
	case now.Before(p.End):
		return StatusOngoing
	default:
		return StatusCompleted
	}
}

// ReminderKey returns the deterministic key identifying this program
// occurrence in the reminder scheduling table.
func (p Program) ReminderKey() string {
	return fmt.Sprintf(config.ReminderKeyFormat, p.ID, p.Start.Format(config.DateFormatISO))
}

// ShareText renders the plain-text summary used by the share action.
func (p Program) ShareText() string {
	return fmt.Sprintf(config.ShareTextFormat,
		p.Title,
		p.Categories[0],
		p.Start.Format(config.DateFormatDisplay),
		p.Start.Format(config.TimeFormatDisplay),
		p.End.Format(config.TimeFormatDisplay),
		p.Venue,
	)
}
