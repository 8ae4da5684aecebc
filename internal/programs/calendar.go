package programs

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
)

// BuildCalendar encodes the given programs as an iCalendar object for the
// local subscription feed. An empty catalog yields a minimal valid stub so
// calendar clients do not flag the feed as broken.
func BuildCalendar(now time.Time, progs []Program) ([]byte, error) {
	if len(progs) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// Local time drives the schedule; UTC is only for ICS stamping.
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, p := range progs {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID,
			fmt.Sprintf(config.FormatEventUID, p.ID, p.Start.Year(), config.ICalDomain))
		event.Props.SetText(config.PropSummary, p.Title)
		event.Props.SetText(config.PropDescProp, p.Description)
		event.Props.SetText(config.PropLocation, p.Venue)

		dtStart := ical.NewProp(config.PropDTStart)
		dtStart.SetDateTime(p.Start)
		event.Props.Set(dtStart)

		dtEnd := ical.NewProp(config.PropDTEnd)
		dtEnd.SetDateTime(p.End)
		event.Props.Set(dtEnd)

		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgFeedRegen,
		config.LogKeyComponent, config.CompPrograms,
		config.LogKeyCount, len(progs),
	)
	return buf.Bytes(), nil
}
