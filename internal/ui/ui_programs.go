package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
	"github.com/jessmaeeGit/konek-kalusugan/internal/programs"
	"github.com/jessmaeeGit/konek-kalusugan/internal/state"
)

// makeProgramsScreen lists every catalog program with its derived status.
func (app *KonekApp) makeProgramsScreen() fyne.CanvasObject {
	now := app.Clock.Now()

	list := container.NewVBox()
	for _, p := range programs.All() {
		list.Add(app.makeProgramCard(p, now))
	}

	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitlePrograms), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	header := container.NewBorder(nil, nil, app.makeBackHeader(func() {
		app.Dispatch(state.Back{})
	}), nil, title)

	return container.NewBorder(header, nil, nil, nil, container.NewVScroll(list))
}

// makeProgramCard is the shared list card used on Home and Programs.
func (app *KonekApp) makeProgramCard(p programs.Program, now time.Time) fyne.CanvasObject {
	status := widget.NewLabel(app.statusLabel(p.Status(now)))
	status.TextStyle = fyne.TextStyle{Italic: true}

	view := widget.NewButton(app.GetMsg(config.TKeyBtnViewDetails), func() {
		app.Dispatch(state.ProgramSelected{Program: p.ID})
	})

	when := widget.NewLabel(p.Start.Format(config.DateFormatDisplay))

	return widget.NewCard(p.Title, p.Tagline,
		container.NewVBox(when, container.NewBorder(nil, nil, status, view)))
}

// statusLabel localizes the derived program status.
func (app *KonekApp) statusLabel(s programs.Status) string {
	switch s {
	case programs.StatusOngoing:
		return app.GetMsg(config.TKeyLblOngoing)
	case programs.StatusCompleted:
		return app.GetMsg(config.TKeyLblCompleted)
	default:
		return app.GetMsg(config.TKeyLblUpcoming)
	}
}

// makeProgramDetailsScreen shows the selected program with the reminder
// toggle and the share action.
func (app *KonekApp) makeProgramDetailsScreen() fyne.CanvasObject {
	p, ok := programs.ByID(app.State.SelectedProgram())
	if !ok {
		// Selection can only be stale after a catalog change.
		app.Dispatch(state.Back{})
		return widget.NewLabel(config.ErrUnknownProgram)
	}

	title := widget.NewLabelWithStyle(p.Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	tagline := widget.NewLabelWithStyle(p.Tagline, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	desc := widget.NewLabel(p.Description)
	desc.Wrapping = fyne.TextWrapWord

	schedule := widget.NewLabel(fmt.Sprintf(config.ScheduleFormat,
		p.Start.Format(config.DateFormatDisplay),
		p.Start.Format(config.TimeFormatDisplay),
		p.End.Format(config.TimeFormatDisplay)))
	venue := widget.NewLabel(p.Venue)
	venue.Wrapping = fyne.TextWrapWord

	status := widget.NewLabel(app.statusLabel(p.Status(app.Clock.Now())))
	status.TextStyle = fyne.TextStyle{Italic: true}

	reminder := widget.NewButtonWithIcon("", theme.HistoryIcon(), nil)
	app.refreshReminderButton(reminder, p)
	reminder.OnTapped = func() {
		app.toggleReminder(p)
		app.refreshReminderButton(reminder, p)
	}

	share := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnShare), theme.MailSendIcon(), func() {
		app.Window.Clipboard().SetContent(p.ShareText())
		app.showAlertText(config.TKeyBtnShare, p.ShareText())
	})

	content := container.NewVBox(title, tagline, status, schedule, venue, desc,
		container.NewGridWithColumns(config.LayoutColumnsDouble, reminder, share))

	return container.NewBorder(app.makeBackHeader(func() {
		app.Dispatch(state.Back{})
	}), nil, nil, nil, container.NewVScroll(content))
}

// refreshReminderButton mirrors the schedule table onto the button label.
func (app *KonekApp) refreshReminderButton(b *widget.Button, p programs.Program) {
	if app.Store.IsReminderScheduled(p.ReminderKey()) {
		b.SetText(app.GetMsg(config.TKeyBtnCancelRemind))
	} else {
		b.SetText(app.GetMsg(config.TKeyBtnRemindMe))
	}
}

// toggleReminder schedules or cancels the single reminder for the program
// occurrence and raises the matching in-app notification and alert.
func (app *KonekApp) toggleReminder(p programs.Program) {
	key := p.ReminderKey()
	date := p.Start.Format(config.DateFormatDisplay)

	if app.Store.IsReminderScheduled(key) {
		app.Store.CancelReminder(key)
		app.showAlert(config.TKeyAlertReminderOff, config.TKeyAlertReminderOffB)
		return
	}

	app.Store.ScheduleReminder(key, p.Start, p.Title)
	app.Dispatch(state.ProgramReminderAdded{
		ProgramName: p.Title,
		ProgramDate: date,
	})
	app.showAlert(config.TKeyAlertReminderSet, config.TKeyAlertReminderSetB)
}
