package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
	"github.com/jessmaeeGit/konek-kalusugan/internal/nav"
	"github.com/jessmaeeGit/konek-kalusugan/internal/programs"
	"github.com/jessmaeeGit/konek-kalusugan/internal/state"
)

// makeSplashScreen is shown for the fixed startup delay before routing.
func (app *KonekApp) makeSplashScreen() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(config.AppName, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	spinner := widget.NewProgressBarInfinite()
	return container.NewCenter(container.NewVBox(title, spinner))
}

// makeIntroScreen builds the three-page onboarding carousel. Both finishing and
// skipping mark the intro as seen and re-run the routing decision.
func (app *KonekApp) makeIntroScreen() fyne.CanvasObject {
	pages := []string{
		app.GetMsg(config.TKeyIntroPage1),
		app.GetMsg(config.TKeyIntroPage2),
		app.GetMsg(config.TKeyIntroPage3),
	}

	page := 0
	body := widget.NewLabel(pages[page])
	body.Wrapping = fyne.TextWrapWord
	body.Alignment = fyne.TextAlignCenter

	progress := widget.NewLabel(app.introProgress(page))
	progress.Alignment = fyne.TextAlignCenter

	finish := func() {
		app.Preferences.SetBool(config.PrefIntroSeen, true)
		app.Dispatch(state.IntroDone{})
	}

	next := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnNext), theme.NavigateNextIcon(), nil)
	next.OnTapped = func() {
		if page >= config.IntroPageCount-1 {
			finish()
			return
		}
		page++
		body.SetText(pages[page])
		progress.SetText(app.introProgress(page))
	}
	next.Importance = widget.HighImportance

	skip := widget.NewButton(app.GetMsg(config.TKeyBtnSkip), finish)

	title := widget.NewLabelWithStyle(config.AppName, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	return container.NewBorder(
		container.NewBorder(nil, nil, nil, skip, title),
		container.NewVBox(progress, next),
		nil, nil,
		container.NewCenter(body),
	)
}

func (app *KonekApp) introProgress(page int) string {
	return fmt.Sprintf(config.IntroProgressFormat, page+1, config.IntroPageCount)
}

// makeLoginScreen is the pre-form welcome gate offering login or registration.
func (app *KonekApp) makeLoginScreen() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitleWelcome), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabel(app.GetMsg(config.TKeySubtitleWelcome))
	subtitle.Alignment = fyne.TextAlignCenter
	subtitle.Wrapping = fyne.TextWrapWord

	login := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnLogin), theme.LoginIcon(), func() {
		app.Dispatch(state.Navigate{To: nav.ScreenLoginForm})
	})
	login.Importance = widget.HighImportance

	register := widget.NewButton(app.GetMsg(config.TKeyBtnCreateAcct), func() {
		app.Dispatch(state.Navigate{To: nav.ScreenRegister})
	})

	return container.NewCenter(container.NewVBox(title, subtitle, login, register))
}

// makeHomeScreen is the authenticated hub: greeting, unread badge, program
// highlights, and the primary feature shortcuts.
func (app *KonekApp) makeHomeScreen() fyne.CanvasObject {
	greeting := app.GetMsg(config.TKeyTitleHome)
	if profile, ok := app.State.Profile(); ok && profile.Name != "" {
		greeting = fmt.Sprintf(config.GreetingFormat, profile.Name)
	}
	title := widget.NewLabelWithStyle(greeting, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	bell := widget.NewButtonWithIcon(app.unreadBadge(), theme.MailComposeIcon(), func() {
		app.Dispatch(state.Navigate{To: nav.ScreenNotificationCenter})
	})

	settings := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		app.Dispatch(state.Navigate{To: nav.ScreenSettings})
	})

	header := container.NewBorder(nil, nil, title, container.NewHBox(bell, settings))

	now := app.Clock.Now()
	highlights := container.NewVBox()
	for _, p := range programs.All() {
		highlights.Add(app.makeProgramCard(p, now))
	}

	browse := widget.NewButtonWithIcon(app.GetMsg(config.TKeyTitlePrograms), theme.ListIcon(), func() {
		app.Dispatch(state.Navigate{To: nav.ScreenPrograms})
	})
	request := widget.NewButtonWithIcon(app.GetMsg(config.TKeyTitlePortal), theme.DocumentCreateIcon(), func() {
		app.Dispatch(state.Navigate{To: nav.ScreenMedicineRequestPortal})
	})

	shortcuts := container.NewGridWithColumns(config.LayoutColumnsDouble, browse, request)

	return container.NewBorder(header, shortcuts, nil, nil, container.NewVScroll(highlights))
}

// unreadBadge renders the unread count next to the bell, empty when zero.
func (app *KonekApp) unreadBadge() string {
	n := app.Store.UnreadCount()
	if n == 0 {
		return ""
	}
	return fmt.Sprintf(config.UnreadBadgeFormat, n)
}
