// Package ui renders the application screens with Fyne. One window hosts a
// single content container; every navigation or state change rebuilds the
// container from the current top of the navigation stack.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/zalando/go-keyring"

	"github.com/jessmaeeGit/konek-kalusugan/internal/api"
	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
	"github.com/jessmaeeGit/konek-kalusugan/internal/nav"
	"github.com/jessmaeeGit/konek-kalusugan/internal/notify"
	"github.com/jessmaeeGit/konek-kalusugan/internal/server"
	"github.com/jessmaeeGit/konek-kalusugan/internal/state"
)

// KonekApp encapsulates the window, the localization bundle, and the injected
// collaborators driving the screens.
type KonekApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	State  *state.Aggregate
	Store  *notify.Store
	Auth   api.AuthClient
	Server *server.FeedServer
	Clock  notify.Clock // Injected clock for testability (e.g. mocking time travel)
	Picker PrescriptionPicker

	SupportedLanguages []string

	content     *fyne.Container
	splashDone  bool
	unsubscribe func()
}

// NewKonekApp constructs the application and wires dependencies.
func NewKonekApp(a fyne.App, ctx context.Context, st *state.Aggregate, store *notify.Store, auth api.AuthClient, srv *server.FeedServer) *KonekApp {
	return &KonekApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		State:              st,
		Store:              store,
		Auth:               auth,
		Server:             srv,
		Clock:              notify.RealClock{}, // Default to real clock in production
		Picker:             &fileDialogPicker{},
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run launches the feed server, restores the persisted session, and enters
// the main UI loop. It blocks until the window closes.
func (app *KonekApp) Run() {
	app.SetupI18n()

	if app.Server != nil {
		go func() {
			if err := app.Server.Start(app.Ctx); err != nil {
				slog.Error(config.ErrServerStartup,
					config.LogKeyError, err,
					config.LogKeyComponent, config.CompUI)

				app.App.SendNotification(fyne.NewNotification(
					config.TitleStartupError,
					fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
			}
		}()
	}

	app.Window = app.App.NewWindow(config.AppName)
	app.Window.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))

	app.content = container.NewStack(app.makeSplashScreen())
	app.Window.SetContent(app.content)

	app.RestoreSession()

	app.unsubscribe = app.Store.Subscribe(func([]notify.Item) {
		// Listeners may fire from reminder timer goroutines.
		fyne.Do(app.Render)
	})

	time.AfterFunc(config.SplashDelay, func() {
		fyne.Do(func() { app.Dispatch(state.SplashDone{}) })
	})

	app.Window.SetOnClosed(func() {
		if app.unsubscribe != nil {
			app.unsubscribe()
		}
	})

	app.Window.Show()
	app.App.Run()
}

// RestoreSession seeds the aggregate from saved preferences: the intro-seen
// flag and, when "remember me" is on, the profile stored alongside the
// keyring credential.
func (app *KonekApp) RestoreSession() {
	introSeen := app.Preferences.Bool(config.PrefIntroSeen)
	remembered := app.Preferences.Bool(config.PrefRememberMe)

	var profile *state.UserProfile
	if email := app.Preferences.String(config.PrefUsername); remembered && email != "" {
		if _, err := keyring.Get(config.KeyringService, email); err == nil {
			profile = &state.UserProfile{Email: email}
		} else {
			slog.Debug(config.MsgPassFail,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyEmail, email,
				config.LogKeyError, err)
			remembered = false
		}
	}

	app.Dispatch(state.SessionRestored{
		Profile:   profile,
		LoggedIn:  remembered,
		IntroSeen: introSeen,
	})
}

// Dispatch applies an intent and re-renders. Rejected intents surface as the
// returned error without a rebuild; callers turn them into alerts.
func (app *KonekApp) Dispatch(intent state.Intent) error {
	if err := app.State.Apply(intent); err != nil {
		return err
	}
	if _, ok := intent.(state.SplashDone); ok {
		app.splashDone = true
	}
	app.Render()
	return nil
}

// Render replaces the window content with the screen at the top of the stack.
// Until the splash delay elapses only the splash logo is on screen: session
// restore and store replays mutate state underneath without swapping content.
func (app *KonekApp) Render() {
	if app.content == nil || !app.splashDone {
		return
	}
	app.content.Objects = []fyne.CanvasObject{app.buildScreen(app.State.Current())}
	app.content.Refresh()
}

// buildScreen maps every screen name onto its builder. The switch is
// exhaustive over the navigation vocabulary.
func (app *KonekApp) buildScreen(s nav.Screen) fyne.CanvasObject {
	switch s {
	case nav.ScreenIntro:
		return app.makeIntroScreen()
	case nav.ScreenLogin:
		return app.makeLoginScreen()
	case nav.ScreenLoginForm:
		return app.makeLoginFormScreen()
	case nav.ScreenRegister:
		return app.makeRegisterScreen()
	case nav.ScreenForgotPassword:
		return app.makeForgotPasswordScreen()
	case nav.ScreenVerifyEmail:
		return app.makeVerifyEmailScreen()
	case nav.ScreenResetPassword:
		return app.makeResetPasswordScreen()
	case nav.ScreenHome:
		return app.makeHomeScreen()
	case nav.ScreenPrograms:
		return app.makeProgramsScreen()
	case nav.ScreenProgramDetails:
		return app.makeProgramDetailsScreen()
	case nav.ScreenMedicineRequestPortal:
		return app.makeRequestPortalScreen()
	case nav.ScreenMedicineRequestForm:
		return app.makeRequestFormScreen()
	case nav.ScreenMedicineRequestHistory:
		return app.makeRequestHistoryScreen()
	case nav.ScreenSettings:
		return app.makeSettingsScreen()
	case nav.ScreenEditProfile:
		return app.makeEditProfileScreen()
	case nav.ScreenAccount:
		return app.makeAccountScreen()
	case nav.ScreenChangePassword:
		return app.makeChangePasswordScreen()
	case nav.ScreenNotifications:
		return app.makeNotificationPrefsScreen()
	case nav.ScreenNotificationCenter:
		return app.makeNotificationCenterScreen()
	case nav.ScreenHelpFaq:
		return app.makeHelpFaqScreen()
	case nav.ScreenContactSupport:
		return app.makeContactSupportScreen()
	}

	slog.Warn(config.ErrUnknownScreen,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyScreen, s.String())
	return app.makeLoginScreen()
}

// showAlert displays a modal information dialog on the main window.
func (app *KonekApp) showAlert(titleKey, bodyKey string) {
	dialog.ShowInformation(app.GetMsg(titleKey), app.GetMsg(bodyKey), app.Window)
}

// showAlertText is showAlert for pre-formatted body text.
func (app *KonekApp) showAlertText(titleKey, body string) {
	dialog.ShowInformation(app.GetMsg(titleKey), body, app.Window)
}
