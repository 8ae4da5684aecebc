package ui

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/zalando/go-keyring"

	"github.com/jessmaeeGit/konek-kalusugan/internal/api"
	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
	"github.com/jessmaeeGit/konek-kalusugan/internal/nav"
	"github.com/jessmaeeGit/konek-kalusugan/internal/state"
)

var emailRegex = regexp.MustCompile(config.EmailPattern)

// makeLoginFormScreen builds the credential form. Submission validates
// locally, authenticates against the API, and only then applies the login
// intent so the account gate can reject unregistered emails.
func (app *KonekApp) makeLoginFormScreen() fyne.CanvasObject {
	email := widget.NewEntry()
	email.PlaceHolder = app.GetMsg(config.TKeyLblEmail)
	if remembered := app.Preferences.String(config.PrefUsername); remembered != "" {
		email.SetText(remembered)
	}

	password := widget.NewPasswordEntry()
	password.PlaceHolder = app.GetMsg(config.TKeyLblPassword)

	remember := widget.NewCheck(app.GetMsg(config.TKeyLblRememberMe), nil)
	remember.Checked = app.Preferences.Bool(config.PrefRememberMe)

	submit := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnLogin), theme.LoginIcon(), func() {
		app.submitLogin(strings.TrimSpace(email.Text), password.Text, remember.Checked)
	})
	submit.Importance = widget.HighImportance

	forgot := widget.NewButton(app.GetMsg(config.TKeyLblForgot), func() {
		app.Dispatch(state.Navigate{To: nav.ScreenForgotPassword})
	})

	register := widget.NewButton(app.GetMsg(config.TKeyBtnCreateAcct), func() {
		app.Dispatch(state.Navigate{To: nav.ScreenRegister})
	})

	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitleLogin), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	form := container.NewVBox(title, email, password, remember, submit, forgot, register)

	return container.NewBorder(app.makeBackHeader(func() {
		app.Dispatch(state.ReplaceScreen{To: nav.ScreenLogin})
	}), nil, nil, nil, container.NewCenter(form))
}

// submitLogin runs the three-stage login pipeline: shape validation, network
// authentication, and the local account gate.
func (app *KonekApp) submitLogin(email, password string, remember bool) {
	if email == "" || password == "" {
		app.showAlert(config.TKeyAlertLoginFailed, config.TKeyAlertRequired)
		return
	}
	if !emailRegex.MatchString(email) {
		app.showAlert(config.TKeyAlertLoginFailed, config.TKeyAlertBadEmail)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(app.Ctx, config.HTTPTimeout)
		defer cancel()

		user, err := app.Auth.Login(ctx, email, password)

		fyne.Do(func() {
			if err != nil {
				app.showLoginError(err)
				return
			}
			app.completeLogin(email, password, remember, user)
		})
	}()
}

// showLoginError maps the API error categories onto user-facing alerts.
func (app *KonekApp) showLoginError(err error) {
	switch {
	case errors.Is(err, api.ErrInvalidCredentials):
		app.showAlert(config.TKeyAlertLoginFailed, config.TKeyAlertBadCredentials)
	case errors.Is(err, api.ErrServerUnavailable):
		app.showAlert(config.TKeyAlertLoginFailed, config.TKeyAlertServerDown)
	default:
		app.showAlert(config.TKeyAlertLoginFailed, config.TKeyAlertConnection)
	}
}

// completeLogin seeds the profile from the authenticated user when no local
// registration matches, then applies the login intent.
func (app *KonekApp) completeLogin(email, password string, remember bool, user *api.User) {
	if _, ok := app.State.Profile(); !ok && user != nil {
		app.Dispatch(state.SessionRestored{
			Profile: &state.UserProfile{
				Name:    user.Name,
				Email:   user.Email,
				Phone:   user.Phone,
				Address: user.Address,
			},
			IntroSeen: app.State.HasSeenIntro(),
		})
	}

	if err := app.Dispatch(state.LoginSubmitted{Email: email}); err != nil {
		app.showAlert(config.TKeyAlertAcctNotFound, config.TKeyAlertAcctNotFoundB)
		return
	}

	app.Preferences.SetBool(config.PrefRememberMe, remember)
	if remember {
		app.Preferences.SetString(config.PrefUsername, email)
		if err := keyring.Set(config.KeyringService, email, password); err != nil {
			slog.Error(config.ErrKeyringSave,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err)
		}
	}
}

// makeRegisterScreen collects the new resident profile. The account is stored
// locally; the directory registration call is best effort.
func (app *KonekApp) makeRegisterScreen() fyne.CanvasObject {
	name := widget.NewEntry()
	name.PlaceHolder = app.GetMsg(config.TKeyLblFullName)
	email := widget.NewEntry()
	email.PlaceHolder = app.GetMsg(config.TKeyLblEmail)
	password := widget.NewPasswordEntry()
	password.PlaceHolder = app.GetMsg(config.TKeyLblPassword)
	confirm := widget.NewPasswordEntry()
	confirm.PlaceHolder = app.GetMsg(config.TKeyLblConfirmPwd)

	create := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCreateAcct), theme.ConfirmIcon(), func() {
		app.submitRegistration(
			strings.TrimSpace(name.Text),
			strings.TrimSpace(email.Text),
			password.Text,
			confirm.Text,
		)
	})
	create.Importance = widget.HighImportance

	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitleRegister), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	form := container.NewVBox(title, name, email, password, confirm, create)

	return container.NewBorder(app.makeBackHeader(func() {
		app.Dispatch(state.Back{})
	}), nil, nil, nil, container.NewCenter(form))
}

func (app *KonekApp) submitRegistration(name, email, password, confirm string) {
	if name == "" || email == "" || password == "" {
		app.showAlert(config.TKeyTitleRegister, config.TKeyAlertRequired)
		return
	}
	if !emailRegex.MatchString(email) {
		app.showAlert(config.TKeyTitleRegister, config.TKeyAlertBadEmail)
		return
	}
	if len(password) < config.MinPasswordLength {
		app.showAlert(config.TKeyTitleRegister, config.TKeyAlertPwdTooShort)
		return
	}
	if password != confirm {
		app.showAlert(config.TKeyTitleRegister, config.TKeyAlertPwdMismatch)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(app.Ctx, config.HTTPTimeout)
		defer cancel()

		// Offline-first: a directory failure never blocks local registration.
		if err := app.Auth.Register(ctx, api.RegisterRequest{
			Name:     name,
			Email:    email,
			Password: password,
		}); err != nil {
			slog.Warn(config.MsgRegisterSkip,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err)
		}
	}()

	app.Dispatch(state.RegisterCompleted{Profile: state.UserProfile{
		Name:  name,
		Email: email,
	}})
}

// makeForgotPasswordScreen captures the recovery email.
func (app *KonekApp) makeForgotPasswordScreen() fyne.CanvasObject {
	email := widget.NewEntry()
	email.PlaceHolder = app.GetMsg(config.TKeyLblEmail)
	if app.State.ForgotEmail() != "" {
		email.SetText(app.State.ForgotEmail())
	}

	cont := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnContinue), theme.NavigateNextIcon(), func() {
		addr := strings.TrimSpace(email.Text)
		if addr == "" || !emailRegex.MatchString(addr) {
			app.showAlert(config.TKeyTitleForgot, config.TKeyAlertBadEmail)
			return
		}
		app.Dispatch(state.ForgotContinue{Email: addr})
	})
	cont.Importance = widget.HighImportance

	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitleForgot), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	return container.NewBorder(app.makeBackHeader(func() {
		app.Dispatch(state.Back{})
	}), nil, nil, nil, container.NewCenter(container.NewVBox(title, email, cont)))
}

// makeVerifyEmailScreen confirms the recovery code. Code entry is cosmetic;
// verification is simulated end to end.
func (app *KonekApp) makeVerifyEmailScreen() fyne.CanvasObject {
	sent := widget.NewLabel(app.GetMsg(config.TKeyLblVerifySent) + " " + app.State.ForgotEmail())
	sent.Wrapping = fyne.TextWrapWord
	sent.Alignment = fyne.TextAlignCenter

	code := NewPhoneEntry()
	code.PlaceHolder = config.VerifyCodePlaceholder

	verify := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnVerify), theme.ConfirmIcon(), func() {
		app.Dispatch(state.VerifyConfirmed{})
	})
	verify.Importance = widget.HighImportance

	resend := widget.NewButton(app.GetMsg(config.TKeyBtnResend), func() {
		app.showAlert(config.TKeyTitleVerify, config.TKeyLblVerifySent)
	})

	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitleVerify), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	return container.NewBorder(app.makeBackHeader(func() {
		app.Dispatch(state.ReplaceScreen{To: nav.ScreenForgotPassword})
	}), nil, nil, nil, container.NewCenter(container.NewVBox(title, sent, code, verify, resend)))
}

// makeResetPasswordScreen sets the new password and returns to Login. The
// back chevron steps to the verify screen, not out of the wizard.
func (app *KonekApp) makeResetPasswordScreen() fyne.CanvasObject {
	password := widget.NewPasswordEntry()
	password.PlaceHolder = app.GetMsg(config.TKeyLblPassword)
	confirm := widget.NewPasswordEntry()
	confirm.PlaceHolder = app.GetMsg(config.TKeyLblConfirmPwd)

	reset := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnResetPwd), theme.ConfirmIcon(), func() {
		if len(password.Text) < config.MinPasswordLength {
			app.showAlert(config.TKeyTitleReset, config.TKeyAlertPwdTooShort)
			return
		}
		if password.Text != confirm.Text {
			app.showAlert(config.TKeyTitleReset, config.TKeyAlertPwdMismatch)
			return
		}
		app.Dispatch(state.PasswordResetDone{})
	})
	reset.Importance = widget.HighImportance

	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitleReset), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	return container.NewBorder(app.makeBackHeader(func() {
		app.Dispatch(state.ReplaceScreen{To: nav.ScreenVerifyEmail})
	}), nil, nil, nil, container.NewCenter(container.NewVBox(title, password, confirm, reset)))
}

// makeBackHeader is the shared chevron-left header row.
func (app *KonekApp) makeBackHeader(onBack func()) fyne.CanvasObject {
	back := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnBack), theme.NavigateBackIcon(), onBack)
	return container.NewHBox(back)
}
