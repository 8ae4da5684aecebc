package ui

import (
	"log/slog"
	"net/url"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/zalando/go-keyring"

	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
	"github.com/jessmaeeGit/konek-kalusugan/internal/nav"
	"github.com/jessmaeeGit/konek-kalusugan/internal/notify"
	"github.com/jessmaeeGit/konek-kalusugan/internal/state"
)

// makeSettingsScreen is the hub for account management and app preferences.
func (app *KonekApp) makeSettingsScreen() fyne.CanvasObject {
	profileTitle := app.GetMsg(config.TKeyTitleAccount)
	profileSub := ""
	if profile, ok := app.State.Profile(); ok {
		profileTitle = profile.Name
		profileSub = profile.Email
	}

	account := widget.NewCard(profileTitle, profileSub,
		widget.NewButton(app.GetMsg(config.TKeyTitleAccount), func() {
			app.Dispatch(state.Navigate{To: nav.ScreenAccount})
		}))

	entries := []struct {
		key  string
		icon fyne.Resource
		to   nav.Screen
	}{
		{config.TKeyTitleEditProf, theme.AccountIcon(), nav.ScreenEditProfile},
		{config.TKeyTitleNotifPref, theme.InfoIcon(), nav.ScreenNotifications},
		{config.TKeyTitleChangePwd, theme.VisibilityOffIcon(), nav.ScreenChangePassword},
		{config.TKeyTitleNotifCtr, theme.MailComposeIcon(), nav.ScreenNotificationCenter},
		{config.TKeyTitleHelp, theme.HelpIcon(), nav.ScreenHelpFaq},
		{config.TKeyTitleSupport, theme.QuestionIcon(), nav.ScreenContactSupport},
	}

	menu := container.NewVBox(account)
	for _, e := range entries {
		to := e.to
		menu.Add(widget.NewButtonWithIcon(app.GetMsg(e.key), e.icon, func() {
			app.Dispatch(state.Navigate{To: to})
		}))
	}

	menu.Add(app.makeLanguageSelect())

	signOut := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSignOut), theme.LogoutIcon(), app.confirmSignOut)
	signOut.Importance = widget.DangerImportance
	menu.Add(signOut)

	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitleSettings), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	header := container.NewBorder(nil, nil, app.makeBackHeader(func() {
		app.Dispatch(state.Back{})
	}), nil, title)

	return container.NewBorder(header, nil, nil, nil, container.NewVScroll(menu))
}

// makeLanguageSelect persists the UI language and refreshes the localizer.
func (app *KonekApp) makeLanguageSelect() fyne.CanvasObject {
	sel := widget.NewSelect(app.SupportedLanguages, func(lang string) {
		if lang == app.Preferences.String(config.PrefLanguage) {
			return
		}
		app.Preferences.SetString(config.PrefLanguage, lang)
		app.UpdateLocalizer()
		app.Render()
	})
	sel.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	return container.NewBorder(nil, nil, widget.NewLabel(app.GetMsg(config.TKeyLblLanguage)), nil, sel)
}

// confirmSignOut clears the remembered session and hard-resets navigation.
func (app *KonekApp) confirmSignOut() {
	dialog.ShowConfirm(app.GetMsg(config.TKeyBtnSignOut), app.GetMsg(config.TKeyBtnSignOut), func(ok bool) {
		if !ok {
			return
		}

		if email := app.Preferences.String(config.PrefUsername); email != "" {
			if err := keyring.Delete(config.KeyringService, email); err != nil {
				slog.Debug(config.ErrKeyringDelete,
					config.LogKeyComponent, config.CompUI,
					config.LogKeyError, err)
			}
		}
		app.Preferences.SetBool(config.PrefRememberMe, false)
		app.Preferences.RemoveValue(config.PrefUsername)

		app.Dispatch(state.SignOut{})
	}, app.Window)
}

// makeAccountScreen shows the profile summary and exports it as a vCard.
func (app *KonekApp) makeAccountScreen() fyne.CanvasObject {
	profile, _ := app.State.Profile()

	form := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblFullName), widget.NewLabel(profile.Name)),
		widget.NewFormItem(app.GetMsg(config.TKeyLblEmail), widget.NewLabel(profile.Email)),
		widget.NewFormItem(app.GetMsg(config.TKeyLblPhone), widget.NewLabel(profile.Phone)),
		widget.NewFormItem(app.GetMsg(config.TKeyLblAddress), widget.NewLabel(profile.Address)),
		widget.NewFormItem(app.GetMsg(config.TKeyLblDOB), widget.NewLabel(profile.DOB)),
		widget.NewFormItem(app.GetMsg(config.TKeyLblGender), widget.NewLabel(profile.Gender)),
	)

	share := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnShareCard), theme.MailSendIcon(), func() {
		data, err := state.EncodeVCard(profile)
		if err != nil {
			app.showAlertText(config.TKeyTitleAccount, err.Error())
			return
		}
		app.Window.Clipboard().SetContent(string(data))
		app.showAlertText(config.TKeyBtnShareCard, string(data))
	})

	edit := widget.NewButtonWithIcon(app.GetMsg(config.TKeyTitleEditProf), theme.DocumentCreateIcon(), func() {
		app.Dispatch(state.Navigate{To: nav.ScreenEditProfile})
	})

	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitleAccount), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	content := container.NewVBox(title, form, edit, share)

	return container.NewBorder(app.makeBackHeader(func() {
		app.Dispatch(state.Back{})
	}), nil, nil, nil, container.NewVScroll(content))
}

// makeEditProfileScreen edits the profile fields and saves through the
// aggregate so the change is visible on every screen.
func (app *KonekApp) makeEditProfileScreen() fyne.CanvasObject {
	profile, _ := app.State.Profile()

	name := widget.NewEntry()
	name.SetText(profile.Name)
	email := widget.NewEntry()
	email.SetText(profile.Email)
	phone := NewPhoneEntry()
	phone.SetText(profile.Phone)
	address := widget.NewEntry()
	address.SetText(profile.Address)
	dob := widget.NewEntry()
	dob.SetText(profile.DOB)
	dob.PlaceHolder = config.DateFormatISO

	gender := widget.NewSelect(config.GenderOptions, nil)
	if profile.Gender != "" {
		gender.SetSelected(profile.Gender)
	}

	save := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), func() {
		if name.Text == "" || email.Text == "" {
			app.showAlert(config.TKeyTitleEditProf, config.TKeyAlertRequired)
			return
		}
		if !emailRegex.MatchString(email.Text) {
			app.showAlert(config.TKeyTitleEditProf, config.TKeyAlertBadEmail)
			return
		}
		updated := profile
		updated.Name = name.Text
		updated.Email = email.Text
		updated.Phone = phone.Text
		updated.Address = address.Text
		updated.DOB = dob.Text
		updated.Gender = gender.Selected
		app.Dispatch(state.ProfileSaved{Profile: updated})
	})
	save.Importance = widget.HighImportance

	cancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() {
		app.Dispatch(state.Back{})
	})

	form := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblFullName), name),
		widget.NewFormItem(app.GetMsg(config.TKeyLblEmail), email),
		widget.NewFormItem(app.GetMsg(config.TKeyLblPhone), phone),
		widget.NewFormItem(app.GetMsg(config.TKeyLblAddress), address),
		widget.NewFormItem(app.GetMsg(config.TKeyLblDOB), dob),
		widget.NewFormItem(app.GetMsg(config.TKeyLblGender), gender),
	)

	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitleEditProf), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	content := container.NewVBox(title, form,
		container.NewGridWithColumns(config.LayoutColumnsDouble, cancel, save))

	return container.NewBorder(app.makeBackHeader(func() {
		app.Dispatch(state.Back{})
	}), nil, nil, nil, container.NewVScroll(content))
}

// makeChangePasswordScreen updates the stored credential. The change is
// local; only the keyring entry is rewritten.
func (app *KonekApp) makeChangePasswordScreen() fyne.CanvasObject {
	current := widget.NewPasswordEntry()
	current.PlaceHolder = app.GetMsg(config.TKeyLblPassword)
	next := widget.NewPasswordEntry()
	next.PlaceHolder = app.GetMsg(config.TKeyLblPassword)
	confirm := widget.NewPasswordEntry()
	confirm.PlaceHolder = app.GetMsg(config.TKeyLblConfirmPwd)

	save := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.ConfirmIcon(), func() {
		if len(next.Text) < config.MinPasswordLength {
			app.showAlert(config.TKeyTitleChangePwd, config.TKeyAlertPwdTooShort)
			return
		}
		if next.Text != confirm.Text {
			app.showAlert(config.TKeyTitleChangePwd, config.TKeyAlertPwdMismatch)
			return
		}
		if email := app.Preferences.String(config.PrefUsername); email != "" {
			if err := keyring.Set(config.KeyringService, email, next.Text); err != nil {
				slog.Error(config.ErrKeyringSave,
					config.LogKeyComponent, config.CompUI,
					config.LogKeyError, err)
			}
		}
		app.Dispatch(state.Back{})
	})
	save.Importance = widget.HighImportance

	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitleChangePwd), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	return container.NewBorder(app.makeBackHeader(func() {
		app.Dispatch(state.Back{})
	}), nil, nil, nil, container.NewCenter(container.NewVBox(title, current, next, confirm, save)))
}

// makeNotificationPrefsScreen hosts the per-category delivery toggles.
func (app *KonekApp) makeNotificationPrefsScreen() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitleNotifPref), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabel(app.GetMsg(config.TKeyNotifPrefSub))
	subtitle.Wrapping = fyne.TextWrapWord

	rows := container.NewVBox(subtitle)
	toggles := []struct {
		labelKey string
		descKey  string
		pref     string
	}{
		{config.TKeyNotifPushLbl, config.TKeyNotifPushDesc, config.PrefNotifPush},
		{config.TKeyNotifAnnLbl, config.TKeyNotifAnnDesc, config.PrefNotifAnnouncements},
		{config.TKeyNotifProgLbl, config.TKeyNotifProgDesc, config.PrefNotifPrograms},
		{config.TKeyNotifRemLbl, config.TKeyNotifRemDesc, config.PrefNotifReminders},
	}
	for _, t := range toggles {
		pref := t.pref
		check := widget.NewCheck(app.GetMsg(t.labelKey), func(on bool) {
			app.Preferences.SetBool(pref, on)
		})
		check.Checked = app.Preferences.BoolWithFallback(pref, true)
		desc := widget.NewLabel(app.GetMsg(t.descKey))
		desc.Wrapping = fyne.TextWrapWord
		rows.Add(widget.NewCard("", "", container.NewVBox(check, desc)))
	}

	header := container.NewBorder(nil, nil, app.makeBackHeader(func() {
		app.Dispatch(state.Back{})
	}), nil, title)

	return container.NewBorder(header, nil, nil, nil, container.NewVScroll(rows))
}

// makeNotificationCenterScreen lists notifications newest first with the
// read-state actions.
func (app *KonekApp) makeNotificationCenterScreen() fyne.CanvasObject {
	items := app.Store.Items()
	now := app.Clock.Now()

	list := container.NewVBox()
	if len(items) == 0 {
		empty := widget.NewLabel(app.GetMsg(config.TKeyLblNoNotifs))
		empty.Alignment = fyne.TextAlignCenter
		list.Add(empty)
	}
	for _, item := range items {
		list.Add(app.makeNotificationRow(item, now))
	}

	markAll := widget.NewButton(app.GetMsg(config.TKeyBtnMarkAllRead), func() {
		app.Store.MarkAllRead()
	})
	clear := widget.NewButton(app.GetMsg(config.TKeyBtnClearAll), func() {
		app.Store.Clear()
	})
	actions := container.NewGridWithColumns(config.LayoutColumnsDouble, markAll, clear)

	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitleNotifCtr), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	header := container.NewBorder(nil, nil, app.makeBackHeader(func() {
		app.Dispatch(state.Back{})
	}), nil, title)

	return container.NewBorder(header, actions, nil, nil, container.NewVScroll(list))
}

// makeNotificationRow renders one notification: relative age, read state,
// and the tap-to-toggle action.
func (app *KonekApp) makeNotificationRow(item notify.Item, now time.Time) fyne.CanvasObject {
	title := widget.NewLabel(item.Title)
	if !item.Read {
		title.TextStyle = fyne.TextStyle{Bold: true}
	}

	body := widget.NewLabel(item.Body)
	body.Wrapping = fyne.TextWrapWord

	when := widget.NewLabel(notify.FormatRelativeTime(now, item.CreatedAt))
	when.TextStyle = fyne.TextStyle{Italic: true}

	toggle := widget.NewButtonWithIcon("", theme.ConfirmIcon(), func() {
		app.Store.ToggleRead(item.ID)
	})

	return widget.NewCard("", "",
		container.NewBorder(nil, nil, nil, toggle,
			container.NewVBox(title, body, when)))
}

// makeHelpFaqScreen renders the expandable FAQ entries.
func (app *KonekApp) makeHelpFaqScreen() fyne.CanvasObject {
	faqs := []struct{ q, a string }{
		{config.TKeyFaqQ1, config.TKeyFaqA1},
		{config.TKeyFaqQ2, config.TKeyFaqA2},
		{config.TKeyFaqQ3, config.TKeyFaqA3},
		{config.TKeyFaqQ4, config.TKeyFaqA4},
	}

	acc := widget.NewAccordion()
	for _, f := range faqs {
		answer := widget.NewLabel(app.GetMsg(f.a))
		answer.Wrapping = fyne.TextWrapWord
		acc.Append(widget.NewAccordionItem(app.GetMsg(f.q), answer))
	}

	needMore := widget.NewLabelWithStyle(app.GetMsg(config.TKeyHelpNeedMore), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	contactSub := widget.NewLabel(app.GetMsg(config.TKeyHelpContactSub))
	contactSub.Wrapping = fyne.TextWrapWord
	contact := widget.NewButton(app.GetMsg(config.TKeyTitleSupport), func() {
		app.Dispatch(state.Navigate{To: nav.ScreenContactSupport})
	})

	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitleHelp), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	header := container.NewBorder(nil, nil, app.makeBackHeader(func() {
		app.Dispatch(state.Back{})
	}), nil, title)

	content := container.NewVBox(acc, needMore, contactSub, contact)

	return container.NewBorder(header, nil, nil, nil, container.NewVScroll(content))
}

// makeContactSupportScreen offers the email and phone channels to the City
// Health Office.
func (app *KonekApp) makeContactSupportScreen() fyne.CanvasObject {
	hint := widget.NewLabel(app.GetMsg(config.TKeySupportHint))
	hint.Wrapping = fyne.TextWrapWord

	email := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnEmail), theme.MailSendIcon(), func() {
		u, err := url.Parse(config.MailToScheme + config.SupportEmail)
		if err != nil {
			app.showAlertText(config.TKeyTitleSupport, config.SupportEmail)
			return
		}
		if err := app.App.OpenURL(u); err != nil {
			app.showAlertText(config.TKeyTitleSupport, config.SupportEmail)
		}
	})

	phone := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCall), theme.InfoIcon(), func() {
		app.showAlertText(config.TKeyTitleSupport, config.SupportPhone)
	})

	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitleSupport), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	header := container.NewBorder(nil, nil, app.makeBackHeader(func() {
		app.Dispatch(state.Back{})
	}), nil, title)

	return container.NewBorder(header, nil, nil, nil,
		container.NewVBox(hint, container.NewGridWithColumns(config.LayoutColumnsDouble, email, phone)))
}
