package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
	"github.com/jessmaeeGit/konek-kalusugan/internal/nav"
	"github.com/jessmaeeGit/konek-kalusugan/internal/state"
)

// makeRequestPortalScreen is the entry to the medicine request flow: stage a
// prescription image, then proceed to the intake form.
func (app *KonekApp) makeRequestPortalScreen() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitlePortal), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabel(app.GetMsg(config.TKeySubtitlePortal))
	subtitle.Wrapping = fyne.TextWrapWord
	subtitle.Alignment = fyne.TextAlignCenter

	var uploadCard fyne.CanvasObject
	if staged, ok := app.State.StagedPrescription(); ok {
		name := widget.NewLabel(staged.Name)
		remove := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnRemoveRx), theme.DeleteIcon(), func() {
			app.Dispatch(state.RemovePrescription{})
		})
		uploadCard = widget.NewCard("", "", container.NewVBox(name, remove))
	} else {
		upload := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnUploadRx), theme.FolderOpenIcon(), func() {
			app.Picker.Pick(app.Window, func(u state.PrescriptionUpload, err error) {
				if err != nil {
					app.showAlert(config.TKeyTitlePortal, config.TKeyAlertPickerFailed)
					return
				}
				app.Dispatch(state.StagePrescription{Upload: u})
			})
		})
		uploadCard = widget.NewCard("", "", upload)
	}

	next := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnNext), theme.NavigateNextIcon(), func() {
		if _, ok := app.State.StagedPrescription(); !ok {
			app.showAlert(config.TKeyTitlePortal, config.TKeyAlertRxRequired)
			return
		}
		app.Dispatch(state.Navigate{To: nav.ScreenMedicineRequestForm})
	})
	next.Importance = widget.HighImportance

	history := widget.NewButtonWithIcon(app.GetMsg(config.TKeyTitleHistory), theme.DocumentIcon(), func() {
		app.Dispatch(state.Navigate{To: nav.ScreenMedicineRequestHistory})
	})

	content := container.NewVBox(title, subtitle, uploadCard, next, history)

	return container.NewBorder(app.makeBackHeader(func() {
		app.Dispatch(state.Back{})
	}), nil, nil, nil, container.NewVScroll(content))
}

// makeRequestFormScreen collects the intake fields and submits the request.
func (app *KonekApp) makeRequestFormScreen() fyne.CanvasObject {
	patient := widget.NewEntry()
	patient.PlaceHolder = app.requiredLabel(config.TKeyLblPatientName)
	email := widget.NewEntry()
	email.PlaceHolder = app.requiredLabel(config.TKeyLblEmail)
	phone := NewPhoneEntry()
	phone.PlaceHolder = app.requiredLabel(config.TKeyLblPhone)
	address := widget.NewEntry()
	address.PlaceHolder = app.requiredLabel(config.TKeyLblAddress)
	barangay := widget.NewSelect(nil, nil)
	barangay.PlaceHolder = app.GetMsg(config.TKeyLblBarangay)
	notes := widget.NewMultiLineEntry()
	notes.PlaceHolder = app.GetMsg(config.TKeyLblNotes)

	if profile, ok := app.State.Profile(); ok {
		patient.SetText(profile.Name)
		email.SetText(profile.Email)
		phone.SetText(profile.Phone)
		address.SetText(profile.Address)
	}

	go func() {
		ctx, cancel := context.WithTimeout(app.Ctx, config.HTTPTimeout)
		defer cancel()
		if names := app.fetchBarangayNames(ctx); len(names) > 0 {
			fyne.Do(func() {
				barangay.Options = names
				barangay.Refresh()
			})
		}
	}()

	submit := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSubmit), theme.ConfirmIcon(), func() {
		form := state.RequestForm{
			PatientName:     strings.TrimSpace(patient.Text),
			EmailAddress:    strings.TrimSpace(email.Text),
			PhoneNumber:     strings.TrimSpace(phone.Text),
			DeliveryAddress: joinDeliveryAddress(strings.TrimSpace(address.Text), barangay.Selected),
			AdditionalNotes: strings.TrimSpace(notes.Text),
		}
		if form.PatientName == "" || form.EmailAddress == "" || form.PhoneNumber == "" || form.DeliveryAddress == "" {
			app.showAlert(config.TKeyTitleRequestForm, config.TKeyAlertRequired)
			return
		}
		app.submitMedicineRequest(form)
	})
	submit.Importance = widget.HighImportance

	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitleRequestForm), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	content := container.NewVBox(title, patient, email, phone, address, barangay, notes, submit)

	return container.NewBorder(app.makeBackHeader(func() {
		app.Dispatch(state.Back{})
	}), nil, nil, nil, container.NewVScroll(content))
}

func (app *KonekApp) requiredLabel(key string) string {
	return app.GetMsg(key) + app.GetMsg(config.TKeyLblRequiredSuffix)
}

// fetchBarangayNames resolves the barangay directory into selector options.
// A directory failure leaves the selector empty and the address free text.
func (app *KonekApp) fetchBarangayNames(ctx context.Context) []string {
	list, err := app.Auth.Barangays(ctx)
	if err != nil {
		slog.Warn(config.MsgBarangayFail,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err,
		)
		return nil
	}
	names := make([]string, 0, len(list))
	for _, b := range list {
		names = append(names, b.Name)
	}
	return names
}

func joinDeliveryAddress(street, barangay string) string {
	if barangay == "" {
		return street
	}
	if street == "" {
		return barangay
	}
	return street + config.DeliveryAddressJoin + barangay
}

// submitMedicineRequest folds the form into the history and shows the
// success dialog with its two exits.
func (app *KonekApp) submitMedicineRequest(form state.RequestForm) {
	app.Dispatch(state.SubmitRequest{Form: form})

	another := widget.NewButton(app.GetMsg(config.TKeyBtnSubmitAnother), nil)
	another.Importance = widget.HighImportance
	done := widget.NewButton(app.GetMsg(config.TKeyBtnDone), nil)

	body := widget.NewLabel(app.GetMsg(config.TKeyMsgRequestOK))
	body.Wrapping = fyne.TextWrapWord

	modal := dialog.NewCustomWithoutButtons(app.GetMsg(config.TKeyMsgRequestOK),
		container.NewVBox(body, another, done), app.Window)

	another.OnTapped = func() {
		modal.Hide()
		app.Dispatch(state.Back{}) // back to the portal for the next upload
	}
	done.OnTapped = func() {
		modal.Hide()
		app.Dispatch(state.Navigate{To: nav.ScreenMedicineRequestHistory})
	}

	modal.Show()
}

// makeRequestHistoryScreen lists submitted requests, newest first.
func (app *KonekApp) makeRequestHistoryScreen() fyne.CanvasObject {
	history := app.State.History()

	list := container.NewVBox()
	if len(history) == 0 {
		empty := widget.NewLabel(app.GetMsg(config.TKeyLblNoRequests))
		empty.Alignment = fyne.TextAlignCenter
		list.Add(empty)
	}
	for _, req := range history {
		list.Add(app.makeRequestCard(req))
	}

	newReq := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnNewRequest), theme.ContentAddIcon(), func() {
		app.Dispatch(state.Navigate{To: nav.ScreenMedicineRequestPortal})
	})

	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTitleHistory), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	header := container.NewBorder(nil, nil, app.makeBackHeader(func() {
		app.Dispatch(state.Back{})
	}), nil, title)

	return container.NewBorder(header, newReq, nil, nil, container.NewVScroll(list))
}

func (app *KonekApp) makeRequestCard(req state.MedicineRequest) fyne.CanvasObject {
	status := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblStatusFormat), req.Status))
	status.TextStyle = fyne.TextStyle{Italic: true}

	meds := widget.NewLabel(strings.Join(req.Medicines, ", "))

	return widget.NewCard(req.ID, req.Date,
		container.NewVBox(widget.NewLabel(req.PatientName), meds, status))
}
