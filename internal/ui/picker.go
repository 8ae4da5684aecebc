package ui

import (
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/google/uuid"

	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
	"github.com/jessmaeeGit/konek-kalusugan/internal/state"
)

// PrescriptionPicker abstracts the image source so tests can stage uploads
// without a native file dialog.
type PrescriptionPicker interface {
	// Pick invokes done with the selected upload. done is not called when the
	// user cancels; an error means the picker itself failed.
	Pick(win fyne.Window, done func(state.PrescriptionUpload, error))
}

// fileDialogPicker selects prescription images through the native open dialog.
type fileDialogPicker struct{}

func (fileDialogPicker) Pick(win fyne.Window, done func(state.PrescriptionUpload, error)) {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			done(state.PrescriptionUpload{}, err)
			return
		}
		if r == nil {
			return // cancelled
		}
		defer r.Close()
		done(normalizeUpload(r.URI()), nil)
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter(config.ImageExtensions))
	d.Show()
}

// normalizeUpload fills the metadata the dialog leaves blank so downstream
// screens always have a display name and MIME type.
func normalizeUpload(uri fyne.URI) state.PrescriptionUpload {
	name := uri.Name()
	if name == "" {
		name = fmt.Sprintf(config.UploadNameFormat, time.Now().Unix())
	}

	mimeType := mime.TypeByExtension(filepath.Ext(name))
	if mimeType == "" {
		mimeType = config.UploadDefaultMIME
	}

	return state.PrescriptionUpload{
		ID:       uuid.NewString(),
		URI:      uri.String(),
		Name:     name,
		MIMEType: mimeType,
	}
}
