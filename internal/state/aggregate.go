// Package state implements the cross-screen application state: the
// authentication session, user profile, medicine-request history, the
// prescription staging slot, and the navigation side effects tied to them.
//
// All mutation flows through Aggregate.Apply, which reduces a typed intent
// into the next (stack, state) pair. Intents arrive synchronously from UI
// callbacks on a single thread of control, so the aggregate carries no locks.
package state

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
	"github.com/jessmaeeGit/konek-kalusugan/internal/nav"
	"github.com/jessmaeeGit/konek-kalusugan/internal/notify"
	"github.com/jessmaeeGit/konek-kalusugan/internal/programs"
)

// ErrAccountNotFound rejects a login whose email does not match the locally
// registered profile. Callers surface it as a user-facing alert; no state
// changes.
var ErrAccountNotFound = errors.New("account not found")

// Aggregate owns the cross-screen entities and composes stack transitions
// with their side effects.
type Aggregate struct {
	clock notify.Clock
	store *notify.Store
	stack *nav.Stack

	profile      *UserProfile
	loggedIn     bool
	hasSeenIntro bool
	forgotEmail  string
	selected     programs.ID
	staged       *PrescriptionUpload
	history      []MedicineRequest
}

// NewAggregate wires the aggregate to its collaborators. The stack starts at
// the splash's underlying Intro frame.
func NewAggregate(clock notify.Clock, store *notify.Store) *Aggregate {
	return &Aggregate{
		clock: clock,
		store: store,
		stack: nav.NewStack(nav.ScreenIntro),
	}
}

// Apply reduces one intent into the next state. It returns an error only for
// intents rejected without mutation (currently the login gate); everything
// else is total.
func (a *Aggregate) Apply(intent Intent) error {
	slog.Debug(config.MsgIntentApplied,
		config.LogKeyComponent, config.CompState,
		config.LogKeyIntent, intent.intentName(),
	)

	switch it := intent.(type) {
	case Navigate:
		a.stack.Push(it.To)

	case Back:
		a.stack.Pop()

	case ReplaceScreen:
		a.stack.Replace(it.To)

	case SplashDone:
		a.routeFromSplash()

	case IntroDone:
		a.hasSeenIntro = true
		a.routeFromSplash()

	case RegisterCompleted:
		p := it.Profile
		a.profile = &p
		a.stack.Replace(nav.ScreenLoginForm)

	case LoginSubmitted:
		return a.applyLogin(it.Email)

	case SignOut:
		slog.Info(config.MsgSignOut, config.LogKeyComponent, config.CompState)
		a.loggedIn = false
		a.profile = nil
		a.stack.Reset(nav.ScreenLogin)

	case ForgotContinue:
		a.forgotEmail = it.Email
		a.stack.Push(nav.ScreenVerifyEmail)

	case VerifyConfirmed:
		a.stack.Replace(nav.ScreenResetPassword)

	case PasswordResetDone:
		a.stack.Replace(nav.ScreenLogin)

	case ProfileSaved:
		p := it.Profile
		a.profile = &p
		a.stack.Pop()

	case ProgramSelected:
		a.selected = it.Program
		a.stack.Push(nav.ScreenProgramDetails)

	case StagePrescription:
		u := it.Upload
		a.staged = &u
		slog.Debug(config.MsgUploadStaged,
			config.LogKeyComponent, config.CompState,
			config.LogKeyID, u.ID,
		)

	case RemovePrescription:
		a.staged = nil
		slog.Debug(config.MsgUploadCleared, config.LogKeyComponent, config.CompState)

	case SubmitRequest:
		a.addRequestToHistory(it.Form)

	case SessionRestored:
		if it.Profile != nil {
			p := *it.Profile
			a.profile = &p
		}
		// A remembered session without a profile cannot authenticate.
		a.loggedIn = it.LoggedIn && it.Profile != nil
		a.hasSeenIntro = it.IntroSeen

	case ProgramReminderAdded:
		a.store.Add(notify.Item{
			Title: config.NotifTitleReminderSet,
			Body:  fmt.Sprintf(config.NotifBodyReminderSetFormat, it.ProgramName, it.ProgramDate),
			Icon:  notify.IconBell,
		})
	}

	return nil
}

// routeFromSplash installs the single-frame stack chosen by precedence:
// authenticated sessions land on Home, returning users on Login, first runs
// on the intro carousel.
func (a *Aggregate) routeFromSplash() {
	switch {
	case a.loggedIn:
		a.stack.Reset(nav.ScreenHome)
	case a.hasSeenIntro:
		a.stack.Reset(nav.ScreenLogin)
	default:
		a.stack.Reset(nav.ScreenIntro)
	}

	slog.Info(config.MsgSplashRouted,
		config.LogKeyComponent, config.CompState,
		config.LogKeyScreen, a.stack.Current().String(),
	)
}

// applyLogin enforces the local consistency gate: the submitted email must
// match the registered profile's email case-insensitively. This is a
// client-side placeholder check; real credential verification happens in the
// network collaborator before this intent is emitted.
func (a *Aggregate) applyLogin(email string) error {
	slog.Info(config.MsgLoginAttempt,
		config.LogKeyComponent, config.CompState,
		config.LogKeyEmail, email,
	)

	if a.profile == nil || !strings.EqualFold(a.profile.Email, email) {
		slog.Warn(config.MsgLoginRejected,
			config.LogKeyComponent, config.CompState,
			config.LogKeyEmail, email,
		)
		return ErrAccountNotFound
	}

	a.loggedIn = true
	a.stack.Reset(nav.ScreenHome)
	return nil
}

// addRequestToHistory synthesizes a request with a sequential display id,
// stamps the current date, prepends it to history, and consumes the staged
// prescription.
func (a *Aggregate) addRequestToHistory(form RequestForm) {
	image := config.PlaceholderPrescriptionRef
	if a.staged != nil {
		image = a.staged.URI
	}

	req := MedicineRequest{
		ID:                fmt.Sprintf(config.RequestIDFormat, len(a.history)+1),
		PatientName:       form.PatientName,
		Date:              a.clock.Now().Format(config.RequestDateLayout),
		Medicines:         []string{config.DefaultMedicinesEntry},
		DeliveryAddress:   form.DeliveryAddress,
		Status:            config.RequestStatusPending,
		PrescriptionImage: image,
		EmailAddress:      form.EmailAddress,
		PhoneNumber:       form.PhoneNumber,
		AdditionalNotes:   form.AdditionalNotes,
	}

	a.history = append([]MedicineRequest{req}, a.history...)
	a.staged = nil

	slog.Info(config.MsgRequestAdded,
		config.LogKeyComponent, config.CompState,
		config.LogKeyID, req.ID,
	)
}

// Stack exposes the navigation controller for rendering and direct
// navigation intents.
func (a *Aggregate) Stack() *nav.Stack {
	return a.stack
}

// Current returns the screen selected for rendering.
func (a *Aggregate) Current() nav.Screen {
	return a.stack.Current()
}

// Profile returns the current profile, if any.
func (a *Aggregate) Profile() (UserProfile, bool) {
	if a.profile == nil {
		return UserProfile{}, false
	}
	return *a.profile, true
}

// IsLoggedIn reports whether an authenticated session is active.
func (a *Aggregate) IsLoggedIn() bool {
	return a.loggedIn
}

// HasSeenIntro reports whether the intro carousel was completed or skipped.
func (a *Aggregate) HasSeenIntro() bool {
	return a.hasSeenIntro
}

// ForgotEmail returns the recovery email captured by the forgot-password
// wizard.
func (a *Aggregate) ForgotEmail() string {
	return a.forgotEmail
}

// SelectedProgram returns the program chosen for the details screen.
func (a *Aggregate) SelectedProgram() programs.ID {
	return a.selected
}

// StagedPrescription returns the pending upload, if any.
func (a *Aggregate) StagedPrescription() (PrescriptionUpload, bool) {
	if a.staged == nil {
		return PrescriptionUpload{}, false
	}
	return *a.staged, true
}

// History returns a copy of the request history, newest first.
func (a *Aggregate) History() []MedicineRequest {
	out := make([]MedicineRequest, len(a.history))
	copy(out, a.history)
	return out
}
