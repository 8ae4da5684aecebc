package state

import (
	"github.com/jessmaeeGit/konek-kalusugan/internal/nav"
	"github.com/jessmaeeGit/konek-kalusugan/internal/programs"
)

// Intent is a typed user intention reported by a screen. Screens never mutate
// aggregate state directly; they emit intents and the aggregate's Apply
// computes the next (stack, state) pair.
type Intent interface {
	intentName() string
}

// Navigate pushes a screen onto the stack.
type Navigate struct{ To nav.Screen }

// Back pops the top frame (no-op at the floor).
type Back struct{}

// ReplaceScreen swaps the top frame; wizard steps use it to advance without
// growing the back-stack.
type ReplaceScreen struct{ To nav.Screen }

// SplashDone fires once when the splash delay elapses and triggers the
// initial routing decision.
type SplashDone struct{}

// IntroDone records that the intro carousel was finished or skipped.
type IntroDone struct{}

// RegisterCompleted carries the profile collected by the registration form.
type RegisterCompleted struct{ Profile UserProfile }

// LoginSubmitted carries the email of a login attempt that already passed the
// network collaborator; the aggregate applies the local profile gate.
type LoginSubmitted struct{ Email string }

// SignOut clears the session and hard-resets navigation.
type SignOut struct{}

// ForgotContinue captures the recovery email and advances to verification.
type ForgotContinue struct{ Email string }

// VerifyConfirmed advances the recovery wizard to the reset step.
type VerifyConfirmed struct{}

// PasswordResetDone completes the recovery wizard back at Login.
type PasswordResetDone struct{}

// ProfileSaved carries edited profile fields from the EditProfile screen.
type ProfileSaved struct{ Profile UserProfile }

// ProgramSelected records which program the details screen should show.
type ProgramSelected struct{ Program programs.ID }

// StagePrescription fills the upload staging slot.
type StagePrescription struct{ Upload PrescriptionUpload }

// RemovePrescription clears the staging slot.
type RemovePrescription struct{}

// SubmitRequest folds the form and the staged upload into a history entry.
type SubmitRequest struct{ Form RequestForm }

// ProgramReminderAdded publishes the lightweight "reminder set" notification.
type ProgramReminderAdded struct {
	ProgramName string
	ProgramDate string
}

// SessionRestored seeds the persisted session flags before the splash routing
// decision. Emitted once at startup from saved preferences.
type SessionRestored struct {
	Profile   *UserProfile
	LoggedIn  bool
	IntroSeen bool
}

func (Navigate) intentName() string             { return "navigate" }
func (Back) intentName() string                 { return "back" }
func (ReplaceScreen) intentName() string        { return "replace" }
func (SplashDone) intentName() string           { return "splash_done" }
func (IntroDone) intentName() string            { return "intro_done" }
func (RegisterCompleted) intentName() string    { return "register_completed" }
func (LoginSubmitted) intentName() string       { return "login_submitted" }
func (SignOut) intentName() string              { return "sign_out" }
func (ForgotContinue) intentName() string       { return "forgot_continue" }
func (VerifyConfirmed) intentName() string      { return "verify_confirmed" }
func (PasswordResetDone) intentName() string    { return "password_reset_done" }
func (ProfileSaved) intentName() string         { return "profile_saved" }
func (ProgramSelected) intentName() string      { return "program_selected" }
func (StagePrescription) intentName() string    { return "stage_prescription" }
func (RemovePrescription) intentName() string   { return "remove_prescription" }
func (SubmitRequest) intentName() string        { return "submit_request" }
func (ProgramReminderAdded) intentName() string { return "program_reminder_added" }
func (SessionRestored) intentName() string      { return "session_restored" }
