package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStack_FloorInvariant verifies that no sequence of pops can empty the
// stack: the bottom frame is a hard floor.
func TestStack_FloorInvariant(t *testing.T) {
	s := NewStack(ScreenIntro)

	for i := 0; i < 10; i++ {
		s.Pop()
		assert.GreaterOrEqual(t, s.Len(), 1, "Stack must never be empty")
	}

	assert.Equal(t, ScreenIntro, s.Current(), "Root frame must survive excess pops")
}

func TestStack_PushPop(t *testing.T) {
	s := NewStack(ScreenLogin)

	s.Push(ScreenLoginForm)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, ScreenLoginForm, s.Current())

	s.Push(ScreenRegister)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, ScreenRegister, s.Current())

	s.Pop()
	assert.Equal(t, ScreenLoginForm, s.Current())
	s.Pop()
	assert.Equal(t, ScreenLogin, s.Current())
}

// TestStack_ReentrantPush ensures duplicate frames are allowed: navigating
// Login -> Register -> Login is distinct from popping back.
func TestStack_ReentrantPush(t *testing.T) {
	s := NewStack(ScreenLogin)
	s.Push(ScreenRegister)
	s.Push(ScreenLogin)

	assert.Equal(t, []Screen{ScreenLogin, ScreenRegister, ScreenLogin}, s.Frames())

	s.Pop()
	assert.Equal(t, ScreenRegister, s.Current(), "Popping the duplicate must reveal the middle frame")
}

func TestStack_Replace(t *testing.T) {
	s := NewStack(ScreenForgotPassword)
	s.Push(ScreenVerifyEmail)

	s.Replace(ScreenResetPassword)
	assert.Equal(t, 2, s.Len(), "Replace must preserve depth")
	assert.Equal(t, ScreenResetPassword, s.Current())
}

// TestStack_ReplaceEmpty covers the empty-stack path: the screen becomes the
// sole frame.
func TestStack_ReplaceEmpty(t *testing.T) {
	s := &Stack{}
	s.Replace(ScreenHome)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, ScreenHome, s.Current())
}

func TestStack_Reset(t *testing.T) {
	s := NewStack(ScreenIntro)
	s.Push(ScreenHome)
	s.Push(ScreenSettings)
	s.Push(ScreenAccount)

	s.Reset(ScreenLogin)

	assert.Equal(t, []Screen{ScreenLogin}, s.Frames(), "Reset must discard all history")
}

func TestStack_FramesIsCopy(t *testing.T) {
	s := NewStack(ScreenHome)
	frames := s.Frames()
	frames[0] = ScreenSettings

	assert.Equal(t, ScreenHome, s.Current(), "Mutating the returned slice must not affect the stack")
}

func TestScreen_String(t *testing.T) {
	assert.Equal(t, "Home", ScreenHome.String())
	assert.Equal(t, "MedicineRequestPortal", ScreenMedicineRequestPortal.String())
	assert.Equal(t, "Unknown", Screen(999).String())
}
