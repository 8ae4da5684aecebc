// Package nav implements the screen-stack navigation controller.
//
// The stack is an ordered history of screen identifiers; the last element is
// the screen currently rendered. All operations are total functions: popping
// at the floor and replacing an empty stack degrade to safe no-ops instead of
// errors. Mutations happen synchronously on the UI event thread, so the
// controller carries no locking of its own.
package nav

import (
	"log/slog"

	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
)

// Stack is the ordered navigation history. The zero value is not usable;
// construct instances with NewStack so the bottom frame is always present.
type Stack struct {
	frames []Screen
}

// NewStack creates a stack holding a single root frame.
func NewStack(root Screen) *Stack {
	return &Stack{frames: []Screen{root}}
}

// Push appends a screen. The same screen may appear multiple times in the
// stack; re-entrant navigation (Login -> Register -> Login) is legal and
// distinct from popping back.
func (s *Stack) Push(screen Screen) {
	s.frames = append(s.frames, screen)
	s.logTransition("push", screen)
}

// Pop removes the top frame. Popping the last remaining frame is a designed
// floor, not an error: the call is silently absorbed.
func (s *Stack) Pop() {
	if len(s.frames) <= 1 {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
	s.logTransition("pop", s.Current())
}

// Replace swaps the top frame for the given screen, preserving depth. On an
// empty stack the screen becomes the sole frame; that state should not occur
// given the floor, but the operation stays total.
func (s *Stack) Replace(screen Screen) {
	if len(s.frames) == 0 {
		s.frames = []Screen{screen}
	} else {
		s.frames[len(s.frames)-1] = screen
	}
	s.logTransition("replace", screen)
}

// Reset discards all history and installs a single root frame. Used by the
// splash routing decision and by sign-out, which are hard resets rather than
// pops.
func (s *Stack) Reset(root Screen) {
	s.frames = []Screen{root}
	s.logTransition("reset", root)
}

// Current returns the top frame, which selects the screen to render.
func (s *Stack) Current() Screen {
	return s.frames[len(s.frames)-1]
}

// Len reports the current stack depth.
func (s *Stack) Len() int {
	return len(s.frames)
}

// Frames returns a copy of the history, bottom first.
func (s *Stack) Frames() []Screen {
	out := make([]Screen, len(s.frames))
	copy(out, s.frames)
	return out
}

func (s *Stack) logTransition(op string, top Screen) {
	slog.Debug(config.MsgScreenChange,
		config.LogKeyComponent, config.CompNav,
		config.LogKeyIntent, op,
		config.LogKeyScreen, top.String(),
		config.LogKeyDepth, len(s.frames),
	)
}
