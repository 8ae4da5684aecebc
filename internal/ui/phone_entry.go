package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// PhoneEntry is a custom Entry widget for phone numbers. It embeds
// widget.Entry to inherit all standard behavior.
type PhoneEntry struct {
	widget.Entry
}

// NewPhoneEntry creates a new instance of PhoneEntry.
func NewPhoneEntry() *PhoneEntry {
	entry := &PhoneEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune intercepts text input events.
// It allows digits plus the separators common in local phone formats.
func (e *PhoneEntry) TypedRune(r rune) {
	if (r >= '0' && r <= '9') || r == '+' || r == ' ' || r == '-' || r == '(' || r == ')' {
		e.Entry.TypedRune(r)
	}
	// Ignore other characters.
	// Note: Shortcuts like Ctrl+V (Paste) are handled by TypedShortcut/TypedKey,
	// so arbitrary data could still be pasted. The Validator handles that case.
}

// Keyboard overrides the default keyboard type.
// This ensures that on mobile devices, a numeric keypad is shown.
func (e *PhoneEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
