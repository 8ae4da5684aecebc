package state

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/emersion/go-vcard"
	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
)

// ErrProfileIncomplete rejects a contact-card export for a profile without a
// display name.
var ErrProfileIncomplete = errors.New("profile has no name to export")

// EncodeVCard renders the profile as a vCard 4.0 contact card, used by the
// Account screen to share the resident's details with barangay health
// workers.
func EncodeVCard(p UserProfile) ([]byte, error) {
	if p.Name == "" {
		return nil, ErrProfileIncomplete
	}

	card := make(vcard.Card)
	card.SetValue(vcard.FieldFormattedName, p.Name)
	if p.Email != "" {
		card.SetValue(vcard.FieldEmail, p.Email)
	}
	if p.Phone != "" {
		card.SetValue(vcard.FieldTelephone, p.Phone)
	}
	if p.Address != "" {
		card.AddAddress(&vcard.Address{StreetAddress: p.Address})
	}
	if p.DOB != "" {
		card.SetValue(vcard.FieldBirthday, p.DOB)
	}
	vcard.ToV4(card)

	var buf bytes.Buffer
	if err := vcard.NewEncoder(&buf).Encode(card); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
	}
	return buf.Bytes(), nil
}
