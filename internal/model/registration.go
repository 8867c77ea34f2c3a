package model

import (
	"strings"
	"time"
)

// ContactForm holds the three fields a visitor fills before submitting.
type ContactForm struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
}

// Complete reports whether every field is filled in. Submission is only
// allowed on a complete form; no format validation is applied here.
func (f ContactForm) Complete() bool {
	return strings.TrimSpace(f.Name) != "" &&
		strings.TrimSpace(f.WhatsApp) != "" &&
		strings.TrimSpace(f.Email) != ""
}

// Registration is the record produced by a successful submission. There is
// no persistence behind it; the service logs it and hands it back to the
// caller for the confirmation screen.
type Registration struct {
	ID               string      `json:"id"`
	EventID          string      `json:"event_id"`
	EventName        string      `json:"event_name"`
	SlotID           string      `json:"slot_id,omitempty"`
	SlotLabel        string      `json:"slot_label"` // weekday-prefixed, or "A definir" text
	CustomScheduling bool        `json:"custom_scheduling"`
	Contact          ContactForm `json:"contact"`
	WhatsAppLink     string      `json:"whatsapp_link"`
	CreatedAt        time.Time   `json:"created_at"`
}
