package model

// Session is the per-chat booking state. The zero value reconciles to the
// sentinel event with nothing chosen, which is the machine's initial state.
type Session struct {
	EventID   string      `json:"event_id"`
	SlotID    string      `json:"slot_id"`
	Form      ContactForm `json:"form"`
	Submitted bool        `json:"submitted"`
}

// ClearChoice drops the slot choice, the form and the submitted flag.
// Every event change and slot change funnels through this reset.
func (s *Session) ClearChoice() {
	s.SlotID = ""
	s.Form = ContactForm{}
	s.Submitted = false
}
