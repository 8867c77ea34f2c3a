package model

// EventSlot is one bookable date/time option of a non-custom event.
// DateTime is kept as the raw "DD/MM/YYYY - HH:MM" display string; it is
// validated on admin insertion, not on edit.
type EventSlot struct {
	ID       string `json:"id"`
	DateTime string `json:"date_time"`
}
