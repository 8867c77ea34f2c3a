package service

import "errors"

// Domain errors shared by the registration and admin services.
var (
	ErrEventNotSelected = errors.New("no event selected")
	ErrEventNotFound    = errors.New("event not found")
	ErrSlotUnavailable  = errors.New("slot not available for the selected event")
	ErrFormIncomplete   = errors.New("contact form incomplete")
	ErrAlreadySubmitted = errors.New("registration already submitted")
	ErrInvalidLogin     = errors.New("invalid admin credentials")
)
