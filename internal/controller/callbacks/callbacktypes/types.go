package callbacktypes

import (
	"go.uber.org/zap"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/state"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/service"
)

// StateManager is the dialog-state surface the callback handlers need.
type StateManager interface {
	GetState(chatID int64) state.ChatState
	SetState(chatID int64, st state.ChatState)
	GetData(chatID int64, key string) (interface{}, bool)
	SetData(chatID int64, key string, value interface{})
	GetString(chatID int64, key string) string
	ClearState(chatID int64)
}

// Handler carries the shared dependencies of every callback handler.
type Handler struct {
	Registrations *service.RegistrationService
	Admin         *service.AdminService
	States        StateManager
	Logger        *zap.Logger

	// PaymentURL is the fixed external checkout link shown after a
	// successful submission.
	PaymentURL string
}
