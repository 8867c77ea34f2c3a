package handlers

import (
	"go.uber.org/zap"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/state"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/service"
)

// Handlers carries every dependency of the command and dialog handlers.
type Handlers struct {
	registrationService *service.RegistrationService
	adminService        *service.AdminService
	stateManager        *state.Manager
	logger              *zap.Logger

	paymentURL string
}

// NewHandlers builds the command handler set.
func NewHandlers(
	registrationService *service.RegistrationService,
	adminService *service.AdminService,
	stateManager *state.Manager,
	logger *zap.Logger,
	paymentURL string,
) *Handlers {
	return &Handlers{
		registrationService: registrationService,
		adminService:        adminService,
		stateManager:        stateManager,
		logger:              logger,
		paymentURL:          paymentURL,
	}
}
