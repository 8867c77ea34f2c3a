package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/callbacks"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/callbacks/callbacktypes"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/handlers"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/state"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/service"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	registrationService *service.RegistrationService,
	adminService *service.AdminService,
	paymentURL string,
	logger *zap.Logger,
) *BotController {
	stateManager := state.NewManager()

	cmdHandlers := handlers.NewHandlers(
		registrationService,
		adminService,
		stateManager,
		logger,
		paymentURL,
	)

	callbackHandler := callbacks.NewHandler(&callbacktypes.Handler{
		Registrations: registrationService,
		Admin:         adminService,
		States:        stateManager,
		Logger:        logger,
		PaymentURL:    paymentURL,
	})

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers registers every command, the dialog text handler and
// the callback handler.
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// /admin is deliberately left out of the command menu below.
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/admin", bot.MatchTypeExact, c.handlers.HandleAdmin)

	// Dialog steps arrive as plain text.
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Inline keyboard presses.
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands fills the bot command menu.
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🌸 Iniciar inscrição"},
		{Command: "cancel", Description: "❌ Cancelar etapa atual"},
		{Command: "help", Description: "❓ Ajuda"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start runs the long polling loop until the context is cancelled.
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
