package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/app"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/catalog"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/config"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting registration bot",
		"environment", cfg.Environment,
		"token_length", len(cfg.TelegramToken))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store := catalog.NewStore(logger)
	registrationService := service.NewRegistrationService(store, logger)
	adminService := service.NewAdminService(store, cfg.AdminUsername, cfg.AdminPassword, logger)

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(
		b,
		registrationService,
		adminService,
		cfg.PaymentLink,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	logger.Info("✅ Bot is running")
	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot shut down")
}
