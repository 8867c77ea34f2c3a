package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/callbacks/common"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/state"
)

// Contact form dialog. Three steps: name, WhatsApp, e-mail. Every step
// re-prompts on empty input; after the last one the chat gets the summary
// screen with the submit button.

func (h *Handlers) handleFormNameStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	name := strings.TrimSpace(update.Message.Text)

	if name == "" {
		h.sendError(ctx, b, chatID, "❌ O nome não pode ficar vazio.\n\nQual é o seu nome completo?")
		return
	}

	h.registrationService.SetName(chatID, name)
	h.stateManager.SetState(chatID, state.StateFormWhatsApp)

	h.sendMessage(ctx, b, chatID,
		"Qual é o seu WhatsApp (com DDD)?\n\nExemplo: (11) 99999-8888")
}

func (h *Handlers) handleFormWhatsAppStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	whatsapp := strings.TrimSpace(update.Message.Text)

	if whatsapp == "" {
		h.sendError(ctx, b, chatID, "❌ O WhatsApp não pode ficar vazio.\n\nQual é o seu WhatsApp (com DDD)?")
		return
	}

	h.registrationService.SetWhatsApp(chatID, whatsapp)
	h.stateManager.SetState(chatID, state.StateFormEmail)

	h.sendMessage(ctx, b, chatID, "Qual é o seu e-mail?")
}

func (h *Handlers) handleFormEmailStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	email := strings.TrimSpace(update.Message.Text)

	if email == "" {
		h.sendError(ctx, b, chatID, "❌ O e-mail não pode ficar vazio.\n\nQual é o seu e-mail?")
		return
	}

	h.registrationService.SetEmail(chatID, email)
	h.stateManager.ClearState(chatID)

	sess, event := h.registrationService.SelectedEvent(chatID)
	if event == nil || event.IsSentinel() {
		// Selection disappeared mid-dialog, e.g. an admin removed the
		// event. Send the chat back to the start.
		h.logger.Warn("Form finished without a selected event",
			zap.Int64("chat_id", chatID))
		text, kb := common.EventListScreen(h.registrationService.Events())
		h.sendScreen(ctx, b, chatID, text, kb)
		return
	}

	text, kb := common.FormSummaryScreen(event, sess)
	h.sendScreen(ctx, b, chatID, text, kb)
}
