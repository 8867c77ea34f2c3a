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

// HandleStart handles /start: it resets whatever the chat was doing and
// shows the event choice screen.
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	h.stateManager.ClearState(chatID)
	h.registrationService.Reset(chatID)

	h.logger.Info("Start command",
		zap.Int64("chat_id", chatID),
		zap.String("username", update.Message.From.Username))

	text, kb := common.EventListScreen(h.registrationService.Events())
	h.sendScreen(ctx, b, chatID, text, kb)
}

// HandleHelp handles /help.
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Comandos disponíveis:\n\n" +
		"/start - Iniciar uma nova inscrição\n" +
		"/cancel - Cancelar a etapa atual\n" +
		"/help - Mostrar esta ajuda\n\n" +
		"Escolha um evento, selecione data e horário e preencha seus dados. " +
		"Após o envio você recebe os links de WhatsApp e pagamento."

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleCancel handles /cancel, aborting any active dialog step.
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if h.stateManager.GetState(chatID) == state.StateNone {
		h.sendMessage(ctx, b, chatID, "❌ Não há nenhuma operação em andamento.")
		return
	}

	h.stateManager.ClearState(chatID)
	h.sendMessage(ctx, b, chatID, "✅ Operação cancelada.\n\nUse /start para recomeçar.")
}

// HandleAdmin handles /admin. A chat already logged in goes straight to the
// panel; anyone else enters the login dialog.
func (h *Handlers) HandleAdmin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if h.adminService.IsAdmin(chatID) {
		text, kb := common.AdminPanelScreen(h.adminService.EditableEvents())
		h.sendScreen(ctx, b, chatID, text, kb)
		return
	}

	h.logger.Info("Admin login started", zap.Int64("chat_id", chatID))

	h.stateManager.SetState(chatID, state.StateAdminUsername)
	h.sendMessage(ctx, b, chatID,
		"🔐 Acesso Administrativo\n\nDigite o usuário:\n\nPara cancelar use /cancel")
}

// HandleTextMessage routes a plain text message to the dialog step the
// chat is currently in. With no active state the message is ignored.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Commands are handled by their own handlers.
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	chatID := update.Message.Chat.ID
	currentState := h.stateManager.GetState(chatID)

	h.logger.Debug("Text message",
		zap.Int64("chat_id", chatID),
		zap.String("state", string(currentState)))

	if currentState == state.StateNone {
		return
	}

	switch currentState {
	case state.StateFormName:
		h.handleFormNameStep(ctx, b, update)
	case state.StateFormWhatsApp:
		h.handleFormWhatsAppStep(ctx, b, update)
	case state.StateFormEmail:
		h.handleFormEmailStep(ctx, b, update)
	case state.StateAdminUsername:
		h.handleAdminUsernameStep(ctx, b, update)
	case state.StateAdminPassword:
		h.handleAdminPasswordStep(ctx, b, update)
	case state.StateAdminEditName, state.StateAdminEditDescription,
		state.StateAdminEditPrice, state.StateAdminEditSuffix:
		h.handleAdminEditFieldStep(ctx, b, update, currentState)
	case state.StateAdminAddSlot:
		h.handleAdminAddSlotStep(ctx, b, update)
	case state.StateAdminEditSlot:
		h.handleAdminEditSlotStep(ctx, b, update)
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
		h.stateManager.ClearState(chatID)
	}
}
