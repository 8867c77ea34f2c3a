package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/catalog"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/callbacks/common"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/state"
)

// editFieldByState maps an edit dialog state to the catalog field it fills.
var editFieldByState = map[state.ChatState]string{
	state.StateAdminEditName:        catalog.FieldName,
	state.StateAdminEditDescription: catalog.FieldDescription,
	state.StateAdminEditPrice:       catalog.FieldPrice,
	state.StateAdminEditSuffix:      catalog.FieldPaymentLinkSuffix,
}

// Admin login dialog: username then password. A failed attempt shows the
// fixed error message and restarts at the username step.

func (h *Handlers) handleAdminUsernameStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	username := strings.TrimSpace(update.Message.Text)

	h.stateManager.SetData(chatID, state.DataUsername, username)
	h.stateManager.SetState(chatID, state.StateAdminPassword)

	h.sendMessage(ctx, b, chatID, "Digite a senha:")
}

func (h *Handlers) handleAdminPasswordStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	username := h.stateManager.GetString(chatID, state.DataUsername)
	password := update.Message.Text

	if err := h.adminService.Login(chatID, username, password); err != nil {
		h.stateManager.SetState(chatID, state.StateAdminUsername)
		h.sendError(ctx, b, chatID,
			common.LoginErrorMessage+"\n\nDigite o usuário:\n\nPara cancelar use /cancel")
		return
	}

	h.stateManager.ClearState(chatID)
	h.logger.Info("Admin logged in", zap.Int64("chat_id", chatID))

	text, kb := common.AdminPanelScreen(h.adminService.EditableEvents())
	h.sendScreen(ctx, b, chatID, text, kb)
}

// handleAdminEditFieldStep stores the typed value into the field the
// active state targets and shows the event screen again.
func (h *Handlers) handleAdminEditFieldStep(ctx context.Context, b *bot.Bot, update *models.Update, current state.ChatState) {
	chatID := update.Message.Chat.ID
	if !h.requireAdminDialog(ctx, b, chatID) {
		return
	}

	value := strings.TrimSpace(update.Message.Text)
	if value == "" {
		h.sendError(ctx, b, chatID, "❌ O valor não pode ficar vazio. Digite novamente:")
		return
	}

	eventID := h.stateManager.GetString(chatID, state.DataEventID)
	field := editFieldByState[current]

	h.adminService.UpdateEventField(eventID, field, value)
	h.stateManager.ClearState(chatID)

	h.logger.Info("Admin updated event field",
		zap.String("event_id", eventID),
		zap.String("field", field))

	event := h.adminService.Event(eventID)
	if event == nil {
		text, kb := common.AdminPanelScreen(h.adminService.EditableEvents())
		h.sendScreen(ctx, b, chatID, text, kb)
		return
	}

	text, kb := common.AdminEventScreen(event)
	h.sendScreen(ctx, b, chatID, text, kb)
}

// handleAdminAddSlotStep validates the typed date/time and appends a new
// slot. A malformed value keeps the dialog open so the admin can retype.
func (h *Handlers) handleAdminAddSlotStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	if !h.requireAdminDialog(ctx, b, chatID) {
		return
	}

	eventID := h.stateManager.GetString(chatID, state.DataEventID)

	_, err := h.adminService.AddSlot(eventID, update.Message.Text)
	if errors.Is(err, catalog.ErrBadSlotFormat) {
		h.sendError(ctx, b, chatID,
			common.SlotFormatErrorMessage+"\n\nDigite novamente ou use /cancel:")
		return
	}

	h.stateManager.ClearState(chatID)

	event := h.adminService.Event(eventID)
	if event == nil {
		text, kb := common.AdminPanelScreen(h.adminService.EditableEvents())
		h.sendScreen(ctx, b, chatID, text, kb)
		return
	}

	text, kb := common.AdminSlotsScreen(event)
	h.sendScreen(ctx, b, chatID, text, kb)
}

// handleAdminEditSlotStep rewrites an existing slot's date/time with
// whatever was typed. Unlike adding, editing accepts any text.
func (h *Handlers) handleAdminEditSlotStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	if !h.requireAdminDialog(ctx, b, chatID) {
		return
	}

	eventID := h.stateManager.GetString(chatID, state.DataEventID)
	slotID := h.stateManager.GetString(chatID, state.DataSlotID)

	h.adminService.UpdateSlotDateTime(eventID, slotID, update.Message.Text)
	h.stateManager.ClearState(chatID)

	h.logger.Info("Admin edited slot",
		zap.String("event_id", eventID),
		zap.String("slot_id", slotID))

	event := h.adminService.Event(eventID)
	if event == nil {
		text, kb := common.AdminPanelScreen(h.adminService.EditableEvents())
		h.sendScreen(ctx, b, chatID, text, kb)
		return
	}

	text, kb := common.AdminSlotsScreen(event)
	h.sendScreen(ctx, b, chatID, text, kb)
}

// requireAdminDialog aborts an editing dialog when the chat is not logged
// in anymore, e.g. after a logout from another message.
func (h *Handlers) requireAdminDialog(ctx context.Context, b *bot.Bot, chatID int64) bool {
	if h.adminService.IsAdmin(chatID) {
		return true
	}
	h.stateManager.ClearState(chatID)
	h.sendError(ctx, b, chatID, "❌ Acesso restrito. Use /admin para entrar.")
	return false
}
