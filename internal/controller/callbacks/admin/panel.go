// Package admin handles the hidden admin panel callbacks: event field
// editing and slot list management. Every handler re-checks the login gate
// first; admin keyboards outlive a logout.
package admin

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/callbacks/callbacktypes"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/callbacks/common"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/state"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/service"
)

// editableFields maps the admin_edit callback field parameter to the
// dialog state that collects its new value.
var editableFields = map[string]state.ChatState{
	"name":                state.StateAdminEditName,
	"description":         state.StateAdminEditDescription,
	"price":               state.StateAdminEditPrice,
	"payment_link_suffix": state.StateAdminEditSuffix,
}

// fieldPrompts are the input prompts per editable field.
var fieldPrompts = map[string]string{
	"name":                "Digite o novo nome do evento:",
	"description":         "Digite a nova descrição:",
	"price":               "Digite o novo preço em reais (ex: 40 ou 40,50):",
	"payment_link_suffix": "Digite o novo sufixo do link de pagamento:",
}

// HandlePanel redraws the message as the admin panel.
func HandlePanel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil || !hc.RequireAdmin() {
		return
	}

	h.States.ClearState(hc.ChatID)

	text, kb := common.AdminPanelScreen(h.Admin.EditableEvents())
	hc.EditMessage(text, kb)
	hc.Answer("")
}

// HandleEvent shows the edit menu of one event.
func HandleEvent(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil || !hc.RequireAdmin() {
		return
	}

	params := common.CallbackParams(callback.Data, common.AdminEvent)
	if len(params) != 1 {
		hc.AnswerAlert("❌ Dados inválidos")
		return
	}

	event := h.Admin.Event(params[0])
	if event == nil {
		hc.AnswerAlert(common.ErrorMessage(service.ErrEventNotFound))
		return
	}

	text, kb := common.AdminEventScreen(event)
	hc.EditMessage(text, kb)
	hc.Answer("")
}

// HandleEditField opens the input dialog for one event field.
func HandleEditField(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil || !hc.RequireAdmin() {
		return
	}

	params := common.CallbackParams(callback.Data, common.AdminEdit)
	if len(params) != 2 {
		hc.AnswerAlert("❌ Dados inválidos")
		return
	}
	field, eventID := params[0], params[1]

	st, ok := editableFields[field]
	if !ok || h.Admin.Event(eventID) == nil {
		hc.AnswerAlert("❌ Dados inválidos")
		return
	}

	h.States.SetState(hc.ChatID, st)
	h.States.SetData(hc.ChatID, state.DataEventID, eventID)

	hc.SendMessage(fieldPrompts[field]+"\n\nPara cancelar use /cancel", nil)
	hc.Answer("")
}

// HandleSlots shows the slot management screen of one event.
func HandleSlots(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil || !hc.RequireAdmin() {
		return
	}

	params := common.CallbackParams(callback.Data, common.AdminSlots)
	if len(params) != 1 {
		hc.AnswerAlert("❌ Dados inválidos")
		return
	}

	event := h.Admin.Event(params[0])
	if event == nil {
		hc.AnswerAlert(common.ErrorMessage(service.ErrEventNotFound))
		return
	}

	text, kb := common.AdminSlotsScreen(event)
	hc.EditMessage(text, kb)
	hc.Answer("")
}

// HandleEditSlot opens the input dialog for an existing slot's date/time.
func HandleEditSlot(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil || !hc.RequireAdmin() {
		return
	}

	params := common.CallbackParams(callback.Data, common.AdminEditSlot)
	if len(params) != 2 {
		hc.AnswerAlert("❌ Dados inválidos")
		return
	}
	eventID, slotID := params[0], params[1]

	h.States.SetState(hc.ChatID, state.StateAdminEditSlot)
	h.States.SetData(hc.ChatID, state.DataEventID, eventID)
	h.States.SetData(hc.ChatID, state.DataSlotID, slotID)

	hc.SendMessage("Digite a nova data/hora (ex: 25/12/2024 - 15:00):\n\nPara cancelar use /cancel", nil)
	hc.Answer("")
}

// HandleRemoveSlot removes a slot and redraws the slot list. Visitor
// sessions holding the removed slot self-heal on their next interaction.
func HandleRemoveSlot(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil || !hc.RequireAdmin() {
		return
	}

	params := common.CallbackParams(callback.Data, common.AdminRemoveSlot)
	if len(params) != 2 {
		hc.AnswerAlert("❌ Dados inválidos")
		return
	}
	eventID, slotID := params[0], params[1]

	h.Admin.RemoveSlot(eventID, slotID)
	h.Logger.Info("admin removed slot",
		zap.Int64("chat_id", hc.ChatID),
		zap.String("event_id", eventID),
		zap.String("slot_id", slotID))

	event := h.Admin.Event(eventID)
	if event == nil {
		hc.AnswerAlert(common.ErrorMessage(service.ErrEventNotFound))
		return
	}

	text, kb := common.AdminSlotsScreen(event)
	hc.EditMessage(text, kb)
	hc.Answer("Horário removido")
}

// HandleAddSlot opens the input dialog for a new slot.
func HandleAddSlot(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil || !hc.RequireAdmin() {
		return
	}

	params := common.CallbackParams(callback.Data, common.AdminAddSlot)
	if len(params) != 1 {
		hc.AnswerAlert("❌ Dados inválidos")
		return
	}

	h.States.SetState(hc.ChatID, state.StateAdminAddSlot)
	h.States.SetData(hc.ChatID, state.DataEventID, params[0])

	hc.SendMessage("Digite a data/hora do novo horário (ex: 25/12/2024 - 15:00):\n\nPara cancelar use /cancel", nil)
	hc.Answer("")
}

// HandleLogout leaves admin mode and returns to the registration flow.
func HandleLogout(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil {
		return
	}

	h.Admin.Logout(hc.ChatID)
	h.States.ClearState(hc.ChatID)
	h.Logger.Info("admin logged out", zap.Int64("chat_id", hc.ChatID))

	text, kb := common.EventListScreen(h.Registrations.Events())
	hc.EditMessage(text, kb)
	hc.Answer("Sessão de admin encerrada")
}
