// Package registration handles the visitor-facing booking flow callbacks:
// event selection, slot selection, submission and the reset action.
package registration

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/callbacks/callbacktypes"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/callbacks/common"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/state"
)

// HandleSelectEvent switches the session to the chosen event and redraws
// the message as the event detail screen. Any slot choice, form input and
// submitted flag from a previous pick are gone after this.
func HandleSelectEvent(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil {
		hc.Answer(common.ErrorMessage(common.ErrNoMessage))
		return
	}

	params := common.CallbackParams(callback.Data, common.SelectEvent)
	if len(params) != 1 {
		hc.AnswerAlert("❌ Dados inválidos")
		return
	}

	// Any in-progress form dialog belongs to the previous selection.
	h.States.ClearState(hc.ChatID)

	event := h.Registrations.SelectEvent(hc.ChatID, params[0])
	if event.IsSentinel() {
		text, kb := common.EventListScreen(h.Registrations.Events())
		hc.EditMessage(text, kb)
		hc.Answer("")
		return
	}

	text, kb := common.EventDetailScreen(event, "")
	if err := hc.EditMessage(text, kb); err != nil {
		h.Logger.Error("failed to show event detail", zap.Error(err), zap.String("event_id", event.ID))
	}
	hc.Answer("")
}

// HandleSelectSlot picks a slot of the current event and opens the contact
// form dialog. The service rejects slots that stopped existing or belong
// to another event, which covers taps on stale keyboards.
func HandleSelectSlot(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil {
		hc.Answer(common.ErrorMessage(common.ErrNoMessage))
		return
	}

	params := common.CallbackParams(callback.Data, common.SelectSlot)
	if len(params) != 2 {
		hc.AnswerAlert("❌ Dados inválidos")
		return
	}
	eventID, slotID := params[0], params[1]

	// A keyboard of another event means a stale message.
	sess := h.Registrations.Session(hc.ChatID)
	if sess.EventID != eventID {
		hc.AnswerAlert("❌ Dados inválidos")
		return
	}

	slot, err := h.Registrations.SelectSlot(hc.ChatID, slotID)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}

	event := h.Registrations.Event(eventID)
	text, kb := common.EventDetailScreen(event, slot.ID)
	hc.EditMessage(text, kb)
	hc.Answer("")

	beginForm(hc, h)
}

// HandleStartForm opens the contact form for a custom-scheduling event,
// whose slot step is replaced by the static notice.
func HandleStartForm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil {
		hc.Answer(common.ErrorMessage(common.ErrNoMessage))
		return
	}

	params := common.CallbackParams(callback.Data, common.StartForm)
	if len(params) != 1 {
		hc.AnswerAlert("❌ Dados inválidos")
		return
	}

	_, event := h.Registrations.SelectedEvent(hc.ChatID)
	if event == nil || event.ID != params[0] || !event.CustomScheduling {
		hc.AnswerAlert("❌ Dados inválidos")
		return
	}

	hc.Answer("")
	beginForm(hc, h)
}

// HandleSubmit finalizes the registration and swaps in the confirmation
// screen with the WhatsApp and payment links.
func HandleSubmit(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil {
		hc.Answer(common.ErrorMessage(common.ErrNoMessage))
		return
	}

	reg, err := h.Registrations.Submit(hc.ChatID)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}

	event := h.Registrations.Event(reg.EventID)
	priceCents := 0
	if event != nil {
		priceCents = event.PriceCents
	}

	text, kb := common.ConfirmationScreen(reg, priceCents, h.PaymentURL)
	if err := hc.EditMessage(text, kb); err != nil {
		h.Logger.Error("failed to show confirmation", zap.Error(err), zap.String("registration_id", reg.ID))
	}
	hc.Answer("✅ Inscrição enviada!")
}

// HandleNewRegistration resets the machine to the sentinel event and shows
// the event list again.
func HandleNewRegistration(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil {
		hc.Answer(common.ErrorMessage(common.ErrNoMessage))
		return
	}

	h.States.ClearState(hc.ChatID)
	h.Registrations.Reset(hc.ChatID)

	text, kb := common.EventListScreen(h.Registrations.Events())
	hc.SendMessage(text, kb)
	hc.Answer("")
}

// HandleBackToEvents returns to the event list without touching a
// submitted confirmation: it simply re-runs the reset path.
func HandleBackToEvents(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil {
		hc.Answer(common.ErrorMessage(common.ErrNoMessage))
		return
	}

	h.States.ClearState(hc.ChatID)
	h.Registrations.Reset(hc.ChatID)

	text, kb := common.EventListScreen(h.Registrations.Events())
	hc.EditMessage(text, kb)
	hc.Answer("")
}

// beginForm starts the three-step contact dialog.
func beginForm(hc *common.HandlerContext, h *callbacktypes.Handler) {
	h.States.SetState(hc.ChatID, state.StateFormName)
	hc.SendMessage("3️⃣ Seus Dados para Inscrição\n\nQual é o seu nome completo?\n\nPara cancelar use /cancel", nil)
}
