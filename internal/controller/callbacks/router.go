package callbacks

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/callbacks/admin"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/callbacks/callbacktypes"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/callbacks/common"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/callbacks/registration"
)

// Handler dispatches every callback query to its handler.
type Handler struct {
	deps *callbacktypes.Handler
}

func NewHandler(deps *callbacktypes.Handler) *Handler {
	return &Handler{deps: deps}
}

// HandleCallbackQuery is registered as the bot's catch-all callback
// handler and routes on the data prefix.
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	callback := update.CallbackQuery
	if callback == nil {
		return
	}

	data := callback.Data
	h.deps.Logger.Debug("routing callback",
		zap.String("data", data),
		zap.Int64("from_id", callback.From.ID))

	switch {
	// Registration flow.
	case strings.HasPrefix(data, common.SelectEvent):
		registration.HandleSelectEvent(ctx, b, callback, h.deps)
	case strings.HasPrefix(data, common.SelectSlot):
		registration.HandleSelectSlot(ctx, b, callback, h.deps)
	case strings.HasPrefix(data, common.StartForm):
		registration.HandleStartForm(ctx, b, callback, h.deps)
	case data == common.SubmitForm:
		registration.HandleSubmit(ctx, b, callback, h.deps)
	case data == common.NewRegistration:
		registration.HandleNewRegistration(ctx, b, callback, h.deps)
	case data == common.BackToEvents:
		registration.HandleBackToEvents(ctx, b, callback, h.deps)

	// Admin panel.
	case data == common.AdminPanel:
		admin.HandlePanel(ctx, b, callback, h.deps)
	case strings.HasPrefix(data, common.AdminEditSlot):
		admin.HandleEditSlot(ctx, b, callback, h.deps)
	case strings.HasPrefix(data, common.AdminRemoveSlot):
		admin.HandleRemoveSlot(ctx, b, callback, h.deps)
	case strings.HasPrefix(data, common.AdminAddSlot):
		admin.HandleAddSlot(ctx, b, callback, h.deps)
	case strings.HasPrefix(data, common.AdminSlots):
		admin.HandleSlots(ctx, b, callback, h.deps)
	case strings.HasPrefix(data, common.AdminEdit):
		admin.HandleEditField(ctx, b, callback, h.deps)
	case strings.HasPrefix(data, common.AdminEvent):
		admin.HandleEvent(ctx, b, callback, h.deps)
	case data == common.AdminLogout:
		admin.HandleLogout(ctx, b, callback, h.deps)

	default:
		h.deps.Logger.Warn("unknown callback", zap.String("data", data))
		common.AnswerCallback(ctx, b, callback.ID, "")
	}
}
