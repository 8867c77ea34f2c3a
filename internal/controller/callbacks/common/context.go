package common

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/callbacks/callbacktypes"
)

// HandlerContext bundles the values every callback handler starts from, so
// the handlers stop repeating the extract-message/answer/edit boilerplate.
type HandlerContext struct {
	Ctx      context.Context
	Bot      *bot.Bot
	Callback *models.CallbackQuery
	Handler  *callbacktypes.Handler
	Message  *models.Message
	ChatID   int64
}

func NewHandlerContext(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
) *HandlerContext {
	msg := MessageFromCallback(callback)
	var chatID int64
	if msg != nil {
		chatID = msg.Chat.ID
	}

	return &HandlerContext{
		Ctx:      ctx,
		Bot:      b,
		Callback: callback,
		Handler:  h,
		Message:  msg,
		ChatID:   chatID,
	}
}

// RequireAdmin answers with an alert and returns false when the chat never
// passed the login gate. Admin callbacks on a non-admin chat can only come
// from stale messages.
func (hc *HandlerContext) RequireAdmin() bool {
	if hc.Handler.Admin.IsAdmin(hc.ChatID) {
		return true
	}
	hc.AnswerAlert("❌ Acesso restrito. Use /admin para entrar.")
	return false
}

// Answer acknowledges the callback query.
func (hc *HandlerContext) Answer(text string) {
	AnswerCallback(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// AnswerAlert acknowledges the callback query with a blocking alert.
func (hc *HandlerContext) AnswerAlert(text string) {
	AnswerCallbackAlert(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// EditMessage replaces the text and keyboard of the message the callback
// came from.
func (hc *HandlerContext) EditMessage(text string, kb *models.InlineKeyboardMarkup) error {
	if hc.Message == nil {
		return ErrNoMessage
	}

	_, err := hc.Bot.EditMessageText(hc.Ctx, &bot.EditMessageTextParams{
		ChatID:      hc.ChatID,
		MessageID:   hc.Message.ID,
		Text:        text,
		ReplyMarkup: kb,
	})
	if IsMessageNotModifiedError(err) {
		return nil
	}
	return err
}

// SendMessage sends a fresh message to the chat.
func (hc *HandlerContext) SendMessage(text string, kb *models.InlineKeyboardMarkup) error {
	_, err := hc.Bot.SendMessage(hc.Ctx, &bot.SendMessageParams{
		ChatID:      hc.ChatID,
		Text:        text,
		ReplyMarkup: kb,
	})
	return err
}
