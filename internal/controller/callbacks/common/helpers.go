package common

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// AnswerCallback acknowledges a callback query without a popup.
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert acknowledges a callback query with a blocking alert.
// This is the surface for the admin add-slot format error.
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// MessageFromCallback extracts the accessible message a callback points at,
// or nil when the original message is gone.
func MessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// CallbackParams splits "action:a:b" callback data into its parameters
// after the action prefix.
func CallbackParams(data, prefix string) []string {
	rest := strings.TrimPrefix(data, prefix)
	if rest == "" {
		return nil
	}
	return strings.Split(rest, ":")
}

// IsMessageNotModifiedError reports the Telegram "message is not modified"
// edit error, which is harmless and worth swallowing.
func IsMessageNotModifiedError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
