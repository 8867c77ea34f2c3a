package common

import (
	"errors"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/catalog"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/service"
)

// ErrNoMessage means a callback arrived without an accessible message.
var ErrNoMessage = errors.New("no message in callback")

// LoginErrorMessage is the fixed inline error of the admin login dialog.
const LoginErrorMessage = "Usuário ou senha inválidos."

// SlotFormatErrorMessage is the blocking alert shown when an admin submits
// a malformed slot date/time.
const SlotFormatErrorMessage = "Formato de data/hora inválido. Use DD/MM/AAAA - HH:MM"

// ErrorMessage maps a domain error to the user-facing pt-BR message.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrEventNotSelected):
		return "❌ Selecione um evento primeiro. Use /start"
	case errors.Is(err, service.ErrEventNotFound):
		return "❌ Evento não encontrado"
	case errors.Is(err, service.ErrSlotUnavailable):
		return "❌ Este horário não está mais disponível"
	case errors.Is(err, service.ErrFormIncomplete):
		return "❌ Preencha nome, WhatsApp e e-mail antes de enviar"
	case errors.Is(err, service.ErrAlreadySubmitted):
		return "❌ Esta inscrição já foi enviada"
	case errors.Is(err, service.ErrInvalidLogin):
		return LoginErrorMessage
	case errors.Is(err, catalog.ErrBadSlotFormat):
		return SlotFormatErrorMessage
	case errors.Is(err, ErrNoMessage):
		return "❌ Erro ao processar a mensagem"
	default:
		return "❌ Ocorreu um erro. Tente novamente."
	}
}
