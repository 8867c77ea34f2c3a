package common

import (
	"fmt"
	"strings"

	"github.com/go-telegram/bot/models"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/controller/callbacks/common/keyboard"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/formatting"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/model"
)

// Screen builders shared by command handlers and callback handlers. They
// are pure: given state they return the message text and keyboard, so the
// gating rules (which section shows when) can be tested without a bot.

// EventListScreen is the "1. Escolha o Evento ou Sessão" step.
func EventListScreen(events []*model.Event) (string, *models.InlineKeyboardMarkup) {
	text := "🌸 Inscrição - Rodas de Cura Online\n\n" +
		"1️⃣ Escolha o Evento ou Sessão:"

	kb := keyboard.NewBuilder()
	for _, e := range events {
		kb.Row(keyboard.Button(e.Name, SelectEvent+e.ID))
	}
	return text, kb.Build()
}

// EventDetailScreen shows the selected event and, depending on the event,
// the slot-choice step or the custom-scheduling notice. The form step is
// only reachable from here: via a slot button, or via the fill-form button
// of a custom-scheduling event.
func EventDetailScreen(event *model.Event, selectedSlotID string) (string, *models.InlineKeyboardMarkup) {
	var b strings.Builder
	fmt.Fprintf(&b, "✨ %s\n\n%s\n\n", event.Name, event.Description)
	fmt.Fprintf(&b, "💰 Valor da Inscrição: %s\n\n", formatting.FormatPrice(event.PriceCents))

	kb := keyboard.NewBuilder()

	if event.CustomScheduling {
		b.WriteString("2️⃣ Agendamento da Sessão:\n" +
			"O agendamento da sua Sessão Individual Online será realizado por nossa equipe " +
			"de atendimento após a confirmação da sua inscrição.\n" +
			"Entraremos em contato pelo WhatsApp ou e-mail fornecido.")
		kb.Row(keyboard.Button("📝 Preencher meus dados", StartForm+event.ID))
	} else if len(event.Slots) == 0 {
		b.WriteString("Não há horários disponíveis para este evento no momento.")
	} else {
		b.WriteString("2️⃣ Escolha Data e Horário:")
		for _, slot := range event.Slots {
			label := formatting.FormatSlotWithWeekday(slot.DateTime)
			if slot.ID == selectedSlotID {
				label = "✅ " + label
			}
			kb.Row(keyboard.Button(label, SelectSlot+event.ID+":"+slot.ID))
		}
	}

	kb.Row(keyboard.Button("⬅️ Escolher outro evento", BackToEvents))
	return b.String(), kb.Build()
}

// FormSummaryScreen recaps the filled contact form and offers submission.
// It is only shown once every field is present.
func FormSummaryScreen(event *model.Event, sess model.Session) (string, *models.InlineKeyboardMarkup) {
	slotLine := "A definir (agendamento posterior pela equipe)"
	if !event.CustomScheduling {
		if slot := event.FindSlot(sess.SlotID); slot != nil {
			slotLine = formatting.FormatSlotWithWeekday(slot.DateTime)
		}
	}

	text := fmt.Sprintf(
		"📋 Confira seus dados:\n\n"+
			"Evento: %s\n"+
			"Data/Hora: %s\n"+
			"Nome: %s\n"+
			"WhatsApp: %s\n"+
			"E-mail: %s",
		event.Name, slotLine, sess.Form.Name, sess.Form.WhatsApp, sess.Form.Email)

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("📨 Enviar Pedido de Inscrição", SubmitForm)).
		Row(keyboard.Button("⬅️ Escolher outro evento", BackToEvents))

	return text, kb.Build()
}

// ConfirmationScreen is the submitted view: the green confirmation block
// plus the WhatsApp and payment links of the original page.
func ConfirmationScreen(reg *model.Registration, priceCents int, paymentURL string) (string, *models.InlineKeyboardMarkup) {
	price := formatting.FormatPrice(priceCents)

	text := fmt.Sprintf(
		"✅ Seu pedido de inscrição foi enviado com sucesso!\n\n"+
			"Evento: %s\n"+
			"Data/Hora: %s\n"+
			"Nome: %s\n"+
			"WhatsApp: %s\n"+
			"E-mail: %s\n\n"+
			"Para confirmar sua participação, efetue o pagamento de %s.",
		reg.EventName, reg.SlotLabel, reg.Contact.Name, reg.Contact.WhatsApp,
		reg.Contact.Email, price)

	kb := keyboard.NewBuilder().
		Row(keyboard.URLButton("💬 Abrir WhatsApp", reg.WhatsAppLink)).
		Row(keyboard.URLButton("💳 Efetuar Pagamento de "+price, paymentURL)).
		Row(keyboard.Button("🔄 Fazer Nova Inscrição", NewRegistration))

	return text, kb.Build()
}

// AdminPanelScreen lists the editable events. The sentinel never shows up
// here.
func AdminPanelScreen(events []*model.Event) (string, *models.InlineKeyboardMarkup) {
	text := "🛠 Painel Administrativo\n\nEscolha um evento para editar:"

	kb := keyboard.NewBuilder()
	for _, e := range events {
		kb.Row(keyboard.Button(e.Name, AdminEvent+e.ID))
	}
	kb.Row(keyboard.Button("🚪 Sair do Admin", AdminLogout))
	return text, kb.Build()
}

// AdminEventScreen shows one event's fields with edit actions.
func AdminEventScreen(event *model.Event) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf(
		"🛠 Editando: %s\n\n"+
			"Descrição: %s\n"+
			"Preço: %s\n"+
			"Link de pagamento (sufixo): %s",
		event.Name, event.Description, formatting.FormatPrice(event.PriceCents),
		event.PaymentLinkSuffix)

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("✏️ Nome", AdminEdit+"name:"+event.ID),
			keyboard.Button("✏️ Descrição", AdminEdit+"description:"+event.ID)).
		Row(keyboard.Button("✏️ Preço", AdminEdit+"price:"+event.ID),
			keyboard.Button("✏️ Sufixo do link", AdminEdit+"payment_link_suffix:"+event.ID))

	if event.CustomScheduling {
		text += "\n\nEsta é uma sessão com agendamento personalizado. Não há horários para gerenciar aqui."
	} else {
		kb.Row(keyboard.Button("🗓 Horários", AdminSlots+event.ID))
	}

	kb.Row(keyboard.Button("⬅️ Voltar", AdminPanel))
	return text, kb.Build()
}

// AdminSlotsScreen lists an event's slots with edit/remove actions per
// slot and the add action at the bottom.
func AdminSlotsScreen(event *model.Event) (string, *models.InlineKeyboardMarkup) {
	var b strings.Builder
	fmt.Fprintf(&b, "🗓 Horários de %s\n\n", event.Name)

	kb := keyboard.NewBuilder()
	if len(event.Slots) == 0 {
		b.WriteString("Nenhum horário cadastrado.")
	} else {
		for _, slot := range event.Slots {
			ref := event.ID + ":" + slot.ID
			kb.Row(
				keyboard.Button("✏️ "+formatting.FormatSlotWithWeekday(slot.DateTime), AdminEditSlot+ref),
				keyboard.Button("🗑", AdminRemoveSlot+ref),
			)
		}
	}

	kb.Row(keyboard.Button("➕ Adicionar Horário", AdminAddSlot+event.ID))
	kb.Row(keyboard.Button("⬅️ Voltar", AdminEvent+event.ID))
	return b.String(), kb.Build()
}
