package common

import (
	"strings"
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/model"
)

func buttonTexts(kb *models.InlineKeyboardMarkup) []string {
	var out []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			out = append(out, btn.Text)
		}
	}
	return out
}

func findButton(kb *models.InlineKeyboardMarkup, text string) *models.InlineKeyboardButton {
	for _, row := range kb.InlineKeyboard {
		for i := range row {
			if row[i].Text == text {
				return &row[i]
			}
		}
	}
	return nil
}

func groupEvent() *model.Event {
	return &model.Event{
		ID:          "relacionamento",
		Name:        "Roda de Cura Online - Relacionamento Afetivo",
		Description: "Harmonize e cure seus laços afetivos.",
		PriceCents:  4000,
		Slots: []model.EventSlot{
			{ID: "rel_slot_1", DateTime: "01/07/2024 - 10:00"},
			{ID: "rel_slot_2", DateTime: "02/07/2024 - 11:00"},
		},
	}
}

func customEvent() *model.Event {
	return &model.Event{
		ID:               "sessao_individual",
		Name:             "Sessão Individual Online",
		Description:      "Uma sessão personalizada.",
		PriceCents:       20000,
		CustomScheduling: true,
	}
}

func TestEventListScreen(t *testing.T) {
	events := []*model.Event{groupEvent(), customEvent()}

	text, kb := EventListScreen(events)

	assert.Contains(t, text, "1️⃣ Escolha o Evento ou Sessão")
	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, SelectEvent+"relacionamento", kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, SelectEvent+"sessao_individual", kb.InlineKeyboard[1][0].CallbackData)
}

func TestEventDetailScreen(t *testing.T) {
	t.Run("group event lists slots with weekday labels", func(t *testing.T) {
		text, kb := EventDetailScreen(groupEvent(), "")

		assert.Contains(t, text, "2️⃣ Escolha Data e Horário")
		assert.Contains(t, text, "R$ 40.00")

		btn := findButton(kb, "Seg, 01/07/2024 - 10:00")
		require.NotNil(t, btn)
		assert.Equal(t, SelectSlot+"relacionamento:rel_slot_1", btn.CallbackData)

		// The form is not offered before a slot is chosen.
		assert.Nil(t, findButton(kb, "📝 Preencher meus dados"))
		assert.NotNil(t, findButton(kb, "⬅️ Escolher outro evento"))
	})

	t.Run("selected slot is marked", func(t *testing.T) {
		_, kb := EventDetailScreen(groupEvent(), "rel_slot_2")

		assert.NotNil(t, findButton(kb, "✅ Ter, 02/07/2024 - 11:00"))
		assert.NotNil(t, findButton(kb, "Seg, 01/07/2024 - 10:00"))
	})

	t.Run("custom event skips the slot step", func(t *testing.T) {
		text, kb := EventDetailScreen(customEvent(), "")

		assert.Contains(t, text, "2️⃣ Agendamento da Sessão")
		assert.Contains(t, text, "nossa equipe")

		btn := findButton(kb, "📝 Preencher meus dados")
		require.NotNil(t, btn)
		assert.Equal(t, StartForm+"sessao_individual", btn.CallbackData)

		for _, label := range buttonTexts(kb) {
			assert.False(t, strings.Contains(label, "/2024 - "), "unexpected slot button %q", label)
		}
	})

	t.Run("group event without slots", func(t *testing.T) {
		e := groupEvent()
		e.Slots = nil

		text, kb := EventDetailScreen(e, "")

		assert.Contains(t, text, "Não há horários disponíveis")
		require.Len(t, kb.InlineKeyboard, 1)
		assert.NotNil(t, findButton(kb, "⬅️ Escolher outro evento"))
	})
}

func TestFormSummaryScreen(t *testing.T) {
	sess := model.Session{
		EventID: "relacionamento",
		SlotID:  "rel_slot_1",
		Form: model.ContactForm{
			Name:     "Maria da Silva",
			WhatsApp: "(11) 99999-8888",
			Email:    "maria@example.com",
		},
	}

	text, kb := FormSummaryScreen(groupEvent(), sess)

	assert.Contains(t, text, "Seg, 01/07/2024 - 10:00")
	assert.Contains(t, text, "Maria da Silva")
	assert.Contains(t, text, "maria@example.com")

	btn := findButton(kb, "📨 Enviar Pedido de Inscrição")
	require.NotNil(t, btn)
	assert.Equal(t, SubmitForm, btn.CallbackData)
}

func TestFormSummaryScreenCustomScheduling(t *testing.T) {
	sess := model.Session{
		EventID: "sessao_individual",
		Form: model.ContactForm{
			Name:     "Maria da Silva",
			WhatsApp: "11999998888",
			Email:    "maria@example.com",
		},
	}

	text, _ := FormSummaryScreen(customEvent(), sess)
	assert.Contains(t, text, "A definir (agendamento posterior pela equipe)")
}

func TestConfirmationScreen(t *testing.T) {
	reg := &model.Registration{
		ID:        "reg-1",
		EventID:   "relacionamento",
		EventName: "Roda de Cura Online - Relacionamento Afetivo",
		SlotLabel: "Seg, 01/07/2024 - 10:00",
		Contact: model.ContactForm{
			Name:     "Maria da Silva",
			WhatsApp: "(11) 99999-8888",
			Email:    "maria@example.com",
		},
		WhatsAppLink: "https://wa.me/5511999998888",
	}

	text, kb := ConfirmationScreen(reg, 4000, "https://pay.example.com/checkout")

	assert.Contains(t, text, "✅ Seu pedido de inscrição foi enviado com sucesso!")
	assert.Contains(t, text, "pagamento de R$ 40.00")

	wa := findButton(kb, "💬 Abrir WhatsApp")
	require.NotNil(t, wa)
	assert.Equal(t, "https://wa.me/5511999998888", wa.URL)
	assert.Empty(t, wa.CallbackData)

	pay := findButton(kb, "💳 Efetuar Pagamento de R$ 40.00")
	require.NotNil(t, pay)
	assert.Equal(t, "https://pay.example.com/checkout", pay.URL)

	again := findButton(kb, "🔄 Fazer Nova Inscrição")
	require.NotNil(t, again)
	assert.Equal(t, NewRegistration, again.CallbackData)
}

func TestAdminScreens(t *testing.T) {
	t.Run("panel", func(t *testing.T) {
		_, kb := AdminPanelScreen([]*model.Event{groupEvent(), customEvent()})

		btn := findButton(kb, "Roda de Cura Online - Relacionamento Afetivo")
		require.NotNil(t, btn)
		assert.Equal(t, AdminEvent+"relacionamento", btn.CallbackData)
		assert.NotNil(t, findButton(kb, "🚪 Sair do Admin"))
	})

	t.Run("group event offers slot management", func(t *testing.T) {
		_, kb := AdminEventScreen(groupEvent())

		btn := findButton(kb, "🗓 Horários")
		require.NotNil(t, btn)
		assert.Equal(t, AdminSlots+"relacionamento", btn.CallbackData)
	})

	t.Run("custom event hides slot management", func(t *testing.T) {
		text, kb := AdminEventScreen(customEvent())

		assert.Nil(t, findButton(kb, "🗓 Horários"))
		assert.Contains(t, text, "agendamento personalizado")
	})

	t.Run("slots screen", func(t *testing.T) {
		_, kb := AdminSlotsScreen(groupEvent())

		edit := findButton(kb, "✏️ Seg, 01/07/2024 - 10:00")
		require.NotNil(t, edit)
		assert.Equal(t, AdminEditSlot+"relacionamento:rel_slot_1", edit.CallbackData)

		add := findButton(kb, "➕ Adicionar Horário")
		require.NotNil(t, add)
		assert.Equal(t, AdminAddSlot+"relacionamento", add.CallbackData)
	})

	t.Run("slots screen with no slots", func(t *testing.T) {
		e := groupEvent()
		e.Slots = nil

		text, kb := AdminSlotsScreen(e)
		assert.Contains(t, text, "Nenhum horário cadastrado")
		assert.NotNil(t, findButton(kb, "➕ Adicionar Horário"))
	})
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, LoginErrorMessage, "Usuário ou senha inválidos.")
	assert.Equal(t, SlotFormatErrorMessage, "Formato de data/hora inválido. Use DD/MM/AAAA - HH:MM")
	assert.Equal(t, "❌ Ocorreu um erro. Tente novamente.", ErrorMessage(nil))
}
