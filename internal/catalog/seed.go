package catalog

import (
	"fmt"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/model"
)

// seedEvents builds the fixed startup catalog: the sentinel placeholder,
// four group healing circles with eight slots each, and the individually
// scheduled session with no slots.
func seedEvents() []*model.Event {
	return []*model.Event{
		{
			ID:                model.SentinelEventID,
			Name:              "Selecione um Evento",
			Description:       "Escolha uma das Rodas de Cura para ver os horários.",
			PriceCents:        0,
			PaymentLinkSuffix: "PADRAO",
		},
		{
			ID:                "relacionamento",
			Name:              "Roda de Cura Online - Relacionamento Afetivo",
			Description:       "Harmonize e cure seus laços afetivos. Encontre equilíbrio e amor em suas conexões.",
			PriceCents:        4000,
			PaymentLinkSuffix: "RELACIONAMENTO_AFETIVO",
			Slots:             weekOfSlots("rel", 1, 0),
		},
		{
			ID:                "libertacao",
			Name:              "Roda de Cura Online - Libertação Espiritual",
			Description:       "Liberte-se de amarras energéticas e padrões limitantes. Encontre paz e clareza espiritual.",
			PriceCents:        4000,
			PaymentLinkSuffix: "LIBERTACAO_ESPIRITUAL",
			Slots:             weekOfSlots("lib", 1, 30),
		},
		{
			ID:                "saude",
			Name:              "Roda de Cura Online - Saúde Física e Emocional",
			Description:       "Promova bem-estar integral para corpo e mente. Fortaleça sua vitalidade e equilíbrio emocional.",
			PriceCents:        4000,
			PaymentLinkSuffix: "SAUDE_FISICA_EMOCIONAL",
			Slots:             weekOfSlots("sau", 8, 0),
		},
		{
			ID:                "prosperidade",
			Name:              "Roda de Cura Online - Caminhos da Prosperidade",
			Description:       "Abra seus caminhos para a abundância e realização. Conecte-se com a energia da prosperidade.",
			PriceCents:        4000,
			PaymentLinkSuffix: "CAMINHOS_PROSPERIDADE",
			Slots:             weekOfSlots("pro", 8, 30),
		},
		{
			ID:                "sessao_individual",
			Name:              "Sessão Individual Online",
			Description:       "Uma sessão personalizada para suas necessidades específicas. O agendamento será feito após a inscrição.",
			PriceCents:        20000,
			PaymentLinkSuffix: "SESSAO_INDIVIDUAL",
			CustomScheduling:  true,
		},
	}
}

// weekOfSlots generates the eight July 2024 seed slots of a group event:
// consecutive days starting at firstDay, hours advancing from 10:00.
func weekOfSlots(prefix string, firstDay, minute int) []model.EventSlot {
	slots := make([]model.EventSlot, 0, 8)
	for i := 0; i < 8; i++ {
		slots = append(slots, model.EventSlot{
			ID:       fmt.Sprintf("%s_slot_%d", prefix, i+1),
			DateTime: fmt.Sprintf("%02d/07/2024 - %d:%02d", firstDay+i, 10+i, minute),
		})
	}
	return slots
}
