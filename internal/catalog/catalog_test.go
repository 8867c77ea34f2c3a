package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/model"
)

func newTestStore() *Store {
	return NewStore(zap.NewNop())
}

func TestSeedCatalog(t *testing.T) {
	store := newTestStore()

	all := store.List()
	require.Len(t, all, 6)
	assert.Equal(t, model.SentinelEventID, all[0].ID)
	assert.True(t, all[0].IsSentinel())

	bookable := store.ListBookable()
	require.Len(t, bookable, 5)
	for _, e := range bookable {
		assert.False(t, e.IsSentinel())
	}

	rel := store.Get("relacionamento")
	require.NotNil(t, rel)
	require.Len(t, rel.Slots, 8)
	assert.Equal(t, "rel_slot_1", rel.Slots[0].ID)
	assert.Equal(t, "01/07/2024 - 10:00", rel.Slots[0].DateTime)
	assert.Equal(t, "03/07/2024 - 12:00", rel.Slots[2].DateTime)

	individual := store.Get("sessao_individual")
	require.NotNil(t, individual)
	assert.True(t, individual.CustomScheduling)
	assert.Empty(t, individual.Slots)
	assert.Equal(t, 20000, individual.PriceCents)
}

func TestGetReturnsSnapshot(t *testing.T) {
	store := newTestStore()

	rel := store.Get("relacionamento")
	require.NotNil(t, rel)
	rel.Name = "mutated"
	rel.Slots[0].DateTime = "mutated"

	fresh := store.Get("relacionamento")
	assert.Equal(t, "Roda de Cura Online - Relacionamento Afetivo", fresh.Name)
	assert.Equal(t, "01/07/2024 - 10:00", fresh.Slots[0].DateTime)
}

func TestUpdateEventField(t *testing.T) {
	t.Run("name and description", func(t *testing.T) {
		store := newTestStore()

		store.UpdateEventField("saude", FieldName, "Roda de Cura - Saúde")
		store.UpdateEventField("saude", FieldDescription, "Nova descrição.")

		e := store.Get("saude")
		assert.Equal(t, "Roda de Cura - Saúde", e.Name)
		assert.Equal(t, "Nova descrição.", e.Description)
	})

	t.Run("price is coerced to cents", func(t *testing.T) {
		store := newTestStore()

		store.UpdateEventField("saude", FieldPrice, "49.90")
		assert.Equal(t, 4990, store.Get("saude").PriceCents)

		store.UpdateEventField("saude", FieldPrice, "60,50")
		assert.Equal(t, 6050, store.Get("saude").PriceCents)

		store.UpdateEventField("saude", FieldPrice, "70")
		assert.Equal(t, 7000, store.Get("saude").PriceCents)
	})

	t.Run("unparsable price keeps the old value", func(t *testing.T) {
		store := newTestStore()

		store.UpdateEventField("saude", FieldPrice, "quarenta reais")
		assert.Equal(t, 4000, store.Get("saude").PriceCents)

		store.UpdateEventField("saude", FieldPrice, "-10")
		assert.Equal(t, 4000, store.Get("saude").PriceCents)
	})

	t.Run("unknown event or field is a no-op", func(t *testing.T) {
		store := newTestStore()

		store.UpdateEventField("nope", FieldName, "x")
		store.UpdateEventField("saude", "slots", "x")

		assert.Equal(t, "Roda de Cura Online - Saúde Física e Emocional", store.Get("saude").Name)
	})
}

func TestAddSlot(t *testing.T) {
	t.Run("valid date appends a slot with a fresh id", func(t *testing.T) {
		store := newTestStore()

		slot, err := store.AddSlot("relacionamento", "25/12/2024 - 15:00")
		require.NoError(t, err)
		require.NotNil(t, slot)
		assert.True(t, strings.HasPrefix(slot.ID, "slot_"))
		assert.Equal(t, "25/12/2024 - 15:00", slot.DateTime)

		e := store.Get("relacionamento")
		require.Len(t, e.Slots, 9)
		assert.Equal(t, slot.ID, e.Slots[8].ID)
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		store := newTestStore()

		slot, err := store.AddSlot("relacionamento", "  25/12/2024 - 15:00  ")
		require.NoError(t, err)
		assert.Equal(t, "25/12/2024 - 15:00", slot.DateTime)
	})

	t.Run("malformed input is rejected", func(t *testing.T) {
		store := newTestStore()

		for _, raw := range []string{
			"",
			"2024-12-25 15:00",
			"25/12/2024 15:00",
			"25/12/24 - 15:00",
			"5/12/2024 - 15:00",
			"25/12/2024 - 15h00",
			"amanhã",
		} {
			slot, err := store.AddSlot("relacionamento", raw)
			assert.ErrorIs(t, err, ErrBadSlotFormat, "raw=%q", raw)
			assert.Nil(t, slot)
		}

		assert.Len(t, store.Get("relacionamento").Slots, 8)
	})

	t.Run("shape check accepts calendar-invalid dates", func(t *testing.T) {
		store := newTestStore()

		slot, err := store.AddSlot("relacionamento", "30/02/2024 - 10:00")
		require.NoError(t, err)
		assert.Equal(t, "30/02/2024 - 10:00", slot.DateTime)
	})

	t.Run("unknown event returns nothing", func(t *testing.T) {
		store := newTestStore()

		slot, err := store.AddSlot("nope", "25/12/2024 - 15:00")
		assert.NoError(t, err)
		assert.Nil(t, slot)
	})
}

func TestUpdateSlotDateTime(t *testing.T) {
	store := newTestStore()

	// Edits apply any raw text; only adding validates the shape.
	store.UpdateSlotDateTime("relacionamento", "rel_slot_1", "whatever")
	assert.Equal(t, "whatever", store.Get("relacionamento").Slots[0].DateTime)

	store.UpdateSlotDateTime("relacionamento", "nope", "x")
	store.UpdateSlotDateTime("nope", "rel_slot_1", "x")
	assert.Equal(t, "whatever", store.Get("relacionamento").Slots[0].DateTime)
}

func TestRemoveSlot(t *testing.T) {
	store := newTestStore()

	store.RemoveSlot("relacionamento", "rel_slot_3")

	e := store.Get("relacionamento")
	require.Len(t, e.Slots, 7)
	for _, slot := range e.Slots {
		assert.NotEqual(t, "rel_slot_3", slot.ID)
	}

	// Unknown ids change nothing.
	store.RemoveSlot("relacionamento", "rel_slot_3")
	store.RemoveSlot("nope", "rel_slot_1")
	assert.Len(t, store.Get("relacionamento").Slots, 7)
}

func TestParsePriceCents(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"40", 4000, false},
		{"40.50", 4050, false},
		{"40,50", 4050, false},
		{" 200 ", 20000, false},
		{"0", 0, false},
		{"abc", 0, true},
		{"-5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePriceCents(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "in=%q", tt.in)
		} else {
			assert.NoError(t, err, "in=%q", tt.in)
			assert.Equal(t, tt.want, got, "in=%q", tt.in)
		}
	}
}
