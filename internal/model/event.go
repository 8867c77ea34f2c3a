package model

// SentinelEventID identifies the placeholder record that represents
// "no event chosen yet". It is always the first record in the catalog
// and never accepts a booking.
const SentinelEventID = "evento_padrao"

type Event struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	PriceCents        int         `json:"price_cents"`
	PaymentLinkSuffix string      `json:"payment_link_suffix"`
	Slots             []EventSlot `json:"slots"`
	CustomScheduling  bool        `json:"custom_scheduling"` // slot is arranged after registration
}

// IsSentinel reports whether this is the "nothing chosen" placeholder.
func (e *Event) IsSentinel() bool {
	return e.ID == SentinelEventID
}

// FindSlot returns the slot with the given id, or nil.
func (e *Event) FindSlot(slotID string) *EventSlot {
	for i := range e.Slots {
		if e.Slots[i].ID == slotID {
			return &e.Slots[i]
		}
	}
	return nil
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the store's internal slices.
func (e *Event) Clone() *Event {
	c := *e
	c.Slots = make([]EventSlot, len(e.Slots))
	copy(c.Slots, e.Slots)
	return &c
}
