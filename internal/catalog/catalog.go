// Package catalog holds the in-memory event catalog. The catalog is seeded
// once at startup, lives for the process lifetime and is mutated only by the
// admin operations; every mutator is a silent no-op on an unknown id.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/model"
)

// Editable event fields accepted by UpdateEventField.
const (
	FieldName              = "name"
	FieldDescription       = "description"
	FieldPrice             = "price"
	FieldPaymentLinkSuffix = "payment_link_suffix"
)

// ErrBadSlotFormat is returned by AddSlot when the input does not match the
// DD/MM/YYYY - HH:MM shape. The regex checks shape only; calendar-invalid
// dates like 30/02/2024 still pass and are filtered later by the weekday
// deriver.
var ErrBadSlotFormat = errors.New("slot date/time must match DD/MM/YYYY - HH:MM")

var slotDateTimePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4} - \d{2}:\d{2}$`)

type Store struct {
	mu     sync.RWMutex
	events []*model.Event
	logger *zap.Logger
}

// NewStore creates a catalog seeded with the fixed event records. The
// sentinel record is always first.
func NewStore(logger *zap.Logger) *Store {
	return &Store{
		events: seedEvents(),
		logger: logger,
	}
}

// List returns a snapshot of all events in catalog order, sentinel first.
func (s *Store) List() []*model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Event, len(s.events))
	for i, e := range s.events {
		out[i] = e.Clone()
	}
	return out
}

// ListBookable returns the real events, skipping the sentinel.
func (s *Store) ListBookable() []*model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Event, 0, len(s.events)-1)
	for _, e := range s.events {
		if e.IsSentinel() {
			continue
		}
		out = append(out, e.Clone())
	}
	return out
}

// Get returns a snapshot of one event, or nil if the id is unknown.
func (s *Store) Get(eventID string) *model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e := s.find(eventID); e != nil {
		return e.Clone()
	}
	return nil
}

// Sentinel returns the "no event selected" placeholder record.
func (s *Store) Sentinel() *model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events[0].Clone()
}

// UpdateEventField replaces one editable field on the matching event.
// The price field is coerced from a decimal string ("40" or "40.50") to
// cents; an unparsable price, unknown field or unknown id changes nothing.
func (s *Store) UpdateEventField(eventID, field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.find(eventID)
	if e == nil {
		s.logger.Warn("update on unknown event ignored", zap.String("event_id", eventID))
		return
	}

	switch field {
	case FieldName:
		e.Name = value
	case FieldDescription:
		e.Description = value
	case FieldPrice:
		cents, err := ParsePriceCents(value)
		if err != nil {
			s.logger.Warn("unparsable price ignored",
				zap.String("event_id", eventID),
				zap.String("value", value))
			return
		}
		e.PriceCents = cents
	case FieldPaymentLinkSuffix:
		e.PaymentLinkSuffix = value
	default:
		s.logger.Warn("update on unknown field ignored",
			zap.String("event_id", eventID),
			zap.String("field", field))
	}
}

// UpdateSlotDateTime replaces one slot's raw string. Unlike AddSlot this
// path applies no format validation, matching how the original editing
// surface behaves; see DESIGN.md for the recorded decision.
func (s *Store) UpdateSlotDateTime(eventID, slotID, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.find(eventID)
	if e == nil {
		return
	}
	if slot := e.FindSlot(slotID); slot != nil {
		slot.DateTime = raw
	}
}

// AddSlot validates the raw text against the shape regex and appends a new
// slot with a fresh unique id. Empty or malformed input returns
// ErrBadSlotFormat without mutating anything; an unknown event id is a
// silent no-op returning (nil, nil).
func (s *Store) AddSlot(eventID, raw string) (*model.EventSlot, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || !slotDateTimePattern.MatchString(raw) {
		return nil, ErrBadSlotFormat
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.find(eventID)
	if e == nil {
		s.logger.Warn("add slot on unknown event ignored", zap.String("event_id", eventID))
		return nil, nil
	}

	slot := model.EventSlot{
		ID:       "slot_" + uuid.NewString(),
		DateTime: raw,
	}
	e.Slots = append(e.Slots, slot)

	s.logger.Info("slot added",
		zap.String("event_id", eventID),
		zap.String("slot_id", slot.ID),
		zap.String("date_time", slot.DateTime))

	return &slot, nil
}

// RemoveSlot removes the matching slot. Sessions that had it selected heal
// themselves on their next reconcile pass.
func (s *Store) RemoveSlot(eventID, slotID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.find(eventID)
	if e == nil {
		return
	}
	for i := range e.Slots {
		if e.Slots[i].ID == slotID {
			e.Slots = append(e.Slots[:i], e.Slots[i+1:]...)
			s.logger.Info("slot removed",
				zap.String("event_id", eventID),
				zap.String("slot_id", slotID))
			return
		}
	}
}

// find returns the live record for an id. Callers must hold the lock.
func (s *Store) find(eventID string) *model.Event {
	for _, e := range s.events {
		if e.ID == eventID {
			return e
		}
	}
	return nil
}

// ParsePriceCents converts a decimal price string to cents. A comma decimal
// separator is accepted since the admins type prices the Brazilian way.
func ParsePriceCents(value string) (int, error) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", value, err)
	}
	if price < 0 {
		return 0, fmt.Errorf("negative price %q", value)
	}
	return int(price*100 + 0.5), nil
}
