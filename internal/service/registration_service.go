package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/catalog"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/formatting"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/model"
)

// SlotToBeScheduled is the slot label used on confirmations of
// custom-scheduling events, where the team arranges the date afterwards.
const SlotToBeScheduled = "A definir (agendamento posterior pela equipe)"

// RegistrationService owns the per-chat booking state machine:
//
//	sentinel -> event selected -> slot chosen -> submitted
//
// with the slot step collapsed for custom-scheduling events. Every session
// access runs through Reconcile so that admin edits to the catalog can
// never leave a session pointing at a missing event or slot.
type RegistrationService struct {
	catalog *catalog.Store
	logger  *zap.Logger

	mu       sync.Mutex
	sessions map[int64]*model.Session
}

func NewRegistrationService(cat *catalog.Store, logger *zap.Logger) *RegistrationService {
	return &RegistrationService{
		catalog:  cat,
		logger:   logger,
		sessions: make(map[int64]*model.Session),
	}
}

// Reconcile self-heals a session against the current catalog: an unknown or
// empty event id falls back to the sentinel, and a slot id that no longer
// exists under the selected event (or that belongs to a custom event) is
// cleared. It is pure so the healing invariant can be tested on its own.
func Reconcile(events []*model.Event, s model.Session) model.Session {
	var selected *model.Event
	for _, e := range events {
		if e.ID == s.EventID {
			selected = e
			break
		}
	}

	if selected == nil {
		s.EventID = events[0].ID
		s.SlotID = ""
		return s
	}

	if s.SlotID != "" {
		if selected.CustomScheduling || selected.FindSlot(s.SlotID) == nil {
			s.SlotID = ""
		}
	}
	return s
}

// Session returns the reconciled state for a chat. A chat that was never
// seen gets the initial sentinel session.
func (s *RegistrationService) Session(chatID int64) model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reconciled(chatID)
}

// Events lists the bookable events offered by the picker, sentinel
// excluded.
func (s *RegistrationService) Events() []*model.Event {
	return s.catalog.ListBookable()
}

// Event returns a snapshot of one event, or nil.
func (s *RegistrationService) Event(eventID string) *model.Event {
	return s.catalog.Get(eventID)
}

// SelectedEvent returns the session plus a snapshot of its selected event.
func (s *RegistrationService) SelectedEvent(chatID int64) (model.Session, *model.Event) {
	sess := s.Session(chatID)
	return sess, s.catalog.Get(sess.EventID)
}

// SelectEvent switches the session to the given event and resets slot
// choice, form fields and the submitted flag, whatever the prior state.
// An unknown id lands on the sentinel.
func (s *RegistrationService) SelectEvent(chatID int64, eventID string) *model.Event {
	event := s.catalog.Get(eventID)
	if event == nil {
		event = s.catalog.Sentinel()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(chatID)
	sess.EventID = event.ID
	sess.ClearChoice()
	return event
}

// SelectSlot chooses a slot of the currently selected event. It is only
// legal when that event is real, not custom-scheduling, and actually owns
// the slot; the keyboards never offer anything else, so a failure here
// means a stale message. Choosing a slot resets the form and the submitted
// flag.
func (s *RegistrationService) SelectSlot(chatID int64, slotID string) (*model.EventSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.reconciledRef(chatID)
	event := s.catalog.Get(sess.EventID)
	if event == nil || event.IsSentinel() {
		return nil, ErrEventNotSelected
	}
	if event.CustomScheduling {
		return nil, ErrSlotUnavailable
	}
	slot := event.FindSlot(slotID)
	if slot == nil {
		return nil, ErrSlotUnavailable
	}

	sess.ClearChoice()
	sess.SlotID = slot.ID
	return slot, nil
}

// SetName, SetWhatsApp and SetEmail fill the contact form one dialog step
// at a time.
func (s *RegistrationService) SetName(chatID int64, v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reconciledRef(chatID).Form.Name = v
}

func (s *RegistrationService) SetWhatsApp(chatID int64, v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reconciledRef(chatID).Form.WhatsApp = v
}

func (s *RegistrationService) SetEmail(chatID int64, v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reconciledRef(chatID).Form.Email = v
}

// Submit validates the session, flips the submitted flag and produces the
// registration record. The record is the submission sink: it is logged and
// returned for the confirmation screen, nothing else persists it.
func (s *RegistrationService) Submit(chatID int64) (*model.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.reconciledRef(chatID)
	event := s.catalog.Get(sess.EventID)
	if event == nil || event.IsSentinel() {
		return nil, ErrEventNotSelected
	}
	if sess.Submitted {
		return nil, ErrAlreadySubmitted
	}
	if !event.CustomScheduling && sess.SlotID == "" {
		return nil, ErrSlotUnavailable
	}
	if !sess.Form.Complete() {
		return nil, ErrFormIncomplete
	}

	slotLabel := SlotToBeScheduled
	if !event.CustomScheduling {
		slotLabel = formatting.FormatSlotWithWeekday(event.FindSlot(sess.SlotID).DateTime)
	}

	reg := &model.Registration{
		ID:               uuid.NewString(),
		EventID:          event.ID,
		EventName:        event.Name,
		SlotID:           sess.SlotID,
		SlotLabel:        slotLabel,
		CustomScheduling: event.CustomScheduling,
		Contact:          sess.Form,
		WhatsAppLink:     formatting.WhatsAppLink(sess.Form.WhatsApp),
		CreatedAt:        time.Now(),
	}
	sess.Submitted = true

	s.logger.Info("registration submitted",
		zap.String("registration_id", reg.ID),
		zap.String("event_id", reg.EventID),
		zap.String("slot", reg.SlotLabel),
		zap.String("name", reg.Contact.Name),
		zap.String("whatsapp_link", reg.WhatsAppLink),
		zap.String("email", reg.Contact.Email))

	return reg, nil
}

// Reset is the "Fazer Nova Inscrição" action: back to the sentinel event
// with nothing chosen.
func (s *RegistrationService) Reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(chatID)
	sess.EventID = model.SentinelEventID
	sess.ClearChoice()
}

// session returns the live session for a chat, creating it on first use.
// Callers must hold the lock.
func (s *RegistrationService) session(chatID int64) *model.Session {
	sess, ok := s.sessions[chatID]
	if !ok {
		sess = &model.Session{EventID: model.SentinelEventID}
		s.sessions[chatID] = sess
	}
	return sess
}

// reconciledRef reconciles the live session in place and returns it.
// Callers must hold the lock.
func (s *RegistrationService) reconciledRef(chatID int64) *model.Session {
	sess := s.session(chatID)
	*sess = Reconcile(s.catalog.List(), *sess)
	return sess
}

// reconciled returns a reconciled copy. Callers must hold the lock.
func (s *RegistrationService) reconciled(chatID int64) model.Session {
	return *s.reconciledRef(chatID)
}
