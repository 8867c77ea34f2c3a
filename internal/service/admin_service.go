package service

import (
	"sync"

	"go.uber.org/zap"

	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/catalog"
	"github.com/oscarpiresjunior/rodas-de-cura-bot/internal/model"
)

// AdminService gates the hidden admin mode behind a single configured
// credential pair and exposes the catalog editing entry points. This is
// placeholder-grade on purpose: no lockout, no rate limit, no expiry. A
// production deployment would swap the credential check for a real
// authentication collaborator.
type AdminService struct {
	catalog  *catalog.Store
	username string
	password string
	logger   *zap.Logger

	mu     sync.RWMutex
	admins map[int64]bool
}

func NewAdminService(cat *catalog.Store, username, password string, logger *zap.Logger) *AdminService {
	return &AdminService{
		catalog:  cat,
		username: username,
		password: password,
		logger:   logger,
		admins:   make(map[int64]bool),
	}
}

// Login checks the typed credential pair. A match flips the chat into admin
// mode; a mismatch returns ErrInvalidLogin and changes nothing, so the
// login dialog stays open for correction.
func (s *AdminService) Login(chatID int64, username, password string) error {
	if username != s.username || password != s.password {
		s.logger.Warn("admin login rejected",
			zap.Int64("chat_id", chatID),
			zap.String("username", username))
		return ErrInvalidLogin
	}

	s.mu.Lock()
	s.admins[chatID] = true
	s.mu.Unlock()

	s.logger.Info("admin login accepted", zap.Int64("chat_id", chatID))
	return nil
}

// IsAdmin reports whether the chat has passed the gate.
func (s *AdminService) IsAdmin(chatID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admins[chatID]
}

// Logout drops the chat out of admin mode.
func (s *AdminService) Logout(chatID int64) {
	s.mu.Lock()
	delete(s.admins, chatID)
	s.mu.Unlock()
}

// EditableEvents lists the catalog records the admin panel manages; the
// sentinel placeholder is not editable.
func (s *AdminService) EditableEvents() []*model.Event {
	return s.catalog.ListBookable()
}

// Event returns a snapshot of one event, or nil.
func (s *AdminService) Event(eventID string) *model.Event {
	return s.catalog.Get(eventID)
}

// UpdateEventField replaces one of name, description, price or
// payment_link_suffix on the matching event.
func (s *AdminService) UpdateEventField(eventID, field, value string) {
	s.catalog.UpdateEventField(eventID, field, value)
}

// UpdateSlotDateTime replaces an existing slot's raw text.
func (s *AdminService) UpdateSlotDateTime(eventID, slotID, raw string) {
	s.catalog.UpdateSlotDateTime(eventID, slotID, raw)
}

// AddSlot appends a shape-validated slot to the event.
func (s *AdminService) AddSlot(eventID, raw string) (*model.EventSlot, error) {
	return s.catalog.AddSlot(eventID, raw)
}

// RemoveSlot removes a slot; visitor sessions pointing at it heal on their
// next access.
func (s *AdminService) RemoveSlot(eventID, slotID string) {
	s.catalog.RemoveSlot(eventID, slotID)
}
