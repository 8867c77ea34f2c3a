package common

// Callback data actions. Parameterized actions end in ':' and carry their
// ids after it, e.g. "select_slot:relacionamento:rel_slot_3".
const (
	// Registration flow.
	SelectEvent     = "select_event:"
	SelectSlot      = "select_slot:"
	StartForm       = "start_form:"
	SubmitForm      = "submit_registration"
	NewRegistration = "new_registration"
	BackToEvents    = "back_to_events"

	// Admin panel.
	AdminPanel      = "admin_panel"
	AdminEvent      = "admin_event:"
	AdminEdit       = "admin_edit:" // admin_edit:<field>:<event_id>
	AdminSlots      = "admin_slots:"
	AdminEditSlot   = "admin_edit_slot:"   // admin_edit_slot:<event_id>:<slot_id>
	AdminRemoveSlot = "admin_remove_slot:" // admin_remove_slot:<event_id>:<slot_id>
	AdminAddSlot    = "admin_add_slot:"
	AdminLogout     = "admin_logout"
)
