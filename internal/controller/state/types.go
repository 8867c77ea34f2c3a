package state

// ChatState identifies which dialog step a chat is currently in. An empty
// state means no dialog is active and plain text messages are ignored.
type ChatState string

const (
	StateNone ChatState = ""

	// Contact form steps of the registration flow.
	StateFormName     ChatState = "form_name"
	StateFormWhatsApp ChatState = "form_whatsapp"
	StateFormEmail    ChatState = "form_email"

	// Admin login dialog.
	StateAdminUsername ChatState = "admin_username"
	StateAdminPassword ChatState = "admin_password"

	// Admin editing dialogs. The scratch data carries the target event id
	// (and slot id where relevant) under the keys below.
	StateAdminEditName        ChatState = "admin_edit_name"
	StateAdminEditDescription ChatState = "admin_edit_description"
	StateAdminEditPrice       ChatState = "admin_edit_price"
	StateAdminEditSuffix      ChatState = "admin_edit_suffix"
	StateAdminAddSlot         ChatState = "admin_add_slot"
	StateAdminEditSlot        ChatState = "admin_edit_slot"
)

// Scratch data keys used by the dialogs.
const (
	DataEventID  = "event_id"
	DataSlotID   = "slot_id"
	DataUsername = "username"
)

// ChatData holds a chat's dialog step plus its scratch values.
type ChatData struct {
	State ChatState
	Data  map[string]interface{}
}
