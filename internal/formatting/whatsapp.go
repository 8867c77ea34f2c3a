package formatting

import "strings"

// WhatsAppLink builds the wa.me contact URL for a raw Brazilian phone
// number: every non-digit is stripped and the 55 country code is prefixed.
func WhatsAppLink(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/55" + digits.String()
}
