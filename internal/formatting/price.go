package formatting

import "fmt"

// FormatPrice renders a price held in cents the way the registration page
// shows it, e.g. "R$ 40.00".
func FormatPrice(priceInCents int) string {
	return fmt.Sprintf("R$ %.2f", float64(priceInCents)/100)
}
