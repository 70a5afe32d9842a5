package donations

import "math"

// MinAmountCents is the smallest accepted donation (Stripe's own floor for usd).
const MinAmountCents int64 = 50

// ToCents converts a major-unit amount to cents. Rounds to the nearest cent
// so 25.0 and 24.999999 both land on an exact integer.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts cents back to major units for API responses. All
// arithmetic stays in cents; this runs once at the JSON edge.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
