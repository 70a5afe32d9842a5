package stripe

import "strings"

// Stripe-ish normalization used ONLY for checkout.session.payment_status.
// Async payment methods deliver checkout.session.completed while the
// session is still "unpaid"; the amount only settles later.
func NormalizePaymentStatus(s string) string {
	switch strings.TrimSpace(s) {
	case "paid", "no_payment_required":
		return "paid"
	case "unpaid", "":
		return "unpaid"
	default:
		return strings.TrimSpace(s)
	}
}
