package stripewebhooks

import (
	"errors"
	"fmt"
	"log"

	"donation-app/database"
	"donation-app/internal/domain/donations"
	stripestatus "donation-app/internal/infra/stripe"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

// handleCheckoutSessionCompleted finalizes the donation bound to the
// session. Stripe delivers at least once, possibly concurrently, so the
// pending -> paid transition is a single conditional UPDATE: re-delivery
// matches zero rows and changes nothing.
func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	if stripestatus.NormalizePaymentStatus(string(session.PaymentStatus)) != "paid" {
		log.Printf("checkout session %s completed but not yet paid, waiting for async payment", session.ID)
		return nil
	}

	var payment donations.Payment
	if err := database.DB.Where("stripe_session_id = ?", session.ID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unknown session: nothing to finalize, and retrying won't help.
			log.Printf("no donation found for checkout session %s, ignoring", session.ID)
			return nil
		}
		return fmt.Errorf("failed to look up donation for session %s: %w", session.ID, err)
	}

	// AmountTotal is the processor-confirmed charge, which overrides
	// whatever the client claimed at intent time.
	updates := map[string]interface{}{
		"status":       donations.StatusPaid,
		"amount_cents": session.AmountTotal,
	}
	if session.Customer != nil && session.Customer.ID != "" {
		updates["stripe_customer_id"] = session.Customer.ID
	}

	res := database.DB.Model(&donations.Payment{}).
		Where("id = ? AND status = ?", payment.ID, donations.StatusPending).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to finalize donation %d: %w", payment.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		log.Printf("donation %d already paid, duplicate event for session %s", payment.ID, session.ID)
	}

	return nil
}
