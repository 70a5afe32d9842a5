package donations

import (
	"time"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// DefaultCurrency is the only settlement currency in use.
const DefaultCurrency = "usd"

type Payment struct {
	ID               uint `gorm:"primaryKey"`
	Name             string
	Email            string
	AmountCents      int64
	Currency         string
	Status           string `gorm:"index"`
	StripeSessionID  string `gorm:"uniqueIndex"`
	StripeCustomerID *string
	CreatedAt        time.Time `gorm:"index"`
}
