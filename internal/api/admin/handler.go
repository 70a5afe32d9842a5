package admin

import (
	"net/http"
	"time"

	"donation-app/database"
	"donation-app/internal/domain/donations"

	"github.com/gin-gonic/gin"
)

type AdminDonation struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Amount           float64 `json:"amount"`
	Currency         string  `json:"currency"`
	Status           string  `json:"status"`
	StripeSessionID  string  `json:"stripe_session_id"`
	StripeCustomerID *string `json:"stripe_customer_id,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type AdminStats struct {
	TotalRaised  float64 `json:"total_raised"`
	RecentRaised float64 `json:"recent_raised"`
	PaidCount    int     `json:"paid_count"`
	PendingCount int     `json:"pending_count"`
}

// ListAllDonations returns every record regardless of status. Pending rows
// with a "pending_" session prefix are orphans whose Stripe call never
// completed.
func ListAllDonations(c *gin.Context) {
	var payments []donations.Payment
	err := database.DB.Order("created_at DESC, id DESC").Find(&payments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load donations"})
		return
	}

	result := make([]AdminDonation, 0, len(payments))
	for _, p := range payments {
		result = append(result, AdminDonation{
			ID:               p.ID,
			Name:             p.Name,
			Email:            p.Email,
			Amount:           donations.FromCents(p.AmountCents),
			Currency:         p.Currency,
			Status:           p.Status,
			StripeSessionID:  p.StripeSessionID,
			StripeCustomerID: p.StripeCustomerID,
			CreatedAt:        p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, result)
}

func AdminDashboard(c *gin.Context) {
	var stats AdminStats

	var totalCents int64
	var recentCents int64
	var paidCount int64
	var pendingCount int64

	database.DB.Model(&donations.Payment{}).
		Where("status = ?", donations.StatusPaid).
		Select("COALESCE(SUM(amount_cents), 0)").Scan(&totalCents)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&donations.Payment{}).
		Where("status = ? AND created_at >= ?", donations.StatusPaid, thirtyDaysAgo).
		Select("COALESCE(SUM(amount_cents), 0)").Scan(&recentCents)

	database.DB.Model(&donations.Payment{}).
		Where("status = ?", donations.StatusPaid).Count(&paidCount)
	database.DB.Model(&donations.Payment{}).
		Where("status = ?", donations.StatusPending).Count(&pendingCount)

	stats.TotalRaised = donations.FromCents(totalCents)
	stats.RecentRaised = donations.FromCents(recentCents)
	stats.PaidCount = int(paidCount)
	stats.PendingCount = int(pendingCount)

	c.JSON(http.StatusOK, stats)
}
