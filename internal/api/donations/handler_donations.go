package donationsapi

import (
	"net/http"
	"strconv"

	"donation-app/database"
	"donation-app/internal/domain/donations"

	"github.com/gin-gonic/gin"
)

// GET /donations?page=&limit=
//
// The page slice, the count and the sum are three independent reads; under
// concurrent finalization they can reflect slightly different snapshots,
// which is fine for a donation board.
func ListDonations(c *gin.Context) {
	page := positiveIntQuery(c, "page", 1)
	limit := positiveIntQuery(c, "limit", 10)
	offset := (page - 1) * limit

	var payments []donations.Payment
	if err := database.DB.
		Where("status = ?", donations.StatusPaid).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donations"})
		return
	}

	var count int64
	if err := database.DB.Model(&donations.Payment{}).
		Where("status = ?", donations.StatusPaid).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donations"})
		return
	}

	var totalCents int64
	if err := database.DB.Model(&donations.Payment{}).
		Where("status = ?", donations.StatusPaid).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&totalCents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donations"})
		return
	}

	donors := make([]DonorDTO, 0, len(payments))
	for _, p := range payments {
		donors = append(donors, toDonorDTO(p))
	}

	totalPages := int((count + int64(limit) - 1) / int64(limit))

	c.JSON(http.StatusOK, ListDonationsResponse{
		Donors:     donors,
		Total:      donations.FromCents(totalCents),
		Count:      count,
		Page:       page,
		TotalPages: totalPages,
	})
}

// positiveIntQuery falls back for absent, non-numeric, and non-positive
// values alike.
func positiveIntQuery(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
