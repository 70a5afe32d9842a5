package donationsapi

import (
	"time"

	"donation-app/internal/domain/donations"
)

type DonorDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListDonationsResponse struct {
	Donors     []DonorDTO `json:"donors"`
	Total      float64    `json:"total"`
	Count      int64      `json:"count"`
	Page       int        `json:"page"`
	TotalPages int        `json:"totalPages"`
}

func toDonorDTO(p donations.Payment) DonorDTO {
	return DonorDTO{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Amount:    donations.FromCents(p.AmountCents),
		Currency:  p.Currency,
		CreatedAt: p.CreatedAt,
	}
}
