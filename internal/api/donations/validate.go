package donationsapi

import (
	"errors"
	"regexp"
	"strings"

	"donation-app/internal/domain/donations"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type donationRequest struct {
	Name        string
	Email       string
	AmountCents int64
}

// validateDonation normalizes and checks a donation request. The returned
// error text is client-visible.
func validateDonation(name, email string, amount float64) (donationRequest, error) {
	req := donationRequest{
		Name:        strings.TrimSpace(name),
		Email:       strings.TrimSpace(email),
		AmountCents: donations.ToCents(amount),
	}

	if req.AmountCents < donations.MinAmountCents {
		return req, errors.New("Donation amount must be at least 0.50")
	}
	if req.Name == "" {
		return req, errors.New("Name is required")
	}
	if req.Email == "" {
		return req, errors.New("Email is required")
	}
	if !emailPattern.MatchString(req.Email) {
		return req, errors.New("Email is not a valid address")
	}

	return req, nil
}
