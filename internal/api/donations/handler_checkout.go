package donationsapi

import (
	"fmt"
	"net/http"
	"os"

	"donation-app/config"
	"donation-app/database"
	"donation-app/internal/domain/donations"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

func CreateCheckoutSession(c *gin.Context) {
	var body struct {
		Amount float64 `json:"amount"`
		Name   string  `json:"name"`
		Email  string  `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	req, err := validateDonation(body.Name, body.Email, body.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	// Insert first so the donation survives a crash mid-flow. The session
	// column is unique, so the placeholder has to be unique too until the
	// real session id replaces it.
	payment := donations.Payment{
		Name:            req.Name,
		Email:           req.Email,
		AmountCents:     req.AmountCents,
		Currency:        donations.DefaultCurrency,
		Status:          donations.StatusPending,
		StripeSessionID: "pending_" + uuid.NewString(),
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record donation"})
		return
	}

	appURL := config.APP_URL
	if appURL == "" {
		appURL = "http://localhost:3000"
	}

	params := &stripe.CheckoutSessionParams{
		SuccessURL:         stripe.String(appURL + "/success"),
		CancelURL:          stripe.String(appURL + "/cancel"),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(donations.DefaultCurrency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Donation"),
					},
					UnitAmount: stripe.Int64(req.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},

		ClientReferenceID: stripe.String(fmt.Sprint(payment.ID)),

		Metadata: map[string]string{
			"name":  req.Name,
			"email": req.Email,
		},
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		// The pending row stays behind as an orphan; /admin/donations
		// surfaces it.
		fmt.Println("❌ Error creating Stripe checkout session:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	if err := database.DB.Model(&donations.Payment{}).
		Where("id = ?", payment.ID).
		Update("stripe_session_id", s.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record donation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}
