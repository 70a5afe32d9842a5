package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"donation-app/database"
	"donation-app/internal/domain/donations"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&donations.Payment{}); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}
	database.DB = db
}

func seed(t *testing.T, status string, amountCents int64, createdAt time.Time) {
	t.Helper()

	p := donations.Payment{
		Name:            "donor",
		Email:           "donor@example.com",
		AmountCents:     amountCents,
		Currency:        donations.DefaultCurrency,
		Status:          status,
		StripeSessionID: fmt.Sprintf("cs_test_%d_%d", amountCents, createdAt.UnixNano()),
		CreatedAt:       createdAt,
	}
	if err := database.DB.Create(&p).Error; err != nil {
		t.Fatalf("Failed to seed payment: %v", err)
	}
}

func TestAdminDashboard(t *testing.T) {
	setupTestDB(t)
	now := time.Now()
	seed(t, donations.StatusPaid, 2500, now)
	seed(t, donations.StatusPaid, 1000, now.AddDate(0, 0, -40))
	seed(t, donations.StatusPending, 500, now)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/dashboard", AdminDashboard)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var stats AdminStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("Failed to decode stats: %v", err)
	}

	if stats.TotalRaised != 35.00 {
		t.Errorf("Expected total_raised 35.00, got %v", stats.TotalRaised)
	}
	if stats.RecentRaised != 25.00 {
		t.Errorf("Expected recent_raised 25.00, got %v", stats.RecentRaised)
	}
	if stats.PaidCount != 2 {
		t.Errorf("Expected paid_count 2, got %d", stats.PaidCount)
	}
	if stats.PendingCount != 1 {
		t.Errorf("Expected pending_count 1, got %d", stats.PendingCount)
	}
}

func TestListAllDonations_IncludesPendingOrphans(t *testing.T) {
	setupTestDB(t)
	now := time.Now()
	seed(t, donations.StatusPaid, 2500, now)
	seed(t, donations.StatusPending, 1000, now.Add(time.Second))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/donations", ListAllDonations)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/donations", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var result []AdminDonation
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode list: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("Expected both records, got %d", len(result))
	}
	if result[0].Status != donations.StatusPending {
		t.Errorf("Expected the newest (pending) record first, got status %s", result[0].Status)
	}
	if result[0].StripeSessionID == "" {
		t.Error("Expected session id to be exposed to admins")
	}
}
