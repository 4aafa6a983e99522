package services

import (
    "encoding/json"
    "errors"
    "fmt"
    "testing"
    "time"

    "rentadmin-go/models"
    "rentadmin-go/repository"

    "github.com/google/uuid"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
    t.Helper()
    dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
    db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
        Logger: logger.Default.LogMode(logger.Silent),
    })
    if err != nil {
        t.Fatalf("failed to open test database: %v", err)
    }
    if err := db.AutoMigrate(&models.AdminUser{}, &models.Listing{}, &models.AuditLog{}); err != nil {
        t.Fatalf("failed to migrate: %v", err)
    }
    return db
}

func newTestService(t *testing.T) (*ModerationService, *gorm.DB) {
    t.Helper()
    db := newTestDB(t)
    listings := repository.NewListingRepository(db)
    audits := repository.NewAuditRepository(db)
    return NewModerationService(db, listings, audits), db
}

func seedPending(t *testing.T, db *gorm.DB, brand, model string, price float64) models.Listing {
    t.Helper()
    listing := models.Listing{
        ID:          uuid.New().String(),
        Title:       fmt.Sprintf("%s %s for rent", brand, model),
        Description: "test description",
        Brand:       brand,
        Model:       model,
        Year:        2020,
        PricePerDay: price,
        Location:    "San Francisco",
        Status:      models.StatusPending,
        SubmittedBy: "user123",
        SubmittedAt: time.Now(),
    }
    if err := db.Create(&listing).Error; err != nil {
        t.Fatalf("failed to seed listing: %v", err)
    }
    return listing
}

func auditCount(t *testing.T, db *gorm.DB) int64 {
    t.Helper()
    var count int64
    if err := db.Model(&models.AuditLog{}).Count(&count).Error; err != nil {
        t.Fatalf("failed to count audit logs: %v", err)
    }
    return count
}

func TestApprove(t *testing.T) {
    svc, db := newTestService(t)
    listing := seedPending(t, db, "Honda", "Civic", 40)

    if err := svc.Approve(listing.ID, "admin-1", "admin"); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }

    var updated models.Listing
    if err := db.First(&updated, "id = ?", listing.ID).Error; err != nil {
        t.Fatalf("failed to reload listing: %v", err)
    }
    if updated.Status != models.StatusApproved {
        t.Errorf("expected approved, got %s", updated.Status)
    }
    if updated.RejectionReason != nil {
        t.Errorf("expected no rejection reason, got %v", *updated.RejectionReason)
    }
    if updated.ReviewedBy == nil || *updated.ReviewedBy != "admin-1" {
        t.Errorf("expected reviewed_by admin-1, got %v", updated.ReviewedBy)
    }
    if updated.ReviewedAt == nil {
        t.Error("expected reviewed_at to be set")
    }

    var entry models.AuditLog
    if err := db.First(&entry, "listing_id = ?", listing.ID).Error; err != nil {
        t.Fatalf("expected audit entry: %v", err)
    }
    if entry.Action != models.ActionApprove {
        t.Errorf("expected approve action, got %s", entry.Action)
    }

    var prev models.Listing
    if err := json.Unmarshal(entry.PreviousData, &prev); err != nil {
        t.Fatalf("failed to decode previous data: %v", err)
    }
    if prev.Status != models.StatusPending {
        t.Errorf("previous data should show pending status, got %s", prev.Status)
    }
}

func TestApproveMissingListing(t *testing.T) {
    svc, db := newTestService(t)

    err := svc.Approve("no-such-id", "admin-1", "admin")
    if !errors.Is(err, ErrListingNotFound) {
        t.Fatalf("expected ErrListingNotFound, got %v", err)
    }
    if n := auditCount(t, db); n != 0 {
        t.Errorf("expected no audit entries, got %d", n)
    }
}

func TestApproveTwiceConflicts(t *testing.T) {
    svc, db := newTestService(t)
    listing := seedPending(t, db, "Honda", "Civic", 40)

    if err := svc.Approve(listing.ID, "admin-1", "admin"); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    err := svc.Approve(listing.ID, "admin-2", "other")
    if !errors.Is(err, ErrAlreadyReviewed) {
        t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
    }
    // The losing review leaves no audit entry behind.
    if n := auditCount(t, db); n != 1 {
        t.Errorf("expected exactly one audit entry, got %d", n)
    }
}

func TestReject(t *testing.T) {
    svc, db := newTestService(t)
    listing := seedPending(t, db, "Toyota", "Camry", 45)

    if err := svc.Reject(listing.ID, "admin-1", "admin", "Insufficient photos"); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }

    var updated models.Listing
    if err := db.First(&updated, "id = ?", listing.ID).Error; err != nil {
        t.Fatalf("failed to reload listing: %v", err)
    }
    if updated.Status != models.StatusRejected {
        t.Errorf("expected rejected, got %s", updated.Status)
    }
    if updated.RejectionReason == nil || *updated.RejectionReason != "Insufficient photos" {
        t.Errorf("expected rejection reason, got %v", updated.RejectionReason)
    }

    var entry models.AuditLog
    if err := db.First(&entry, "listing_id = ?", listing.ID).Error; err != nil {
        t.Fatalf("expected audit entry: %v", err)
    }
    if entry.Action != models.ActionReject {
        t.Errorf("expected reject action, got %s", entry.Action)
    }
    if entry.Reason == nil || *entry.Reason != "Insufficient photos" {
        t.Errorf("expected audit reason, got %v", entry.Reason)
    }
}

func TestRejectRequiresReason(t *testing.T) {
    svc, db := newTestService(t)
    listing := seedPending(t, db, "Toyota", "Camry", 45)

    for _, reason := range []string{"", "   "} {
        err := svc.Reject(listing.ID, "admin-1", "admin", reason)
        if !errors.Is(err, ErrReasonRequired) {
            t.Fatalf("reason=%q: expected ErrReasonRequired, got %v", reason, err)
        }
    }

    var updated models.Listing
    if err := db.First(&updated, "id = ?", listing.ID).Error; err != nil {
        t.Fatalf("failed to reload listing: %v", err)
    }
    if updated.Status != models.StatusPending {
        t.Errorf("listing should stay pending, got %s", updated.Status)
    }
    if n := auditCount(t, db); n != 0 {
        t.Errorf("expected no audit entries, got %d", n)
    }
}

func TestEditPartialFields(t *testing.T) {
    svc, db := newTestService(t)
    listing := seedPending(t, db, "Toyota", "Camry", 45)

    title := "Updated title"
    price := 0.0
    req := &models.ListingUpdateRequest{Title: &title, PricePerDay: &price}

    if err := svc.Edit(listing.ID, req, "admin-1", "admin"); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }

    var updated models.Listing
    if err := db.First(&updated, "id = ?", listing.ID).Error; err != nil {
        t.Fatalf("failed to reload listing: %v", err)
    }
    if updated.Title != title {
        t.Errorf("expected updated title, got %s", updated.Title)
    }
    if updated.PricePerDay != 0 {
        t.Errorf("a supplied zero price is applied, got %f", updated.PricePerDay)
    }
    if updated.Brand != "Toyota" || updated.Model != "Camry" {
        t.Errorf("untouched fields changed: %+v", updated)
    }

    var entry models.AuditLog
    if err := db.First(&entry, "listing_id = ?", listing.ID).Error; err != nil {
        t.Fatalf("expected audit entry: %v", err)
    }
    if entry.Action != models.ActionEdit {
        t.Errorf("expected edit action, got %s", entry.Action)
    }

    var newData models.ListingUpdateRequest
    if err := json.Unmarshal(entry.NewData, &newData); err != nil {
        t.Fatalf("failed to decode new data: %v", err)
    }
    if newData.Title == nil || *newData.Title != title {
        t.Errorf("new data should carry the submitted partial, got %+v", newData)
    }
    if newData.Brand != nil {
        t.Errorf("new data should omit unsubmitted fields, got brand %v", *newData.Brand)
    }
}

func TestEditIsIdempotentOnStateButAppendsAudit(t *testing.T) {
    svc, db := newTestService(t)
    listing := seedPending(t, db, "Toyota", "Camry", 45)

    title := "Same title"
    req := &models.ListingUpdateRequest{Title: &title}

    if err := svc.Edit(listing.ID, req, "admin-1", "admin"); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if err := svc.Edit(listing.ID, req, "admin-1", "admin"); err != nil {
        t.Fatalf("unexpected error on re-apply: %v", err)
    }

    if n := auditCount(t, db); n != 2 {
        t.Errorf("expected 2 audit entries for repeated edit, got %d", n)
    }
}

func TestEditNoFields(t *testing.T) {
    svc, db := newTestService(t)
    listing := seedPending(t, db, "Toyota", "Camry", 45)

    err := svc.Edit(listing.ID, &models.ListingUpdateRequest{}, "admin-1", "admin")
    if !errors.Is(err, ErrNoFields) {
        t.Fatalf("expected ErrNoFields, got %v", err)
    }
    if n := auditCount(t, db); n != 0 {
        t.Errorf("expected no audit entries, got %d", n)
    }
}

func TestDelete(t *testing.T) {
    svc, db := newTestService(t)
    listing := seedPending(t, db, "Tesla", "Model 3", 95)

    if err := svc.Delete(listing.ID, "admin-1", "admin"); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }

    var count int64
    db.Model(&models.Listing{}).Where("id = ?", listing.ID).Count(&count)
    if count != 0 {
        t.Errorf("expected listing hidden after delete")
    }

    var entry models.AuditLog
    if err := db.First(&entry, "listing_id = ?", listing.ID).Error; err != nil {
        t.Fatalf("expected audit entry: %v", err)
    }
    if entry.Action != models.ActionDelete {
        t.Errorf("expected delete action, got %s", entry.Action)
    }
}

// failingAuditStore simulates an audit insert failure after the mutation.
type failingAuditStore struct{}

func (failingAuditStore) Record(tx *gorm.DB, action, listingID, adminID, adminUsername string, previousData, newData interface{}, reason *string) error {
    return errors.New("audit insert failed")
}

func TestAuditFailureRollsBackMutation(t *testing.T) {
    db := newTestDB(t)
    listings := repository.NewListingRepository(db)
    svc := NewModerationService(db, listings, failingAuditStore{})
    listing := seedPending(t, db, "Honda", "Civic", 40)

    err := svc.Approve(listing.ID, "admin-1", "admin")
    if err == nil {
        t.Fatal("expected error from failing audit store")
    }

    var updated models.Listing
    if err := db.First(&updated, "id = ?", listing.ID).Error; err != nil {
        t.Fatalf("failed to reload listing: %v", err)
    }
    if updated.Status != models.StatusPending {
        t.Errorf("mutation should roll back with the audit write, got status %s", updated.Status)
    }
}
