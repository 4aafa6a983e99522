package services

import (
    "errors"
    "strings"

    "rentadmin-go/models"

    "gorm.io/gorm"
)

var (
    ErrListingNotFound = errors.New("listing not found")
    ErrAlreadyReviewed = errors.New("listing has already been reviewed")
    ErrReasonRequired  = errors.New("rejection reason is required")
    ErrNoFields        = errors.New("no fields to update")
)

// ListingStore is the slice of the listing repository the service needs.
type ListingStore interface {
    FindByID(id string) (*models.Listing, error)
    UpdateFields(tx *gorm.DB, id string, updates map[string]interface{}) (int64, error)
    TransitionStatus(tx *gorm.DB, id, status, reviewerID string, rejectionReason *string) (int64, error)
    SoftDelete(tx *gorm.DB, id string) (int64, error)
}

// AuditStore appends immutable action records.
type AuditStore interface {
    Record(tx *gorm.DB, action, listingID, adminID, adminUsername string, previousData, newData interface{}, reason *string) error
}

// ModerationService runs each approve/reject/edit/delete as a single database
// transaction covering both the listing mutation and the audit append, so a
// failed audit write rolls the mutation back instead of leaving the trail
// behind the data.
type ModerationService struct {
    db       *gorm.DB
    listings ListingStore
    audits   AuditStore
}

func NewModerationService(db *gorm.DB, listings ListingStore, audits AuditStore) *ModerationService {
    return &ModerationService{
        db:       db,
        listings: listings,
        audits:   audits,
    }
}

// Approve transitions a pending listing to approved.
func (s *ModerationService) Approve(listingID, adminID, adminUsername string) error {
    return s.review(listingID, models.StatusApproved, adminID, adminUsername, nil)
}

// Reject transitions a pending listing to rejected. The reason is mandatory.
func (s *ModerationService) Reject(listingID, adminID, adminUsername, reason string) error {
    reason = strings.TrimSpace(reason)
    if reason == "" {
        return ErrReasonRequired
    }
    return s.review(listingID, models.StatusRejected, adminID, adminUsername, &reason)
}

func (s *ModerationService) review(listingID, status, adminID, adminUsername string, reason *string) error {
    existing, err := s.listings.FindByID(listingID)
    if err != nil {
        return err
    }
    if existing == nil {
        return ErrListingNotFound
    }

    action := models.ActionApprove
    if status == models.StatusRejected {
        action = models.ActionReject
    }

    return s.db.Transaction(func(tx *gorm.DB) error {
        changed, err := s.listings.TransitionStatus(tx, listingID, status, adminID, reason)
        if err != nil {
            return err
        }
        if changed == 0 {
            // Listing exists but is no longer pending: a concurrent review won.
            return ErrAlreadyReviewed
        }

        var updated models.Listing
        if err := tx.Where("id = ?", listingID).First(&updated).Error; err != nil {
            return err
        }

        snapshot := models.ReviewSnapshot{
            Status:          status,
            ReviewedBy:      adminID,
            ReviewedAt:      *updated.ReviewedAt,
            RejectionReason: updated.RejectionReason,
        }
        return s.audits.Record(tx, action, listingID, adminID, adminUsername, existing, snapshot, reason)
    })
}

// Edit applies a partial field update and records the full prior listing
// alongside the submitted changes. Edits are allowed in any status.
func (s *ModerationService) Edit(listingID string, req *models.ListingUpdateRequest, adminID, adminUsername string) error {
    existing, err := s.listings.FindByID(listingID)
    if err != nil {
        return err
    }
    if existing == nil {
        return ErrListingNotFound
    }

    updates := req.Updates()
    if len(updates) == 0 {
        return ErrNoFields
    }

    return s.db.Transaction(func(tx *gorm.DB) error {
        changed, err := s.listings.UpdateFields(tx, listingID, updates)
        if err != nil {
            return err
        }
        if changed == 0 {
            return ErrListingNotFound
        }
        return s.audits.Record(tx, models.ActionEdit, listingID, adminID, adminUsername, existing, req, nil)
    })
}

// Delete soft-deletes a listing and records the action. The row stays in
// storage so audit entries keep a valid reference.
func (s *ModerationService) Delete(listingID, adminID, adminUsername string) error {
    existing, err := s.listings.FindByID(listingID)
    if err != nil {
        return err
    }
    if existing == nil {
        return ErrListingNotFound
    }

    return s.db.Transaction(func(tx *gorm.DB) error {
        changed, err := s.listings.SoftDelete(tx, listingID)
        if err != nil {
            return err
        }
        if changed == 0 {
            return ErrListingNotFound
        }
        return s.audits.Record(tx, models.ActionDelete, listingID, adminID, adminUsername, existing, nil, nil)
    })
}
