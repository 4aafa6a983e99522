package repository

import (
    "encoding/json"
    "fmt"

    "rentadmin-go/models"

    "github.com/google/uuid"
    "gorm.io/gorm"
)

type AuditRepository struct {
    db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
    return &AuditRepository{db: db}
}

// Record appends one audit entry on the caller's transaction handle. Snapshots
// are serialized as JSON; a nil snapshot leaves the column NULL.
func (r *AuditRepository) Record(tx *gorm.DB, action, listingID, adminID, adminUsername string, previousData, newData interface{}, reason *string) error {
    entry := models.AuditLog{
        ID:            uuid.New().String(),
        Action:        action,
        ListingID:     listingID,
        AdminID:       adminID,
        AdminUsername: adminUsername,
        Reason:        reason,
    }

    if previousData != nil {
        raw, err := json.Marshal(previousData)
        if err != nil {
            return fmt.Errorf("failed to serialize previous data: %w", err)
        }
        entry.PreviousData = raw
    }
    if newData != nil {
        raw, err := json.Marshal(newData)
        if err != nil {
            return fmt.Errorf("failed to serialize new data: %w", err)
        }
        entry.NewData = raw
    }

    return tx.Create(&entry).Error
}

// History pages through the audit trail newest-first.
func (r *AuditRepository) History(page, limit int) ([]models.AuditLog, int64, error) {
    if page < 1 {
        page = 1
    }
    if limit <= 0 || limit > 100 {
        limit = 20
    }
    offset := (page - 1) * limit

    var total int64
    if err := r.db.Model(&models.AuditLog{}).Count(&total).Error; err != nil {
        return nil, 0, err
    }

    var logs []models.AuditLog
    if err := r.db.
        Order("created_at DESC, id DESC").
        Limit(limit).
        Offset(offset).
        Find(&logs).Error; err != nil {
        return nil, 0, err
    }

    return logs, total, nil
}

// CountForListing reports how many audit entries reference a listing.
func (r *AuditRepository) CountForListing(listingID string) (int64, error) {
    var count int64
    err := r.db.Model(&models.AuditLog{}).Where("listing_id = ?", listingID).Count(&count).Error
    return count, err
}
