package repository

import (
    "time"

    "rentadmin-go/models"

    "gorm.io/gorm"
)

type ListingRepository struct {
    db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
    return &ListingRepository{db: db}
}

// FindByID returns nil without error when no listing matches.
func (r *ListingRepository) FindByID(id string) (*models.Listing, error) {
    var listing models.Listing
    if err := r.db.Where("id = ?", id).First(&listing).Error; err != nil {
        if err == gorm.ErrRecordNotFound {
            return nil, nil
        }
        return nil, err
    }
    return &listing, nil
}

// Search pages through listings newest-first. The total comes from a separate
// count query, so it is not transactionally consistent with the page fetch.
func (r *ListingRepository) Search(params models.SearchParams) ([]models.Listing, int64, error) {
    page := params.Page
    if page < 1 {
        page = 1
    }
    limit := params.Limit
    if limit <= 0 || limit > 100 {
        limit = 10
    }
    offset := (page - 1) * limit

    query := r.db.Model(&models.Listing{})

    if params.Status != "" && params.Status != "all" {
        query = query.Where("status = ?", params.Status)
    }

    if params.Search != "" {
        pattern := "%" + params.Search + "%"
        query = query.Where(
            "LOWER(title) LIKE LOWER(?) OR LOWER(brand) LIKE LOWER(?) OR LOWER(model) LIKE LOWER(?) OR LOWER(location) LIKE LOWER(?)",
            pattern, pattern, pattern, pattern,
        )
    }

    var total int64
    if err := query.Count(&total).Error; err != nil {
        return nil, 0, err
    }

    var listings []models.Listing
    if err := query.
        Order("submitted_at DESC").
        Limit(limit).
        Offset(offset).
        Find(&listings).Error; err != nil {
        return nil, 0, err
    }

    return listings, total, nil
}

// UpdateFields applies the supplied columns and reports how many rows changed.
// Callers pass only fields the admin actually submitted.
func (r *ListingRepository) UpdateFields(tx *gorm.DB, id string, updates map[string]interface{}) (int64, error) {
    if len(updates) == 0 {
        return 0, nil
    }
    result := tx.Model(&models.Listing{}).Where("id = ?", id).Updates(updates)
    return result.RowsAffected, result.Error
}

// TransitionStatus moves a pending listing to approved or rejected. The WHERE
// clause conditions on the current status, so concurrent reviews of the same
// listing cannot both win: the loser affects zero rows.
func (r *ListingRepository) TransitionStatus(tx *gorm.DB, id, status, reviewerID string, rejectionReason *string) (int64, error) {
    now := time.Now()
    updates := map[string]interface{}{
        "status":           status,
        "reviewed_by":      reviewerID,
        "reviewed_at":      now,
        "rejection_reason": nil,
    }
    if status == models.StatusRejected {
        updates["rejection_reason"] = rejectionReason
    }

    result := tx.Model(&models.Listing{}).
        Where("id = ? AND status = ?", id, models.StatusPending).
        Updates(updates)
    return result.RowsAffected, result.Error
}

// SoftDelete hides the listing from every query while keeping the row for the
// audit trail.
func (r *ListingRepository) SoftDelete(tx *gorm.DB, id string) (int64, error) {
    result := tx.Where("id = ?", id).Delete(&models.Listing{})
    return result.RowsAffected, result.Error
}
