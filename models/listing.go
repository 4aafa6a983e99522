package models

import (
    "time"

    "gorm.io/gorm"
)

const (
    StatusPending  = "pending"
    StatusApproved = "approved"
    StatusRejected = "rejected"
)

type Listing struct {
    ID              string         `json:"id" gorm:"primaryKey"`
    Title           string         `json:"title" gorm:"not null"`
    Description     string         `json:"description" gorm:"not null"`
    Brand           string         `json:"brand" gorm:"not null"`
    Model           string         `json:"model" gorm:"not null"`
    Year            int            `json:"year" gorm:"not null"`
    PricePerDay     float64        `json:"price_per_day" gorm:"not null"`
    Location        string         `json:"location" gorm:"not null"`
    ImageURL        string         `json:"image_url"`
    Status          string         `json:"status" gorm:"not null;default:pending;index"` // pending, approved, rejected
    SubmittedBy     string         `json:"submitted_by" gorm:"not null"`
    SubmittedAt     time.Time      `json:"submitted_at" gorm:"autoCreateTime;index"`
    ReviewedBy      *string        `json:"reviewed_by,omitempty"`
    ReviewedAt      *time.Time     `json:"reviewed_at,omitempty"`
    RejectionReason *string        `json:"rejection_reason,omitempty"`
    DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// ListingUpdateRequest carries a partial edit. Pointer fields distinguish
// "not supplied" from a supplied zero value, so an admin can set a price of 0
// or clear the image URL.
type ListingUpdateRequest struct {
    Title       *string  `json:"title,omitempty" validate:"omitempty,min=1"`
    Description *string  `json:"description,omitempty" validate:"omitempty,min=1"`
    Brand       *string  `json:"brand,omitempty" validate:"omitempty,min=1"`
    Model       *string  `json:"model,omitempty" validate:"omitempty,min=1"`
    Year        *int     `json:"year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
    PricePerDay *float64 `json:"price_per_day,omitempty" validate:"omitempty,gte=0"`
    Location    *string  `json:"location,omitempty" validate:"omitempty,min=1"`
    ImageURL    *string  `json:"image_url,omitempty"`
}

// Updates flattens the supplied fields into a column/value map for the
// repository. An empty map means the request carried no recognized field.
func (r *ListingUpdateRequest) Updates() map[string]interface{} {
    updates := make(map[string]interface{})
    if r.Title != nil {
        updates["title"] = *r.Title
    }
    if r.Description != nil {
        updates["description"] = *r.Description
    }
    if r.Brand != nil {
        updates["brand"] = *r.Brand
    }
    if r.Model != nil {
        updates["model"] = *r.Model
    }
    if r.Year != nil {
        updates["year"] = *r.Year
    }
    if r.PricePerDay != nil {
        updates["price_per_day"] = *r.PricePerDay
    }
    if r.Location != nil {
        updates["location"] = *r.Location
    }
    if r.ImageURL != nil {
        updates["image_url"] = *r.ImageURL
    }
    return updates
}

type RejectRequest struct {
    Reason string `json:"reason" validate:"required,min=1"`
}

// SearchParams filters and pages the listing index.
type SearchParams struct {
    Page   int
    Limit  int
    Status string // pending, approved, rejected or "all"/empty for no filter
    Search string // case-insensitive substring over title/brand/model/location
}

type ListingPage struct {
    Listings []Listing `json:"listings"`
    Total    int64     `json:"total"`
    Page     int       `json:"page"`
    Limit    int       `json:"limit"`
}
