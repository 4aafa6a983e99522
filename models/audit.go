package models

import (
    "encoding/json"
    "time"
)

const (
    ActionApprove = "approve"
    ActionReject  = "reject"
    ActionEdit    = "edit"
    ActionDelete  = "delete"
)

// AuditLog is one immutable record of an administrative action. Rows are
// append-only: nothing in the codebase updates or deletes them.
type AuditLog struct {
    ID            string          `json:"id" gorm:"primaryKey"`
    Action        string          `json:"action" gorm:"not null"` // approve, reject, edit, delete
    ListingID     string          `json:"listing_id" gorm:"not null;index"`
    AdminID       string          `json:"admin_id" gorm:"not null"`
    AdminUsername string          `json:"admin_username" gorm:"not null"`
    PreviousData  json.RawMessage `json:"previous_data,omitempty" gorm:"type:text"`
    NewData       json.RawMessage `json:"new_data,omitempty" gorm:"type:text"`
    Reason        *string         `json:"reason,omitempty"`
    CreatedAt     time.Time       `json:"timestamp" gorm:"index"`
}

// ReviewSnapshot is the new-data shape recorded for approve/reject actions:
// only the fields the transition touched.
type ReviewSnapshot struct {
    Status          string    `json:"status"`
    ReviewedBy      string    `json:"reviewed_by"`
    ReviewedAt      time.Time `json:"reviewed_at"`
    RejectionReason *string   `json:"rejection_reason,omitempty"`
}

type AuditPage struct {
    Logs  []AuditLog `json:"logs"`
    Total int64      `json:"total"`
    Page  int        `json:"page"`
    Limit int        `json:"limit"`
}
