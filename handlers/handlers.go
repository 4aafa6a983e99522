package handlers

import (
    "encoding/json"
    "net/http"
    "time"

    "gorm.io/gorm"

    "rentadmin-go/config"
    "rentadmin-go/repository"
    "rentadmin-go/services"
)

// ErrorResponse is the standardized error envelope every handler emits.
type ErrorResponse struct {
    Status    int         `json:"status"`
    Error     string      `json:"error"`
    Details   interface{} `json:"details,omitempty"`
    Timestamp time.Time   `json:"timestamp"`
}

func sendError(w http.ResponseWriter, status int, err string, details interface{}) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(ErrorResponse{
        Status:    status,
        Error:     err,
        Details:   details,
        Timestamp: time.Now(),
    })
}

func sendJSON(w http.ResponseWriter, status int, payload interface{}) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(payload)
}

type Handlers struct {
    db         *gorm.DB
    config     *config.Config
    users      *repository.UserRepository
    listings   *repository.ListingRepository
    audits     *repository.AuditRepository
    moderation *services.ModerationService
}

func NewHandlers(db *gorm.DB, cfg *config.Config) *Handlers {
    listings := repository.NewListingRepository(db)
    audits := repository.NewAuditRepository(db)
    return &Handlers{
        db:         db,
        config:     cfg,
        users:      repository.NewUserRepository(db),
        listings:   listings,
        audits:     audits,
        moderation: services.NewModerationService(db, listings, audits),
    }
}

func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
    sendJSON(w, http.StatusOK, map[string]interface{}{
        "status":    "healthy",
        "timestamp": time.Now(),
        "service":   "RentAdminGo",
        "version":   "1.0.0",
    })
}
