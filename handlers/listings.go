package handlers

import (
    "encoding/json"
    "errors"
    "log"
    "net/http"
    "strconv"

    "github.com/gorilla/mux"

    "rentadmin-go/middleware"
    "rentadmin-go/models"
    "rentadmin-go/services"
    "rentadmin-go/utils"
)

func pageParams(r *http.Request, defaultLimit int) (int, int) {
    page, _ := strconv.Atoi(r.URL.Query().Get("page"))
    if page <= 0 {
        page = 1
    }
    limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
    if limit <= 0 || limit > 100 {
        limit = defaultLimit
    }
    return page, limit
}

func validStatusFilter(status string) bool {
    switch status {
    case "", "all", models.StatusPending, models.StatusApproved, models.StatusRejected:
        return true
    }
    return false
}

func (h *Handlers) GetListings(w http.ResponseWriter, r *http.Request) {
    page, limit := pageParams(r, 10)

    status := r.URL.Query().Get("status")
    if !validStatusFilter(status) {
        sendError(w, http.StatusBadRequest, "Invalid status filter", map[string]string{
            "status": "must be one of: pending, approved, rejected, all",
        })
        return
    }

    params := models.SearchParams{
        Page:   page,
        Limit:  limit,
        Status: status,
        Search: utils.SanitizeString(r.URL.Query().Get("search")),
    }

    listings, total, err := h.listings.Search(params)
    if err != nil {
        sendError(w, http.StatusInternalServerError, "Failed to fetch listings", err.Error())
        return
    }

    sendJSON(w, http.StatusOK, models.ListingPage{
        Listings: listings,
        Total:    total,
        Page:     page,
        Limit:    limit,
    })
}

func (h *Handlers) GetListing(w http.ResponseWriter, r *http.Request) {
    id := mux.Vars(r)["id"]

    listing, err := h.listings.FindByID(id)
    if err != nil {
        sendError(w, http.StatusInternalServerError, "Database error", err.Error())
        return
    }
    if listing == nil {
        sendError(w, http.StatusNotFound, "Listing not found", nil)
        return
    }

    sendJSON(w, http.StatusOK, listing)
}

// moderationError maps service sentinels onto HTTP statuses.
func moderationError(w http.ResponseWriter, err error) {
    switch {
    case errors.Is(err, services.ErrListingNotFound):
        sendError(w, http.StatusNotFound, "Listing not found", nil)
    case errors.Is(err, services.ErrAlreadyReviewed):
        sendError(w, http.StatusConflict, "Listing has already been reviewed", nil)
    case errors.Is(err, services.ErrReasonRequired):
        sendError(w, http.StatusBadRequest, "Rejection reason is required", nil)
    case errors.Is(err, services.ErrNoFields):
        sendError(w, http.StatusBadRequest, "No fields to update", nil)
    default:
        sendError(w, http.StatusInternalServerError, "Internal server error", err.Error())
    }
}

func (h *Handlers) ApproveListing(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    if claims == nil {
        sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
        return
    }

    id := mux.Vars(r)["id"]
    if err := h.moderation.Approve(id, claims.UserID, claims.Username); err != nil {
        moderationError(w, err)
        return
    }

    log.Printf("Listing %s approved by %s", id, claims.Username)
    sendJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *Handlers) RejectListing(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    if claims == nil {
        sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
        return
    }

    var req models.RejectRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        sendError(w, http.StatusBadRequest, "Invalid request body", err.Error())
        return
    }
    if err := utils.ValidateStruct(req); err != nil {
        sendError(w, http.StatusBadRequest, "Validation failed", utils.FormatValidationError(err))
        return
    }

    id := mux.Vars(r)["id"]
    if err := h.moderation.Reject(id, claims.UserID, claims.Username, req.Reason); err != nil {
        moderationError(w, err)
        return
    }

    log.Printf("Listing %s rejected by %s", id, claims.Username)
    sendJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *Handlers) UpdateListing(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    if claims == nil {
        sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
        return
    }

    var req models.ListingUpdateRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        sendError(w, http.StatusBadRequest, "Invalid request body", err.Error())
        return
    }
    if err := utils.ValidateStruct(req); err != nil {
        sendError(w, http.StatusBadRequest, "Validation failed", utils.FormatValidationError(err))
        return
    }

    id := mux.Vars(r)["id"]
    if err := h.moderation.Edit(id, &req, claims.UserID, claims.Username); err != nil {
        moderationError(w, err)
        return
    }

    log.Printf("Listing %s edited by %s", id, claims.Username)
    sendJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *Handlers) DeleteListing(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    if claims == nil {
        sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
        return
    }

    id := mux.Vars(r)["id"]
    if err := h.moderation.Delete(id, claims.UserID, claims.Username); err != nil {
        moderationError(w, err)
        return
    }

    log.Printf("Listing %s deleted by %s", id, claims.Username)
    sendJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
