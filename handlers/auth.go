package handlers

import (
    "encoding/json"
    "log"
    "net/http"
    "time"

    "rentadmin-go/middleware"
    "rentadmin-go/models"
    "rentadmin-go/utils"
)

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
    var req models.LoginRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        sendError(w, http.StatusBadRequest, "Invalid request body", err.Error())
        return
    }

    if err := utils.ValidateStruct(req); err != nil {
        sendError(w, http.StatusBadRequest, "Validation failed", utils.FormatValidationError(err))
        return
    }

    user, err := h.users.VerifyCredentials(req.Username, req.Password)
    if err != nil {
        log.Printf("Database error during login for %s: %v", req.Username, err)
        sendError(w, http.StatusInternalServerError, "Database error", nil)
        return
    }

    // A missing user, a wrong password and a non-admin role all look the same
    // from outside.
    if user == nil || !user.IsAdmin() {
        log.Printf("Failed admin login attempt for username: %s", req.Username)
        sendError(w, http.StatusUnauthorized, "Invalid credentials or insufficient permissions", nil)
        return
    }

    token, err := utils.GenerateToken(user)
    if err != nil {
        log.Printf("Failed to generate token for user %s: %v", req.Username, err)
        sendError(w, http.StatusInternalServerError, "Failed to generate token", nil)
        return
    }

    http.SetCookie(w, &http.Cookie{
        Name:     middleware.AuthCookieName,
        Value:    token,
        Path:     "/",
        HttpOnly: true,
        Secure:   h.config.Environment == "production",
        SameSite: http.SameSiteStrictMode,
        MaxAge:   int((24 * time.Hour).Seconds()),
    })

    log.Printf("Admin login: %s", user.Username)

    sendJSON(w, http.StatusOK, models.LoginResponse{
        Token: token,
        User: models.AuthUser{
            ID:       user.ID,
            Username: user.Username,
            Email:    user.Email,
            Role:     user.Role,
        },
    })
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
    http.SetCookie(w, &http.Cookie{
        Name:     middleware.AuthCookieName,
        Value:    "",
        Path:     "/",
        HttpOnly: true,
        MaxAge:   -1,
    })
    sendJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Me returns the identity behind the presented token.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    if claims == nil {
        sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
        return
    }

    sendJSON(w, http.StatusOK, models.AuthUser{
        ID:       claims.UserID,
        Username: claims.Username,
        Email:    claims.Email,
        Role:     claims.Role,
    })
}
