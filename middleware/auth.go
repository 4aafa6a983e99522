package middleware

import (
    "context"
    "encoding/json"
    "log"
    "net/http"
    "strings"

    "rentadmin-go/utils"
)

type contextKey string

const UserContextKey contextKey = "user"

// AuthCookieName matches the cookie the dashboard frontend stores the session
// token in. The Authorization header takes precedence when both are present.
const AuthCookieName = "auth-token"

func extractToken(r *http.Request) string {
    authHeader := r.Header.Get("Authorization")
    if authHeader != "" {
        parts := strings.Split(authHeader, " ")
        if len(parts) == 2 && parts[0] == "Bearer" {
            return parts[1]
        }
        return ""
    }

    if cookie, err := r.Cookie(AuthCookieName); err == nil {
        return cookie.Value
    }
    return ""
}

func JWTAuth(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        token := extractToken(r)
        if token == "" {
            http.Error(w, "Authorization required", http.StatusUnauthorized)
            return
        }

        claims, err := utils.ValidateToken(token)
        if err != nil {
            log.Printf("Token validation failed for %s: %v", r.URL.Path, err)
            http.Error(w, "Invalid token", http.StatusUnauthorized)
            return
        }

        ctx := context.WithValue(r.Context(), UserContextKey, claims)
        next.ServeHTTP(w, r.WithContext(ctx))
    })
}

func AdminAuth(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        claims, ok := r.Context().Value(UserContextKey).(*utils.Claims)
        if !ok {
            w.Header().Set("Content-Type", "application/json")
            w.WriteHeader(http.StatusUnauthorized)
            json.NewEncoder(w).Encode(map[string]string{
                "error": "Unauthorized - No user context",
            })
            return
        }

        if !claims.IsAdmin() {
            log.Printf("User %s attempted to access admin endpoint %s without admin privileges",
                claims.UserID, r.URL.Path)
            w.Header().Set("Content-Type", "application/json")
            w.WriteHeader(http.StatusForbidden)
            json.NewEncoder(w).Encode(map[string]string{
                "error":   "Admin access required",
                "message": "This endpoint requires admin privileges",
            })
            return
        }

        next.ServeHTTP(w, r)
    })
}

func GetUserFromContext(r *http.Request) *utils.Claims {
    if claims, ok := r.Context().Value(UserContextKey).(*utils.Claims); ok {
        return claims
    }
    return nil
}
