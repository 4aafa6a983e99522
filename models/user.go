package models

import (
    "time"

    "gorm.io/gorm"
)

const (
    RoleAdmin = "admin"
    RoleUser  = "user"
)

type AdminUser struct {
    ID        string         `json:"id" gorm:"primaryKey"`
    Username  string         `json:"username" gorm:"uniqueIndex;not null"`
    Email     string         `json:"email" gorm:"uniqueIndex;not null"`
    Password  string         `json:"-" gorm:"not null"`
    Role      string         `json:"role" gorm:"not null;default:user"` // admin, user
    CreatedAt time.Time      `json:"created_at"`
    UpdatedAt time.Time      `json:"updated_at"`
    DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (AdminUser) TableName() string {
    return "users"
}

func (u *AdminUser) IsAdmin() bool {
    return u.Role == RoleAdmin
}

type LoginRequest struct {
    Username string `json:"username" validate:"required,min=2"`
    Password string `json:"password" validate:"required"`
}

// AuthUser is the identity encoded into the session token, password omitted.
type AuthUser struct {
    ID       string `json:"id"`
    Username string `json:"username"`
    Email    string `json:"email"`
    Role     string `json:"role"`
}

type LoginResponse struct {
    Token string   `json:"token"`
    User  AuthUser `json:"user"`
}
