package repository

import (
    "rentadmin-go/models"
    "rentadmin-go/utils"

    "gorm.io/gorm"
)

type UserRepository struct {
    db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
    return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(username string) (*models.AdminUser, error) {
    var user models.AdminUser
    if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
        if err == gorm.ErrRecordNotFound {
            return nil, nil
        }
        return nil, err
    }
    return &user, nil
}

func (r *UserRepository) FindByID(id string) (*models.AdminUser, error) {
    var user models.AdminUser
    if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
        if err == gorm.ErrRecordNotFound {
            return nil, nil
        }
        return nil, err
    }
    return &user, nil
}

// VerifyCredentials returns the user only when both lookup and password check
// succeed. A missing user and a wrong password are indistinguishable to the
// caller, which keeps usernames unenumerable.
func (r *UserRepository) VerifyCredentials(username, password string) (*models.AdminUser, error) {
    user, err := r.FindByUsername(username)
    if err != nil {
        return nil, err
    }
    if user == nil {
        return nil, nil
    }
    if !utils.CheckPasswordHash(password, user.Password) {
        return nil, nil
    }
    return user, nil
}

func (r *UserRepository) Create(user *models.AdminUser) error {
    return r.db.Create(user).Error
}
