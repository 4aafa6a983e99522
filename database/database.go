package database

import (
    "log"
    "time"

    "rentadmin-go/models"
    "rentadmin-go/utils"

    "github.com/google/uuid"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    "gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
    db, err := gorm.Open(sqlite.Open(databaseURL), &gorm.Config{
        Logger: logger.Default.LogMode(logger.Warn),
    })
    if err != nil {
        return nil, err
    }

    // Auto-migrate models
    err = db.AutoMigrate(
        &models.AdminUser{},
        &models.Listing{},
        &models.AuditLog{},
    )
    if err != nil {
        return nil, err
    }

    return db, nil
}

// SeedAdmin ensures the configured administrator account exists.
func SeedAdmin(db *gorm.DB, username, email, password string) error {
    var existing models.AdminUser
    if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
        return nil
    } else if err != gorm.ErrRecordNotFound {
        return err
    }

    hashed, err := utils.HashPassword(password)
    if err != nil {
        return err
    }

    admin := models.AdminUser{
        ID:       uuid.New().String(),
        Username: username,
        Email:    email,
        Password: hashed,
        Role:     models.RoleAdmin,
    }
    if err := db.Create(&admin).Error; err != nil {
        return err
    }
    log.Printf("Seeded admin user: %s", username)
    return nil
}

// SeedTestListings inserts fixture submissions when the table is empty.
// Intended for development environments only.
func SeedTestListings(db *gorm.DB) error {
    var count int64
    if err := db.Model(&models.Listing{}).Count(&count).Error; err != nil {
        return err
    }
    if count > 0 {
        return nil
    }

    admin := "admin"
    now := time.Now()
    listings := []models.Listing{
        {
            ID:          uuid.New().String(),
            Title:       "Toyota Camry 2020 - Reliable and Comfortable",
            Description: "Well-maintained Toyota Camry with excellent fuel efficiency. Perfect for business trips or family vacations.",
            Brand:       "Toyota",
            Model:       "Camry",
            Year:        2020,
            PricePerDay: 45.00,
            Location:    "Downtown, San Francisco",
            ImageURL:    "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?w=500",
            Status:      models.StatusPending,
            SubmittedBy: "user123",
        },
        {
            ID:          uuid.New().String(),
            Title:       "Honda Civic 2019 - Sporty and Efficient",
            Description: "Clean Honda Civic with low mileage. Great for city driving and weekend getaways.",
            Brand:       "Honda",
            Model:       "Civic",
            Year:        2019,
            PricePerDay: 40.00,
            Location:    "Oakland, CA",
            ImageURL:    "https://images.unsplash.com/photo-1609521263047-f8f205293f24?w=500",
            Status:      models.StatusApproved,
            SubmittedBy: "user456",
            ReviewedBy:  &admin,
            ReviewedAt:  &now,
        },
        {
            ID:          uuid.New().String(),
            Title:       "BMW X3 2021 - Luxury SUV",
            Description: "Premium BMW X3 with all modern amenities. Perfect for special occasions and comfortable long drives.",
            Brand:       "BMW",
            Model:       "X3",
            Year:        2021,
            PricePerDay: 85.00,
            Location:    "Palo Alto, CA",
            ImageURL:    "https://images.unsplash.com/photo-1555215695-3004980ad54e?w=500",
            Status:      models.StatusPending,
            SubmittedBy: "user789",
        },
        {
            ID:          uuid.New().String(),
            Title:       "Ford Focus 2018 - Budget Friendly",
            Description: "Affordable Ford Focus in good condition. Ideal for budget-conscious travelers.",
            Brand:       "Ford",
            Model:       "Focus",
            Year:        2018,
            PricePerDay: 35.00,
            Location:    "San Jose, CA",
            ImageURL:    "https://images.unsplash.com/photo-1583121274602-3e2820c69888?w=500",
            Status:      models.StatusRejected,
            SubmittedBy: "user101",
            ReviewedBy:  &admin,
            ReviewedAt:  &now,
            RejectionReason: func() *string {
                s := "Vehicle does not meet safety standards"
                return &s
            }(),
        },
        {
            ID:          uuid.New().String(),
            Title:       "Tesla Model 3 2022 - Electric and Modern",
            Description: "Latest Tesla Model 3 with autopilot features. Eco-friendly option for tech enthusiasts.",
            Brand:       "Tesla",
            Model:       "Model 3",
            Year:        2022,
            PricePerDay: 95.00,
            Location:    "Fremont, CA",
            ImageURL:    "https://images.unsplash.com/photo-1560958089-b8a1929cea89?w=500",
            Status:      models.StatusPending,
            SubmittedBy: "user202",
        },
    }

    if err := db.Create(&listings).Error; err != nil {
        return err
    }
    log.Printf("Seeded %d test listings", len(listings))
    return nil
}
