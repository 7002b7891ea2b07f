package account

import (
	"time"

	"github.com/dkazarev/techstore-service/internal/address"
	"github.com/dkazarev/techstore-service/internal/catalog"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:150;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:254;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:128" json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// Profile is the aggregation root for cart, orders, payments and favorites.
// Exactly one profile exists per user.
type Profile struct {
	ID     uint          `gorm:"primaryKey" json:"id"`
	UserID uint          `gorm:"uniqueIndex" json:"-"`
	User   User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	CityID *uint         `json:"city"`
	City   *address.City `gorm:"foreignKey:CityID;constraint:OnDelete:SET NULL" json:"-"`
}

type Session struct {
	Token     string    `gorm:"primaryKey;size:36" json:"-"`
	UserID    uint      `gorm:"index" json:"-"`
	ProfileID uint      `gorm:"index" json:"-"`
	ExpiresAt time.Time `json:"-"`
	CreatedAt time.Time `json:"-"`
}

type Payment struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ProfileID   uint    `gorm:"index" json:"-"`
	Profile     Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
	PaymentType string  `gorm:"size:50" json:"payment_type"`
	CardNumber  string  `gorm:"size:19" json:"card_number"`
	ExpiryDate  string  `gorm:"size:7" json:"expiry_date"`
}

// FavoriteProduct is the profile <-> product membership row.
type FavoriteProduct struct {
	ID        uint            `gorm:"primaryKey" json:"-"`
	ProfileID uint            `gorm:"uniqueIndex:idx_favorite_profile_product" json:"-"`
	ProductID uint            `gorm:"uniqueIndex:idx_favorite_profile_product" json:"-"`
	Product   catalog.Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

// ProfileView is the authenticated profile payload with favorites expanded.
type ProfileView struct {
	ID               uint              `json:"id"`
	Username         string            `json:"username"`
	Email            string            `json:"email"`
	City             *uint             `json:"city"`
	FavoriteProducts []catalog.Product `json:"favorite_products"`
}
