package catalog

import "time"

type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:200;index" json:"name"`
	Slug        string `gorm:"size:200;uniqueIndex" json:"slug"`
	Description string `json:"description"`
}

type Product struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CategoryID   uint      `gorm:"index" json:"-"`
	Category     Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Name         string    `gorm:"size:200;index" json:"name"`
	Slug         string    `gorm:"size:200;index" json:"slug"`
	Manufacturer string    `gorm:"size:200" json:"manufacturer"`
	ReleaseYear  int       `json:"release_year"`
	Description  string    `json:"description"`
	Price        float64   `gorm:"check:price >= 0" json:"price"`
	Stock        int       `json:"stock"`
	Available    bool      `gorm:"default:true" json:"available"`
	CreatedAt    time.Time `json:"created"`
	UpdatedAt    time.Time `json:"updated"`
}

// Review holds one opinion per profile per product, enforced both by an
// explicit pre-insert check and a composite unique index.
type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"index;uniqueIndex:idx_review_product_profile" json:"product"`
	Product   Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	ProfileID uint      `gorm:"uniqueIndex:idx_review_product_profile" json:"profile"`
	Rating    int       `gorm:"check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// ReviewView is the read shape for listing, with the author's username
// joined in from the users table.
type ReviewView struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"product"`
	ProfileID uint      `json:"profile"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// ProductFilter carries the optional conjunctive filters of the category
// listing. Nil pointers and empty slices mean "not supplied".
type ProductFilter struct {
	MinPrice      *float64
	MaxPrice      *float64
	Manufacturers []string
	MinYear       *int
	MaxYear       *int
}
