package order

import (
	"time"

	"github.com/dkazarev/techstore-service/internal/account"
	"github.com/dkazarev/techstore-service/internal/address"
	"github.com/dkazarev/techstore-service/internal/catalog"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCanceled  Status = "canceled"
)

// Order is an immutable checkout record. Address and payment linkage never
// changes after creation; status transitions past pending belong to the
// admin surface.
type Order struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ProfileID uint            `gorm:"index" json:"-"`
	Status    Status          `gorm:"size:20;index" json:"status"`
	AddressID uint            `json:"-"`
	Address   address.Address `gorm:"foreignKey:AddressID;constraint:OnDelete:CASCADE" json:"address"`
	PaymentID uint            `json:"-"`
	Payment   account.Payment `gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE" json:"payment"`
	Items     []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time       `json:"created"`
	UpdatedAt time.Time       `json:"updated"`
}

// OrderItem keeps the product price as it was at checkout. The snapshot is
// never re-read from the catalog.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index" json:"-"`
	ProductID uint            `gorm:"index" json:"product"`
	Product   catalog.Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Price     float64         `json:"price"`
	Quantity  int             `json:"quantity"`
}
