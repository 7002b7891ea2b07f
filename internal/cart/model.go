package cart

import (
	"time"

	"github.com/dkazarev/techstore-service/internal/catalog"
)

// Cart is created together with the profile and lives for the whole account
// lifetime; checkout only drains its items.
type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	ProfileID uint       `gorm:"uniqueIndex" json:"-"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created"`
	UpdatedAt time.Time  `json:"updated"`
}

type CartItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	CartID    uint            `gorm:"index" json:"-"`
	ProductID uint            `gorm:"index" json:"-"`
	Product   catalog.Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product"`
	Quantity  int             `gorm:"check:quantity >= 1" json:"quantity"`
}

// TotalItems is the sum of line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice uses the live product price, not a snapshot.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += float64(item.Quantity) * item.Product.Price
	}
	return total
}

// CartView is the wire shape of the cart with the computed totals attached.
type CartView struct {
	ID         uint       `json:"id"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
}

func NewCartView(c *Cart) CartView {
	items := c.Items
	if items == nil {
		items = []CartItem{}
	}
	return CartView{
		ID:         c.ID,
		Items:      items,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}
