package domain

// OrderDetail Model
type OrderDetail struct {
	Base
	OrderID   string   `gorm:"type:char(36);not null" json:"orderId"`     // Foreign key to Order
	ProductID string   `gorm:"type:char(36);not null" json:"productId"`   // Foreign key to Product
	Quantity  int      `gorm:"not null" json:"quantity"`                  // Ordered quantity, at least 1
	Price     float64  `gorm:"not null" json:"price"`                     // Snapshot of unit price x quantity at order time
	Product   *Product `json:"-"`                                         // Ordered product
	Order     *Order   `json:"-"`                                         // Owning order
}
