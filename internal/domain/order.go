package domain

import "time"

// Order Model
type Order struct {
	Base
	UserID       string        `gorm:"type:char(36);not null" json:"userId"`     // Foreign key to the ordering user
	OrderCode    string        `gorm:"size:50" json:"orderCode"`                 // Human-readable order code
	OrderDate    time.Time     `json:"orderDate"`                                // Timestamp of order creation
	OrderStatus  OrderStatus   `gorm:"type:varchar(50)" json:"orderStatus"`      // Lifecycle status, stored as its name
	TotalPrice   float64       `gorm:"not null" json:"totalPrice"`               // Total price of the order
	Address      string        `gorm:"size:250" json:"address"`                  // Delivery address
	PhoneNumber  string        `gorm:"size:15" json:"phoneNumber"`               // Contact phone number
	User         *User         `json:"-"`                                        // Ordering user
	Delivery     *Delivery     `gorm:"foreignKey:OrderID" json:"-"`              // Optional delivery assignment, at most one
	OrderDetails []OrderDetail `gorm:"foreignKey:OrderID" json:"-"`              // Line items
}
