package domain

import "time"

// Delivery Model
type Delivery struct {
	Base
	OrderID         string     `gorm:"type:char(36);uniqueIndex;not null" json:"orderId"` // Foreign key to Order, one delivery per order
	DeliveryStaffID string     `gorm:"type:char(36);not null" json:"deliveryStaffId"`     // Foreign key to the assigned staff user
	DeliveryDate    *time.Time `json:"deliveryDate"`                                      // Set when the delivery is completed
	Order           *Order     `json:"-"`                                                 // Delivered order
	DeliveryStaff   *User      `json:"-"`                                                 // Assigned delivery staff
}
