package domain

// Product Model
type Product struct {
	Base
	Name         string        `gorm:"size:100;not null" json:"name"`    // Product name
	Description  string        `gorm:"size:500" json:"description"`      // Product description
	Price        float64       `gorm:"not null" json:"price"`            // Unit price, must be positive
	Stock        int           `gorm:"not null;default:0" json:"stock"`  // Units in stock, never negative
	ImageUrl     string        `json:"imageUrl"`                         // Image URL from the blob store
	BrandID      string        `gorm:"type:char(36)" json:"brandId"`     // Foreign key to Brand
	IsDeleted    bool          `gorm:"default:false" json:"isDeleted"`   // Soft-delete flag
	Brand        *Brand        `json:"brand,omitempty"`                  // Owning brand
	OrderDetails []OrderDetail `gorm:"foreignKey:ProductID" json:"-"`    // Order lines referencing this product
}
