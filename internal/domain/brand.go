package domain

// Brand Model
type Brand struct {
	Base
	Name     string    `gorm:"size:50" json:"name"`            // Brand name
	Products []Product `gorm:"foreignKey:BrandID" json:"-"`    // Products under this brand
}
