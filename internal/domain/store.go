package domain

// Store Model, the shop profile record
type Store struct {
	Base
	Name        string `gorm:"size:100" json:"name"`        // Store name
	Address     string `gorm:"size:250" json:"address"`     // Store address
	PhoneNumber string `gorm:"size:15" json:"phoneNumber"`  // Contact phone number
	Email       string `gorm:"size:100" json:"email"`       // Contact email
}
