package domain

// User Model
type User struct {
	Base
	Username    string     `gorm:"size:50;unique;not null" json:"username"`         // Unique username
	Password    string     `gorm:"size:100;not null" json:"-"`                      // Bcrypt password hash
	FullName    string     `gorm:"size:100" json:"fullName"`                        // Full name
	Email       string     `gorm:"size:100" json:"email"`                           // Email address
	PhoneNumber string     `gorm:"size:15" json:"phoneNumber"`                      // Phone number
	RoleID      string     `gorm:"type:char(36)" json:"roleId"`                     // Foreign key to Role
	IsDeleted   bool       `gorm:"default:false" json:"isDeleted"`                  // Soft-delete flag
	Role        *Role      `json:"role,omitempty"`                                  // Assigned role
	Orders      []Order    `gorm:"foreignKey:UserID" json:"-"`                      // Orders placed by this user
	Deliveries  []Delivery `gorm:"foreignKey:DeliveryStaffID" json:"-"`             // Deliveries assigned to this user as staff
}
