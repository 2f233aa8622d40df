package domain

// RoleName is the closed set of roles seeded at migration time
type RoleName int

const (
	Admin RoleName = iota + 1
	Owner
	ShopStaff
	DeliveryStaff
	Customer
)

// roleNames maps each role code to the name stored in the database
var roleNames = map[RoleName]string{
	Admin:         "Admin",
	Owner:         "Owner",
	ShopStaff:     "ShopStaff",
	DeliveryStaff: "DeliveryStaff",
	Customer:      "Customer",
}

// String returns the role name, or an empty string for an unknown role
func (r RoleName) String() string {
	return roleNames[r]
}

// RoleNameFromCode maps the numeric wire code used in register requests to a role
func RoleNameFromCode(code int) (RoleName, bool) {
	role := RoleName(code)
	_, ok := roleNames[role]
	return role, ok
}

// AllRoleNames returns every seeded role in code order
func AllRoleNames() []RoleName {
	return []RoleName{Admin, Owner, ShopStaff, DeliveryStaff, Customer}
}

// Role Model
type Role struct {
	Base
	Name  string `gorm:"size:15;unique;not null" json:"name"` // Role name (Admin, Owner, ShopStaff, DeliveryStaff, Customer)
	Users []User `gorm:"foreignKey:RoleID" json:"-"`          // Users holding this role
}
