package domain

import (
	"database/sql/driver" // Valuer interface
	"fmt"
)

// OrderStatus is the closed set of order lifecycle states
type OrderStatus int

// Order lifecycle: Ordered -> Assigned -> Received -> Shipping -> Delivered,
// or Ordered -> Cancelled. Delivered and Cancelled are terminal.
const (
	Ordered OrderStatus = iota + 1
	Assigned
	Received
	Shipping
	Delivered
	Cancelled
)

// orderStatusNames maps each status to the name stored in the database
var orderStatusNames = map[OrderStatus]string{
	Ordered:   "Ordered",
	Assigned:  "Assigned",
	Received:  "Received",
	Shipping:  "Shipping",
	Delivered: "Delivered",
	Cancelled: "Cancelled",
}

// String returns the status name, or an empty string for an unknown status
func (s OrderStatus) String() string {
	return orderStatusNames[s]
}

// Valid reports whether s is one of the known statuses
func (s OrderStatus) Valid() bool {
	_, ok := orderStatusNames[s]
	return ok
}

// Terminal reports whether no further transition is allowed out of s
func (s OrderStatus) Terminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether moving from s to next is a legal transition:
// forward-only between non-terminal states, cancellation only from Ordered
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() || s.Terminal() {
		return false
	}
	if next == Cancelled {
		return s == Ordered
	}
	return next > s
}

// ParseOrderStatus resolves a stored status name back to its enum value
func ParseOrderStatus(name string) (OrderStatus, error) {
	for status, statusName := range orderStatusNames {
		if statusName == name {
			return status, nil
		}
	}
	return 0, fmt.Errorf("unknown order status %q", name)
}

// OrderStatusFromCode maps the numeric wire code used by clients to a status
func OrderStatusFromCode(code int) (OrderStatus, bool) {
	status := OrderStatus(code)
	return status, status.Valid()
}

// Value serializes the status as its string name at the storage boundary
func (s OrderStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid order status %d", int(s))
	}
	return s.String(), nil
}

// Scan deserializes a stored status name back into the enum
func (s *OrderStatus) Scan(value any) error {
	var name string
	switch v := value.(type) {
	case string:
		name = v
	case []byte:
		name = string(v)
	default:
		return fmt.Errorf("cannot scan order status from %T", value)
	}
	status, err := ParseOrderStatus(name)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// MarshalJSON renders the status as its name in API responses
func (s OrderStatus) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid order status %d", int(s))
	}
	return []byte(`"` + s.String() + `"`), nil
}
