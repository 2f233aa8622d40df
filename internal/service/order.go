package service

import (
	"errors"
	"fmt"
	"time"

	"milkstore/internal/domain" // Importing domain models
	"milkstore/internal/utils"  // Paging utility

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// OrderService implements the order/inventory workflow over an injected store handle
type OrderService struct {
	db *gorm.DB
}

// NewOrderService returns an OrderService bound to the given database
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// OrderLine is one requested line item of a new order
type OrderLine struct {
	ProductID string // Product to order
	Quantity  int    // Requested quantity, at least 1
}

// CreateOrderInput carries everything needed to create an order
type CreateOrderInput struct {
	UserID      string      // Ordering user
	OrderCode   string      // Optional human-readable order code
	TotalPrice  float64     // Total price declared by the client
	Address     string      // Delivery address
	PhoneNumber string      // Contact phone number
	Lines       []OrderLine // Line items
}

// Create validates every line item, then atomically inserts the order with its
// details and decrements product stock. Any failure rolls back the whole
// operation, so an order is never partially applied.
func (s *OrderService) Create(input CreateOrderInput) (*domain.Order, error) {
	var created domain.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Check every line before any mutation, so a multi-item order with one
		// bad line is rejected wholesale
		products := make(map[string]*domain.Product, len(input.Lines))
		for _, line := range input.Lines {
			var product domain.Product
			if err := tx.Where("is_deleted = ?", false).First(&product, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product with id %s", ErrNotFound, line.ProductID)
				}
				return err
			}
			if product.Stock < line.Quantity {
				return fmt.Errorf("%w: not enough stock for product %s, available stock: %d", ErrInsufficientStock, product.Name, product.Stock)
			}
			products[line.ProductID] = &product
		}

		// Create the order
		order := domain.Order{
			UserID:      input.UserID,
			OrderCode:   input.OrderCode,
			OrderDate:   time.Now(),
			OrderStatus: domain.Ordered,
			TotalPrice:  input.TotalPrice,
			Address:     input.Address,
			PhoneNumber: input.PhoneNumber,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Create the details and decrement stock
		for _, line := range input.Lines {
			product := products[line.ProductID]
			detail := domain.OrderDetail{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				// Snapshot of unit price x quantity; later price changes do not
				// affect this order
				Price: product.Price * float64(line.Quantity),
			}
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}
			// Decrement with a floor check so concurrent orders on the same
			// product cannot push stock below zero
			res := tx.Model(&domain.Product{}).
				Where("id = ? AND stock >= ?", line.ProductID, line.Quantity).
				Update("stock", gorm.Expr("stock - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: not enough stock for product %s, available stock: %d", ErrInsufficientStock, product.Name, product.Stock)
			}
		}
		created = order
		return nil
	})
	if err != nil {
		// Log the error with context
		logrus.WithFields(logrus.Fields{
			"user_id": input.UserID,
			"lines":   len(input.Lines),
			"error":   err.Error(),
		}).Error("Create order failed")
		return nil, err
	}
	// Log successful order creation
	logrus.WithFields(logrus.Fields{
		"order_id":    created.ID,
		"user_id":     input.UserID,
		"total_price": input.TotalPrice,
	}).Info("Order created")
	return s.Get(created.ID)
}

// Get returns the fully hydrated order with line items, product and customer names
func (s *OrderService) Get(id string) (*domain.Order, error) {
	var order domain.Order
	if err := s.db.Preload("OrderDetails.Product").Preload("User").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order with id %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &order, nil
}

// Cancel restores the stock of every line item and sets the order to
// Cancelled, atomically. Only an order still in the Ordered state can be
// cancelled.
func (s *OrderService) Cancel(id string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order domain.Order
		if err := tx.Preload("OrderDetails").First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: order with id %s", ErrNotFound, id)
			}
			return err
		}
		if order.OrderStatus != domain.Ordered {
			return fmt.Errorf("%w: cannot cancel this order", ErrInvalidState)
		}
		// Restore the stock of each product in the order
		for _, detail := range order.OrderDetails {
			if err := tx.Model(&domain.Product{}).
				Where("id = ?", detail.ProductID).
				Update("stock", gorm.Expr("stock + ?", detail.Quantity)).Error; err != nil {
				return err
			}
		}
		return tx.Model(&order).Update("order_status", domain.Cancelled).Error
	})
	if err != nil {
		return err
	}
	// Log successful cancellation
	logrus.WithFields(logrus.Fields{"order_id": id}).Info("Order cancelled and stock restored")
	return nil
}

// UpdateOrderInput carries the optional fields of a partial order update
type UpdateOrderInput struct {
	OrderStatus *int    // Numeric status code, validated against the enum and the transition rules
	Address     *string // New delivery address
	PhoneNumber *string // New contact phone number
	OrderCode   *string // New order code
}

// Update applies only the non-nil fields. A status change must be both a known
// status and a legal transition from the current state.
func (s *OrderService) Update(id string, input UpdateOrderInput) (*domain.Order, error) {
	var order domain.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order with id %s", ErrNotFound, id)
		}
		return nil, err
	}
	if input.OrderStatus != nil {
		next, ok := domain.OrderStatusFromCode(*input.OrderStatus)
		if !ok {
			return nil, fmt.Errorf("%w: unknown order status %d", ErrValidation, *input.OrderStatus)
		}
		if !order.OrderStatus.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: cannot change order status from %s to %s", ErrInvalidState, order.OrderStatus, next)
		}
		order.OrderStatus = next
	}
	if input.Address != nil {
		order.Address = *input.Address
	}
	if input.PhoneNumber != nil {
		order.PhoneNumber = *input.PhoneNumber
	}
	if input.OrderCode != nil {
		order.OrderCode = *input.OrderCode
	}
	if err := s.db.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns one page of orders, optionally filtered by a search string
// applied to the column named by searchBy
func (s *OrderService) List(pageIndex, pageSize int, searchString, searchBy string) (*utils.PagedResult[domain.Order], error) {
	query := s.applySearch(s.db.Model(&domain.Order{}), searchString, searchBy)
	return utils.Paginate[domain.Order](query, pageIndex, pageSize)
}

// ListByUser returns one page of a single user's orders
func (s *OrderService) ListByUser(userID string, pageIndex, pageSize int, searchString, searchBy string) (*utils.PagedResult[domain.Order], error) {
	query := s.applySearch(s.db.Model(&domain.Order{}), searchString, searchBy).Where("user_id = ?", userID)
	return utils.Paginate[domain.Order](query, pageIndex, pageSize)
}

// applySearch narrows an order query by the selected search column
func (s *OrderService) applySearch(query *gorm.DB, searchString, searchBy string) *gorm.DB {
	if searchString == "" {
		return query
	}
	switch searchBy {
	case "orderStatus":
		return query.Where("order_status LIKE ?", "%"+searchString+"%")
	case "phoneNumber":
		return query.Where("phone_number LIKE ?", "%"+searchString+"%")
	default:
		return query.Where("address LIKE ?", "%"+searchString+"%")
	}
}
