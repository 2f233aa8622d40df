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

// DeliveryService implements the delivery assignment workflow over an injected store handle
type DeliveryService struct {
	db *gorm.DB
}

// NewDeliveryService returns a DeliveryService bound to the given database
func NewDeliveryService(db *gorm.DB) *DeliveryService {
	return &DeliveryService{db: db}
}

// Create assigns a delivery-staff user to an order. The order must still be in
// the Ordered state and must not already have a delivery; the staff user must
// be active and hold the DeliveryStaff role. The delivery insert and the status
// flip to Assigned happen in one transaction.
func (s *DeliveryService) Create(orderID, deliveryStaffID string) (*domain.Delivery, error) {
	var created domain.Delivery
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order domain.Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: order with id %s", ErrNotFound, orderID)
			}
			return err
		}
		// Guards against double-assignment
		if order.OrderStatus != domain.Ordered {
			return fmt.Errorf("%w: order cannot be assigned in status %s", ErrInvalidState, order.OrderStatus)
		}
		var existing domain.Delivery
		if err := tx.Where("order_id = ?", orderID).First(&existing).Error; err == nil {
			return fmt.Errorf("%w: delivery already exists for order %s", ErrConflict, orderID)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		// The staff id must resolve to an active user holding the DeliveryStaff role
		var staff domain.User
		if err := tx.Preload("Role").Where("is_deleted = ?", false).First(&staff, "id = ?", deliveryStaffID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: delivery staff with id %s", ErrNotFound, deliveryStaffID)
			}
			return err
		}
		if staff.Role == nil || staff.Role.Name != domain.DeliveryStaff.String() {
			return fmt.Errorf("%w: delivery staff with id %s", ErrNotFound, deliveryStaffID)
		}

		delivery := domain.Delivery{OrderID: orderID, DeliveryStaffID: deliveryStaffID}
		if err := tx.Create(&delivery).Error; err != nil {
			return err
		}
		if err := tx.Model(&order).Update("order_status", domain.Assigned).Error; err != nil {
			return err
		}
		created = delivery
		return nil
	})
	if err != nil {
		// Log the error with context
		logrus.WithFields(logrus.Fields{
			"order_id": orderID,
			"staff_id": deliveryStaffID,
			"error":    err.Error(),
		}).Error("Create delivery failed")
		return nil, err
	}
	// Log successful assignment
	logrus.WithFields(logrus.Fields{
		"delivery_id": created.ID,
		"order_id":    orderID,
		"staff_id":    deliveryStaffID,
	}).Info("Delivery assigned")
	return &created, nil
}

// Complete stamps the delivery date and sets the order to Delivered,
// atomically. An order already Delivered or Cancelled cannot be completed.
func (s *DeliveryService) Complete(id string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var delivery domain.Delivery
		if err := tx.Preload("Order").First(&delivery, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: delivery with id %s", ErrNotFound, id)
			}
			return err
		}
		switch delivery.Order.OrderStatus {
		case domain.Delivered:
			return fmt.Errorf("%w: order has been delivered", ErrInvalidState)
		case domain.Cancelled:
			return fmt.Errorf("%w: order has been cancelled", ErrInvalidState)
		}
		now := time.Now()
		if err := tx.Model(&delivery).Update("delivery_date", now).Error; err != nil {
			return err
		}
		return tx.Model(delivery.Order).Update("order_status", domain.Delivered).Error
	})
	if err != nil {
		return err
	}
	// Log successful completion
	logrus.WithFields(logrus.Fields{"delivery_id": id}).Info("Delivery completed")
	return nil
}

// Get returns one delivery joined with its order, staff and customer
func (s *DeliveryService) Get(id string) (*domain.Delivery, error) {
	var delivery domain.Delivery
	if err := s.db.Preload("DeliveryStaff").Preload("Order.User").First(&delivery, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: delivery with id %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &delivery, nil
}

// List returns one page of deliveries, newest orders first
func (s *DeliveryService) List(pageIndex, pageSize int) (*utils.PagedResult[domain.Delivery], error) {
	query := s.joinedQuery()
	return utils.Paginate[domain.Delivery](query, pageIndex, pageSize)
}

// ListByStaff returns one page of the deliveries assigned to one staff user
func (s *DeliveryService) ListByStaff(staffID string, pageIndex, pageSize int) (*utils.PagedResult[domain.Delivery], error) {
	query := s.joinedQuery().Where("deliveries.delivery_staff_id = ?", staffID)
	return utils.Paginate[domain.Delivery](query, pageIndex, pageSize)
}

// joinedQuery prepares the delivery list query with its joins and ordering
func (s *DeliveryService) joinedQuery() *gorm.DB {
	return s.db.Model(&domain.Delivery{}).
		Preload("DeliveryStaff").
		Preload("Order.User").
		Joins("JOIN orders ON orders.id = deliveries.order_id").
		Order("orders.order_date DESC")
}
