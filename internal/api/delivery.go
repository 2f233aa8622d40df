package api

import (
	"net/http" // HTTP status codes
	"time"

	"milkstore/internal/domain"  // Importing domain models
	"milkstore/internal/service" // Delivery workflow
	"milkstore/internal/utils"   // Paging utility

	"github.com/gin-gonic/gin" // Gin web framework
)

// DeliveryRequest is the payload for assigning a delivery
type DeliveryRequest struct {
	OrderId         string `json:"orderId" binding:"required"`         // Order to deliver
	DeliveryStaffId string `json:"deliveryStaffId" binding:"required"` // Staff user to assign
}

// DeliveryOrderResponse is the order summary embedded in a delivery view
type DeliveryOrderResponse struct {
	CustomerName string    `json:"customerName"` // Resolved customer name
	OrderCode    string    `json:"orderCode"`    // Order code
	OrderDate    time.Time `json:"orderDate"`    // Order creation time
	OrderStatus  string    `json:"orderStatus"`  // Status name
	TotalPrice   float64   `json:"totalPrice"`   // Total price
	Address      string    `json:"address"`      // Delivery address
	PhoneNumber  string    `json:"phoneNumber"`  // Contact phone number
}

// DeliveryResponse is the delivery view returned to clients
type DeliveryResponse struct {
	Id              string                `json:"id"`              // Delivery id
	OrderId         string                `json:"orderId"`         // Delivered order id
	DeliveryStaffId string                `json:"deliveryStaffId"` // Assigned staff id
	DeliveryDate    *time.Time            `json:"deliveryDate"`    // Completion time, null while in flight
	DeliveryManName string                `json:"deliveryManName"` // Resolved staff name
	Order           DeliveryOrderResponse `json:"order"`           // Embedded order summary
}

// toDeliveryResponse maps a joined delivery entity to its response view
func toDeliveryResponse(d domain.Delivery) DeliveryResponse {
	resp := DeliveryResponse{
		Id:              d.ID,
		OrderId:         d.OrderID,
		DeliveryStaffId: d.DeliveryStaffID,
		DeliveryDate:    d.DeliveryDate,
	}
	if d.DeliveryStaff != nil {
		resp.DeliveryManName = d.DeliveryStaff.FullName
	}
	if d.Order != nil {
		resp.Order = DeliveryOrderResponse{
			OrderCode:   d.Order.OrderCode,
			OrderDate:   d.Order.OrderDate,
			OrderStatus: d.Order.OrderStatus.String(),
			TotalPrice:  d.Order.TotalPrice,
			Address:     d.Order.Address,
			PhoneNumber: d.Order.PhoneNumber,
		}
		if d.Order.User != nil {
			resp.Order.CustomerName = d.Order.User.FullName
		}
	}
	return resp
}

// CreateDeliveryHandler assigns a delivery-staff user to an order (ShopStaff only)
func CreateDeliveryHandler(deliveries *service.DeliveryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeliveryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		delivery, err := deliveries.Create(req.OrderId, req.DeliveryStaffId)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Delivery created", "id": delivery.ID})
	}
}

// GetDeliveriesHandler returns one page of deliveries, newest orders first
func GetDeliveriesHandler(deliveries *service.DeliveryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		pageIndex, pageSize := pageParams(c)
		page, err := deliveries.List(pageIndex, pageSize)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, utils.MapPage(page, toDeliveryResponse))
	}
}

// GetDeliveryHandler returns one delivery with its joined order and staff names
func GetDeliveryHandler(deliveries *service.DeliveryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		delivery, err := deliveries.Get(c.Param("id"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, toDeliveryResponse(*delivery))
	}
}

// GetDeliveriesByStaffHandler returns one page of deliveries assigned to one staff user
func GetDeliveriesByStaffHandler(deliveries *service.DeliveryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		pageIndex, pageSize := pageParams(c)
		page, err := deliveries.ListByStaff(c.Param("id"), pageIndex, pageSize)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, utils.MapPage(page, toDeliveryResponse))
	}
}

// CompleteDeliveryHandler stamps the delivery date and marks the order Delivered (DeliveryStaff only)
func CompleteDeliveryHandler(deliveries *service.DeliveryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deliveries.Complete(c.Param("id")); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Delivery completed"})
	}
}
