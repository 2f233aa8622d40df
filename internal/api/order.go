package api

import (
	"net/http" // HTTP status codes
	"time"

	"milkstore/internal/domain"  // Importing domain models
	"milkstore/internal/service" // Order workflow
	"milkstore/internal/utils"   // Paging utility

	"github.com/gin-gonic/gin" // Gin web framework
)

// OrderRequest is the payload for creating an order
type OrderRequest struct {
	UserId       string               `json:"userId" binding:"required"`           // Ordering user
	OrderCode    string               `json:"orderCode"`                           // Optional order code
	TotalPrice   float64              `json:"totalPrice" binding:"required,gt=0"`  // Total price must be positive
	Address      string               `json:"address" binding:"required,max=250"`  // Delivery address must be provided
	PhoneNumber  string               `json:"phoneNumber" binding:"max=15"`        // Contact phone number
	OrderDetails []OrderDetailRequest `json:"orderDetails" binding:"required,dive"` // Line items
}

// OrderDetailRequest is one requested line item
type OrderDetailRequest struct {
	ProductId string `json:"productId" binding:"required"`       // Product to order
	Quantity  int    `json:"quantity" binding:"required,min=1"`  // Quantity must be at least 1
}

// OrderUpdateRequest is the payload for a partial order update
type OrderUpdateRequest struct {
	OrderStatus *int    `json:"orderStatus"` // Numeric status code
	Address     *string `json:"address"`     // New delivery address
	PhoneNumber *string `json:"phoneNumber"` // New contact phone number
	OrderCode   *string `json:"orderCode"`   // New order code
}

// OrderSummaryResponse is the order view used in list endpoints
type OrderSummaryResponse struct {
	Id          string    `json:"id"`          // Order id
	UserId      string    `json:"userId"`      // Ordering user id
	OrderCode   string    `json:"orderCode"`   // Order code
	OrderDate   time.Time `json:"orderDate"`   // Order creation time
	OrderStatus string    `json:"orderStatus"` // Status name
	TotalPrice  float64   `json:"totalPrice"`  // Total price
	Address     string    `json:"address"`     // Delivery address
	PhoneNumber string    `json:"phoneNumber"` // Contact phone number
}

// OrderDetailResponse is one line item with its resolved product name
type OrderDetailResponse struct {
	OrderDetailId string  `json:"orderDetailId"` // Line item id
	ProductName   string  `json:"productName"`   // Resolved product name
	Quantity      int     `json:"quantity"`      // Ordered quantity
	Price         float64 `json:"price"`         // Snapshotted line price
}

// OrderResponse is the fully hydrated order view
type OrderResponse struct {
	OrderSummaryResponse
	CustomerName string                `json:"customerName"` // Resolved customer name
	OrderDetails []OrderDetailResponse `json:"orderDetails"` // Line items
}

// toOrderSummary maps an order entity to its list view
func toOrderSummary(o domain.Order) OrderSummaryResponse {
	return OrderSummaryResponse{
		Id:          o.ID,
		UserId:      o.UserID,
		OrderCode:   o.OrderCode,
		OrderDate:   o.OrderDate,
		OrderStatus: o.OrderStatus.String(),
		TotalPrice:  o.TotalPrice,
		Address:     o.Address,
		PhoneNumber: o.PhoneNumber,
	}
}

// toOrderResponse maps a hydrated order entity to its full view
func toOrderResponse(o *domain.Order) OrderResponse {
	resp := OrderResponse{
		OrderSummaryResponse: toOrderSummary(*o),
		OrderDetails:         make([]OrderDetailResponse, 0, len(o.OrderDetails)),
	}
	if o.User != nil {
		resp.CustomerName = o.User.FullName
	}
	for _, detail := range o.OrderDetails {
		line := OrderDetailResponse{
			OrderDetailId: detail.ID,
			Quantity:      detail.Quantity,
			Price:         detail.Price,
		}
		if detail.Product != nil {
			line.ProductName = detail.Product.Name
		}
		resp.OrderDetails = append(resp.OrderDetails, line)
	}
	return resp
}

// GetOrdersHandler returns one page of orders, searchable by
// orderStatus, address or phoneNumber
func GetOrdersHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		pageIndex, pageSize := pageParams(c)
		page, err := orders.List(pageIndex, pageSize, c.Query("searchString"), c.Query("searchBy"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, utils.MapPage(page, toOrderSummary))
	}
}

// GetOrderHandler returns one fully hydrated order
func GetOrderHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := orders.Get(c.Param("id"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(order))
	}
}

// GetOrdersByUserHandler returns one page of a single user's orders
func GetOrdersByUserHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		pageIndex, pageSize := pageParams(c)
		page, err := orders.ListByUser(c.Param("id"), pageIndex, pageSize, c.Query("searchString"), c.Query("searchBy"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, utils.MapPage(page, toOrderSummary))
	}
}

// CreateOrderHandler runs the transactional order creation workflow
func CreateOrderHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OrderRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || len(req.OrderDetails) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		lines := make([]service.OrderLine, len(req.OrderDetails))
		for i, detail := range req.OrderDetails {
			lines[i] = service.OrderLine{ProductID: detail.ProductId, Quantity: detail.Quantity}
		}
		order, err := orders.Create(service.CreateOrderInput{
			UserID:      req.UserId,
			OrderCode:   req.OrderCode,
			TotalPrice:  req.TotalPrice,
			Address:     req.Address,
			PhoneNumber: req.PhoneNumber,
			Lines:       lines,
		})
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toOrderResponse(order))
	}
}

// UpdateOrderHandler applies a partial order update
func UpdateOrderHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OrderUpdateRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		order, err := orders.Update(c.Param("id"), service.UpdateOrderInput{
			OrderStatus: req.OrderStatus,
			Address:     req.Address,
			PhoneNumber: req.PhoneNumber,
			OrderCode:   req.OrderCode,
		})
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, toOrderSummary(*order))
	}
}

// CancelOrderHandler runs the transactional cancellation workflow
func CancelOrderHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := orders.Cancel(c.Param("id")); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled and stock restored"})
	}
}
