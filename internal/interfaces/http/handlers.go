package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/orderdesk/po-backoffice/internal/application/service"
	"github.com/orderdesk/po-backoffice/internal/domain/order"
	"github.com/orderdesk/po-backoffice/internal/export"
)

const dateLayout = "2006-01-02"

// Handlers contains all HTTP request handlers
type Handlers struct {
	orderService service.OrderService
	logger       *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(orderService service.OrderService, logger *zap.Logger) *Handlers {
	return &Handlers{
		orderService: orderService,
		logger:       logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// CreateOrderRequest represents the create purchase order form
type CreateOrderRequest struct {
	VendorID   string                   `json:"vendor_id"`
	VendorName string                   `json:"vendor_name"`
	Date       string                   `json:"date"`
	DueDate    string                   `json:"due_date"`
	Notes      string                   `json:"notes"`
	Items      []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest represents one line of the item form
type CreateOrderItemRequest struct {
	ProductID     string           `json:"product_id"`
	ProductName   string           `json:"product_name"`
	Quantity      int              `json:"quantity"`
	UnitPrice     decimal.Decimal  `json:"unit_price"`
	TaxPercentage *decimal.Decimal `json:"tax_percentage"`
}

// UpdateStatusRequest represents a status transition request
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   "1.0.0",
		},
	})
}

// ListOrders handles GET /api/v1/orders
func (h *Handlers) ListOrders(c *gin.Context) {
	orders := h.orderService.List(c.Query("search"))
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    orders,
	})
}

// GetOrder handles GET /api/v1/orders/:id
func (h *Handlers) GetOrder(c *gin.Context) {
	po, err := h.orderService.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    po,
	})
}

// CreateOrder handles POST /api/v1/orders
func (h *Handlers) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid create order payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	input := service.CreateOrderInput{
		VendorID:   req.VendorID,
		VendorName: req.VendorName,
		Notes:      req.Notes,
	}

	var err error
	if input.Date, err = parseDate(req.Date); err != nil {
		h.respondError(c, err)
		return
	}
	if input.DueDate, err = parseDate(req.DueDate); err != nil {
		h.respondError(c, err)
		return
	}

	for _, item := range req.Items {
		input.Items = append(input.Items, service.CreateItemInput{
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			TaxPercentage: item.TaxPercentage,
		})
	}

	po, err := h.orderService.Create(input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    po,
	})
}

// UpdateStatus handles POST /api/v1/orders/:id/status
func (h *Handlers) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	po, err := h.orderService.ChangeStatus(c.Param("id"), order.Status(req.Status))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    po,
	})
}

// ListTransitions handles GET /api/v1/orders/:id/transitions
func (h *Handlers) ListTransitions(c *gin.Context) {
	options, err := h.orderService.Transitions(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    options,
	})
}

// OrderDocument handles GET /api/v1/orders/:id/document
func (h *Handlers) OrderDocument(c *gin.Context) {
	po, err := h.orderService.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	data, err := export.OrderDocumentPDF(po)
	if err != nil {
		h.logger.Error("Failed to render order document", zap.String("id", po.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to render document",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", po.PONumber))
	c.Data(http.StatusOK, "application/pdf", data)
}

// ExportOrders handles GET /api/v1/orders/export
func (h *Handlers) ExportOrders(c *gin.Context) {
	orders := h.orderService.List(c.Query("search"))

	data, err := export.OrderBookXLSX(orders)
	if err != nil {
		h.logger.Error("Failed to export orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to export orders",
		})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=purchase-orders.xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// respondError maps service and domain errors onto HTTP statuses
func (h *Handlers) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, order.ErrValidation), errors.Is(err, order.ErrInvalidStatus):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("Unhandled service error", zap.Error(err))
	}

	c.JSON(status, Response{
		Success: false,
		Error:   err.Error(),
	})
}

// parseDate parses an optional YYYY-MM-DD form field
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format", order.ErrValidation)
	}
	return t, nil
}
