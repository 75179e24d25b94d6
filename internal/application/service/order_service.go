// Package service contains the application services that sit between the
// transport layer and the domain model.
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/orderdesk/po-backoffice/internal/application/port"
	"github.com/orderdesk/po-backoffice/internal/domain/order"
)

// ErrOrderNotFound is returned when no order matches the given identifier
var ErrOrderNotFound = errors.New("purchase order not found")

// OrderService exposes the purchase order operations of the back office
type OrderService interface {
	// List returns orders matching the search term, or all orders when the
	// term is empty. Matching is a case-insensitive substring test over
	// PO number, vendor name and status.
	List(search string) []order.PurchaseOrder

	// Get returns the order with the given identifier
	Get(id string) (order.PurchaseOrder, error)

	// Create validates the input, assigns the next PO number and appends the
	// new Draft order to the shared collection
	Create(input CreateOrderInput) (order.PurchaseOrder, error)

	// ChangeStatus applies a lifecycle transition and writes the updated
	// order back into the shared collection
	ChangeStatus(id string, target order.Status) (order.PurchaseOrder, error)

	// Transitions returns the actions available for the order's current status
	Transitions(id string) ([]TransitionOption, error)
}

// CreateOrderInput carries the fields of the create form
type CreateOrderInput struct {
	VendorID   string
	VendorName string
	Date       time.Time
	DueDate    time.Time
	Notes      string
	Items      []CreateItemInput
}

// CreateItemInput carries one line of the item form. TaxPercentage is
// optional; when nil the configured default rate applies.
type CreateItemInput struct {
	ProductID     string
	ProductName   string
	Quantity      int
	UnitPrice     decimal.Decimal
	TaxPercentage *decimal.Decimal
}

// TransitionOption pairs a reachable status with its action label
type TransitionOption struct {
	Status      order.Status `json:"status"`
	ActionLabel string       `json:"action_label"`
	Description string       `json:"description"`
}

// Defaults holds the configurable creation defaults of the order form
type Defaults struct {
	NumberPrefix  string
	DueDays       int
	TaxPercentage decimal.Decimal
}

// statusMessages is the notification text per transition target
var statusMessages = map[order.Status]string{
	order.StatusSent:      "Purchase order sent to vendor",
	order.StatusApproved:  "Purchase order approved",
	order.StatusCompleted: "Purchase order marked as completed",
	order.StatusCancelled: "Purchase order cancelled",
	order.StatusDraft:     "Purchase order set to draft",
}

type orderService struct {
	store    port.OrderStore
	notifier port.Notifier
	defaults Defaults
	logger   *zap.Logger
}

// NewOrderService creates the purchase order service
func NewOrderService(store port.OrderStore, notifier port.Notifier, defaults Defaults, logger *zap.Logger) OrderService {
	if defaults.NumberPrefix == "" {
		defaults.NumberPrefix = "PO-"
	}
	return &orderService{
		store:    store,
		notifier: notifier,
		defaults: defaults,
		logger:   logger,
	}
}

func (s *orderService) List(search string) []order.PurchaseOrder {
	orders := s.store.Read()
	if search == "" {
		return orders
	}

	term := strings.ToLower(search)
	filtered := make([]order.PurchaseOrder, 0, len(orders))
	for _, po := range orders {
		if strings.Contains(strings.ToLower(po.PONumber), term) ||
			strings.Contains(strings.ToLower(po.VendorName), term) ||
			strings.Contains(strings.ToLower(po.Status.String()), term) {
			filtered = append(filtered, po)
		}
	}
	return filtered
}

func (s *orderService) Get(id string) (order.PurchaseOrder, error) {
	for _, po := range s.store.Read() {
		if po.ID == id {
			return po, nil
		}
	}
	return order.PurchaseOrder{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
}

// Create validates everything before the store is read, so a rejected order
// never consumes a PO number. Numbering derives from the snapshot length;
// two creations racing between Read and ReplaceAll could mint the same
// number. The single-threaded event flow of the screen makes that acceptable
// and it is deliberately not papered over here.
func (s *orderService) Create(input CreateOrderInput) (order.PurchaseOrder, error) {
	if strings.TrimSpace(input.VendorName) == "" {
		return order.PurchaseOrder{}, fmt.Errorf("%w: vendor name is required", order.ErrValidation)
	}
	if len(input.Items) == 0 {
		return order.PurchaseOrder{}, fmt.Errorf("%w: at least one line item is required", order.ErrValidation)
	}

	items := make([]order.LineItem, 0, len(input.Items))
	for i, in := range input.Items {
		taxPct := s.defaults.TaxPercentage
		if in.TaxPercentage != nil {
			taxPct = *in.TaxPercentage
		}
		item, err := order.NewLineItem(in.ProductID, in.ProductName, in.Quantity, in.UnitPrice, taxPct)
		if err != nil {
			return order.PurchaseOrder{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, item)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().Truncate(24 * time.Hour)
	}
	dueDate := input.DueDate
	if dueDate.IsZero() {
		dueDate = date.AddDate(0, 0, s.defaults.DueDays)
	}

	existing := s.store.Read()
	poNumber := fmt.Sprintf("%s%04d", s.defaults.NumberPrefix, len(existing)+1)

	po, err := order.NewPurchaseOrder(poNumber, input.VendorID, input.VendorName, date, dueDate, items, input.Notes)
	if err != nil {
		return order.PurchaseOrder{}, err
	}

	s.store.ReplaceAll(append(existing, po))

	s.logger.Info("Purchase order created",
		zap.String("po_number", po.PONumber),
		zap.String("vendor", po.VendorName),
		zap.String("total", po.Total.String()))
	s.notifier.Notify("Purchase Order Created",
		fmt.Sprintf("Purchase order %s has been created successfully.", po.PONumber),
		port.SeveritySuccess)

	return po, nil
}

func (s *orderService) ChangeStatus(id string, target order.Status) (order.PurchaseOrder, error) {
	orders := s.store.Read()

	idx := -1
	for i, po := range orders {
		if po.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return order.PurchaseOrder{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}

	updated, err := order.ApplyTransition(orders[idx], target)
	if err != nil {
		s.notifier.Notify("Status Update Failed", err.Error(), port.SeverityError)
		return order.PurchaseOrder{}, err
	}

	orders[idx] = updated
	s.store.ReplaceAll(orders)

	message, ok := statusMessages[target]
	if !ok {
		message = fmt.Sprintf("Status updated to %s", target)
	}
	s.logger.Info("Purchase order status updated",
		zap.String("po_number", updated.PONumber),
		zap.String("status", updated.Status.String()))
	s.notifier.Notify("Status Updated",
		fmt.Sprintf("%s: %s", updated.PONumber, message),
		port.SeveritySuccess)

	return updated, nil
}

func (s *orderService) Transitions(id string) ([]TransitionOption, error) {
	po, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	next := order.AllowedTransitions(po.Status)
	options := make([]TransitionOption, 0, len(next))
	for _, status := range next {
		options = append(options, TransitionOption{
			Status:      status,
			ActionLabel: status.ActionLabel(),
			Description: status.Description(),
		})
	}
	return options, nil
}
