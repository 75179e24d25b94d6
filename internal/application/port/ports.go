// Package port defines the interfaces the application layer depends on.
// Implementations live in the infrastructure packages.
package port

import "github.com/orderdesk/po-backoffice/internal/domain/order"

// OrderStore is the shared purchase order collection. It is read and replaced
// as a whole; there is no per-record mutation.
type OrderStore interface {
	// Read returns a snapshot of the collection in insertion order
	Read() []order.PurchaseOrder

	// ReplaceAll swaps the entire collection for the given one
	ReplaceAll(orders []order.PurchaseOrder)
}

// Severity classifies a notification for whatever surface renders it
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier is a fire-and-forget sink for user-facing operation outcomes.
// Failures to deliver are never surfaced to the caller.
type Notifier interface {
	Notify(title, message string, severity Severity)
}
