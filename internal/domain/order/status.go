package order

// Status represents a purchase order's position in the procurement lifecycle
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusSent      Status = "Sent"
	StatusApproved  Status = "Approved"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

var validStatuses = map[Status]bool{
	StatusDraft:     true,
	StatusSent:      true,
	StatusApproved:  true,
	StatusCompleted: true,
	StatusCancelled: true,
}

var terminalStatuses = map[Status]bool{
	StatusCompleted: true,
	StatusCancelled: true,
}

// allowedTransitions maps each status to the statuses it may move to next.
// Terminal statuses map to an empty row.
var allowedTransitions = map[Status][]Status{
	StatusDraft:     {StatusSent, StatusCancelled},
	StatusSent:      {StatusApproved, StatusCancelled},
	StatusApproved:  {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

var statusDescriptions = map[Status]string{
	StatusDraft:     "Order is being prepared",
	StatusSent:      "Order sent to vendor",
	StatusApproved:  "Order approved by vendor",
	StatusCompleted: "Order fulfilled",
	StatusCancelled: "Order cancelled",
}

var actionLabels = map[Status]string{
	StatusSent:      "Send to Vendor",
	StatusApproved:  "Approve Order",
	StatusCompleted: "Mark Complete",
	StatusCancelled: "Cancel Order",
}

// IsValid returns true if the status is a known lifecycle state
func (s Status) IsValid() bool {
	return validStatuses[s]
}

// IsTerminal returns true if the status admits no further transitions
func (s Status) IsTerminal() bool {
	return terminalStatuses[s]
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// Description returns the human-readable summary shown next to the status
// badge. Unknown statuses yield an empty string.
func (s Status) Description() string {
	return statusDescriptions[s]
}

// ActionLabel returns the label for the action that moves an order into this
// status. Unknown statuses (and Draft, which is never a transition target)
// yield an empty string.
func (s Status) ActionLabel() string {
	return actionLabels[s]
}

// CanTransitionTo returns true if target is a legal next status
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range allowedTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses an order in status s may move to.
// Terminal and unknown statuses return an empty slice.
func AllowedTransitions(s Status) []Status {
	return append([]Status{}, allowedTransitions[s]...)
}
