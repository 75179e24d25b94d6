package order

import "fmt"

// ApplyTransition returns a copy of the order with its status replaced by
// target. It is the sole mutator of status; every other field is carried over
// unchanged. On error the input order is returned as-is, so a failed
// transition never alters what the caller holds.
func ApplyTransition(o PurchaseOrder, target Status) (PurchaseOrder, error) {
	if !target.IsValid() {
		return o, fmt.Errorf("%w: %q", ErrInvalidStatus, target)
	}
	if !o.Status.CanTransitionTo(target) {
		return o, fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidTransition, o.Status, target)
	}

	o.Status = target
	return o, nil
}
