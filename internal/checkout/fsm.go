// Package checkout models the order reconciliation flow as an explicit state
// machine: Idle → Validating → Pricing → Persisting → Reconciling → Done,
// with Failed reachable from every non-terminal working state.
package checkout

import (
	"errors"
	"fmt"
)

type State string

const (
	StateIdle        State = "idle"
	StateValidating  State = "validating"
	StatePricing     State = "pricing"
	StatePersisting  State = "persisting"
	StateReconciling State = "reconciling"
	StateDone        State = "done"
	StateFailed      State = "failed"
)

// Failure reasons recorded when a checkout attempt aborts. FailValidation
// covers failures while gathering the inputs to validate against (catalog
// snapshot, purchase records); FailPersistence is reserved for the submit
// itself.
const (
	FailBlockedItems = "blocked-items"
	FailEmptyCart    = "empty-cart"
	FailValidation   = "validation-error"
	FailPersistence  = "persistence-error"
	FailReconcile    = "reconcile-error"
)

var ErrInvalidTransition = errors.New("invalid checkout transition")

var transitions = map[State]map[State]struct{}{
	StateIdle:        {StateValidating: {}},
	StateValidating:  {StatePricing: {}, StateFailed: {}},
	StatePricing:     {StatePersisting: {}, StateFailed: {}},
	StatePersisting:  {StateReconciling: {}, StateFailed: {}},
	StateReconciling: {StateDone: {}, StateFailed: {}},
	StateDone:        {},
	StateFailed:      {},
}

// CanTransition returns whether the checkout may move between the two states.
func CanTransition(from, to State) bool {
	if from == to {
		return true
	}
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// Checkout tracks one attempt through the reconciliation pipeline.
type Checkout struct {
	state      State
	failReason string
}

func New() *Checkout {
	return &Checkout{state: StateIdle}
}

func (c *Checkout) State() State {
	return c.state
}

// FailReason returns the recorded reason once the checkout is in Failed.
func (c *Checkout) FailReason() string {
	return c.failReason
}

// Advance moves the checkout to the next working state.
func (c *Checkout) Advance(next State) error {
	if !CanTransition(c.state, next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.state, next)
	}
	c.state = next
	return nil
}

// Fail terminates the attempt with a reason. Failing a terminal checkout is
// rejected like any other invalid transition.
func (c *Checkout) Fail(reason string) error {
	if err := c.Advance(StateFailed); err != nil {
		return err
	}
	c.failReason = reason
	return nil
}
