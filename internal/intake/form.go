package intake

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/glowpod/order-svc/internal/service/models/order"
	"github.com/glowpod/order-svc/internal/service/models/pricing"
)

// State is the form's submission state.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// DefaultNumUnits is the unit count preselected on a fresh form.
const DefaultNumUnits = 2

// DefaultRevertAfter is how long the success confirmation is shown before
// the form reverts to its initial state.
const DefaultRevertAfter = 5 * time.Second

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission has not resolved yet.
var ErrSubmitInFlight = errors.New("submission already in flight")

// pipeline is the submission pipeline the form delegates to.
type pipeline interface {
	PlaceOrder(ctx context.Context, draft Draft) (order.Order, error)
}

// Form drives the order form state machine:
// Idle -> Submitting -> Success (auto-revert to Idle) or Error (revert on
// next Submit). The form permits at most one in-flight submission, which
// is advisory client state only, not a server-side guard.
type Form struct {
	mu          sync.Mutex
	state       State
	draft       Draft
	fieldErrs   FieldErrors
	submitErr   string
	pipeline    pipeline
	revertAfter time.Duration
	revertTimer *time.Timer
}

// option is a function that configures the Form.
type option func(*Form)

// NewForm creates a form in its initial state with the default unit
// selection.
func NewForm(p pipeline, opts ...option) *Form {
	f := &Form{
		state:       StateIdle,
		draft:       Draft{NumUnits: DefaultNumUnits},
		pipeline:    p,
		revertAfter: DefaultRevertAfter,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// WithRevertAfter overrides the success confirmation window.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithRevertAfter(d time.Duration) option {
	return func(f *Form) {
		f.revertAfter = d
	}
}

// State returns the current form state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// Draft returns the current pre-submission draft.
func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.draft
}

// FieldErrors returns the per-field messages from the last rejected
// submission attempt, if any.
func (f *Form) FieldErrors() FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.fieldErrs
}

// SubmitError returns the failure message from the last pipeline error.
func (f *Form) SubmitError() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.submitErr
}

// SelectUnits changes the unit selector. The displayed price follows the
// selection without any network call.
func (f *Form) SelectUnits(numUnits int) error {
	if _, err := pricing.PriceFor(numUnits); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.NumUnits = numUnits

	return nil
}

// DisplayPrice returns the live total for the current unit selection,
// read from the price table.
func (f *Form) DisplayPrice() int64 {
	f.mu.Lock()
	numUnits := f.draft.NumUnits
	f.mu.Unlock()

	price, err := pricing.PriceFor(numUnits)
	if err != nil {
		return 0
	}

	return price
}

// Submit validates the draft and, when valid, runs the submission
// pipeline. Validation failures block submission entirely: the pipeline
// is never invoked and the per-field messages are exposed. A pipeline
// failure keeps the entered data and allows another Submit; success
// clears the form and auto-reverts to Idle after the confirmation window.
func (f *Form) Submit(ctx context.Context, draft Draft) error {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()

		return ErrSubmitInFlight
	}

	f.draft = draft
	f.submitErr = ""

	if err := draft.Validate(); err != nil {
		var fieldErrs FieldErrors
		if errors.As(err, &fieldErrs) {
			f.fieldErrs = fieldErrs
			f.state = StateIdle
			f.mu.Unlock()

			return fieldErrs
		}
		f.mu.Unlock()

		return err
	}

	f.fieldErrs = nil
	f.state = StateSubmitting
	f.mu.Unlock()

	_, err := f.pipeline.PlaceOrder(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		// Entered data is kept so the user can retry.
		f.state = StateError
		f.submitErr = err.Error()

		return err
	}

	f.state = StateSuccess
	f.draft = Draft{NumUnits: DefaultNumUnits}
	if f.revertTimer != nil {
		f.revertTimer.Stop()
	}
	f.revertTimer = time.AfterFunc(f.revertAfter, f.revertToIdle)

	return nil
}

func (f *Form) revertToIdle() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSuccess {
		f.state = StateIdle
	}
}
