package services

import (
	"errors"
	"sync"
)

// FlowState is the stage a CRUD submission is in.
type FlowState string

const (
	FlowIdle       FlowState = "idle"
	FlowValidating FlowState = "validating"
	FlowSubmitting FlowState = "submitting"
	FlowSucceeded  FlowState = "success"
	FlowFailed     FlowState = "failed"
)

// ErrSubmitInFlight is returned when a submission starts while another one for
// the same form is still running. Mirrors the disabled submit button of the
// form: no two submissions for the same entity form may be in flight.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// Flow tracks one form's submission through
// idle -> validating -> submitting -> (success | failed).
type Flow struct {
	mu    sync.Mutex
	state FlowState
}

// NewFlow creates a flow in the idle state.
func NewFlow() *Flow {
	return &Flow{state: FlowIdle}
}

// State returns the current stage.
func (f *Flow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// begin moves the flow to validating, rejecting a second in-flight submission.
func (f *Flow) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == FlowValidating || f.state == FlowSubmitting {
		return ErrSubmitInFlight
	}
	f.state = FlowValidating
	return nil
}

// submit moves the flow from validating to submitting.
func (f *Flow) submit() {
	f.mu.Lock()
	f.state = FlowSubmitting
	f.mu.Unlock()
}

// fail ends the submission in the failed state.
func (f *Flow) fail() {
	f.mu.Lock()
	f.state = FlowFailed
	f.mu.Unlock()
}

// succeed ends the submission in the success state.
func (f *Flow) succeed() {
	f.mu.Lock()
	f.state = FlowSucceeded
	f.mu.Unlock()
}

// run executes a submission end to end: the validate step runs in the
// validating state and aborts without submitting on any violation; the submit
// step runs in the submitting state.
func (f *Flow) run(validate func() error, submitFn func() error) error {
	if err := f.begin(); err != nil {
		return err
	}
	if err := validate(); err != nil {
		f.fail()
		return err
	}
	f.submit()
	if err := submitFn(); err != nil {
		f.fail()
		return err
	}
	f.succeed()
	return nil
}
