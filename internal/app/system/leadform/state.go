// internal/app/system/leadform/state.go
package leadform

import (
	"errors"
	"fmt"
	"time"
)

// State is a lead form's position in its submit cycle.
type State int

const (
	Idle State = iota
	Validating
	Submitting
	Success
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Error:
		return "error"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Settled reports whether s is a terminal banner state.
func (s State) Settled() bool { return s == Success || s == Error }

// DisplayWindow is how long a Success or Error banner stays up before the
// form reads as Idle again.
const DisplayWindow = 5 * time.Second

// ErrTransition is returned for a move the state machine does not allow.
var ErrTransition = errors.New("invalid lead form transition")

// Status is a form state plus the banner it shows.
type Status struct {
	State     State
	Message   string
	SettledAt time.Time
}

// At returns the status as observed at now: a settled status at or past
// its display window reads as Idle.
func (s Status) At(now time.Time) Status {
	if s.State.Settled() && !now.Before(s.SettledAt.Add(DisplayWindow)) {
		return Status{State: Idle}
	}
	return s
}

// Machine walks Idle -> Validating -> Submitting -> Success|Error. A
// validation failure returns Validating -> Idle. Settled states revert to
// Idle after DisplayWindow.
type Machine struct {
	now    func() time.Time
	status Status
}

// NewMachine starts Idle. A nil clock uses time.Now.
func NewMachine(now func() time.Time) *Machine {
	if now == nil {
		now = time.Now
	}
	return &Machine{now: now}
}

// Status returns the current status with the display window applied.
func (m *Machine) Status() Status {
	m.status = m.status.At(m.now())
	return m.status
}

func (m *Machine) move(from, to State) error {
	cur := m.Status().State
	if cur != from {
		return fmt.Errorf("%w: %s -> %s from %s", ErrTransition, from, to, cur)
	}
	m.status = Status{State: to}
	return nil
}

// Validate starts a submit attempt.
func (m *Machine) Validate() error { return m.move(Idle, Validating) }

// Reject ends an attempt that failed validation.
func (m *Machine) Reject() error { return m.move(Validating, Idle) }

// Submit marks the payload as handed to the relay.
func (m *Machine) Submit() error { return m.move(Validating, Submitting) }

// Succeed settles a submission with the success banner.
func (m *Machine) Succeed(msg string) error { return m.settle(Success, msg) }

// Fail settles a submission with the error banner.
func (m *Machine) Fail(msg string) error { return m.settle(Error, msg) }

func (m *Machine) settle(to State, msg string) error {
	if err := m.move(Submitting, to); err != nil {
		return err
	}
	m.status = Status{State: to, Message: msg, SettledAt: m.now()}
	return nil
}
