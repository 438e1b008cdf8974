package models

import (
	"fmt"

	"amply/pkg/platform/sentinel"
)

// SubmissionState is the position of one submission attempt in its state machine.
//
//	idle -> evaluated -> accepted
//	                  -> rejected
//
// accepted and rejected are terminal; a new attempt always starts at idle.
type SubmissionState string

const (
	StateIdle      SubmissionState = "idle"
	StateEvaluated SubmissionState = "evaluated"
	StateAccepted  SubmissionState = "accepted"
	StateRejected  SubmissionState = "rejected"
)

var submissionTransitions = map[SubmissionState][]SubmissionState{
	StateIdle:      {StateEvaluated},
	StateEvaluated: {StateAccepted, StateRejected},
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s SubmissionState) CanTransitionTo(next SubmissionState) bool {
	for _, allowed := range submissionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s SubmissionState) IsTerminal() bool {
	return len(submissionTransitions[s]) == 0
}

// Attempt tracks one submission from idle to its terminal state.
type Attempt struct {
	State      SubmissionState
	Evaluation Evaluation
}

// NewAttempt starts a fresh attempt in the idle state.
func NewAttempt() *Attempt {
	return &Attempt{State: StateIdle}
}

// Evaluated records the engine's verdict and moves to evaluated.
func (a *Attempt) Evaluated(ev Evaluation) error {
	if err := a.transition(StateEvaluated); err != nil {
		return err
	}
	a.Evaluation = ev
	return nil
}

// Resolve moves an evaluated attempt to accepted or rejected according to
// the evaluation it holds.
func (a *Attempt) Resolve() (SubmissionState, error) {
	next := StateRejected
	if a.Evaluation.AllValid {
		next = StateAccepted
	}
	if err := a.transition(next); err != nil {
		return a.State, err
	}
	return next, nil
}

func (a *Attempt) transition(next SubmissionState) error {
	if !a.State.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", sentinel.ErrInvalidState, a.State, next)
	}
	a.State = next
	return nil
}

// SubmissionOutcome is the controller's answer to one submit request.
// It is created once per attempt and never mutated afterwards.
type SubmissionOutcome struct {
	Accepted     bool            `json:"accepted"`
	State        SubmissionState `json:"state"`
	Entry        *Entry          `json:"entry,omitempty"`
	Evaluation   Evaluation      `json:"evaluation"`
	Confirmation string          `json:"confirmation,omitempty"`
}

// ConfirmationMessage is the text shown after an entry is added. The name is
// interpolated verbatim.
func ConfirmationMessage(fullName string) string {
	return "You added " + fullName + " to the list of entities."
}
