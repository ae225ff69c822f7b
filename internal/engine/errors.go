package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidModel indicates a model wiring problem detected at build
// time, such as a missing time axis.
var ErrInvalidModel = errors.New("engine: invalid model")

// UnsatisfiedRequirementError indicates a component input that no
// exogenous series and no other component's output can provide. It is
// raised at build time; seeing it during a run means an internal
// invariant was violated.
type UnsatisfiedRequirementError struct {
	Component string
	Variable  string
}

func (e *UnsatisfiedRequirementError) Error() string {
	return fmt.Sprintf("engine: component %q requires %q which nothing provides", e.Component, e.Variable)
}

// UnitMismatchError indicates a requirement whose declared unit differs
// from the unit of the series it resolved to.
type UnitMismatchError struct {
	Component string
	Variable  string
	Expected  string
	Actual    string
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("engine: component %q expects %q in %q but the series carries %q",
		e.Component, e.Variable, e.Expected, e.Actual)
}

// DuplicateOutputError indicates two components declaring the same
// output variable. No two components within a model may produce the same
// name; namespace with '|' (e.g. "Emissions|CO2") to avoid collisions.
type DuplicateOutputError struct {
	Variable string
	First    string
	Second   string
}

func (e *DuplicateOutputError) Error() string {
	return fmt.Sprintf("engine: components %q and %q both produce %q", e.First, e.Second, e.Variable)
}

// SolveError wraps a component's step failure with enough context to act
// on without re-running: the component identity and the step bounds.
type SolveError struct {
	Component string
	TCurrent  float64
	TNext     float64
	Wrapped   error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("engine: component %q failed solving [%v, %v): %v",
		e.Component, e.TCurrent, e.TNext, e.Wrapped)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
