package csp

import "errors"

// Sentinel errors for problem construction.
var (
	// ErrMissingDomain indicates a variable has no domain assigned to it.
	ErrMissingDomain = errors.New("csp: every variable must have a domain")

	// ErrUnknownVariable indicates a constraint refers to a variable that is
	// not part of the problem.
	ErrUnknownVariable = errors.New("csp: constraint variable not in problem")
)

// Constraint restricts the values a subset of variables may take together.
type Constraint[V comparable, D any] interface {
	// Variables returns the variables the constraint is scoped to.
	Variables() []V

	// Satisfied reports whether assignment respects the constraint. It must
	// return true while any scoped variable is missing from assignment.
	Satisfied(assignment map[V]D) bool
}
