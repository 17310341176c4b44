// Package csp solves constraint-satisfaction problems by backtracking search.
//
// A problem is a list of variables, a finite domain of candidate values per
// variable, and constraints each scoped to a subset of the variables.
// BacktrackingSearch assigns the first unassigned variable (in declaration
// order) each value of its domain (in domain order), prunes any partial
// assignment a relevant constraint rejects, and backtracks on dead ends. It
// returns the first complete consistent assignment, or nil when the domain
// space is exhausted. A seed assignment passed to BacktrackingSearch is
// checked first: unknown variables or a violated constraint yield nil.
//
// Constraint contract
//
//	Satisfied must report true while any of the constraint's scoped
//	variables is still unassigned. That lets the solver prune a partial
//	assignment as soon as it is contradictory, without waiting for a full
//	instantiation.
//
// Bundled constraints
//
//   - MapColoringConstraint: two neighbouring regions get different colours.
//   - QueensConstraint:      no two queens share a row or a diagonal.
//
// Errors
//
//   - ErrMissingDomain   a variable was declared without a domain.
//   - ErrUnknownVariable a constraint scopes a variable the problem lacks.
//
// Complexity
//
//	Worst case O(d^n) assignments for n variables with domains of size d;
//	pruning usually cuts this drastically.
package csp
