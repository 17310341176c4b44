package csp

import (
	"fmt"
	"maps"
	"slices"
)

// CSP is a constraint-satisfaction problem over variables V with values D.
type CSP[V comparable, D any] struct {
	variables   []V
	domains     map[V][]D
	constraints map[V][]Constraint[V, D] // per variable, in insertion order
}

// New builds a problem from variables and their domains. The variable order
// is the order in which BacktrackingSearch assigns them.
// Returns ErrMissingDomain if any variable lacks an entry in domains.
func New[V comparable, D any](variables []V, domains map[V][]D) (*CSP[V, D], error) {
	p := &CSP[V, D]{
		variables:   slices.Clone(variables),
		domains:     make(map[V][]D, len(variables)),
		constraints: make(map[V][]Constraint[V, D], len(variables)),
	}
	for _, v := range variables {
		dom, ok := domains[v]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingDomain, v)
		}
		p.domains[v] = slices.Clone(dom)
		p.constraints[v] = nil
	}

	return p, nil
}

// Variables returns the problem's variables in assignment order.
func (p *CSP[V, D]) Variables() []V { return slices.Clone(p.variables) }

// Domain returns the candidate values for v, or nil if v is unknown.
func (p *CSP[V, D]) Domain(v V) []D { return slices.Clone(p.domains[v]) }

// AddConstraint attaches c to every variable it is scoped to.
// Returns ErrUnknownVariable, leaving the problem unchanged, if c refers to a
// variable outside the problem.
func (p *CSP[V, D]) AddConstraint(c Constraint[V, D]) error {
	scope := c.Variables()
	for _, v := range scope {
		if _, ok := p.constraints[v]; !ok {
			return fmt.Errorf("%w: %v", ErrUnknownVariable, v)
		}
	}
	for _, v := range scope {
		p.constraints[v] = append(p.constraints[v], c)
	}

	return nil
}

// Consistent reports whether every constraint touching variable accepts
// assignment.
func (p *CSP[V, D]) Consistent(variable V, assignment map[V]D) bool {
	for _, c := range p.constraints[variable] {
		if !c.Satisfied(assignment) {
			return false
		}
	}

	return true
}

// BacktrackingSearch extends assignment (which may be nil) to a complete
// consistent assignment and returns it, or returns nil if none exists.
// A seed that names a variable outside the problem, or that already violates
// a constraint, has no consistent completion and also yields nil.
// The caller's map is never modified.
func (p *CSP[V, D]) BacktrackingSearch(assignment map[V]D) map[V]D {
	for v := range assignment {
		if _, ok := p.domains[v]; !ok {
			return nil
		}
		if !p.Consistent(v, assignment) {
			return nil
		}
	}

	return p.backtrack(assignment)
}

// backtrack assumes every key of assignment is a problem variable and the
// assignment is consistent so far.
func (p *CSP[V, D]) backtrack(assignment map[V]D) map[V]D {
	var first V
	complete := true
	for _, v := range p.variables {
		if _, ok := assignment[v]; !ok {
			first, complete = v, false
			break
		}
	}
	if complete {
		result := make(map[V]D, len(p.variables))
		maps.Copy(result, assignment)
		return result
	}

	for _, value := range p.domains[first] {
		local := make(map[V]D, len(assignment)+1)
		maps.Copy(local, assignment)
		local[first] = value
		if !p.Consistent(first, local) {
			continue
		}
		if result := p.backtrack(local); result != nil {
			return result
		}
	}

	return nil
}
