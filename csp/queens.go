package csp

// QueensConstraint places one queen per column (the variable) on a row (the
// value) and forbids any two queens sharing a row or a diagonal.
type QueensConstraint struct {
	Columns []int
}

// Variables returns the board columns.
func (c QueensConstraint) Variables() []int { return c.Columns }

// Satisfied checks every pair of placed queens. Unplaced columns are ignored.
func (c QueensConstraint) Satisfied(assignment map[int]int) bool {
	for i, c1 := range c.Columns {
		r1, ok := assignment[c1]
		if !ok {
			continue
		}
		for _, c2 := range c.Columns[i+1:] {
			r2, ok := assignment[c2]
			if !ok {
				continue
			}
			if r1 == r2 {
				return false
			}
			if abs(r1-r2) == abs(c1-c2) {
				return false
			}
		}
	}

	return true
}

// Queens returns the n-queens problem on an n×n board; columns and rows are
// numbered from 1. A negative n is treated as 0, the empty board, whose only
// solution is the empty assignment.
func Queens(n int) *CSP[int, int] {
	n = max(n, 0)
	columns := make([]int, n)
	for i := range columns {
		columns[i] = i + 1
	}
	domains := make(map[int][]int, n)
	for _, col := range columns {
		domains[col] = append([]int(nil), columns...)
	}
	p, _ := New(columns, domains)
	_ = p.AddConstraint(QueensConstraint{Columns: columns})

	return p
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
