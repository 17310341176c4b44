package missionaries

import (
	"fmt"
	"io"
)

// DefaultCount is the classic puzzle size: three of each.
const DefaultCount = 3

// Bank identifies a river bank.
type Bank bool

const (
	West Bank = true
	East Bank = false
)

// String returns "west" or "east".
func (b Bank) String() string {
	if b == West {
		return "west"
	}
	return "east"
}

// State is one configuration of the puzzle. Only west-bank counts are stored;
// east-bank counts follow from Total.
type State struct {
	WestMissionaries int
	WestCannibals    int
	Boat             Bank
	Total            int
}

// Start returns the initial state: n missionaries, n cannibals and the boat
// on the west bank.
func Start(n int) State {
	return State{WestMissionaries: n, WestCannibals: n, Boat: West, Total: n}
}

// EastMissionaries returns the number of missionaries on the east bank.
func (s State) EastMissionaries() int { return s.Total - s.WestMissionaries }

// EastCannibals returns the number of cannibals on the east bank.
func (s State) EastCannibals() int { return s.Total - s.WestCannibals }

// Legal reports whether no bank has its missionaries outnumbered.
func (s State) Legal() bool {
	if s.WestMissionaries > 0 && s.WestMissionaries < s.WestCannibals {
		return false
	}
	if em, ec := s.EastMissionaries(), s.EastCannibals(); em > 0 && em < ec {
		return false
	}
	return true
}

// GoalTest reports whether everyone has crossed to the east bank.
func (s State) GoalTest() bool {
	return s.Legal() && s.EastMissionaries() == s.Total && s.EastCannibals() == s.Total
}

// Successors returns every legal state one crossing away. Boat loads are tried
// in the order: two missionaries, one missionary, two cannibals, one cannibal,
// one of each.
func (s State) Successors() []State {
	here := func(m, c int) bool { // enough people on the boat's bank
		if s.Boat == West {
			return s.WestMissionaries >= m && s.WestCannibals >= c
		}
		return s.EastMissionaries() >= m && s.EastCannibals() >= c
	}
	sign := -1 // boat leaves the west bank
	if s.Boat == East {
		sign = 1
	}

	out := make([]State, 0, 5)
	for _, load := range [5][2]int{{2, 0}, {1, 0}, {0, 2}, {0, 1}, {1, 1}} {
		if !here(load[0], load[1]) {
			continue
		}
		next := State{
			WestMissionaries: s.WestMissionaries + sign*load[0],
			WestCannibals:    s.WestCannibals + sign*load[1],
			Boat:             !s.Boat,
			Total:            s.Total,
		}
		if next.Legal() {
			out = append(out, next)
		}
	}

	return out
}

// String describes both banks and the boat.
func (s State) String() string {
	return fmt.Sprintf("On the west bank there are %d missionaries and %d cannibals.\n"+
		"On the east bank there are %d missionaries and %d cannibals.\n"+
		"The boat is on the %s bank.\n",
		s.WestMissionaries, s.WestCannibals,
		s.EastMissionaries(), s.EastCannibals(), s.Boat)
}

// Describe narrates the crossing that turns prev into cur.
func Describe(prev, cur State) string {
	if cur.Boat == West {
		return fmt.Sprintf("%d missionaries and %d cannibals moved from the east to the west bank.",
			prev.EastMissionaries()-cur.EastMissionaries(), prev.EastCannibals()-cur.EastCannibals())
	}
	return fmt.Sprintf("%d missionaries and %d cannibals moved from the west to the east bank.",
		prev.WestMissionaries-cur.WestMissionaries, prev.WestCannibals-cur.WestCannibals)
}

// Display writes path to w: the first state, then each crossing followed by
// the state it produces. An empty path writes nothing.
func Display(w io.Writer, path []State) error {
	if len(path) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, path[0]); err != nil {
		return err
	}
	for i := 1; i < len(path); i++ {
		if _, err := fmt.Fprintf(w, "%s\n\n%s\n", Describe(path[i-1], path[i]), path[i]); err != nil {
			return err
		}
	}

	return nil
}
