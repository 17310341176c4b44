package missionaries_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/missionaries"
	"github.com/katalvlaran/statespace/search"
)

func TestLegal(t *testing.T) {
	cases := []struct {
		name  string
		state missionaries.State
		want  bool
	}{
		{"start", missionaries.Start(3), true},
		{"west outnumbered", missionaries.State{WestMissionaries: 1, WestCannibals: 2, Total: 3}, false},
		{"east outnumbered", missionaries.State{WestMissionaries: 1, WestCannibals: 0, Total: 3}, false},
		{"no missionaries west", missionaries.State{WestMissionaries: 0, WestCannibals: 3, Total: 3}, true},
		{"balanced", missionaries.State{WestMissionaries: 1, WestCannibals: 1, Total: 3}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.state.Legal())
		})
	}
}

func TestSuccessors_FromStart(t *testing.T) {
	got := missionaries.Start(3).Successors()
	// (2,0) leaves 1M vs 3C west, (1,0) leaves 2M vs 3C west: both illegal.
	want := []missionaries.State{
		{WestMissionaries: 3, WestCannibals: 1, Boat: missionaries.East, Total: 3},
		{WestMissionaries: 3, WestCannibals: 2, Boat: missionaries.East, Total: 3},
		{WestMissionaries: 2, WestCannibals: 2, Boat: missionaries.East, Total: 3},
	}
	assert.Equal(t, want, got)
}

func TestBreadthFirst_Solves(t *testing.T) {
	start := missionaries.Start(missionaries.DefaultCount)
	n := search.BreadthFirst(start, missionaries.State.GoalTest, missionaries.State.Successors)
	require.NotNil(t, n)

	path := search.NodeToPath(n)
	require.Len(t, path, 12)
	assert.Equal(t, start, path[0])
	assert.True(t, path[len(path)-1].GoalTest())
	for i, s := range path {
		assert.True(t, s.Legal(), "state %d illegal: %+v", i, s)
		if i > 0 {
			assert.NotEqual(t, path[i-1].Boat, s.Boat, "boat must cross every step")
			assert.Contains(t, path[i-1].Successors(), s)
		}
	}
}

func TestBreadthFirst_FourIsUnsolvable(t *testing.T) {
	n := search.BreadthFirst(missionaries.Start(4), missionaries.State.GoalTest, missionaries.State.Successors)
	assert.Nil(t, n)
}

func TestDisplay(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, missionaries.Display(&buf, nil))
	assert.Empty(t, buf.String())

	s0 := missionaries.Start(3)
	s1 := missionaries.State{WestMissionaries: 3, WestCannibals: 1, Boat: missionaries.East, Total: 3}
	require.NoError(t, missionaries.Display(&buf, []missionaries.State{s0, s1}))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "On the west bank there are 3 missionaries and 3 cannibals."))
	assert.Contains(t, out, "0 missionaries and 2 cannibals moved from the west to the east bank.")
	assert.Contains(t, out, "The boat is on the east bank.")
}
