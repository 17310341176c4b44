// Package missionaries models the missionaries-and-cannibals river crossing as
// a search problem.
//
// Total missionaries and Total cannibals start on the west bank with a boat
// that carries one or two people. On neither bank may the missionaries be
// outnumbered by cannibals while at least one missionary is present. The goal
// is everyone on the east bank.
//
// State is a comparable value (west-bank counts, boat side, total), so it can
// be handed to search.BreadthFirst as is:
//
//	start := missionaries.Start(missionaries.DefaultCount)
//	n := search.BreadthFirst(start, missionaries.State.GoalTest, missionaries.State.Successors)
//	missionaries.Display(os.Stdout, search.NodeToPath(n))
package missionaries
