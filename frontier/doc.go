// Package frontier provides the pending-work containers used by the search
// drivers: a LIFO Stack, a FIFO Queue and a PriorityQueue.
//
// What
//
//   - Stack:         Push appends, Pop removes the most recently pushed element.
//   - Queue:         Push appends, Pop removes the least recently pushed element.
//   - PriorityQueue: Pop removes the element with the smallest priority.
//
// All three satisfy the Frontier interface, so a driver can be written once
// against Frontier and handed whichever ordering it needs.
//
// Determinism
//
//	PriorityQueue breaks ties by insertion sequence: of two elements with
//	equal priority, the one pushed first is popped first. Given the same
//	sequence of pushes, the pop sequence is always the same.
//
// Empty containers
//
//	Pop and Peek on an empty container return the zero value and false.
//	They never panic.
//
// Complexity
//
//   - Stack:         O(1) amortised Push/Pop.
//   - Queue:         O(1) amortised Push/Pop.
//   - PriorityQueue: O(log n) Push/Pop, O(1) Peek.
//
// Containers are not safe for concurrent use; a search call owns its frontier.
package frontier
