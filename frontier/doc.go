// Package frontier provides the three containers the search strategies
// choose among:
//
//   - Queue: FIFO, used by breadth-first search.
//   - Stack: LIFO, used by depth-first search.
//   - Priority: min-priority queue keyed by an integer, used by uniform-cost
//     search. Equal keys pop in insertion order.
//
// None of them deduplicate entries: the same logical position may be held
// several times. Deciding which entries are stale is the caller's job.
//
// Complexity:
//
//   - Queue, Stack: amortized O(1) per operation.
//   - Priority: O(log n) Push and Pop via container/heap.
package frontier
