package frontier

import "container/heap"

// Priority is a min-priority queue. Pop returns the entry with the smallest
// key; among equal keys the one pushed first wins. The zero value is ready
// to use.
type Priority[T any] struct {
	h   entryHeap[T]
	seq uint64
}

// Push inserts v with the given key. Entries for the same logical item may
// coexist with different keys.
func (p *Priority[T]) Push(v T, key int) {
	heap.Push(&p.h, entry[T]{value: v, key: key, seq: p.seq})
	p.seq++
}

// Pop removes the minimum entry and returns its value and key. ok is false
// when the queue is empty.
func (p *Priority[T]) Pop() (v T, key int, ok bool) {
	if len(p.h) == 0 {
		return v, 0, false
	}
	e := heap.Pop(&p.h).(entry[T])

	return e.value, e.key, true
}

// Peek returns the minimum entry without removing it.
func (p *Priority[T]) Peek() (v T, key int, ok bool) {
	if len(p.h) == 0 {
		return v, 0, false
	}

	return p.h[0].value, p.h[0].key, true
}

// Len returns the number of pending entries.
func (p *Priority[T]) Len() int { return len(p.h) }

// Empty reports whether the queue holds nothing.
func (p *Priority[T]) Empty() bool { return len(p.h) == 0 }

// entry pairs a value with its key and insertion sequence number.
type entry[T any] struct {
	value T
	key   int
	seq   uint64
}

// entryHeap orders entries by key, then by seq, which makes the heap stable.
type entryHeap[T any] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
