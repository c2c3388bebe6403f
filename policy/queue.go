package policy

import "container/heap"

// readyHeap is a min-heap of table slots ordered by less.
type readyHeap struct {
	slots []int
	less  func(a, b int) bool
}

func newReadyHeap(less func(a, b int) bool) *readyHeap {
	return &readyHeap{less: less}
}

func (h *readyHeap) Len() int           { return len(h.slots) }
func (h *readyHeap) Less(i, j int) bool { return h.less(h.slots[i], h.slots[j]) }
func (h *readyHeap) Swap(i, j int)      { h.slots[i], h.slots[j] = h.slots[j], h.slots[i] }

func (h *readyHeap) Push(x any) {
	h.slots = append(h.slots, x.(int))
}

func (h *readyHeap) Pop() any {
	old := h.slots
	n := len(old)
	slot := old[n-1]
	h.slots = old[:n-1]
	return slot
}

func (h *readyHeap) push(slot int) {
	heap.Push(h, slot)
}

func (h *readyHeap) pop() (int, bool) {
	if len(h.slots) == 0 {
		return 0, false
	}
	return heap.Pop(h).(int), true
}

// fifo is a plain first-in first-out queue of slots.
type fifo struct {
	slots []int
}

func (q *fifo) push(slot int) {
	q.slots = append(q.slots, slot)
}

func (q *fifo) pop() (int, bool) {
	if len(q.slots) == 0 {
		return 0, false
	}
	slot := q.slots[0]
	q.slots = q.slots[1:]
	return slot, true
}

func (q *fifo) len() int {
	return len(q.slots)
}
