// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockq

import "github.com/eapache/queue"

// SpinQueue is an unbounded FIFO queue serialized by a single SpinLock.
//
// Every operation holds the lock for its whole duration, so producers and
// consumers never run concurrently. Compared with Bounded it trades
// producer/consumer parallelism for unbounded capacity and a simpler
// protocol.
//
// Storage is a ring buffer that grows and shrinks by powers of 2.
//
// The zero value is not usable; create with NewSpinQueue.
type SpinQueue[T any] struct {
	mu    SpinLock
	items *queue.Queue
}

// NewSpinQueue creates an empty SpinQueue.
func NewSpinQueue[T any]() *SpinQueue[T] {
	return &SpinQueue[T]{items: queue.New()}
}

// Push appends elem at the back. It never fails.
func (q *SpinQueue[T]) Push(elem T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items.Add(elem)
}

// TryPop removes and returns the front element.
// Returns (zero-value, false) if the queue is empty.
func (q *SpinQueue[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.items.Length() == 0 {
		var zero T
		return zero, false
	}
	return as[T](q.items.Remove()), true
}

// Front returns the front element without removing it.
// Returns (zero-value, false) if the queue is empty.
func (q *SpinQueue[T]) Front() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.items.Length() == 0 {
		var zero T
		return zero, false
	}
	return as[T](q.items.Peek()), true
}

// Back returns the most recently pushed element without removing it.
// Returns (zero-value, false) if the queue is empty.
func (q *SpinQueue[T]) Back() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := q.items.Length()
	if n == 0 {
		var zero T
		return zero, false
	}
	return as[T](q.items.Get(n - 1)), true
}

// Len returns the number of queued elements.
func (q *SpinQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Length()
}

// IsEmpty reports whether the queue holds no elements.
func (q *SpinQueue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Drain removes every element and returns them in FIFO order.
// Returns nil if the queue is empty.
func (q *SpinQueue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := q.items.Length()
	if n == 0 {
		return nil
	}
	out := make([]T, 0, n)
	for q.items.Length() > 0 {
		out = append(out, as[T](q.items.Remove()))
	}
	return out
}

// Enqueue appends *elem at the back. Always returns nil.
func (q *SpinQueue[T]) Enqueue(elem *T) error {
	q.Push(*elem)
	return nil
}

// Dequeue removes and returns the front element.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SpinQueue[T]) Dequeue() (T, error) {
	elem, ok := q.TryPop()
	if !ok {
		return elem, ErrWouldBlock
	}
	return elem, nil
}

// as converts a stored element back to T.
// A nil interface element (T is itself an interface type) yields the zero value.
func as[T any](v any) T {
	elem, _ := v.(T)
	return elem
}
