// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockq

// Queue is the combined producer-consumer interface for a bounded FIFO queue.
//
// Enqueue and Dequeue apply the queue's default [Strategy]. Under Abandon
// they return ErrWouldBlock when they cannot proceed (queue full, queue
// empty, or endpoint claimed by another goroutine). Under Force and Yield
// they wait until the operation commits and always return nil.
//
// Example:
//
//	q := lockq.Build[int](lockq.New(1024))
//
//	// Enqueue
//	val := 42
//	if err := q.Enqueue(&val); err != nil {
//	    // Handle full queue
//	}
//
//	// Dequeue
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
	Len() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The
// queue stores a copy of the pointed-to value, so the original can be
// modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element to the queue.
	// Returns nil on success, ErrWouldBlock if the element was not added.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value. The vacated slot is cleared to allow
// garbage collection of referenced objects.
type Consumer[T any] interface {
	// Dequeue removes and returns an element from the queue.
	// Returns (zero-value, ErrWouldBlock) if no element was removed.
	Dequeue() (T, error)
}

var (
	_ Queue[int]    = (*Bounded[int])(nil)
	_ Producer[int] = (*SpinQueue[int])(nil)
	_ Consumer[int] = (*SpinQueue[int])(nil)
)
