// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
	"golang.org/x/sys/cpu"
)

// claimedFlag marks an endpoint word as claimed by one goroutine.
// The low bits keep the index that was claimed, so the word is never
// mistaken for a valid index while the flag is set.
const claimedFlag = 1 << 63

// Bounded is a fixed-capacity multi-producer multi-consumer FIFO queue.
//
// Each endpoint word doubles as a lock: a goroutine claims the tail (or
// head) by compare-and-swapping the index to claimedFlag|index, updates
// the slot and the count, and releases by storing the advanced index.
// Producers exclude each other, consumers exclude each other, and a
// producer and a consumer run concurrently.
//
// Progress holds only while every claimant finishes its critical section.
// A goroutine preempted while holding the tail stalls other producers, but
// never consumers, which claim the head independently.
//
// Elements are dequeued in commit order: the order in which Push calls
// finished incrementing the count, not the order in which they were called.
//
// Elements are copied in and out by plain assignment. A dequeued slot is
// zeroed so that referenced memory can be reclaimed.
//
// Memory: capacity slots of T
type Bounded[T any] struct {
	_        cpu.CacheLinePad
	tail     atomix.Uint64 // Producer index or claimedFlag|index
	_        cpu.CacheLinePad
	head     atomix.Uint64 // Consumer index or claimedFlag|index
	_        cpu.CacheLinePad
	count    atomix.Int64 // Occupied slots, 0 <= count <= capacity
	_        cpu.CacheLinePad
	buffer   []T
	capacity uint64
	strategy Strategy // Default for Enqueue and Dequeue
}

// NewBounded creates a queue holding at most capacity elements.
// Capacity is used as given; it is not rounded to a power of 2.
// Enqueue and Dequeue use the Abandon strategy.
//
// Panics if capacity < 1.
func NewBounded[T any](capacity int) *Bounded[T] {
	return newBounded[T](capacity, Abandon)
}

func newBounded[T any](capacity int, strategy Strategy) *Bounded[T] {
	if capacity < 1 {
		panic("lockq: capacity must be >= 1")
	}
	return &Bounded[T]{
		buffer:   make([]T, capacity),
		capacity: uint64(capacity),
		strategy: strategy,
	}
}

// Push copies *elem into the slot at the tail.
//
// When the tail is claimed by another producer or the queue is full, s
// decides: Abandon returns false, Force and Yield wait and retry until
// the element is committed. A false return leaves the queue unchanged.
//
// Panics if s is not one of Abandon, Force or Yield.
func (q *Bounded[T]) Push(elem *T, s Strategy) bool {
	s.check()
	sw := spin.Wait{}
	for {
		tail := q.tail.LoadAcquire()
		if tail&claimedFlag != 0 || q.IsFull() {
			if !s.wait(&sw) {
				return false
			}
			continue
		}
		if !q.claim(&q.tail, tail, true) {
			continue
		}

		q.buffer[tail] = *elem
		q.count.AddAcqRel(1)
		if !q.tail.CompareAndSwapAcqRel(claimedFlag|tail, q.next(tail)) {
			panic("lockq: tail release failed")
		}
		return true
	}
}

// Pop moves the element at the head into *out.
// If out is nil the element is removed and discarded.
//
// When the head is claimed by another consumer or the queue is empty, s
// decides: Abandon returns false, Force and Yield wait and retry until an
// element is removed. A false return leaves the queue and *out unchanged.
//
// Panics if s is not one of Abandon, Force or Yield.
func (q *Bounded[T]) Pop(out *T, s Strategy) bool {
	s.check()
	sw := spin.Wait{}
	for {
		head := q.head.LoadAcquire()
		if head&claimedFlag != 0 || q.IsEmpty() {
			if !s.wait(&sw) {
				return false
			}
			continue
		}
		if !q.claim(&q.head, head, false) {
			continue
		}

		var zero T
		if out != nil {
			*out = q.buffer[head]
		}
		q.buffer[head] = zero
		q.count.AddAcqRel(-1)
		if !q.head.CompareAndSwapAcqRel(claimedFlag|head, q.next(head)) {
			panic("lockq: head release failed")
		}
		return true
	}
}

// Enqueue adds an element using the queue's default strategy.
// Returns ErrWouldBlock if the element was not committed.
func (q *Bounded[T]) Enqueue(elem *T) error {
	if !q.Push(elem, q.strategy) {
		return ErrWouldBlock
	}
	return nil
}

// Dequeue removes and returns an element using the queue's default strategy.
// Returns (zero-value, ErrWouldBlock) if nothing was removed.
func (q *Bounded[T]) Dequeue() (T, error) {
	var elem T
	if !q.Pop(&elem, q.strategy) {
		return elem, ErrWouldBlock
	}
	return elem, nil
}

// IsFull reports whether every slot was occupied at the time of the load.
// The result is a hint and may be stale on return.
func (q *Bounded[T]) IsFull() bool {
	return uint64(q.count.LoadAcquire()) >= q.capacity
}

// IsEmpty reports whether no slot was occupied at the time of the load.
// The result is a hint and may be stale on return.
func (q *Bounded[T]) IsEmpty() bool {
	return q.count.LoadAcquire() <= 0
}

// Len returns a snapshot of the number of committed elements.
func (q *Bounded[T]) Len() int {
	return int(q.count.LoadAcquire())
}

// Cap returns the queue capacity.
func (q *Bounded[T]) Cap() int {
	return int(q.capacity)
}

// Strategy returns the strategy used by Enqueue and Dequeue.
func (q *Bounded[T]) Strategy() Strategy {
	return q.strategy
}

// claim moves an endpoint word from idx to claimedFlag|idx.
//
// Another goroutine may have filled (producer) or emptied (consumer) the
// queue between the caller's check and the claim. In that case the word
// is restored to idx, no slot is touched, and claim returns false.
func (q *Bounded[T]) claim(word *atomix.Uint64, idx uint64, producer bool) bool {
	if !word.CompareAndSwapAcqRel(idx, claimedFlag|idx) {
		return false
	}
	if (producer && q.IsFull()) || (!producer && q.IsEmpty()) {
		if !word.CompareAndSwapAcqRel(claimedFlag|idx, idx) {
			panic("lockq: endpoint restore failed")
		}
		return false
	}
	return true
}

func (q *Bounded[T]) next(i uint64) uint64 {
	i++
	if i == q.capacity {
		return 0
	}
	return i
}
