// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lockq provides small concurrent containers for pipelines.
//
// The package offers three independent containers:
//
//   - Bounded: fixed-capacity MPMC FIFO queue claimed through its index words
//   - SpinQueue: unbounded FIFO queue serialized by one SpinLock
//   - Cell: single value with shared readers and an exclusive writer
//
// # Quick Start
//
// Direct constructors:
//
//	q := lockq.NewBounded[Event](1024)
//	s := lockq.NewSpinQueue[*Request]()
//	c := lockq.NewCell(Config{})
//
// Builder API selects the default contention strategy:
//
//	q := lockq.Build[Event](lockq.New(1024))                 // Abandon
//	q := lockq.BuildBounded[Event](lockq.New(1024).Force())  // Force
//	q := lockq.BuildBounded[Event](lockq.New(1024).Yield())  // Yield
//
// # Contention Strategies
//
// Bounded.Push and Bounded.Pop take a [Strategy] per call. It decides what
// happens when the endpoint is claimed by another goroutine or the queue
// is full (Push) or empty (Pop):
//
//	Abandon - return false immediately, nothing changes
//	Force   - pause the CPU and retry until the operation commits
//	Yield   - yield the goroutine once, then retry like Force
//
//	v := 42
//	if !q.Push(&v, lockq.Abandon) {
//	    // Full or tail busy - handle backpressure
//	}
//
//	var out int
//	q.Pop(&out, lockq.Force) // Returns only after an element is removed
//
// Abandon is the building block for timeouts. Compose retries with your
// own clock:
//
//	deadline := time.Now().Add(timeout)
//	backoff := iox.Backoff{}
//	for !q.Push(&v, lockq.Abandon) {
//	    if time.Now().After(deadline) {
//	        return ErrTimeout
//	    }
//	    backoff.Wait()
//	}
//
// # Claim Protocol
//
// Bounded keeps the head and tail indices in atomic words that double as
// locks. A producer:
//
//  1. loads the tail; if it is claimed or the queue is full, applies the strategy
//  2. claims the tail with CAS(index, claimedFlag|index)
//  3. re-checks fullness and restores the tail if a racing producer filled the queue
//  4. writes the slot and increments the count
//  5. releases the tail with CAS(claimedFlag|index, index+1 mod capacity)
//
// Consumers run the same protocol on the head. Producers exclude each
// other and consumers exclude each other, while one producer and one
// consumer proceed in parallel. A slot is only ever touched by the
// goroutine holding the matching endpoint, and the count orders the slot
// write before the slot read.
//
// A release that fails means the mutual exclusion invariant was broken.
// Bounded panics instead of continuing with corrupted state.
//
// Progress is lock-free between the two endpoints but spinlock-based
// within one: a producer preempted between claim and release delays other
// producers until it resumes.
//
// # Ordering
//
// Bounded is FIFO in commit order. Two concurrent Push calls may commit in
// either order regardless of which was called first. Elements pushed by
// one goroutine are always dequeued in the order that goroutine pushed
// them.
//
// # Error Handling
//
// Push, Pop and SpinQueue.TryPop report "cannot proceed" with a boolean.
// The error-returning Enqueue and Dequeue report it with [ErrWouldBlock],
// sourced from [code.hybscloud.com/iox] for ecosystem consistency.
//
//	lockq.IsWouldBlock(err)  // true if queue full/empty/busy
//	lockq.IsSemantic(err)    // true if control flow signal
//	lockq.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// Invalid configuration (capacity < 1) and broken invariants panic.
//
// # Capacity and Length
//
// Bounded capacity is exact and never grows. Len, IsFull and IsEmpty are
// snapshots of the committed count and may be stale the instant they
// return; treat them as hints.
//
// SpinQueue grows without limit.
//
// # Element Types
//
// Bounded copies elements by plain assignment and runs no per-element
// cleanup beyond zeroing a vacated slot. Store values, not resources that
// need an explicit release.
//
// # Race Detection
//
// Bounded and SpinQueue protect non-atomic data through acquire-release
// ordering on atomix words, which Go's race detector cannot observe.
// Their concurrent tests are skipped when [RaceEnabled] is true. Cell uses
// sync.RWMutex and is fully visible to the race detector.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering, [code.hybscloud.com/spin] for CPU pause instructions,
// [github.com/eapache/queue] for SpinQueue storage and
// [golang.org/x/sys/cpu] for cache line padding.
package lockq
