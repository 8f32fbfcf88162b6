// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockq

// Options configures bounded queue creation.
type Options struct {
	// Default contention strategy for Enqueue and Dequeue
	strategy Strategy

	// Capacity (used as given, no rounding)
	capacity int
}

// Builder creates bounded queues with fluent configuration.
//
// Example:
//
//	// Non-blocking queue (default): Enqueue/Dequeue return ErrWouldBlock
//	q := lockq.Build[Event](lockq.New(1024))
//
//	// Spinning queue: Enqueue/Dequeue wait until they commit
//	q := lockq.BuildBounded[Event](lockq.New(1024).Force())
//
//	// Oversubscribed workers: yield before each retry
//	q := lockq.BuildBounded[Job](lockq.New(256).Yield())
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// Capacity is exact: capacity=1000 holds exactly 1000 elements.
// The default strategy is Abandon.
//
// Panics if capacity < 1.
func New(capacity int) *Builder {
	if capacity < 1 {
		panic("lockq: capacity must be >= 1")
	}
	return &Builder{opts: Options{capacity: capacity, strategy: Abandon}}
}

// Abandon makes Enqueue and Dequeue return ErrWouldBlock instead of waiting.
func (b *Builder) Abandon() *Builder {
	b.opts.strategy = Abandon
	return b
}

// Force makes Enqueue and Dequeue spin until they commit.
func (b *Builder) Force() *Builder {
	b.opts.strategy = Force
	return b
}

// Yield makes Enqueue and Dequeue yield the processor before each retry.
func (b *Builder) Yield() *Builder {
	b.opts.strategy = Yield
	return b
}

// Strategy sets the default strategy explicitly.
// Panics if s is not one of Abandon, Force or Yield.
func (b *Builder) Strategy(s Strategy) *Builder {
	s.check()
	b.opts.strategy = s
	return b
}

// Build creates a Queue[T] from the builder configuration.
func Build[T any](b *Builder) Queue[T] {
	return BuildBounded[T](b)
}

// BuildBounded creates a *Bounded[T] with compile-time type safety.
// Use it to reach Push and Pop with a per-call strategy.
func BuildBounded[T any](b *Builder) *Bounded[T] {
	return newBounded[T](b.opts.capacity, b.opts.strategy)
}
