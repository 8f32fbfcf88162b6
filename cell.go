// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockq

import "sync"

// Cell holds one value shared by many readers and occasional writers.
//
// Readers hold a shared lock and run concurrently with each other.
// Writers hold an exclusive lock, so a reader never observes a value
// that is partially replaced.
//
// The zero value is a usable Cell holding the zero value of T.
// A Cell must not be copied after first use.
type Cell[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewCell creates a Cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Set replaces the stored value.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
}

// Get returns a copy of the stored value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	v := c.value
	c.mu.RUnlock()
	return v
}

// Swap replaces the stored value and returns the previous one.
func (c *Cell[T]) Swap(v T) T {
	c.mu.Lock()
	old := c.value
	c.value = v
	c.mu.Unlock()
	return old
}

// View calls fn with a pointer to the stored value while holding the
// shared lock. Avoids copying large values.
//
// fn must not modify *v or retain v after returning.
func (c *Cell[T]) View(fn func(v *T)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(&c.value)
}

// Update calls fn with a pointer to the stored value while holding the
// exclusive lock. fn may modify *v in place.
func (c *Cell[T]) Update(fn func(v *T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.value)
}
