// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockq_test

import (
	"fmt"
	"sync"
	"testing"

	"code.hybscloud.com/lockq"
)

// =============================================================================
// Single Goroutine Baselines
// =============================================================================

func BenchmarkBounded_SingleOp(b *testing.B) {
	for _, s := range []lockq.Strategy{lockq.Abandon, lockq.Force, lockq.Yield} {
		b.Run(s.String(), func(b *testing.B) {
			q := lockq.NewBounded[int](1024)
			var out int

			b.ResetTimer()
			for i := range b.N {
				v := i
				q.Push(&v, s)
				q.Pop(&out, s)
			}
		})
	}
}

func BenchmarkSpinQueue_SingleOp(b *testing.B) {
	q := lockq.NewSpinQueue[int]()

	b.ResetTimer()
	for i := range b.N {
		q.Push(i)
		q.TryPop()
	}
}

func BenchmarkCell_Get(b *testing.B) {
	c := lockq.NewCell(42)

	b.ResetTimer()
	for range b.N {
		_ = c.Get()
	}
}

// =============================================================================
// Contended
// =============================================================================

// BenchmarkBounded_ProducerConsumer pairs n producers with n consumers.
func BenchmarkBounded_ProducerConsumer(b *testing.B) {
	if lockq.RaceEnabled {
		b.Skip("skip: claim protocol orders slots through atomix words")
	}
	for _, s := range []lockq.Strategy{lockq.Force, lockq.Yield} {
		for _, n := range []int{1, 4} {
			b.Run(fmt.Sprintf("%s/%dx%d", s, n, n), func(b *testing.B) {
				q := lockq.NewBounded[int](1024)
				per := b.N/n + 1
				var wg sync.WaitGroup

				b.ResetTimer()
				for range n {
					wg.Add(2)
					go func() {
						defer wg.Done()
						for i := range per {
							v := i
							q.Push(&v, s)
						}
					}()
					go func() {
						defer wg.Done()
						var out int
						for range per {
							q.Pop(&out, s)
						}
					}()
				}
				wg.Wait()
			})
		}
	}
}

func BenchmarkSpinQueue_Parallel(b *testing.B) {
	if lockq.RaceEnabled {
		b.Skip("skip: SpinLock orders data through atomix words")
	}
	q := lockq.NewSpinQueue[int]()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			q.Push(i)
			q.TryPop()
			i++
		}
	})
}

func BenchmarkCell_ParallelReadMostly(b *testing.B) {
	c := lockq.NewCell(0)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%64 == 0 {
				c.Set(i)
			} else {
				_ = c.Get()
			}
			i++
		}
	})
}
