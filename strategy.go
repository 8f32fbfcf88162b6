// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockq

import (
	"runtime"
	"strconv"

	"code.hybscloud.com/spin"
)

// Strategy selects what Push and Pop do when they cannot proceed
// immediately: the endpoint is claimed by another goroutine, the queue is
// full (Push) or the queue is empty (Pop).
//
// The strategy changes latency, never correctness. Every strategy commits
// a successful operation the same way.
type Strategy uint8

const (
	// Abandon returns false at once. No state changes.
	// A single Abandon attempt is bounded and never waits.
	Abandon Strategy = iota

	// Force retries immediately with a CPU pause between attempts.
	// The calling goroutine is never parked.
	Force

	// Yield gives up the goroutine's scheduling turn once, then retries
	// like Force. It is a backoff hint for oversubscribed processors and
	// makes no fairness promise.
	Yield
)

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case Abandon:
		return "abandon"
	case Force:
		return "force"
	case Yield:
		return "yield"
	default:
		return "Strategy(" + strconv.Itoa(int(s)) + ")"
	}
}

// check panics if s is not a known strategy.
func (s Strategy) check() {
	if s > Yield {
		panic("lockq: unknown strategy " + s.String())
	}
}

// wait performs the strategy's wait action before a retry.
// Returns false if the caller must give up.
func (s Strategy) wait(sw *spin.Wait) bool {
	switch s {
	case Abandon:
		return false
	case Force:
		sw.Once()
		return true
	case Yield:
		runtime.Gosched()
		sw.Once()
		return true
	default:
		panic("lockq: unknown strategy " + s.String())
	}
}
