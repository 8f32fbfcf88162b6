// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockq

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// SpinLock is a test-and-set mutual exclusion lock that busy-waits.
//
// Waiters never park; they spin with CPU pauses until the flag is clear.
// There is no fairness: a waiter that keeps losing the compare-and-swap
// may in theory wait forever. Keep critical sections short.
//
// The zero value is an unlocked SpinLock. A SpinLock must not be copied
// after first use.
type SpinLock struct {
	locked atomix.Bool
}

var _ sync.Locker = (*SpinLock)(nil)

// Lock acquires the lock, spinning until it is available.
func (l *SpinLock) Lock() {
	sw := spin.Wait{}
	for !l.locked.CompareAndSwapAcqRel(false, true) {
		sw.Once()
	}
}

// TryLock makes one attempt to acquire the lock and reports success.
func (l *SpinLock) TryLock() bool {
	return l.locked.CompareAndSwapAcqRel(false, true)
}

// Unlock releases the lock.
// Panics if the lock is not held.
func (l *SpinLock) Unlock() {
	if !l.locked.LoadAcquire() {
		panic("lockq: unlock of unlocked SpinLock")
	}
	l.locked.StoreRelease(false)
}
