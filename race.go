// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package lockq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent tests of Bounded and SpinQueue, whose
// data accesses are ordered through atomix words the detector cannot observe.
const RaceEnabled = true
