// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package syncq

// RaceEnabled is true when the race detector is active. Used by tests
// to skip scenarios that exercise atomix-based state (the size counter
// and SpinLock) concurrently: atomix operations establish happens-before
// through explicit memory orderings the detector cannot observe, so such
// tests report false positives.
const RaceEnabled = true
