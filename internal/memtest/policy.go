/**
# Copyright (c) Meta Platforms, Inc. and affiliates.
# All rights reserved.
**/

package memtest

// DefaultAllocGB is the allocation size used when no size is requested.
const DefaultAllocGB = 1

// bytesPerGB is a decimal gigabyte, matching the original tool's sizing.
const bytesPerGB = 1000 * 1000 * 1000

// RequestedBytes converts a user-requested gigabyte count into bytes.
// A count of zero (flag absent or explicit 0) and negative counts fall back
// to the default.
func RequestedBytes(requestedGB int) uint64 {
	if requestedGB <= 0 {
		requestedGB = DefaultAllocGB
	}
	return uint64(requestedGB) * bytesPerGB
}

// Ceiling returns the largest allocation the tool will ever request given the
// device's free memory. Allocations close to the reported free value reliably
// fail (fragmentation, driver reserves), so the ceiling is 90% of free.
func Ceiling(freeBytes uint64) uint64 {
	return freeBytes - uint64(0.1*float64(freeBytes))
}

// EffectiveSize turns a requested gigabyte count into a safe byte count,
// clamping to the ceiling derived from freeBytes. The second return reports
// whether clamping occurred so the caller can emit the notice.
func EffectiveSize(requestedGB int, freeBytes uint64) (uint64, bool) {
	requested := RequestedBytes(requestedGB)
	if ceiling := Ceiling(freeBytes); requested > ceiling {
		return ceiling, true
	}
	return requested, false
}
