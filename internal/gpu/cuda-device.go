/**
# Copyright (c) Meta Platforms, Inc. and affiliates.
# All rights reserved.
**/

package gpu

import (
	"fmt"

	"github.com/theap06/gcm/internal/cuda"
)

type cudaDevice struct {
	dev cuda.Device
}

var _ Device = (*cudaDevice)(nil)

func newCudaDevice(d cuda.Device) Device {
	return &cudaDevice{dev: d}
}

// Name returns the device name / model.
func (d *cudaDevice) Name() (string, error) {
	name, r := d.dev.GetName()
	if r != cuda.SUCCESS {
		return "", fmt.Errorf("failed to get device name: %v", r)
	}
	return name, nil
}

// ComputeCapability returns the CUDA Compute Capability major and minor versions.
func (d *cudaDevice) ComputeCapability() (int, int, error) {
	major, r := d.dev.GetAttribute(cuda.COMPUTE_CAPABILITY_MAJOR)
	if r != cuda.SUCCESS {
		return 0, 0, fmt.Errorf("failed to get CUDA compute capability major for device: %v", r)
	}

	minor, r := d.dev.GetAttribute(cuda.COMPUTE_CAPABILITY_MINOR)
	if r != cuda.SUCCESS {
		return 0, 0, fmt.Errorf("failed to get CUDA compute capability minor for device: %v", r)
	}

	return major, minor, nil
}

// TotalMemory returns the total memory for the device in bytes.
func (d *cudaDevice) TotalMemory() (uint64, error) {
	total, r := d.dev.TotalMem()
	if r != cuda.SUCCESS {
		return 0, fmt.Errorf("failed to get memory info for device: %v", r)
	}
	return total, nil
}

// Select retains the device's primary context and makes it current for the
// calling thread. This is the driver-API equivalent of cudaSetDevice.
func (d *cudaDevice) Select() error {
	ctx, r := cuda.DevicePrimaryCtxRetain(d.dev)
	if r != cuda.SUCCESS {
		return fmt.Errorf("%v", r)
	}
	if r := cuda.CtxSetCurrent(ctx); r != cuda.SUCCESS {
		return fmt.Errorf("%v", r)
	}
	return nil
}

// MemoryInfo returns the free and total memory of the device in bytes.
func (d *cudaDevice) MemoryInfo() (uint64, uint64, error) {
	free, total, r := cuda.MemGetInfo()
	if r != cuda.SUCCESS {
		return 0, 0, fmt.Errorf("%v", r)
	}
	return free, total, nil
}

// Alloc allocates a buffer of the given size in device memory.
func (d *cudaDevice) Alloc(bytes uint64) (Buffer, error) {
	dptr, r := cuda.MemAlloc(bytes)
	if r != cuda.SUCCESS {
		return nil, fmt.Errorf("%v", r)
	}
	return &cudaBuffer{ptr: dptr, size: bytes}, nil
}

type cudaBuffer struct {
	ptr  cuda.DevicePtr
	size uint64
}

var _ Buffer = (*cudaBuffer)(nil)

// Size returns the size of the buffer in bytes.
func (b *cudaBuffer) Size() uint64 {
	return b.size
}

// Fill writes the pattern byte across the entire buffer.
func (b *cudaBuffer) Fill(pattern byte) error {
	if r := cuda.MemsetD8(b.ptr, pattern, b.size); r != cuda.SUCCESS {
		return fmt.Errorf("%v", r)
	}
	return nil
}

// Free releases the buffer.
func (b *cudaBuffer) Free() error {
	if r := cuda.MemFree(b.ptr); r != cuda.SUCCESS {
		return fmt.Errorf("%v", r)
	}
	return nil
}
