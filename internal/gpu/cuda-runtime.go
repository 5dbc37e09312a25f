/**
# Copyright (c) Meta Platforms, Inc. and affiliates.
# All rights reserved.
**/

package gpu

import (
	"fmt"

	"github.com/theap06/gcm/internal/cuda"
)

type cudaRuntime struct{}

var _ Runtime = (*cudaRuntime)(nil)

// NewCudaRuntime returns a Runtime backed by the CUDA driver library.
func NewCudaRuntime() Runtime {
	return &cudaRuntime{}
}

// Init initializes the CUDA library.
func (l *cudaRuntime) Init() error {
	if r := cuda.Init(); r != cuda.SUCCESS {
		return fmt.Errorf("%v", r)
	}
	return nil
}

// Shutdown shuts down the CUDA library.
func (l *cudaRuntime) Shutdown() error {
	if r := cuda.Shutdown(); r != cuda.SUCCESS {
		return fmt.Errorf("%v", r)
	}
	return nil
}

// DriverVersion returns the CUDA driver version.
func (l *cudaRuntime) DriverVersion() (uint, uint, error) {
	version, r := cuda.DriverGetVersion()
	if r != cuda.SUCCESS {
		return 0, 0, fmt.Errorf("failed to get driver version: %v", r)
	}

	major := uint(version) / 1000
	minor := uint(version) % 100 / 10

	return major, minor, nil
}

// DeviceCount returns the number of CUDA devices available on the system.
func (l *cudaRuntime) DeviceCount() (int, error) {
	count, r := cuda.DeviceGetCount()
	if r != cuda.SUCCESS {
		return 0, fmt.Errorf("failed to get number of CUDA devices: %v", r)
	}
	return count, nil
}

// Device returns the CUDA device with the specified index.
func (l *cudaRuntime) Device(index int) (Device, error) {
	d, r := cuda.DeviceGet(index)
	if r != cuda.SUCCESS {
		return nil, fmt.Errorf("failed to get CUDA device %v: %v", index, r)
	}
	return newCudaDevice(d), nil
}
