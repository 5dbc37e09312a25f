/**
# Copyright (c) Meta Platforms, Inc. and affiliates.
# All rights reserved.
**/

// Package gpu abstracts the GPU runtime behind narrow interfaces so the
// diagnostic sequence can be driven against real hardware or against mocks.
package gpu

//go:generate moq -rm -out gpu_mock.go . Runtime Device Buffer

// Runtime provides the GPU runtime operations required by the diagnostic.
type Runtime interface {
	// Init loads and initializes the underlying runtime.
	Init() error
	// Shutdown unloads the underlying runtime.
	Shutdown() error
	// DriverVersion returns the major and minor driver version.
	DriverVersion() (uint, uint, error)
	// DeviceCount returns the number of devices visible to the runtime.
	DeviceCount() (int, error)
	// Device returns a handle to the device with the given index.
	Device(index int) (Device, error)
}

// Device is a single GPU addressable by an integer index.
type Device interface {
	// Name returns the device name / model.
	Name() (string, error)
	// ComputeCapability returns the compute capability major and minor versions.
	ComputeCapability() (int, int, error)
	// TotalMemory returns the total device memory in bytes.
	TotalMemory() (uint64, error)
	// Select makes the device current for subsequent memory operations.
	Select() error
	// MemoryInfo returns the free and total device memory in bytes.
	// Only valid after Select.
	MemoryInfo() (uint64, uint64, error)
	// Alloc allocates a buffer of the given size in device memory.
	// Only valid after Select.
	Alloc(bytes uint64) (Buffer, error)
}

// Buffer is an allocated block of device memory.
type Buffer interface {
	// Size returns the size of the buffer in bytes.
	Size() uint64
	// Fill writes the pattern byte across the entire buffer.
	Fill(pattern byte) error
	// Free releases the buffer.
	Free() error
}
