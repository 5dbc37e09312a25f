/**
# Copyright (c) Meta Platforms, Inc. and affiliates.
# All rights reserved.
**/

package cuda

import (
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/dl"
)

const (
	libraryName      = "libcuda.so.1"
	libraryLoadFlags = dl.RTLD_LAZY | dl.RTLD_GLOBAL
)

// cuda stores a reference to the cuda dynamic library
var cuda *dl.DynamicLibrary

// Init calls cuInit and initializes the library
func Init() Result {
	lib := dl.New(libraryName, libraryLoadFlags)
	if err := lib.Open(); err != nil {
		return ERROR_UNKNOWN
	}
	cuda = lib

	if err := cuda.Lookup("cuInit"); err != nil {
		return ERROR_UNKNOWN
	}

	return cuInit(0)
}

// Shutdown ensures that the CUDA library is unloaded.
func Shutdown() Result {
	if cuda == nil {
		return SUCCESS
	}
	if err := cuda.Close(); err != nil {
		return ERROR_UNKNOWN
	}
	cuda = nil
	return SUCCESS
}

// String returns the driver's description of the result code. If the library
// has not been loaded the numeric code is reported instead.
func (r Result) String() string {
	if cuda != nil {
		if s, res := cuGetErrorString(r); res == SUCCESS {
			return s
		}
	}
	return fmt.Sprintf("unknown error %d", int32(r))
}

// DriverGetVersion returns the driver version as an int.
func DriverGetVersion() (int, Result) {
	var version int32
	r := cuDriverGetVersion(&version)

	return int(version), r
}

// DeviceGet returns the device with the specified index.
func DeviceGet(index int) (Device, Result) {
	var device Device
	r := cuDeviceGet(&device, int32(index))

	return device, r
}

// DeviceGetAttribute returns the specified attribute for the specified device.
func DeviceGetAttribute(attribute DeviceAttribute, device Device) (int, Result) {
	var value int32
	r := cuDeviceGetAttribute(&value, attribute, device)
	return int(value), r
}

// DeviceGetCount returns the number of CUDA-capable devices available
func DeviceGetCount() (int, Result) {
	var count int32
	r := cuDeviceGetCount(&count)
	return int(count), r
}

// GetAttribute converts the DeviceGetAttribute function to a device method
func (device Device) GetAttribute(attribute DeviceAttribute) (int, Result) {
	return DeviceGetAttribute(attribute, device)
}

// DeviceGetName returns the name of the specified device.
func DeviceGetName(device Device) (string, Result) {
	len := int32(96)
	name := make([]byte, len)

	r := cuDeviceGetName(&name[0], len, device)

	return string(name[:clen(name)]), r
}

// GetName converts the DeviceGetName function to a device method
func (device Device) GetName() (string, Result) {
	return DeviceGetName(device)
}

// DeviceTotalMem returns the total memory for the specified device
func DeviceTotalMem(device Device) (uint64, Result) {
	var bytes uint64
	r := cuDeviceTotalMem(&bytes, device)

	return bytes, r
}

// TotalMem converts the DeviceTotalMem function to a device method
func (device Device) TotalMem() (uint64, Result) {
	return DeviceTotalMem(device)
}

// DevicePrimaryCtxRetain retains the primary context for the specified device.
func DevicePrimaryCtxRetain(device Device) (Context, Result) {
	var ctx Context
	r := cuDevicePrimaryCtxRetain(&ctx, device)

	return ctx, r
}

// DevicePrimaryCtxRelease releases the primary context for the specified device.
func DevicePrimaryCtxRelease(device Device) Result {
	return cuDevicePrimaryCtxRelease(device)
}

// CtxSetCurrent makes the specified context current for the calling thread.
func CtxSetCurrent(ctx Context) Result {
	return cuCtxSetCurrent(ctx)
}

// MemGetInfo returns the free and total memory of the current context's device.
func MemGetInfo() (uint64, uint64, Result) {
	var free, total uint64
	r := cuMemGetInfo(&free, &total)

	return free, total, r
}

// MemAlloc allocates bytesize bytes of device memory.
func MemAlloc(bytesize uint64) (DevicePtr, Result) {
	var dptr DevicePtr
	r := cuMemAlloc(&dptr, bytesize)

	return dptr, r
}

// MemsetD8 sets n bytes of device memory starting at dst to value.
func MemsetD8(dst DevicePtr, value byte, n uint64) Result {
	return cuMemsetD8(dst, value, n)
}

// MemFree frees the device memory at dptr.
func MemFree(dptr DevicePtr) Result {
	return cuMemFree(dptr)
}

// clen returns the index of the first NULL byte in n or len(n) if there is none
func clen(n []byte) int {
	for i := 0; i < len(n); i++ {
		if n[i] == 0 {
			return i
		}
	}
	return len(n)
}
