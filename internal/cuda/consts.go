/**
# Copyright (c) Meta Platforms, Inc. and affiliates.
# All rights reserved.
**/

package cuda

// Result represents the CUresult return type.
type Result int32

const (
	SUCCESS               Result = 0
	ERROR_INVALID_VALUE   Result = 1
	ERROR_OUT_OF_MEMORY   Result = 2
	ERROR_NOT_INITIALIZED Result = 3
	ERROR_DEINITIALIZED   Result = 4
	ERROR_NO_DEVICE       Result = 100
	ERROR_INVALID_DEVICE  Result = 101
	ERROR_INVALID_CONTEXT Result = 201
	ERROR_INVALID_HANDLE  Result = 400
	ERROR_NOT_FOUND       Result = 500
	ERROR_NOT_READY       Result = 600
	ERROR_ILLEGAL_ADDRESS Result = 700
	ERROR_NOT_PERMITTED   Result = 800
	ERROR_NOT_SUPPORTED   Result = 801
	ERROR_UNKNOWN         Result = 999
)

// DeviceAttribute represents the CUdevice_attribute type
type DeviceAttribute int32

const (
	COMPUTE_CAPABILITY_MAJOR DeviceAttribute = 75
	COMPUTE_CAPABILITY_MINOR DeviceAttribute = 76
)

// Device represents a CUDA device handle
type Device int32

// DevicePtr represents a CUdeviceptr device memory address
type DevicePtr uint64
