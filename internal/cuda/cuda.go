/**
# Copyright (c) Meta Platforms, Inc. and affiliates.
# All rights reserved.
**/

package cuda

import (
	"unsafe"
)

/*
#cgo LDFLAGS: -Wl,--unresolved-symbols=ignore-in-object-files

#include <stddef.h>

#ifdef _WIN32
#define CUDAAPI __stdcall
#else
#define CUDAAPI
#endif

typedef int CUdevice;
typedef unsigned long long CUdeviceptr;
typedef struct CUctx_st *CUcontext;

typedef enum CUdevice_attribute_enum {
    CU_DEVICE_ATTRIBUTE_COMPUTE_CAPABILITY_MAJOR = 75,
    CU_DEVICE_ATTRIBUTE_COMPUTE_CAPABILITY_MINOR = 76
} CUdevice_attribute;

typedef enum cudaError_enum {
    CUDA_SUCCESS                              = 0,
    CUDA_ERROR_INVALID_VALUE                  = 1,
    CUDA_ERROR_OUT_OF_MEMORY                  = 2,
    CUDA_ERROR_NOT_INITIALIZED                = 3,
    CUDA_ERROR_DEINITIALIZED                  = 4,
    CUDA_ERROR_NO_DEVICE                      = 100,
    CUDA_ERROR_INVALID_DEVICE                 = 101,
    CUDA_ERROR_INVALID_CONTEXT                = 201,
    CUDA_ERROR_INVALID_HANDLE                 = 400,
    CUDA_ERROR_NOT_FOUND                      = 500,
    CUDA_ERROR_NOT_READY                      = 600,
    CUDA_ERROR_ILLEGAL_ADDRESS                = 700,
    CUDA_ERROR_NOT_PERMITTED                  = 800,
    CUDA_ERROR_NOT_SUPPORTED                  = 801,
    CUDA_ERROR_UNKNOWN                        = 999
} CUresult;

CUresult CUDAAPI cuInit(unsigned int Flags);
CUresult CUDAAPI cuDriverGetVersion(int *driverVersion);
CUresult CUDAAPI cuDeviceGet(CUdevice *device, int ordinal);
CUresult CUDAAPI cuDeviceGetAttribute(int *pi, CUdevice_attribute attrib, CUdevice dev);
CUresult CUDAAPI cuDeviceGetCount(int *count);
CUresult CUDAAPI cuDeviceTotalMem(size_t *bytes, CUdevice dev);
CUresult CUDAAPI cuDeviceGetName(char *name, int len, CUdevice dev);
CUresult CUDAAPI cuDevicePrimaryCtxRetain(CUcontext *pctx, CUdevice dev);
CUresult CUDAAPI cuDevicePrimaryCtxRelease(CUdevice dev);
CUresult CUDAAPI cuCtxSetCurrent(CUcontext ctx);
CUresult CUDAAPI cuMemGetInfo_v2(size_t *free, size_t *total);
CUresult CUDAAPI cuMemAlloc_v2(CUdeviceptr *dptr, size_t bytesize);
CUresult CUDAAPI cuMemsetD8_v2(CUdeviceptr dstDevice, unsigned char uc, size_t N);
CUresult CUDAAPI cuMemFree_v2(CUdeviceptr dptr);
CUresult CUDAAPI cuGetErrorString(CUresult error, const char **pStr);
*/
import "C"

// Context represents a CUDA context handle
type Context C.CUcontext

// cuInit function as declared in cuda.h
func cuInit(flags uint32) Result {
	cFlags := (C.uint)(flags)
	_ret := C.cuInit(cFlags)

	return Result(_ret)
}

// cuDriverGetVersion function as declared in cuda.h
func cuDriverGetVersion(version *int32) Result {
	cVersion := (*C.int)(version)
	_ret := C.cuDriverGetVersion(cVersion)

	return Result(_ret)
}

// cuDeviceGet function as declared in cuda.h
func cuDeviceGet(device *Device, index int32) Result {
	cDevice := (*C.CUdevice)(unsafe.Pointer(device))
	cIndex := (C.int)(index)

	_ret := C.cuDeviceGet(cDevice, cIndex)

	return Result(_ret)
}

// cuDeviceGetAttribute function as declared in cuda.h
func cuDeviceGetAttribute(value *int32, attribute DeviceAttribute, dev Device) Result {
	cValue := (*C.int)(unsafe.Pointer(value))
	cAttribute := (C.CUdevice_attribute)(attribute)
	cDev := (C.CUdevice)(dev)

	_ret := C.cuDeviceGetAttribute(cValue, cAttribute, cDev)

	return Result(_ret)
}

// cuDeviceGetCount function as declared in cuda.h
func cuDeviceGetCount(count *int32) Result {
	cCount := (*C.int)(unsafe.Pointer(count))
	_ret := C.cuDeviceGetCount(cCount)

	return Result(_ret)
}

// cuDeviceTotalMem function as declared in cuda.h
func cuDeviceTotalMem(bytes *uint64, dev Device) Result {
	cBytes := (*C.size_t)(unsafe.Pointer(bytes))
	cDev := (C.CUdevice)(dev)
	_ret := C.cuDeviceTotalMem(cBytes, cDev)

	return Result(_ret)
}

// cuDeviceGetName function as declared in cuda.h
func cuDeviceGetName(name *byte, len int32, dev Device) Result {
	cName := (*C.char)(unsafe.Pointer(name))
	cLen := (C.int)(len)
	cDev := (C.CUdevice)(dev)
	_ret := C.cuDeviceGetName(cName, cLen, cDev)

	return Result(_ret)
}

// cuDevicePrimaryCtxRetain function as declared in cuda.h
func cuDevicePrimaryCtxRetain(pctx *Context, dev Device) Result {
	cPctx := (*C.CUcontext)(unsafe.Pointer(pctx))
	cDev := (C.CUdevice)(dev)
	_ret := C.cuDevicePrimaryCtxRetain(cPctx, cDev)

	return Result(_ret)
}

// cuDevicePrimaryCtxRelease function as declared in cuda.h
func cuDevicePrimaryCtxRelease(dev Device) Result {
	cDev := (C.CUdevice)(dev)
	_ret := C.cuDevicePrimaryCtxRelease(cDev)

	return Result(_ret)
}

// cuCtxSetCurrent function as declared in cuda.h
func cuCtxSetCurrent(ctx Context) Result {
	cCtx := (C.CUcontext)(ctx)
	_ret := C.cuCtxSetCurrent(cCtx)

	return Result(_ret)
}

// cuMemGetInfo function as declared in cuda.h (cuMemGetInfo_v2 entry point)
func cuMemGetInfo(free *uint64, total *uint64) Result {
	cFree := (*C.size_t)(unsafe.Pointer(free))
	cTotal := (*C.size_t)(unsafe.Pointer(total))
	_ret := C.cuMemGetInfo_v2(cFree, cTotal)

	return Result(_ret)
}

// cuMemAlloc function as declared in cuda.h (cuMemAlloc_v2 entry point)
func cuMemAlloc(dptr *DevicePtr, bytesize uint64) Result {
	cDptr := (*C.CUdeviceptr)(unsafe.Pointer(dptr))
	cBytesize := (C.size_t)(bytesize)
	_ret := C.cuMemAlloc_v2(cDptr, cBytesize)

	return Result(_ret)
}

// cuMemsetD8 function as declared in cuda.h (cuMemsetD8_v2 entry point)
func cuMemsetD8(dst DevicePtr, value byte, n uint64) Result {
	cDst := (C.CUdeviceptr)(dst)
	cValue := (C.uchar)(value)
	cN := (C.size_t)(n)
	_ret := C.cuMemsetD8_v2(cDst, cValue, cN)

	return Result(_ret)
}

// cuMemFree function as declared in cuda.h (cuMemFree_v2 entry point)
func cuMemFree(dptr DevicePtr) Result {
	cDptr := (C.CUdeviceptr)(dptr)
	_ret := C.cuMemFree_v2(cDptr)

	return Result(_ret)
}

// cuGetErrorString function as declared in cuda.h
func cuGetErrorString(result Result) (string, Result) {
	var cStr *C.char
	_ret := C.cuGetErrorString((C.CUresult)(result), &cStr)

	if Result(_ret) != SUCCESS || cStr == nil {
		return "", Result(_ret)
	}
	return C.GoString(cStr), SUCCESS
}
