/**
# Copyright (c) Meta Platforms, Inc. and affiliates.
# All rights reserved.
**/

package memtest

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theap06/gcm/internal/gpu"
)

// newHealthyDevice returns a device mock whose whole select/query/alloc/fill/free
// sequence succeeds, together with the buffer mock its Alloc hands out.
func newHealthyDevice(free, total uint64) (*gpu.DeviceMock, *gpu.BufferMock) {
	buf := &gpu.BufferMock{
		FillFunc: func(pattern byte) error { return nil },
		FreeFunc: func() error { return nil },
	}
	dev := &gpu.DeviceMock{
		SelectFunc: func() error { return nil },
		MemoryInfoFunc: func() (uint64, uint64, error) {
			return free, total, nil
		},
		AllocFunc: func(bytes uint64) (gpu.Buffer, error) {
			buf.SizeFunc = func() uint64 { return bytes }
			return buf, nil
		},
	}
	return dev, buf
}

func newRuntime(dev gpu.Device) *gpu.RuntimeMock {
	return &gpu.RuntimeMock{
		InitFunc:     func() error { return nil },
		ShutdownFunc: func() error { return nil },
		DeviceFunc: func(index int) (gpu.Device, error) {
			return dev, nil
		},
	}
}

func runWith(t *testing.T, rt gpu.Runtime, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := New(rt, &out, &errOut).Run(args)
	return code, out.String(), errOut.String()
}

func TestHelpShortCircuits(t *testing.T) {
	rt := &gpu.RuntimeMock{}

	code, out, _ := runWith(t, rt, "--help")

	require.Equal(t, 0, code)
	require.Contains(t, out, "A simple cuda memory testing tool")
	require.Contains(t, out, "Usage --device=n (n >= 0 for deviceID),")
	require.Empty(t, rt.InitCalls())
}

func TestNoDevicePrintsUsage(t *testing.T) {
	rt := &gpu.RuntimeMock{}

	code, out, _ := runWith(t, rt)

	require.Equal(t, 0, code)
	require.Contains(t, out, "A simple cuda memory testing tool")
	require.Contains(t, out, "Usage --device=n (n >= 0 for deviceID)\n")
	require.Empty(t, rt.InitCalls())
}

// "-?" is too short for delimiter stripping, so it does not register the "?"
// flag, but the run still lands on the usage path because no device is given.
func TestShortQuestionMarkStillPrintsUsage(t *testing.T) {
	rt := &gpu.RuntimeMock{}

	code, out, _ := runWith(t, rt, "-?")

	require.Equal(t, 0, code)
	require.Contains(t, out, "A simple cuda memory testing tool")
	require.Empty(t, rt.InitCalls())
}

// The concatenated --device3 form parses as 3 through IntValue but is not an
// exact name match, so the flag counts as absent and the run short-circuits.
func TestConcatenatedDeviceFlagIsNotPresent(t *testing.T) {
	rt := &gpu.RuntimeMock{}

	code, out, _ := runWith(t, rt, "--device3")

	require.Equal(t, 0, code)
	require.Contains(t, out, "A simple cuda memory testing tool")
	require.Empty(t, rt.InitCalls())
}

func TestPassingRunWithDefaultSize(t *testing.T) {
	dev, buf := newHealthyDevice(10_000_000_000, 16_000_000_000)
	rt := newRuntime(dev)

	code, out, errOut := runWith(t, rt, "--device=0")

	require.Equal(t, 0, code)
	require.Empty(t, errOut)
	require.Contains(t, out, "free mem 10000000000 total mem 16000000000 \n")
	require.NotContains(t, out, "Invalid allocation amount")
	require.True(t, bytes.HasSuffix([]byte(out), []byte("CUDA memory test PASSED\n")))

	require.Len(t, dev.AllocCalls(), 1)
	require.Equal(t, uint64(1_000_000_000), dev.AllocCalls()[0].Bytes)
	require.Len(t, buf.FillCalls(), 1)
	require.Equal(t, byte(0xF), buf.FillCalls()[0].Pattern)
	require.Len(t, buf.FreeCalls(), 1)
	require.Len(t, rt.ShutdownCalls(), 1)
}

func TestOversizedRequestClamps(t *testing.T) {
	dev, _ := newHealthyDevice(10_000_000_000, 16_000_000_000)
	rt := newRuntime(dev)

	code, out, errOut := runWith(t, rt, "--device=0", "--alloc_mem_gb=50")

	require.Equal(t, 0, code)
	require.Empty(t, errOut)
	require.Contains(t, out, "alloc 50 \n")
	require.Contains(t, out, "Invalid allocation amount specified, using 9000000000\n")
	require.True(t, bytes.HasSuffix([]byte(out), []byte("CUDA memory test PASSED\n")))

	require.Len(t, dev.AllocCalls(), 1)
	require.Equal(t, uint64(9_000_000_000), dev.AllocCalls()[0].Bytes)
}

func TestAllocFlagWithoutValueUsesDefault(t *testing.T) {
	dev, _ := newHealthyDevice(10_000_000_000, 16_000_000_000)
	rt := newRuntime(dev)

	code, out, _ := runWith(t, rt, "--device=0", "--alloc_mem_gb")

	require.Equal(t, 0, code)
	require.Contains(t, out, "alloc 0 \n")
	require.Len(t, dev.AllocCalls(), 1)
	require.Equal(t, uint64(1_000_000_000), dev.AllocCalls()[0].Bytes)
}

func TestInvalidDeviceIsFatal(t *testing.T) {
	rt := &gpu.RuntimeMock{
		InitFunc:     func() error { return nil },
		ShutdownFunc: func() error { return nil },
		DeviceFunc: func(index int) (gpu.Device, error) {
			return nil, fmt.Errorf("failed to get CUDA device %v: invalid device ordinal", index)
		},
	}

	code, out, errOut := runWith(t, rt, "--device=99")

	require.Equal(t, 1, code)
	require.Contains(t, errOut, "Invalid device id or device already in use\n")
	require.NotContains(t, out, "CUDA memory test PASSED")
	require.Equal(t, 99, rt.DeviceCalls()[0].Index)
}

func TestSelectFailureIsFatal(t *testing.T) {
	dev := &gpu.DeviceMock{
		SelectFunc: func() error { return errors.New("device already in use") },
	}
	rt := newRuntime(dev)

	code, _, errOut := runWith(t, rt, "--device=0")

	require.Equal(t, 1, code)
	require.Contains(t, errOut, "Invalid device id or device already in use\n")
	require.Empty(t, dev.AllocCalls())
}

func TestInitFailureIsFatal(t *testing.T) {
	rt := &gpu.RuntimeMock{
		InitFunc: func() error { return errors.New("no CUDA-capable device is detected") },
	}

	code, _, errOut := runWith(t, rt, "--device=0")

	require.Equal(t, 1, code)
	require.Contains(t, errOut, "Invalid device id or device already in use\n")
}

func TestAllocFailureIsFatal(t *testing.T) {
	dev, _ := newHealthyDevice(10_000_000_000, 16_000_000_000)
	dev.AllocFunc = func(bytes uint64) (gpu.Buffer, error) {
		return nil, errors.New("out of memory")
	}
	rt := newRuntime(dev)

	code, _, errOut := runWith(t, rt, "--device=0")

	require.Equal(t, 1, code)
	require.Contains(t, errOut, "Test failed (error code out of memory)!\n")
}

func TestFillFailureIsFatal(t *testing.T) {
	dev, buf := newHealthyDevice(10_000_000_000, 16_000_000_000)
	buf.FillFunc = func(pattern byte) error { return errors.New("an illegal memory access was encountered") }
	rt := newRuntime(dev)

	code, _, errOut := runWith(t, rt, "--device=0")

	require.Equal(t, 1, code)
	require.Contains(t, errOut, "Test failed in setting mem(error code an illegal memory access was encountered)!\n")
	require.Empty(t, buf.FreeCalls())
}

func TestFreeFailureIsFatal(t *testing.T) {
	dev, buf := newHealthyDevice(10_000_000_000, 16_000_000_000)
	buf.FreeFunc = func() error { return errors.New("invalid device pointer") }
	rt := newRuntime(dev)

	code, out, errOut := runWith(t, rt, "--device=0")

	require.Equal(t, 1, code)
	require.Contains(t, errOut, "Failed to free device vector A (error code invalid device pointer)!\n")
	require.NotContains(t, out, "CUDA memory test PASSED")
}

// A failed memory query skips the informational report and the safety clamp;
// the raw request goes to the allocator unchanged.
func TestMemoryQueryFailureSkipsReportAndClamp(t *testing.T) {
	dev, _ := newHealthyDevice(0, 0)
	dev.MemoryInfoFunc = func() (uint64, uint64, error) {
		return 0, 0, errors.New("invalid device context")
	}
	rt := newRuntime(dev)

	code, out, errOut := runWith(t, rt, "--device=0", "--alloc_mem_gb=50")

	require.Equal(t, 0, code)
	require.Empty(t, errOut)
	require.NotContains(t, out, "free mem")
	require.NotContains(t, out, "Invalid allocation amount")
	require.Len(t, dev.AllocCalls(), 1)
	require.Equal(t, uint64(50_000_000_000), dev.AllocCalls()[0].Bytes)
	require.True(t, bytes.HasSuffix([]byte(out), []byte("CUDA memory test PASSED\n")))
}

func TestVersionFlag(t *testing.T) {
	rt := &gpu.RuntimeMock{}

	code, out, _ := runWith(t, rt, "--version")

	require.Equal(t, 0, code)
	require.Contains(t, out, "unknown")
	require.Empty(t, rt.InitCalls())
}

func TestListDevices(t *testing.T) {
	newDevice := func(name string) *gpu.DeviceMock {
		return &gpu.DeviceMock{
			NameFunc:              func() (string, error) { return name, nil },
			ComputeCapabilityFunc: func() (int, int, error) { return 8, 0, nil },
			TotalMemoryFunc:       func() (uint64, error) { return 80 * 1024 * 1024 * 1024, nil },
		}
	}
	devices := []*gpu.DeviceMock{newDevice("NVIDIA A100-SXM4-80GB"), newDevice("NVIDIA A100-SXM4-80GB")}
	rt := &gpu.RuntimeMock{
		InitFunc:     func() error { return nil },
		ShutdownFunc: func() error { return nil },
		DeviceCountFunc: func() (int, error) {
			return len(devices), nil
		},
		DeviceFunc: func(index int) (gpu.Device, error) {
			return devices[index], nil
		},
	}

	code, out, errOut := runWith(t, rt, "--list")

	require.Equal(t, 0, code)
	require.Empty(t, errOut)
	require.Contains(t, out, "NVIDIA A100-SXM4-80GB")
	require.Contains(t, out, "8.0")
	require.Contains(t, out, "80.00 GiB")
	require.Len(t, rt.DeviceCalls(), 2)
}

func TestListDevicesInitFailure(t *testing.T) {
	rt := &gpu.RuntimeMock{
		InitFunc: func() error { return errors.New("unknown error 999") },
	}

	code, _, errOut := runWith(t, rt, "--list")

	require.Equal(t, 1, code)
	require.Contains(t, errOut, "Failed to initialize the CUDA driver (error code unknown error 999)!\n")
}

func TestHumanSize(t *testing.T) {
	require.Equal(t, "512.00 B", humanSize(512))
	require.Equal(t, "1.00 KiB", humanSize(1024))
	require.Equal(t, "80.00 GiB", humanSize(80*1024*1024*1024))
}
