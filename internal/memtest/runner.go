/**
# Copyright (c) Meta Platforms, Inc. and affiliates.
# All rights reserved.
**/

// Package memtest implements the CUDA memory diagnostic: select a device,
// query its memory, allocate a clamped block, fill it, and free it, reporting
// a single pass/fail verdict. The console lines it emits are grepped by fleet
// health-check harnesses and must not change.
package memtest

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"k8s.io/klog/v2"

	"github.com/theap06/gcm/internal/cmdline"
	"github.com/theap06/gcm/internal/gpu"
	"github.com/theap06/gcm/internal/info"
)

const (
	deviceOpt   = "device"
	allocMemOpt = "alloc_mem_gb"

	// fillPattern is written across the whole buffer to exercise the write
	// path. It is never read back.
	fillPattern = 0xF
)

// Runner executes the end-to-end health check as a strict linear sequence.
type Runner struct {
	runtime gpu.Runtime
	out     io.Writer
	errOut  io.Writer
}

// New returns a Runner that drives the given runtime and writes its report to
// the given streams.
func New(runtime gpu.Runtime, out, errOut io.Writer) *Runner {
	return &Runner{
		runtime: runtime,
		out:     out,
		errOut:  errOut,
	}
}

// Run executes the diagnostic for the given argument vector and returns the
// process exit code: 0 for help/usage paths and a passing check, 1 for any
// fatal failure.
func (r *Runner) Run(args []string) int {
	if cmdline.Present(args, "help") || cmdline.Present(args, "?") {
		r.printUsage(true)
		return 0
	}
	if cmdline.Present(args, "version") {
		fmt.Fprintln(r.out, info.GetVersionString())
		return 0
	}
	if cmdline.Present(args, "list") {
		return r.listDevices()
	}
	if !cmdline.Present(args, deviceOpt) {
		r.printUsage(false)
		return 0
	}

	devID := cmdline.IntValue(args, deviceOpt)

	if err := r.runtime.Init(); err != nil {
		klog.V(1).Infof("CUDA driver initialization failed: %v", err)
		fmt.Fprintln(r.errOut, "Invalid device id or device already in use")
		return 1
	}
	defer func() {
		if err := r.runtime.Shutdown(); err != nil {
			klog.V(1).Infof("runtime shutdown failed: %v", err)
		}
	}()

	dev, err := r.selectDevice(devID)
	if err != nil {
		klog.V(1).Infof("device %d selection failed: %v", devID, err)
		fmt.Fprintln(r.errOut, "Invalid device id or device already in use")
		return 1
	}

	// The memory query is informational; its failure does not abort the run.
	free, total, err := dev.MemoryInfo()
	memKnown := err == nil
	if memKnown {
		fmt.Fprintf(r.out, "free mem %d total mem %d \n", free, total)
	} else {
		klog.V(1).Infof("device memory query failed, proceeding without the safety clamp: %v", err)
	}

	requestedGB := 0
	if cmdline.Present(args, allocMemOpt) {
		requestedGB = cmdline.IntValue(args, allocMemOpt)
		fmt.Fprintf(r.out, "alloc %d \n", requestedGB)
	}

	size := RequestedBytes(requestedGB)
	if memKnown {
		var clamped bool
		size, clamped = EffectiveSize(requestedGB, free)
		if clamped {
			fmt.Fprintf(r.out, "Invalid allocation amount specified, using %d\n", size)
		}
	}
	klog.V(1).Infof("allocating %d bytes on device %d", size, devID)

	buf, err := dev.Alloc(size)
	if err != nil {
		fmt.Fprintf(r.errOut, "Test failed (error code %s)!\n", err)
		return 1
	}

	if err := buf.Fill(fillPattern); err != nil {
		fmt.Fprintf(r.errOut, "Test failed in setting mem(error code %s)!\n", err)
		return 1
	}

	if err := buf.Free(); err != nil {
		fmt.Fprintf(r.errOut, "Failed to free device vector A (error code %s)!\n", err)
		return 1
	}

	fmt.Fprintln(r.out, "CUDA memory test PASSED")
	return 0
}

// selectDevice resolves the device id and makes it current.
func (r *Runner) selectDevice(devID int) (gpu.Device, error) {
	dev, err := r.runtime.Device(devID)
	if err != nil {
		return nil, err
	}
	if err := dev.Select(); err != nil {
		return nil, err
	}

	if klog.V(1).Enabled() {
		if name, err := dev.Name(); err == nil {
			klog.Infof("selected device %d: %s", devID, name)
		}
		if major, minor, err := dev.ComputeCapability(); err == nil {
			klog.Infof("compute capability %d.%d", major, minor)
		}
		if major, minor, err := r.runtime.DriverVersion(); err == nil {
			klog.Infof("CUDA driver version %d.%d", major, minor)
		}
	}

	return dev, nil
}

// listDevices prints an inventory of the CUDA devices on this host so an
// operator can find valid --device ids.
func (r *Runner) listDevices() int {
	if err := r.runtime.Init(); err != nil {
		fmt.Fprintf(r.errOut, "Failed to initialize the CUDA driver (error code %s)!\n", err)
		return 1
	}
	defer func() {
		if err := r.runtime.Shutdown(); err != nil {
			klog.V(1).Infof("runtime shutdown failed: %v", err)
		}
	}()

	count, err := r.runtime.DeviceCount()
	if err != nil {
		fmt.Fprintf(r.errOut, "Failed to count devices (error code %s)!\n", err)
		return 1
	}

	table := tablewriter.NewTable(r.out)
	table.Header([]string{"ID", "NAME", "COMPUTE CAP", "TOTAL MEM"})
	for i := 0; i < count; i++ {
		dev, err := r.runtime.Device(i)
		if err != nil {
			fmt.Fprintf(r.errOut, "Failed to query device %d (error code %s)!\n", i, err)
			return 1
		}
		name, err := dev.Name()
		if err != nil {
			fmt.Fprintf(r.errOut, "Failed to query device %d (error code %s)!\n", i, err)
			return 1
		}
		major, minor, err := dev.ComputeCapability()
		if err != nil {
			fmt.Fprintf(r.errOut, "Failed to query device %d (error code %s)!\n", i, err)
			return 1
		}
		total, err := dev.TotalMemory()
		if err != nil {
			fmt.Fprintf(r.errOut, "Failed to query device %d (error code %s)!\n", i, err)
			return 1
		}
		table.Append([]string{
			strconv.Itoa(i),
			name,
			fmt.Sprintf("%d.%d", major, minor),
			humanSize(total),
		})
	}
	table.Render()
	return 0
}

func (r *Runner) printUsage(help bool) {
	fmt.Fprintln(r.out, "A simple cuda memory testing tool")
	if help {
		fmt.Fprintln(r.out, "Usage --device=n (n >= 0 for deviceID),")
	} else {
		fmt.Fprintln(r.out, "Usage --device=n (n >= 0 for deviceID)")
	}
	fmt.Fprintf(r.out, "      --%s=k (allocates k GB)\n", allocMemOpt)
	fmt.Fprintln(r.out, "      --list (lists available devices)")
	fmt.Fprintln(r.out, "      --version (prints the tool version)")
	fmt.Fprintln(r.out, "      --verbose (prints extra diagnostics)")
}

func humanSize(n uint64) string {
	val := float64(n)
	units := []string{"B", "KiB", "MiB", "GiB", "TiB"}
	i := 0
	for val >= 1024 && i < len(units)-1 {
		val /= 1024
		i++
	}
	return fmt.Sprintf("%.2f %s", val, units[i])
}
