/**
# Copyright (c) Meta Platforms, Inc. and affiliates.
# All rights reserved.
**/

// cudamemtest verifies that a GPU's memory subsystem is healthy by
// allocating a block of device memory, writing a pattern into it, and
// releasing it. Fleet health-check harnesses invoke it once per device:
//
//	cudamemtest --device=0 --alloc_mem_gb=4
//
// and grep its output for the pass/fail lines.
package main

import (
	"flag"
	"io"
	"os"

	"k8s.io/klog/v2"

	"github.com/theap06/gcm/internal/cmdline"
	"github.com/theap06/gcm/internal/gpu"
	"github.com/theap06/gcm/internal/memtest"
)

func main() {
	os.Exit(run(os.Args[1:], gpu.NewCudaRuntime(), os.Stdout, os.Stderr))
}

func run(args []string, runtime gpu.Runtime, out, errOut io.Writer) int {
	initLogging(args)
	return memtest.New(runtime, out, errOut).Run(args)
}

// initLogging raises klog verbosity when the verbose flag is present. The
// diagnostic's contract lines never go through klog; this only surfaces the
// supplementary driver and device details on stderr.
func initLogging(args []string) {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	if cmdline.Present(args, "verbose") {
		_ = fs.Set("v", "2")
	}
}
