/**
# Copyright (c) Meta Platforms, Inc. and affiliates.
# All rights reserved.
**/

package cmdline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresent(t *testing.T) {
	testCases := []struct {
		description string
		args        []string
		name        string
		expected    bool
	}{
		{
			description: "empty args",
			args:        []string{},
			name:        "device",
			expected:    false,
		},
		{
			description: "double-dash with value",
			args:        []string{"--device=2"},
			name:        "device",
			expected:    true,
		},
		{
			description: "single dash",
			args:        []string{"-device=2"},
			name:        "device",
			expected:    true,
		},
		{
			description: "triple dash, mixed case",
			args:        []string{"---DEVICE=2"},
			name:        "device",
			expected:    true,
		},
		{
			description: "case-insensitive match",
			args:        []string{"--Device=2"},
			name:        "device",
			expected:    true,
		},
		{
			description: "no value",
			args:        []string{"--alloc_mem_gb"},
			name:        "alloc_mem_gb",
			expected:    true,
		},
		{
			description: "match among other flags",
			args:        []string{"--alloc_mem_gb=5", "--device=0"},
			name:        "device",
			expected:    true,
		},
		{
			description: "concatenated value is not an exact name match",
			args:        []string{"--device3"},
			name:        "device",
			expected:    false,
		},
		{
			description: "short token keeps its delimiters",
			args:        []string{"-?"},
			name:        "?",
			expected:    false,
		},
		{
			description: "bare question mark",
			args:        []string{"?"},
			name:        "?",
			expected:    true,
		},
		{
			description: "delimiter-only token",
			args:        []string{"--"},
			name:        "device",
			expected:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			require.Equal(t, tc.expected, Present(tc.args, tc.name))
		})
	}
}

func TestIntValue(t *testing.T) {
	testCases := []struct {
		description string
		args        []string
		name        string
		expected    int
	}{
		{
			description: "absent flag",
			args:        []string{"--device=1"},
			name:        "alloc_mem_gb",
			expected:    0,
		},
		{
			description: "equals-delimited value",
			args:        []string{"--alloc_mem_gb=5"},
			name:        "alloc_mem_gb",
			expected:    5,
		},
		{
			description: "flag without value",
			args:        []string{"--alloc_mem_gb"},
			name:        "alloc_mem_gb",
			expected:    0,
		},
		{
			description: "concatenated value",
			args:        []string{"--device3"},
			name:        "device",
			expected:    3,
		},
		{
			description: "mixed case name",
			args:        []string{"--DEVICE=7"},
			name:        "device",
			expected:    7,
		},
		{
			description: "non-numeric value",
			args:        []string{"--device=abc"},
			name:        "device",
			expected:    0,
		},
		{
			description: "trailing garbage after digits",
			args:        []string{"--device=3x"},
			name:        "device",
			expected:    3,
		},
		{
			description: "negative value",
			args:        []string{"--alloc_mem_gb=-2"},
			name:        "alloc_mem_gb",
			expected:    -2,
		},
		{
			description: "last match wins",
			args:        []string{"--device=1", "--device=2"},
			name:        "device",
			expected:    2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			require.Equal(t, tc.expected, IntValue(tc.args, tc.name))
		})
	}
}

func TestLookup(t *testing.T) {
	value, found := Lookup([]string{"--device=3"}, "device")
	require.True(t, found)
	require.Equal(t, "3", value)

	value, found = Lookup([]string{"--device"}, "device")
	require.True(t, found)
	require.Equal(t, "", value)

	_, found = Lookup([]string{"--alloc_mem_gb=5"}, "device")
	require.False(t, found)
}

// Parsing is a pure function over the argument vector.
func TestParseIsIdempotent(t *testing.T) {
	args := []string{"--Device=2", "--alloc_mem_gb=5"}

	require.Equal(t, Present(args, "device"), Present(args, "device"))
	require.Equal(t, IntValue(args, "alloc_mem_gb"), IntValue(args, "alloc_mem_gb"))
	require.Equal(t, []string{"--Device=2", "--alloc_mem_gb=5"}, args)
}
