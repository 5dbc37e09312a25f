/**
# Copyright (c) Meta Platforms, Inc. and affiliates.
# All rights reserved.
**/

// Package cmdline answers flag presence and value queries against a raw
// argument vector using the permissive grammar of the CUDA sample tools:
// any number of leading '-' characters, case-insensitive names, and values
// given either as --flag=value or concatenated directly after the name.
package cmdline

import "strings"

const delimiter = '-'

// trimDelimiters strips leading delimiter characters from arg. A token whose
// remainder after stripping would be one character or shorter is returned
// unmodified, so "-?" never matches the name "?".
func trimDelimiters(arg string) string {
	start := 0
	for start < len(arg) && arg[start] == delimiter {
		start++
	}
	if start >= len(arg)-1 {
		return arg
	}
	return arg[start:]
}

// Present reports whether the named flag appears in args. The token is
// compared against name up to an optional '=', case-insensitively.
func Present(args []string, name string) bool {
	for _, arg := range args {
		token := trimDelimiters(arg)
		if eq := strings.IndexByte(token, '='); eq >= 0 {
			token = token[:eq]
		}
		if strings.EqualFold(token, name) {
			return true
		}
	}
	return false
}

// Lookup returns the raw text trailing the named flag and whether the flag
// appeared at all. Matching is a case-insensitive prefix match, so both
// "--device=3" and the concatenated "--device3" yield "3". A flag with no
// trailing text yields "". When the flag repeats, the last match wins.
func Lookup(args []string, name string) (string, bool) {
	value := ""
	found := false
	for _, arg := range args {
		token := trimDelimiters(arg)
		if len(token) < len(name) || !strings.EqualFold(token[:len(name)], name) {
			continue
		}
		rest := token[len(name):]
		if strings.HasPrefix(rest, "=") {
			rest = rest[1:]
		}
		value = rest
		found = true
	}
	return value, found
}

// IntValue returns the integer value trailing the named flag, or 0 when the
// flag is absent or carries no parsable value. Callers that need to tell
// "absent" from "present with value 0" must check Present first.
func IntValue(args []string, name string) int {
	value, found := Lookup(args, name)
	if !found {
		return 0
	}
	return atoi(value)
}

// atoi parses an integer with C atoi semantics: skip leading whitespace,
// accept an optional sign, consume leading digits, and return 0 when no
// digits are found.
func atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}
