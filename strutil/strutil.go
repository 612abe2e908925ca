// Package strutil holds small shared helpers for slices, paths, and the
// slash-qualified names used by the catalog package.
package strutil

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Flatten concatenates a slice of slices into one slice, preserving order.
func Flatten[T any](groups [][]T) []T {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]T, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// NumDigits returns the number of decimal digits in i, ignoring the sign.
func NumDigits(i int) int {
	s := strconv.Itoa(i)
	return len(strings.TrimPrefix(s, "-"))
}

// Ext returns the file extension of path without the leading dot.
func Ext(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// NsToMs converts nanoseconds to milliseconds.
func NsToMs(ns float64) float64 {
	return ns * 1e-6
}

// SplitQualified splits a slash-qualified name into its namespace and local
// name. The namespace always carries a trailing slash; an unqualified name
// gets the root namespace "/".
//
//	SplitQualified("/robot/talker") // "/robot/", "talker"
//	SplitQualified("talker")        // "/", "talker"
func SplitQualified(qualified string) (ns, name string) {
	parts := strings.Split(qualified, "/")
	ns = strings.Join(parts[:len(parts)-1], "/") + "/"
	name = parts[len(parts)-1]
	return ns, name
}
