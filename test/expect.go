// Package test contains helper functions to remove common boilerplate from
// package tests.
package test

import "testing"

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, value T, expected T) bool {
	t.Helper()
	if value != expected {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expected)
		return false
	}
	return true
}

// ExpectInequality is the inverse of ExpectEquality.
func ExpectInequality[T comparable](t *testing.T, value T, expected T) bool {
	t.Helper()
	if value == expected {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v'", value, value, expected)
		return false
	}
	return true
}

// ExpectSuccess tests for a positive result. A positive result is a true bool
// value, a nil error, or any other nil value.
func ExpectSuccess(t *testing.T, value any) bool {
	t.Helper()

	switch v := value.(type) {
	case bool:
		if !v {
			t.Errorf("success test of type %T failed", value)
			return false
		}
	case error:
		if v != nil {
			t.Errorf("success test of type %T failed: %v", value, v)
			return false
		}
	case nil:
		return true
	default:
		t.Fatalf("success test of type %T is not supported", value)
		return false
	}

	return true
}

// ExpectFailure is the inverse of ExpectSuccess.
func ExpectFailure(t *testing.T, value any) bool {
	t.Helper()

	switch v := value.(type) {
	case bool:
		if v {
			t.Errorf("failure test of type %T failed", value)
			return false
		}
	case error:
		if v == nil {
			t.Errorf("failure test of type %T failed", value)
			return false
		}
	case nil:
		t.Errorf("failure test of type %T failed", value)
		return false
	default:
		t.Fatalf("failure test of type %T is not supported", value)
		return false
	}

	return true
}

type approximate interface {
	~int | ~int64 | ~float32 | ~float64
}

// ExpectApproximate tests that a value is within tolerance of the expected
// value.
func ExpectApproximate[T approximate](t *testing.T, value T, expected T, tolerance T) bool {
	t.Helper()

	diff := value - expected
	if diff < 0 {
		diff = -diff
	}
	if tolerance < 0 {
		tolerance = -tolerance
	}
	if diff > tolerance {
		t.Errorf("approximation test of type %T failed: '%v' is not within %v of '%v'", value, value, tolerance, expected)
		return false
	}

	return true
}
