package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// TestAssertEqual verifies matching values pass and differing values fail.
func TestAssertEqual(t *testing.T) {
	mock := &testing.T{}
	AssertEqual(mock, 42, 42)
	if mock.Failed() {
		t.Error("AssertEqual failed on equal values")
	}

	mock = &testing.T{}
	AssertEqual(mock, 42, 43)
	if !mock.Failed() {
		t.Error("AssertEqual passed on unequal values")
	}
}

// TestAssertEqual_Structs verifies cmp.Diff handles composite values.
func TestAssertEqual_Structs(t *testing.T) {
	type pos struct {
		File int
		Rank int
	}

	mock := &testing.T{}
	AssertEqual(mock, pos{4, 1}, pos{4, 1})
	if mock.Failed() {
		t.Error("AssertEqual failed on equal structs")
	}

	mock = &testing.T{}
	AssertEqual(mock, pos{4, 1}, pos{4, 3})
	if !mock.Failed() {
		t.Error("AssertEqual passed on unequal structs")
	}
}

// TestAssertNoError verifies nil passes and an error fails.
func TestAssertNoError(t *testing.T) {
	mock := &testing.T{}
	AssertNoError(mock, nil)
	if mock.Failed() {
		t.Error("AssertNoError failed on nil error")
	}

	mock = &testing.T{}
	AssertNoError(mock, fmt.Errorf("boom"))
	if !mock.Failed() {
		t.Error("AssertNoError passed on non-nil error")
	}
}

// TestAssertError verifies an error passes and nil fails.
func TestAssertError(t *testing.T) {
	mock := &testing.T{}
	AssertError(mock, fmt.Errorf("boom"))
	if mock.Failed() {
		t.Error("AssertError failed on non-nil error")
	}

	mock = &testing.T{}
	AssertError(mock, nil)
	if !mock.Failed() {
		t.Error("AssertError passed on nil error")
	}
}

// TestAssertErrorIs verifies sentinel matching through wrapping.
func TestAssertErrorIs(t *testing.T) {
	sentinel := errors.New("sentinel")
	wrapped := fmt.Errorf("context: %w", sentinel)

	mock := &testing.T{}
	AssertErrorIs(mock, wrapped, sentinel)
	if mock.Failed() {
		t.Error("AssertErrorIs failed on wrapped sentinel")
	}

	mock = &testing.T{}
	AssertErrorIs(mock, wrapped, errors.New("other"))
	if !mock.Failed() {
		t.Error("AssertErrorIs passed on unrelated sentinel")
	}
}

// TestAssertContains verifies substring matching.
func TestAssertContains(t *testing.T) {
	mock := &testing.T{}
	AssertContains(mock, "hello world", "world")
	if mock.Failed() {
		t.Error("AssertContains failed on present substring")
	}

	mock = &testing.T{}
	AssertContains(mock, "hello world", "absent")
	if !mock.Failed() {
		t.Error("AssertContains passed on missing substring")
	}
}

// TestAssertTrueFalse verifies the boolean asserts.
func TestAssertTrueFalse(t *testing.T) {
	mock := &testing.T{}
	AssertTrue(mock, true)
	AssertFalse(mock, false)
	if mock.Failed() {
		t.Error("boolean asserts failed on correct values")
	}

	mock = &testing.T{}
	AssertTrue(mock, false)
	if !mock.Failed() {
		t.Error("AssertTrue passed on false")
	}

	mock = &testing.T{}
	AssertFalse(mock, true)
	if !mock.Failed() {
		t.Error("AssertFalse passed on true")
	}
}

// TestAssertNil verifies both untyped and typed nils are handled.
func TestAssertNil(t *testing.T) {
	mock := &testing.T{}
	AssertNil(mock, nil)
	if mock.Failed() {
		t.Error("AssertNil failed on untyped nil")
	}

	var p *int
	mock = &testing.T{}
	AssertNil(mock, p)
	if mock.Failed() {
		t.Error("AssertNil failed on typed nil pointer")
	}

	var s []int
	mock = &testing.T{}
	AssertNil(mock, s)
	if mock.Failed() {
		t.Error("AssertNil failed on nil slice")
	}

	mock = &testing.T{}
	AssertNil(mock, 42)
	if !mock.Failed() {
		t.Error("AssertNil passed on non-nil value")
	}
}

// TestAssertNotNil verifies the inverse.
func TestAssertNotNil(t *testing.T) {
	mock := &testing.T{}
	AssertNotNil(mock, 42)
	if mock.Failed() {
		t.Error("AssertNotNil failed on non-nil value")
	}

	mock = &testing.T{}
	AssertNotNil(mock, nil)
	if !mock.Failed() {
		t.Error("AssertNotNil passed on nil")
	}

	var p *int
	mock = &testing.T{}
	AssertNotNil(mock, p)
	if !mock.Failed() {
		t.Error("AssertNotNil passed on typed nil")
	}
}

// TestFormatMessage verifies the optional message argument handling.
func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"context"}, "context"},
		{"format string", []interface{}{"square %s", "e4"}, "square e4"},
		{"non-string", []interface{}{42}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
