package testutil

import (
	"os"
	"strings"
	"testing"
)

// TempFile creates a temporary file with the given content and returns its
// path. The file is automatically cleaned up when the test ends.
func TempFile(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "xzspider2-test-*")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		t.Fatalf("failed to write to temp file: %v", err)
	}

	if err := tmpfile.Close(); err != nil {
		os.Remove(tmpfile.Name())
		t.Fatalf("failed to close temp file: %v", err)
	}

	t.Cleanup(func() {
		os.Remove(tmpfile.Name())
	})

	return tmpfile.Name()
}

// AssertError checks that an error is not nil and contains the expected
// substring.
func AssertError(t *testing.T, err error, contains string) {
	t.Helper()

	if err == nil {
		t.Errorf("expected error containing %q, got nil", contains)
		return
	}

	if !strings.Contains(err.Error(), contains) {
		t.Errorf("expected error containing %q, got %q", contains, err.Error())
	}
}

// AssertNoError checks that an error is nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

// AssertEqual checks that two values are equal.
func AssertEqual(t *testing.T, expected, actual interface{}) {
	t.Helper()

	if expected != actual {
		t.Errorf("expected %v, got %v", expected, actual)
	}
}

// AssertContains checks that a string contains a substring.
func AssertContains(t *testing.T, s, substr string) {
	t.Helper()

	if !strings.Contains(s, substr) {
		t.Errorf("expected %q to contain %q", s, substr)
	}
}
