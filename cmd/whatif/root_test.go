package main

import (
	"bytes"
	"errors"
	"testing"

	"whatif-server/internal"
)

func TestExecuteClosesClientOnFailure(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GENERATION_TIMEOUT", "")

	rootCmd, a := newRootCmd()
	closed := 0
	a.closer = func() error { closed++; return nil }

	rootCmd.SetArgs([]string{"--offline", "story", "   "})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	err := execute(rootCmd, a)
	if !errors.Is(err, internal.ErrInvalidInput) {
		t.Fatalf("execute() error = %v, want ErrInvalidInput", err)
	}
	if closed != 1 {
		t.Errorf("closer called %d times, want 1", closed)
	}
}

func TestExecuteClosesClientOnSuccess(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GENERATION_TIMEOUT", "")

	rootCmd, a := newRootCmd()
	closed := 0
	a.closer = func() error { closed++; return nil }

	var out bytes.Buffer
	rootCmd.SetArgs([]string{"--offline", "story", "iron", "man"})
	rootCmd.SetOut(&out)

	if err := execute(rootCmd, a); err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if closed != 1 {
		t.Errorf("closer called %d times, want 1", closed)
	}
	if !bytes.Contains(out.Bytes(), []byte("What If Iron Man Died")) {
		t.Errorf("unexpected output: %q", out.String())
	}
}
