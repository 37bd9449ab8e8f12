package main

// Notes:
// - poolAdapter: we test Acquire/Release/Size and panic on wrong type.
// - isCommand: we test command name matching.
// - looksLikePDF: we test file extension detection.
// - runMain: we test exit codes for various scenarios. We don't test actual
//   file conversion here (covered by integration tests).
// - resolveTimeoutWithEnv: we test duration parsing, validation, and priority.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-pdf2pptx"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Mock converter
// ---------------------------------------------------------------------------

// wrongTypeConverter is a CLIConverter that is NOT *pdf2pptx.Converter.
type wrongTypeConverter struct{}

func (w *wrongTypeConverter) Convert(_ context.Context, _ pdf2pptx.Input) (*pdf2pptx.ConvertResult, error) {
	return &pdf2pptx.ConvertResult{PPTX: []byte("PK mock")}, nil
}

// ---------------------------------------------------------------------------
// TestPoolAdapter - Pool adapter behavior
// ---------------------------------------------------------------------------

func TestPoolAdapter_Release_WrongType(t *testing.T) {
	t.Parallel()

	pool := pdf2pptx.NewConverterPool(1)
	defer func() { _ = pool.Close() }()

	adapter := &poolAdapter{pool: pool}

	// Release with wrong type should panic (programmer error)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for wrong type, got none")
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("expected string panic, got %T", r)
		}
		if !strings.Contains(msg, "unexpected type") {
			t.Errorf("panic message should contain 'unexpected type', got %q", msg)
		}
	}()

	adapter.Release(&wrongTypeConverter{})
}

func TestPoolAdapter_Size(t *testing.T) {
	t.Parallel()

	pool := pdf2pptx.NewConverterPool(3)
	defer func() { _ = pool.Close() }()

	adapter := &poolAdapter{pool: pool}

	if adapter.Size() != 3 {
		t.Errorf("Size() = %d, want 3", adapter.Size())
	}
}

func TestPoolAdapter_AcquireRelease(t *testing.T) {
	t.Parallel()

	pool := pdf2pptx.NewConverterPool(1)
	defer func() { _ = pool.Close() }()

	adapter := &poolAdapter{pool: pool}

	conv, err := adapter.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if _, ok := conv.(*pdf2pptx.Converter); !ok {
		t.Errorf("Acquire() returned %T, want *pdf2pptx.Converter", conv)
	}
	adapter.Release(conv)

	// The released converter is handed out again.
	again, err := adapter.Acquire()
	if err != nil {
		t.Fatalf("second Acquire() error = %v", err)
	}
	if again != conv {
		t.Error("second Acquire() returned a different converter")
	}
	adapter.Release(again)
}

func TestPoolAdapter_AcquireError(t *testing.T) {
	t.Parallel()

	pool := pdf2pptx.NewConverterPool(1, pdf2pptx.WithBackend("ghostscript"))
	defer func() { _ = pool.Close() }()

	adapter := &poolAdapter{pool: pool}

	conv, err := adapter.Acquire()
	if !errors.Is(err, pdf2pptx.ErrUnknownBackend) {
		t.Errorf("Acquire() error = %v, want ErrUnknownBackend", err)
	}
	// A nil *Converter must not leak out as a non-nil interface.
	if conv != nil {
		t.Errorf("Acquire() = %v, want nil", conv)
	}
}

// ---------------------------------------------------------------------------
// TestIsCommand / TestLooksLikePDF
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg  string
		want bool
	}{
		{"convert", true},
		{"info", true},
		{"doctor", true},
		{"version", true},
		{"help", true},
		{"completion", true},
		{"Convert", false},
		{"deck.pdf", false},
		{"--help", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			t.Parallel()

			if got := isCommand(tt.arg); got != tt.want {
				t.Errorf("isCommand(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestLooksLikePDF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg  string
		want bool
	}{
		{"deck.pdf", true},
		{"DECK.PDF", true},
		{"./slides/q3.pdf", true},
		{"deck.pptx", false},
		{"pdf", false},
		{"convert", false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			t.Parallel()

			if got := looksLikePDF(tt.arg); got != tt.want {
				t.Errorf("looksLikePDF(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain - Dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.pdf")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "no args prints usage",
			args:       []string{"pdf2pptx"},
			wantCode:   ExitUsage,
			wantStderr: "Usage: pdf2pptx",
		},
		{
			name:       "unknown command",
			args:       []string{"pdf2pptx", "render"},
			wantCode:   ExitUsage,
			wantStderr: "unknown command: render",
		},
		{
			name:       "version",
			args:       []string{"pdf2pptx", "version"},
			wantCode:   ExitSuccess,
			wantStdout: "pdf2pptx dev",
		},
		{
			name:       "help",
			args:       []string{"pdf2pptx", "help"},
			wantCode:   ExitSuccess,
			wantStdout: "Commands:",
		},
		{
			name:       "completion",
			args:       []string{"pdf2pptx", "completion", "bash"},
			wantCode:   ExitSuccess,
			wantStdout: "complete -F _pdf2pptx_completions pdf2pptx",
		},
		{
			name:       "completion for unknown shell",
			args:       []string{"pdf2pptx", "completion", "tcsh"},
			wantCode:   ExitUsage,
			wantStderr: "unsupported shell",
		},
		{
			name:       "help for convert",
			args:       []string{"pdf2pptx", "help", "convert"},
			wantCode:   ExitSuccess,
			wantStdout: "--skip-first",
		},
		{
			name:       "convert --help",
			args:       []string{"pdf2pptx", "convert", "--help"},
			wantCode:   ExitSuccess,
			wantStderr: "Usage: pdf2pptx convert",
		},
		{
			name:       "unknown flag",
			args:       []string{"pdf2pptx", "convert", "--nope"},
			wantCode:   ExitUsage,
			wantStderr: "unknown flag",
		},
		{
			name:       "conflicting skip options",
			args:       []string{"pdf2pptx", "convert", "--skip-first", "--skip", "2", missing},
			wantCode:   ExitUsage,
			wantStderr: "hint:",
		},
		{
			name:       "invalid skip list",
			args:       []string{"pdf2pptx", "convert", "--skip", "2,two", missing},
			wantCode:   ExitUsage,
			wantStderr: "invalid skip list",
		},
		{
			name:       "invalid timeout",
			args:       []string{"pdf2pptx", "convert", "--timeout", "soon", missing},
			wantCode:   ExitUsage,
			wantStderr: "invalid timeout",
		},
		{
			name:       "missing input file",
			args:       []string{"pdf2pptx", "convert", missing},
			wantCode:   ExitIO,
			wantStderr: "error:",
		},
		{
			name:       "short form with pdf argument",
			args:       []string{"pdf2pptx", missing},
			wantCode:   ExitIO,
			wantStderr: "error:",
		},
		{
			name:       "short form with flag first",
			args:       []string{"pdf2pptx", "--dpi", "0", "--skip", "x", missing},
			wantCode:   ExitUsage,
			wantStderr: "invalid skip list",
		},
		{
			name:       "info without file",
			args:       []string{"pdf2pptx", "info"},
			wantCode:   ExitUsage,
			wantStderr: "exactly one PDF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout missing %q:\n%s", tt.wantStdout, stdout.String())
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr missing %q:\n%s", tt.wantStderr, stderr.String())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveTimeoutWithEnv - Timeout priority and validation
// ---------------------------------------------------------------------------

func TestResolveTimeoutWithEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		flagValue  string
		envValue   time.Duration
		cfgValue   string
		want       time.Duration
		wantErrMsg string
	}{
		{name: "nothing set", want: 0},
		{name: "flag", flagValue: "30s", envValue: time.Minute, cfgValue: "2m", want: 30 * time.Second},
		{name: "env over config", envValue: time.Minute, cfgValue: "2m", want: time.Minute},
		{name: "config", cfgValue: "2m", want: 2 * time.Minute},
		{name: "invalid flag", flagValue: "abc", wantErrMsg: "invalid timeout"},
		{name: "zero flag", flagValue: "0s", wantErrMsg: "must be positive"},
		{name: "negative config", cfgValue: "-5s", wantErrMsg: "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveTimeoutWithEnv(tt.flagValue, tt.envValue, tt.cfgValue)
			if tt.wantErrMsg != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErrMsg) {
					t.Fatalf("error = %v, want containing %q", err, tt.wantErrMsg)
				}
				if !errors.Is(err, ErrInvalidTimeout) {
					t.Errorf("error = %v, want ErrInvalidTimeout", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveTimeoutWithEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReportError - Error output and exit codes
// ---------------------------------------------------------------------------

func TestReportError(t *testing.T) {
	t.Parallel()

	t.Run("single error with hint", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		code := reportError(&buf, pdf2pptx.ErrConflictingSkipOptions)

		if code != ExitUsage {
			t.Errorf("code = %d, want %d", code, ExitUsage)
		}
		if !strings.HasPrefix(buf.String(), "error: ") || !strings.Contains(buf.String(), "hint:") {
			t.Errorf("output = %q, want error line with hint", buf.String())
		}
	})

	t.Run("batch failure omits repeated hint", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		err := &batchFailure{failed: 1, total: 2, first: pdf2pptx.ErrDocumentCorrupt}
		code := reportError(&buf, err)

		if code != ExitGeneral {
			t.Errorf("code = %d, want %d", code, ExitGeneral)
		}
		if got, want := buf.String(), "error: 1 of 2 conversion(s) failed\n"; got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})
}
