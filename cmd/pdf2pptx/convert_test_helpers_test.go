package main

// Notes:
// - This file contains test helpers used across convert tests.
// - These are not functions under test themselves, but supporting infrastructure.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alnah/go-pdf2pptx"
	"github.com/alnah/go-pdf2pptx/internal/config"
)

// ---------------------------------------------------------------------------
// Mock Implementations - For unit testing
// ---------------------------------------------------------------------------

// mockConverter records inputs and returns a fixed deck.
type mockConverter struct {
	mu          sync.Mutex
	calls       []pdf2pptx.Input
	convertFunc func(ctx context.Context, input pdf2pptx.Input) (*pdf2pptx.ConvertResult, error)
}

func (m *mockConverter) Convert(ctx context.Context, input pdf2pptx.Input) (*pdf2pptx.ConvertResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, input)
	m.mu.Unlock()

	if m.convertFunc != nil {
		return m.convertFunc(ctx, input)
	}
	return &pdf2pptx.ConvertResult{
		PPTX:        []byte("PK mock deck"),
		SourcePages: 1,
		Slides: []pdf2pptx.SlideInfo{
			{SourcePage: 1, Size: pdf2pptx.SlideSize{Width: 10, Height: 5.625}, PixelWidth: 1920, PixelHeight: 1080},
		},
	}, nil
}

func (m *mockConverter) getCalls() []pdf2pptx.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]pdf2pptx.Input{}, m.calls...)
}

// mockPool hands out one shared mock converter.
type mockPool struct {
	conv       CLIConverter
	size       int
	acquireErr error

	mu       sync.Mutex
	acquired int
	released int
}

func newMockPool(conv CLIConverter, size int) *mockPool {
	return &mockPool{conv: conv, size: size}
}

func (p *mockPool) Acquire() (CLIConverter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	p.mu.Lock()
	p.acquired++
	p.mu.Unlock()
	return p.conv, nil
}

func (p *mockPool) Release(CLIConverter) {
	p.mu.Lock()
	p.released++
	p.mu.Unlock()
}

func (p *mockPool) Size() int { return p.size }

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// testEnv returns an environment writing to buffers with a fixed clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
		Config: config.DefaultConfig(),
	}
	return env, &stdout, &stderr
}

// writeFile creates a file with content under dir, creating parents.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

var errMockConvert = errors.New("mock conversion failed")
