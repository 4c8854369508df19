// SPDX-License-Identifier: MIT

// Package testutil holds logging helpers shared by the solver tests.
package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// NewTestLogger returns a Debug-level logger that writes through t.Log, so
// stage logs of a solver only show up on failure or with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// Messages collects the message of every record logged through a logger
// returned by NewRecordingLogger.
type Messages struct {
	mu   sync.Mutex
	msgs []string
}

// All returns the recorded messages in logging order.
func (m *Messages) All() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.msgs...)
}

// NewRecordingLogger returns a Debug-level logger that both writes through
// t.Log and records each message, for tests that assert which solver stages ran.
func NewRecordingLogger(t testing.TB) (*slog.Logger, *Messages) {
	t.Helper()
	m := &Messages{}
	inner := slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(recordingHandler{Handler: inner, into: m}), m
}

type recordingHandler struct {
	slog.Handler
	into *Messages
}

func (h recordingHandler) Handle(ctx context.Context, r slog.Record) error {
	h.into.mu.Lock()
	h.into.msgs = append(h.into.msgs, r.Message)
	h.into.mu.Unlock()
	return h.Handler.Handle(ctx, r)
}

func (h recordingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return recordingHandler{Handler: h.Handler.WithAttrs(attrs), into: h.into}
}

func (h recordingHandler) WithGroup(name string) slog.Handler {
	return recordingHandler{Handler: h.Handler.WithGroup(name), into: h.into}
}
