package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
)

// recorder is a slog.Handler that keeps every record it receives.
type recorder struct {
	mu      sync.Mutex
	records []slog.Record
}

func newRecordingLogger() (*slog.Logger, *recorder) {
	rec := &recorder{}
	return slog.New(rec), rec
}

func (r *recorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *recorder) Handle(_ context.Context, rec slog.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)

	return nil
}

func (r *recorder) WithAttrs([]slog.Attr) slog.Handler { return r }

func (r *recorder) WithGroup(string) slog.Handler { return r }

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec.Message)
	}

	return out
}

func (r *recorder) levels() []slog.Level {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]slog.Level, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec.Level)
	}

	return out
}

// spyWriter records what reaches the real response writer.
type spyWriter struct {
	header      http.Header
	code        int
	headerCalls int
	body        []byte
	failWrites  bool
}

var errClosed = errors.New("connection closed")

func newSpyWriter() *spyWriter {
	return &spyWriter{header: http.Header{}}
}

func (s *spyWriter) Header() http.Header { return s.header }

func (s *spyWriter) WriteHeader(code int) {
	s.headerCalls++
	if s.headerCalls == 1 {
		s.code = code
	}
}

func (s *spyWriter) Write(b []byte) (int, error) {
	if s.failWrites {
		return 0, errClosed
	}

	s.body = append(s.body, b...)

	return len(b), nil
}
