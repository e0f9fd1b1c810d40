package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// HandlerFunc is a request handler that reports failure to its caller
// instead of rendering it.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// StatusError carries the HTTP status a failed handler wants rendered.
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s: %v", e.Code, http.StatusText(e.Code), e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// Errorf builds a StatusError with a formatted cause.
func Errorf(code int, format string, args ...any) error {
	return &StatusError{Code: code, Err: fmt.Errorf(format, args...)}
}

// Handle adapts h to http.Handler. A returned error is logged to logger
// (slog.Default when nil) and, as long as h has not written anything yet,
// rendered as a plain-text error.
func Handle(logger *slog.Logger, h HandlerFunc) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &trackingWriter{ResponseWriter: w}

		err := h(tw, r)
		if err == nil {
			return
		}

		code := statusCode(err)

		logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", code),
			slog.String("error", err.Error()),
		)

		if tw.committed {
			return
		}

		writeError(tw, code)
	})
}

// Render writes a StatusError returned by h as the response and reports
// success, so stages in front of it see a normal 4xx/5xx result. Any other
// error is passed on.
func Render(h HandlerFunc) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		tw := &trackingWriter{ResponseWriter: w}

		err := h(tw, r)
		if err == nil {
			return nil
		}

		var se *StatusError
		if !errors.As(err, &se) || tw.committed {
			return err
		}

		writeError(tw, se.Code)

		return nil
	}
}

func statusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}

	return http.StatusInternalServerError
}

// writeError drops headers the failed handler may have set before rendering
// the error body.
func writeError(w http.ResponseWriter, code int) {
	clear(w.Header())
	http.Error(w, http.StatusText(code), code)
}

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, code int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write response: %w", err)
	}

	return nil
}

func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		//nolint: errcheck
		w.Write([]byte("OK"))
	}
}

// trackingWriter records whether the response has been committed.
type trackingWriter struct {
	http.ResponseWriter
	committed bool
}

func (t *trackingWriter) WriteHeader(code int) {
	t.committed = true
	t.ResponseWriter.WriteHeader(code)
}

func (t *trackingWriter) Write(b []byte) (int, error) {
	t.committed = true
	return t.ResponseWriter.Write(b)
}

func (t *trackingWriter) Unwrap() http.ResponseWriter {
	return t.ResponseWriter
}

// Lift turns a plain http.Handler into a HandlerFunc that never fails.
func Lift(h http.Handler) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		h.ServeHTTP(w, r)
		return nil
	}
}
