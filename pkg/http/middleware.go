package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned when an interceptor is built without its
// required collaborators.
var ErrInvalidArgument = errors.New("invalid argument")

// Interceptor logs request and response metadata around a downstream
// handler. The response is buffered while the downstream runs and copied
// to the real writer once it has finished.
type Interceptor struct {
	next   HandlerFunc
	logger *slog.Logger
}

// NewInterceptor returns an Interceptor in front of next. Both next and
// logger are required.
func NewInterceptor(next HandlerFunc, logger *slog.Logger) (*Interceptor, error) {
	if next == nil {
		return nil, fmt.Errorf("%w: next handler is required", ErrInvalidArgument)
	}

	if logger == nil {
		return nil, fmt.Errorf("%w: logger is required", ErrInvalidArgument)
	}

	return &Interceptor{next: next, logger: logger}, nil
}

// LoggingMiddleware registers the interceptor as a stage of a HandlerFunc
// chain. It panics if logger is nil, since a chain is assembled once at
// startup.
func LoggingMiddleware(logger *slog.Logger) func(HandlerFunc) HandlerFunc {
	return func(next HandlerFunc) HandlerFunc {
		i, err := NewInterceptor(next, logger)
		if err != nil {
			panic(err)
		}

		return i.Intercept
	}
}

// Intercept logs the request, runs the downstream handler against a capture
// buffer, logs the response and flushes the captured bytes to w.
//
// An error returned by the downstream handler is returned unchanged.
func (i *Interceptor) Intercept(w http.ResponseWriter, r *http.Request) (err error) {
	i.logger.Info(formatRequest(r))

	capture := newCaptureWriter(w)

	defer func() {
		if p := recover(); p != nil {
			i.flushAfterFailure(r, capture)
			panic(p)
		}

		if err != nil {
			i.flushAfterFailure(r, capture)
			return
		}

		if ferr := capture.flush(); ferr != nil {
			err = fmt.Errorf("flush captured response: %w", ferr)
		}
	}()

	if err := i.next(capture, r); err != nil {
		return err
	}

	i.logger.Info(formatResponse(capture))

	return nil
}

// flushAfterFailure pushes out whatever a failed or panicking handler
// managed to write. An untouched response is left alone so the caller can
// still render its own error.
func (i *Interceptor) flushAfterFailure(r *http.Request, capture *captureWriter) {
	if !capture.dirty() {
		return
	}

	if ferr := capture.flush(); ferr != nil {
		i.logger.Error("flush captured response after handler error",
			slog.String("path", r.URL.Path),
			slog.String("error", ferr.Error()),
		)
	}
}

// ServeHTTP lets the interceptor sit directly in a net/http chain.
func (i *Interceptor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	Handle(i.logger, i.Intercept).ServeHTTP(w, r)
}

func formatRequest(r *http.Request) string {
	var b strings.Builder

	b.WriteString("Request Method: " + r.Method + "\n")
	b.WriteString("Request Path: " + r.URL.Path + "\n")
	writeHeaders(&b, r.Header)

	return b.String()
}

func formatResponse(c *captureWriter) string {
	var b strings.Builder

	b.WriteString("Response Status Code: " + strconv.Itoa(c.statusCode()) + "\n")
	writeHeaders(&b, c.Header())

	return b.String()
}

// writeHeaders renders one "Key: Value" line per header value, keys sorted.
func writeHeaders(b *strings.Builder, h http.Header) {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		for _, v := range h[k] {
			b.WriteString(k + ": " + v + "\n")
		}
	}
}
