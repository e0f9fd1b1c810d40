package http

import (
	"bytes"
	"io"
	"net/http"
)

// captureWriter stands in for the real response writer while a downstream
// handler runs. The status code is held back and the body is buffered, so
// nothing reaches the client until flush.
type captureWriter struct {
	w           http.ResponseWriter
	buf         bytes.Buffer
	code        int
	wroteHeader bool
	flushed     bool
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{w: w}
}

// Header returns the real writer's header map; headers are only sent once
// the status is written during flush.
func (c *captureWriter) Header() http.Header {
	return c.w.Header()
}

func (c *captureWriter) WriteHeader(code int) {
	if c.wroteHeader {
		return
	}

	c.code = code
	c.wroteHeader = true
}

func (c *captureWriter) Write(b []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}

	return c.buf.Write(b)
}

// Flush is a no-op: the bytes stay in the buffer until the handler returns.
func (c *captureWriter) Flush() {}

func (c *captureWriter) statusCode() int {
	if !c.wroteHeader {
		return http.StatusOK
	}

	return c.code
}

// dirty reports whether the downstream handler wrote a status or any body.
func (c *captureWriter) dirty() bool {
	return c.wroteHeader || c.buf.Len() > 0
}

// flush writes the held status and copies the buffered body to the real
// writer. It runs at most once.
func (c *captureWriter) flush() error {
	if c.flushed {
		return nil
	}

	c.flushed = true

	c.w.WriteHeader(c.statusCode())

	if _, err := io.Copy(c.w, &c.buf); err != nil {
		return err
	}

	return nil
}
