package router

import "net/http"

// responseWriter tracks whether and with which status a response has been
// written. The dispatcher uses it to pick access log levels and to suppress
// error rendering after a partial write.
type responseWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w}
}

// WriteHeader records the status code once; later calls are ignored, which
// matches net/http semantics without the superfluous-call log noise.
func (w *responseWriter) WriteHeader(status int) {
	if w.written {
		return
	}
	w.status = status
	w.written = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Written reports whether a status line has been sent.
func (w *responseWriter) Written() bool {
	return w.written
}

// Status returns the status code sent to the client, or 0 if none yet.
func (w *responseWriter) Status() int {
	return w.status
}

// Unwrap exposes the original writer for http.ResponseController.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Flush forwards to the underlying writer when it supports flushing.
func (w *responseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
