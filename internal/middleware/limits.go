package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const (
	// DefaultMaxBodySize caps request bodies at 1MB. Cart mutations are
	// small JSON documents; anything larger is not a legitimate request.
	DefaultMaxBodySize int64 = 1 << 20

	// DefaultTimeout is the per-request processing deadline.
	DefaultTimeout = 30 * time.Second
)

// MaxBodySize rejects request bodies larger than maxBytes with
// 413 Request Entity Too Large.
func MaxBodySize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.ContentLength > maxBytes {
				http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
				return
			}

			// Guard against bodies with an unknown or lying Content-Length.
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// Timeout cancels the request context after the given duration and answers
// 503 Service Unavailable if the handler has not started writing by then.
// A handler that already wrote a header keeps the connection; the client
// sees a truncated response.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			done := make(chan struct{})
			dw := &deadlineWriter{ResponseWriter: w, done: done}

			go func() {
				defer close(done)
				next.ServeHTTP(dw, r.WithContext(ctx))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				dw.mu.Lock()
				defer dw.mu.Unlock()
				if !dw.wroteHeader {
					w.WriteHeader(http.StatusServiceUnavailable)
					w.Write([]byte("Request timeout"))
				}
			}
		})
	}
}

// deadlineWriter tracks whether the wrapped handler already produced a
// header, so the timeout path never writes a second one.
type deadlineWriter struct {
	http.ResponseWriter
	mu          sync.Mutex
	wroteHeader bool
	done        chan struct{}
}

func (dw *deadlineWriter) WriteHeader(code int) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.wroteHeader {
		return
	}

	select {
	case <-dw.done:
	default:
		dw.wroteHeader = true
		dw.ResponseWriter.WriteHeader(code)
	}
}

func (dw *deadlineWriter) Write(b []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	select {
	case <-dw.done:
		return 0, context.DeadlineExceeded
	default:
		if !dw.wroteHeader {
			dw.wroteHeader = true
			dw.ResponseWriter.WriteHeader(http.StatusOK)
		}
		return dw.ResponseWriter.Write(b)
	}
}
