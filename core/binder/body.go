package binder

import (
	"fmt"
	"io"
	"net/http"
)

// LimitBody replaces r.Body with a reader that fails with ErrBodyTooLarge
// once more than maxSize bytes have been read. It catches oversized bodies
// of unknown length, which a Content-Length check cannot. A non-positive
// maxSize falls back to DefaultMaxJSONSize.
func LimitBody(r *http.Request, maxSize int64) {
	if r.Body == nil || r.Body == http.NoBody {
		return
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxJSONSize
	}
	r.Body = &cappedBody{rc: r.Body, remaining: maxSize, limit: maxSize}
}

// cappedBody reads at most limit bytes before failing. Reads ask for one
// byte beyond the remaining budget so an overrun is detected on the read
// that crosses the limit, not one read later.
type cappedBody struct {
	rc        io.ReadCloser
	remaining int64
	limit     int64
}

func (b *cappedBody) Read(p []byte) (int, error) {
	if b.remaining < 0 {
		return 0, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, b.limit)
	}
	if int64(len(p)) > b.remaining+1 {
		p = p[:b.remaining+1]
	}
	n, err := b.rc.Read(p)
	b.remaining -= int64(n)
	if b.remaining < 0 {
		return n, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, b.limit)
	}
	return n, err
}

func (b *cappedBody) Close() error {
	return b.rc.Close()
}
