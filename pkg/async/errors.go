package async

import "errors"

// ErrTimeout is returned by AwaitWithTimeout when the future does not
// complete within the given duration. The underlying computation keeps
// running; only the wait is abandoned.
var ErrTimeout = errors.New("await timed out")
