package handler

// Guard decides whether a request may reach its handler.
// Guards run sequentially in route declaration order before the handler;
// the first denial stops evaluation. A guard may block on its own I/O,
// using the context for cancellation.
type Guard[C Context] func(ctx C) Decision

// Decision is a guard's verdict on one request.
// A denial must carry a non-zero Status; the dispatcher treats a denial
// without one as a contract violation and fails the request internally.
type Decision struct {
	Allowed bool
	Status  int
	Message string
}

// Allow permits the request to continue to the next guard or the handler.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny rejects the request with the given status code and message.
// The message becomes the body of the standard error envelope.
func Deny(status int, message string) Decision {
	return Decision{Status: status, Message: message}
}
