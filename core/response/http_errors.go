package response

import "net/http"

// HTTPError is a status-carrying error that serializes to the standard
// failure envelope {"error": "<message>"}.
type HTTPError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

// NewHTTPError creates an HTTPError with the given status code and message.
// A zero status defaults to 500.
func NewHTTPError(status int, message string) HTTPError {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return HTTPError{Status: status, Message: message}
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for the error.
// This allows HTTPError to work with the dispatcher's statusCode interface.
func (e HTTPError) StatusCode() int {
	return e.Status
}

// WithMessage returns a copy of the error with a custom message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// Predefined HTTP errors using http.StatusText for default messages.
var (
	// 4xx Client Errors
	ErrBadRequest            = HTTPError{Status: http.StatusBadRequest, Message: http.StatusText(http.StatusBadRequest)}
	ErrUnauthorized          = HTTPError{Status: http.StatusUnauthorized, Message: http.StatusText(http.StatusUnauthorized)}
	ErrForbidden             = HTTPError{Status: http.StatusForbidden, Message: http.StatusText(http.StatusForbidden)}
	ErrNotFound              = HTTPError{Status: http.StatusNotFound, Message: http.StatusText(http.StatusNotFound)}
	ErrConflict              = HTTPError{Status: http.StatusConflict, Message: http.StatusText(http.StatusConflict)}
	ErrRequestEntityTooLarge = HTTPError{Status: http.StatusRequestEntityTooLarge, Message: http.StatusText(http.StatusRequestEntityTooLarge)}
	ErrUnsupportedMediaType  = HTTPError{Status: http.StatusUnsupportedMediaType, Message: http.StatusText(http.StatusUnsupportedMediaType)}
	ErrTooManyRequests       = HTTPError{Status: http.StatusTooManyRequests, Message: http.StatusText(http.StatusTooManyRequests)}

	// 5xx Server Errors
	ErrInternalServerError = HTTPError{Status: http.StatusInternalServerError, Message: http.StatusText(http.StatusInternalServerError)}
	ErrNotImplemented      = HTTPError{Status: http.StatusNotImplemented, Message: http.StatusText(http.StatusNotImplemented)}
	ErrBadGateway          = HTTPError{Status: http.StatusBadGateway, Message: http.StatusText(http.StatusBadGateway)}
	ErrServiceUnavailable  = HTTPError{Status: http.StatusServiceUnavailable, Message: http.StatusText(http.StatusServiceUnavailable)}
	ErrGatewayTimeout      = HTTPError{Status: http.StatusGatewayTimeout, Message: http.StatusText(http.StatusGatewayTimeout)}
)
