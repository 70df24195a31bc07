package binder

import "errors"

// Error variables define common binding failures that can occur during request processing.
var (
	// ErrMissingContentType indicates the request lacks a Content-Type header
	// when one is required for parsing.
	ErrMissingContentType = errors.New("missing content type")

	// ErrUnsupportedMediaType indicates the Content-Type header specifies a media type
	// other than application/json.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrBodyTooLarge indicates the request body exceeds the configured size limit.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrFailedToParseJSON indicates the request body contains invalid JSON
	// or doesn't match the target struct schema.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")
)
