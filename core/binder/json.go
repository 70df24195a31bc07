package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSON creates a JSON binder with the default size limit.
//
// Example:
//
//	func createHandler(ctx handler.Context) handler.Response {
//		var req CreateRequest
//		if err := binder.JSON()(ctx.Request(), &req); err != nil {
//			return response.Error(err)
//		}
//		// req is populated from the JSON body
//	}
func JSON() Binder {
	return JSONWithMaxSize(DefaultMaxJSONSize)
}

// JSONWithMaxSize creates a JSON binder that rejects bodies larger than
// maxSize bytes with ErrBodyTooLarge. A non-positive maxSize falls back
// to DefaultMaxJSONSize.
func JSONWithMaxSize(maxSize int64) Binder {
	if maxSize <= 0 {
		maxSize = DefaultMaxJSONSize
	}
	return func(r *http.Request, v any) error {
		// Skip work for requests whose context is already dead.
		if ctx := r.Context(); ctx != nil {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: context cancelled", ErrFailedToParseJSON)
			default:
			}
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}

		// Strip charset and other parameters, e.g. "application/json; charset=utf-8".
		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}
		if mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
		}

		// Read maxSize+1 so an oversized body is detectable without buffering it all.
		body, err := io.ReadAll(io.LimitReader(r.Body, maxSize+1))
		if err != nil {
			// The body may already be capped by LimitBody; keep the size
			// failure distinguishable from a parse failure.
			if errors.Is(err, ErrBodyTooLarge) {
				return err
			}
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > maxSize {
			return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(v); err != nil {
			if err == io.EOF {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		// Trailing data after a valid document is a malformed request.
		var extra json.RawMessage
		if err := decoder.Decode(&extra); err != io.EOF {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		return nil
	}
}
