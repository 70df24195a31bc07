// Package binder provides HTTP request body binding for JSON payloads.
// It parses request bodies into Go structs with Content-Type validation,
// size limits, and strict decoding.
//
// # Features
//
//   - JSON binding with strict parsing and configurable size limits
//   - Content-Type validation with charset parameter handling
//   - Unknown struct fields and trailing body data rejected
//   - Distinct sentinel errors for each failure class
//
// # Usage
//
//	import "github.com/dmitrymomot/dispatch/core/binder"
//
//	type CreatePaymentRequest struct {
//		Amount   int    `json:"amount"`
//		Currency string `json:"currency"`
//	}
//
//	func createPayment(ctx handler.Context) handler.Response {
//		var req CreatePaymentRequest
//		if err := binder.JSON()(ctx.Request(), &req); err != nil {
//			return response.Error(err)
//		}
//		// process req ...
//		return response.JSONWithStatus(req, http.StatusCreated)
//	}
//
// # Size Limits
//
// The default limit is 1MB. Use JSONWithMaxSize for a different cap:
//
//	bind := binder.JSONWithMaxSize(64 << 10) // 64KB
//
// Bodies over the limit fail with ErrBodyTooLarge, which the dispatch
// pipeline renders as 413. The check reads at most limit+1 bytes, so an
// oversized upload never buffers fully in memory.
//
// # Error Classes
//
//   - ErrMissingContentType: no Content-Type header on a body-carrying request
//   - ErrUnsupportedMediaType: Content-Type is not application/json
//   - ErrBodyTooLarge: body exceeds the configured limit
//   - ErrFailedToParseJSON: malformed JSON, schema mismatch, or trailing data
//
// All errors wrap their sentinel, so errors.Is works through any additional
// context the message carries.
package binder
