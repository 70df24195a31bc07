package handler

import (
	"context"
	"net/http"
)

// Context defines the contract for request contexts in the dispatch pipeline.
// Implementations carry the request, the response writer, and matched path
// parameters for one request.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
