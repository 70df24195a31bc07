package binder

import "net/http"

// Binder represents a function that binds HTTP request data to a Go value.
// Binders extract data from a request body and map it into strongly-typed
// Go structures, reporting failures through the package sentinel errors.
type Binder func(r *http.Request, v any) error
