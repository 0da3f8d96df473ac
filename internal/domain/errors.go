package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// schedule does not exist in the store.
// Handlers map this to HTTP 404; it is the only error that crosses layers
// with a meaning beyond "something broke".
var ErrNotFound = errors.New("not found")
