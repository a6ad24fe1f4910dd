// internal/service/errors.go
package service

import "errors"

// ErrNoResults means the pipeline ran every fallback and still ended with an
// empty candidate set. Handlers map it to 404 alongside unknown-city errors.
var ErrNoResults = errors.New("no results")
