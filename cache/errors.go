package cache

import "errors"

// ErrStoreClosed indicates an operation against a ConceptCache whose
// underlying store has already been closed.
var ErrStoreClosed = errors.New("cache: concept store is closed")
