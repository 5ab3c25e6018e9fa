package repository

import "errors"

// ErrNotFound is returned by lookups that find nothing.
var ErrNotFound = errors.New("not found")
