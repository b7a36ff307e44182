package model

import "errors"

// ErrNotFound is returned by store lookups that match nothing.
var ErrNotFound = errors.New("not found")
