package game

import (
	"errors"
	"fmt"
)

// ErrResourceNotFound is wrapped when a file the game needs at startup is
// missing.
var ErrResourceNotFound = errors.New("resource not found")

// ErrResourceLoad is wrapped when a startup file exists but cannot be read
// or decoded.
var ErrResourceLoad = errors.New("resource could not be loaded")

// ResourceError reports a startup resource that could not be loaded.
type ResourceError struct {
	Kind string // "font", ...
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Kind, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
