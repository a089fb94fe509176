package renderer2d

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNotInitialized = errors.New("renderer not initialized")
	ErrInitialized    = errors.New("renderer already initialized")
	ErrSceneActive    = errors.New("scene already active")
	ErrNoScene        = errors.New("no active scene")
	ErrShutdown       = errors.New("renderer shut down")
)

// StateError reports an operation called in the wrong lifecycle state. The
// scene bracketing and draw calls panic with a *StateError; Init and Shutdown
// return it.
type StateError struct {
	Op    string
	State string
	Err   error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("renderer2d: %s: %v (state %s)", e.Op, e.Err, e.State)
}

func (e *StateError) Unwrap() error { return e.Err }
