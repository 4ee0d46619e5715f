package advanced

import "github.com/pkg/errors"

// The geometry primitives report ordinary degeneracies (parallel lines,
// missing hulls) through comma-ok results. A broken precondition found deep
// inside an algorithm, such as a polygon that turns out not to be simple, is
// raised as a panic instead, and the public API recovers it as an error.

// Error raised by fatalf. Only panics carrying this type are recovered; any
// other panic, runtime errors included, is a bug and keeps unwinding.
type GeometryError struct {
	error
}

func (e GeometryError) Cause() error {
	return e.error
}

func (e GeometryError) Unwrap() error {
	return e.error
}

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError{errors.Errorf(format, args...)})
}

func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
