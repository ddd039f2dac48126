package field

import "github.com/pkg/errors"

var (
	// ErrInvalidElement is returned when a residue is not reduced modulo
	// the stated prime, or the prime itself is unusable.
	ErrInvalidElement = errors.New("invalid field element")
	// ErrFieldMismatch is returned when two elements of different fields
	// are combined.
	ErrFieldMismatch = errors.New("field elements belong to different fields")
	// ErrDivisionByZero is returned when inverting the zero element.
	ErrDivisionByZero = errors.New("division by zero")
)
