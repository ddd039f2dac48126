package curve

import "github.com/pkg/errors"

var (
	// ErrPointNotOnCurve is returned when coordinates do not satisfy the
	// curve equation.
	ErrPointNotOnCurve = errors.New("point is not on the curve")
	// ErrCurveMismatch is returned when points of different curves are
	// combined.
	ErrCurveMismatch = errors.New("points belong to different curves")
	// ErrOrderNotFound is returned by Point.Order when the search limit is
	// reached before the identity.
	ErrOrderNotFound = errors.New("point order not found within limit")
)
