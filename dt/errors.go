package dt

import "errors"

var (
	// ErrNilInput indicates a nil grid was passed to DistanceTransform.
	ErrNilInput = errors.New("dt: input grid is nil")

	// ErrInvalidInputType indicates the grid does not hold float32 costs.
	ErrInvalidInputType = errors.New("dt: input grid must hold float32 costs")

	// ErrWeightLengthMismatch indicates a non-empty weight vector whose length
	// differs from the grid dimensionality.
	ErrWeightLengthMismatch = errors.New("dt: weight count must equal grid dimensionality")

	// ErrLocationShape indicates a location map whose shape is not [dims]+shape.
	ErrLocationShape = errors.New("dt: location map must have shape [dims, ...grid shape]")
)
