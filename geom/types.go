package geom

import "errors"

// ErrTooFewCities is returned when an instance holds fewer than two cities;
// a tour over zero or one city is meaningless.
var ErrTooFewCities = errors.New("geom: instance needs at least two cities")

// ErrBadGrid is returned when a grid dimension is zero or negative.
var ErrBadGrid = errors.New("geom: grid dimensions must be positive")

// ErrDimensionMismatch is returned when a city slice does not match the
// dimension a DistMatrix or Drift was built for.
var ErrDimensionMismatch = errors.New("geom: city count mismatch")

// City is a point on the plane. Positions are mutable only through Drift
// in a dynamic run; static instances treat them as immutable for the run.
type City struct {
	X float64
	Y float64
}
