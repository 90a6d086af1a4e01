// Package geom - dynamic city movement (the "drift" model).
//
// Each city cycles through independent movement segments: pick a random
// target inside the grid, glide toward it linearly over a random duration
// of minSegmentTicks..maxSegmentTicks generation ticks, then pick a new
// target. A proposed step that would bring two cities closer than the
// minimum separation rejects the whole segment and re-targets — the move
// is replaced, never clamped. When a bounded number of re-target attempts
// all collide, the city holds its position for one tick instead of
// failing the run.
//
// Determinism: a single seeded stream is consumed in city-index order, so
// the full trajectory is a pure function of (initial cities, grid, seed).
//
// Ordering contract: Advance must run before any cost evaluation in a
// dynamic tick, followed by DistMatrix.Rebuild; all engines in the tick
// then observe the same snapshot.
package geom

import "math/rand"

const (
	// minSegmentTicks / maxSegmentTicks bound the random duration of one
	// movement segment, in generation ticks (inclusive).
	minSegmentTicks = 150
	maxSegmentTicks = 300

	// minSepFraction of the larger grid dimension is the closest two
	// cities are allowed to approach during movement.
	minSepFraction = 0.01

	// maxRetargetAttempts bounds collision-avoidance re-targeting within a
	// single tick before the city falls back to holding still.
	maxRetargetAttempts = 8
)

// segment holds the movement state of one city.
type segment struct {
	from   City // position when the segment started
	target City
	step   int // ticks already taken inside this segment
	dur    int // total ticks in this segment, ≥ 1
}

// Drift relocates cities over time. It owns a private copy of the city
// positions; callers read them back via Positions after each Advance.
type Drift struct {
	width  float64
	height float64
	minSep float64
	rng    *rand.Rand
	pos    []City
	segs   []segment
	tick   int
}

// NewDrift prepares the movement model for the given initial cities.
// The input slice is copied; the caller's cities are never mutated.
//
// Contracts:
//   - len(cities) ≥ 2, otherwise ErrTooFewCities.
//   - width > 0 and height > 0, otherwise ErrBadGrid.
//
// Complexity: O(n) time, O(n) space.
func NewDrift(cities []City, width, height float64, seed int64) (*Drift, error) {
	if len(cities) < 2 {
		return nil, ErrTooFewCities
	}
	if width <= 0 || height <= 0 {
		return nil, ErrBadGrid
	}

	larger := width
	if height > larger {
		larger = height
	}

	d := &Drift{
		width:  width,
		height: height,
		minSep: minSepFraction * larger,
		rng:    rngFromSeed(seed),
		pos:    CopyCities(cities),
		segs:   make([]segment, len(cities)),
	}

	// Seed every city with its first segment, in index order.
	var i int
	for i = 0; i < len(d.segs); i++ {
		d.retarget(i)
	}

	return d, nil
}

// retarget starts a fresh segment for city i from its current position.
// Consumes exactly three rng draws (duration, target x, target y) so the
// stream layout stays stable and reproducible.
func (d *Drift) retarget(i int) {
	d.segs[i] = segment{
		from: d.pos[i],
		target: City{
			X: d.rng.Float64() * d.width,
			Y: d.rng.Float64() * d.height,
		},
		step: 0,
		dur:  minSegmentTicks + d.rng.Intn(maxSegmentTicks-minSegmentTicks+1),
	}
}

// collides reports whether placing city i at p would violate the minimum
// separation against any other city's current position.
//
// Complexity: O(n).
func (d *Drift) collides(i int, p City) bool {
	var (
		j  int
		dx float64
		dy float64
	)
	for j = 0; j < len(d.pos); j++ {
		if j == i {
			continue
		}
		dx = p.X - d.pos[j].X
		dy = p.Y - d.pos[j].Y
		if dx*dx+dy*dy < d.minSep*d.minSep {
			return true
		}
	}

	return false
}

// stepPos returns the linear interpolation of city i's segment after one
// more tick: from + (step+1)/dur · (target − from).
func (d *Drift) stepPos(i int) City {
	s := &d.segs[i]
	progress := float64(s.step+1) / float64(s.dur)

	return City{
		X: s.from.X + progress*(s.target.X-s.from.X),
		Y: s.from.Y + progress*(s.target.Y-s.from.Y),
	}
}

// Advance moves every city by one generation tick.
//
// Per city: expire the segment if its duration elapsed, then propose the
// next interpolated step. A colliding proposal rejects the segment and
// re-targets (up to maxRetargetAttempts, adopting the first attempt whose
// opening step is clear); if every attempt collides the city stays put
// for this tick and retries on the next one.
//
// Complexity: O(n²) worst case (collision scan per city), O(1) space.
func (d *Drift) Advance() {
	var (
		i, attempt int
		next       City
	)
	for i = 0; i < len(d.pos); i++ {
		if d.segs[i].step >= d.segs[i].dur {
			d.retarget(i)
		}

		// Exhausting every attempt leaves the city holding still for
		// this tick; it retries on the next one.
		for attempt = 0; attempt <= maxRetargetAttempts; attempt++ {
			next = d.stepPos(i)
			if !d.collides(i, next) {
				d.pos[i] = next
				d.segs[i].step++
				break
			}
			// Conflicting move: replace the segment, do not clamp.
			d.retarget(i)
		}
	}
	d.tick++
}

// Positions returns an independent copy of the current city positions.
//
// Complexity: O(n) time, O(n) space.
func (d *Drift) Positions() []City { return CopyCities(d.pos) }

// Tick returns how many Advance calls have completed.
func (d *Drift) Tick() int { return d.tick }
