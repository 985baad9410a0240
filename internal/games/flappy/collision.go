package flappy

// Collision names what ended a run.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionBoundary
	CollisionObstacle
)

// String returns a human-readable name for the collision.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionBoundary:
		return "boundary"
	case CollisionObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// HitsBoundary reports whether the bird touches the ground line or the top edge.
func HitsBoundary(b Bird, p Params) bool {
	box := b.Bounds(p)
	return box.Bottom >= p.GroundY() || box.Top <= 0
}

// HitsObstacle reports whether the bird's inset hitbox overlaps the widened
// span of the pipe while not fitting inside its gap.
func HitsObstacle(b Bird, o Obstacle, p Params) bool {
	box := b.Hitbox(p)
	if !box.OverlapsX(o.X-p.HitMargin, o.Right(p)+p.HitMargin) {
		return false
	}
	return !box.WithinY(o.GapTop, o.GapBottom(p))
}

// Passed reports whether the pipe's right edge is behind the bird's x.
func Passed(b Bird, o Obstacle, p Params) bool {
	return o.Right(p) < b.X
}

// evaluate runs the boundary check, then per pipe the collision check and
// the scoring check. Scoring runs even when a collision was found, so both
// can happen in one frame. obs is updated in place.
func evaluate(b Bird, obs []Obstacle, p Params) (Collision, int) {
	hit := CollisionNone
	if HitsBoundary(b, p) {
		hit = CollisionBoundary
	}

	scored := 0
	for i := range obs {
		if hit == CollisionNone && HitsObstacle(b, obs[i], p) {
			hit = CollisionObstacle
		}
		if !obs[i].Scored && Passed(b, obs[i], p) {
			obs[i].Scored = true
			scored++
		}
	}
	return hit, scored
}
