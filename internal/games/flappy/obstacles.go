package flappy

import "time"

// Sampler supplies uniform values in [0, 1). *rand.Rand satisfies it.
type Sampler interface {
	Float64() float64
}

// GapTopFor maps a uniform sample u in [0, 1] onto the allowed gap-top range.
func GapTopFor(p Params, u float64) float64 {
	lo, hi := p.MinGapTop(), p.MaxGapTop()
	return lo + u*(hi-lo)
}

// SpawnDue reports whether the spawn interval has strictly elapsed.
func SpawnDue(p Params, lastSpawn, now time.Time) bool {
	return now.Sub(lastSpawn) > p.SpawnInterval
}

// spawn appends a new pipe at the spawn line when the interval has elapsed.
// The caller owns obs; it is appended to, never modified in place.
func spawn(obs []Obstacle, p Params, lastSpawn, now time.Time, rng Sampler) ([]Obstacle, time.Time, bool) {
	if !SpawnDue(p, lastSpawn, now) {
		return obs, lastSpawn, false
	}
	obs = append(obs, Obstacle{
		X:         p.SpawnX(),
		GapTop:    GapTopFor(p, rng.Float64()),
		SpawnedAt: now,
	})
	return obs, now, true
}

// advance moves every pipe left by one frame and drops those whose left
// edge no longer exceeds the despawn line. Order is preserved.
func advance(obs []Obstacle, p Params) []Obstacle {
	kept := obs[:0]
	for _, o := range obs {
		o.X -= p.PipeSpeed
		if o.X > p.DespawnX() {
			kept = append(kept, o)
		}
	}
	return kept
}
