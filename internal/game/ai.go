package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AIRacer follows the track curve by arc-length progress.
// Invariant: 0 <= Progress <= 1.
type AIRacer struct {
	Body     *Renderable
	Progress float64
	Speed    float64 // progress per reference frame
}

// SpawnAIRacers creates n racers staggered AISpawnSpacing apart, each with
// a random colour and speed.
func SpawnAIRacers(n int, r *Rand) []*AIRacer {
	out := make([]*AIRacer, 0, n)
	for i := 0; i < n; i++ {
		ai := &AIRacer{
			Body:     NewRenderable(KindAIRacer, carMesh, RandomColor(r)),
			Progress: float64(i) * AISpawnSpacing,
			Speed:    AISpeedMin + r.Float64()*AISpeedJitter,
		}
		ai.Body.Position = mgl64.Vec3{0, PlayerRideY, -float64(i)*5 - 10}
		out = append(out, ai)
	}
	return out
}

// Update advances progress and places the body on the curve. Overshooting
// the end restarts the lap at exactly 0; the excess is dropped.
func (a *AIRacer) Update(c *TrackCurve, step float64) {
	a.Progress += a.Speed * step
	if a.Progress > 1 {
		a.Progress = 0
	}
	p := c.PointAt(a.Progress)
	a.Body.Position = mgl64.Vec3{p.X(), PlayerRideY, p.Z()}
	t := c.TangentAt(a.Progress)
	a.Body.Heading = math.Atan2(-t.X(), -t.Z())
}
