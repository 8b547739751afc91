package game

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// TrackCurve is an open centripetal Catmull-Rom spline through a stage's
// control points, with an arc-length table for distance-uniform queries.
type TrackCurve struct {
	points  []mgl64.Vec3
	lengths []float64 // cumulative length at i/ArcLengthDivisions
}

// NewTrackCurve builds the spline. The control points are copied.
func NewTrackCurve(points []mgl64.Vec3) (*TrackCurve, error) {
	if len(points) < 2 {
		return nil, errors.Wrapf(ErrDegenerateStage, "got %d", len(points))
	}
	c := &TrackCurve{points: append([]mgl64.Vec3(nil), points...)}
	c.lengths = c.arcLengths(ArcLengthDivisions)
	return c, nil
}

// ControlPoints returns the points the curve passes through.
func (c *TrackCurve) ControlPoints() []mgl64.Vec3 { return c.points }

// Length is the approximate path length.
func (c *TrackCurve) Length() float64 { return c.lengths[len(c.lengths)-1] }

// Point evaluates the raw spline parameter t in [0,1]. Control point i
// sits at t = i/(n-1).
func (c *TrackCurve) Point(t float64) mgl64.Vec3 {
	coef, w, _ := c.span(t)
	return cubic(coef, w)
}

// PointAt evaluates the curve at arc-length fraction u in [0,1].
func (c *TrackCurve) PointAt(u float64) mgl64.Vec3 {
	return c.Point(c.uToT(u))
}

// TangentAt returns the unit direction of travel at arc-length fraction u.
func (c *TrackCurve) TangentAt(u float64) mgl64.Vec3 {
	coef, w, scale := c.span(c.uToT(u))
	d := coef[1].Add(coef[2].Mul(2 * w)).Add(coef[3].Mul(3 * w * w)).Mul(scale)
	if d.Len() == 0 {
		return mgl64.Vec3{0, 0, -1}
	}
	return d.Normalize()
}

// span picks the segment for t and returns its cubic coefficients, the
// local weight inside the segment and dt_local/dt.
func (c *TrackCurve) span(t float64) ([4]mgl64.Vec3, float64, float64) {
	t = clampF(t, 0, 1)
	l := len(c.points)
	p := float64(l-1) * t
	i := int(math.Floor(p))
	w := p - float64(i)
	if i >= l-1 {
		i = l - 2
		w = 1
	}

	p1 := c.points[i]
	p2 := c.points[i+1]
	var p0, p3 mgl64.Vec3
	if i > 0 {
		p0 = c.points[i-1]
	} else {
		p0 = c.points[0].Sub(c.points[1]).Add(c.points[0])
	}
	if i+2 < l {
		p3 = c.points[i+2]
	} else {
		p3 = c.points[l-1].Sub(c.points[l-2]).Add(c.points[l-1])
	}
	return centripetal(p0, p1, p2, p3), w, float64(l - 1)
}

// centripetal computes the Hermite form of a non-uniform Catmull-Rom
// segment between p1 and p2 with alpha = 0.5.
func centripetal(p0, p1, p2, p3 mgl64.Vec3) [4]mgl64.Vec3 {
	dt0 := math.Pow(distSq(p0, p1), 0.25)
	dt1 := math.Pow(distSq(p1, p2), 0.25)
	dt2 := math.Pow(distSq(p2, p3), 0.25)
	if dt1 < 1e-4 {
		dt1 = 1
	}
	if dt0 < 1e-4 {
		dt0 = dt1
	}
	if dt2 < 1e-4 {
		dt2 = dt1
	}

	t1 := p1.Sub(p0).Mul(1 / dt0).
		Sub(p2.Sub(p0).Mul(1 / (dt0 + dt1))).
		Add(p2.Sub(p1).Mul(1 / dt1)).
		Mul(dt1)
	t2 := p2.Sub(p1).Mul(1 / dt1).
		Sub(p3.Sub(p1).Mul(1 / (dt1 + dt2))).
		Add(p3.Sub(p2).Mul(1 / dt2)).
		Mul(dt1)

	return [4]mgl64.Vec3{
		p1,
		t1,
		p1.Mul(-3).Add(p2.Mul(3)).Sub(t1.Mul(2)).Sub(t2),
		p1.Mul(2).Sub(p2.Mul(2)).Add(t1).Add(t2),
	}
}

func cubic(c [4]mgl64.Vec3, w float64) mgl64.Vec3 {
	return c[0].Add(c[1].Mul(w)).Add(c[2].Mul(w * w)).Add(c[3].Mul(w * w * w))
}

func distSq(a, b mgl64.Vec3) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

func (c *TrackCurve) arcLengths(divisions int) []float64 {
	out := make([]float64, divisions+1)
	last := c.Point(0)
	for i := 1; i <= divisions; i++ {
		cur := c.Point(float64(i) / float64(divisions))
		out[i] = out[i-1] + cur.Sub(last).Len()
		last = cur
	}
	return out
}

// uToT maps an arc-length fraction onto the raw spline parameter.
func (c *TrackCurve) uToT(u float64) float64 {
	u = clampF(u, 0, 1)
	n := len(c.lengths) - 1
	total := c.lengths[n]
	if total == 0 {
		return u
	}
	target := u * total
	i := sort.SearchFloat64s(c.lengths, target)
	if i <= n && c.lengths[i] == target {
		return float64(i) / float64(n)
	}
	i--
	if i < 0 {
		i = 0
	}
	if i >= n {
		return 1
	}
	seg := c.lengths[i+1] - c.lengths[i]
	frac := 0.0
	if seg > 0 {
		frac = (target - c.lengths[i]) / seg
	}
	return (float64(i) + frac) / float64(n)
}
