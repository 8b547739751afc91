package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BuildTube sweeps a circle of the given radius along the curve. Frames are
// parallel-transported so the tube does not twist at inflection points.
func BuildTube(c *TrackCurve, segments int, radius float64, radial int) *Mesh {
	if segments < 1 {
		segments = 1
	}
	if radial < 3 {
		radial = 3
	}

	tangents := make([]mgl64.Vec3, segments+1)
	for i := range tangents {
		tangents[i] = c.TangentAt(float64(i) / float64(segments))
	}
	normals, binormals := transportFrames(tangents)

	m := &Mesh{}
	for i := 0; i <= segments; i++ {
		center := c.PointAt(float64(i) / float64(segments))
		n, b := normals[i], binormals[i]
		for j := 0; j <= radial; j++ {
			v := float64(j) / float64(radial) * 2 * math.Pi
			sin, cos := math.Sin(v), -math.Cos(v)
			dir := n.Mul(cos).Add(b.Mul(sin)).Normalize()
			p := center.Add(dir.Mul(radius))
			m.Positions = append(m.Positions, float32(p.X()), float32(p.Y()), float32(p.Z()))
			m.Normals = append(m.Normals, float32(dir.X()), float32(dir.Y()), float32(dir.Z()))
		}
	}

	ring := uint32(radial + 1)
	for i := uint32(1); i <= uint32(segments); i++ {
		for j := uint32(1); j <= uint32(radial); j++ {
			a := ring*(i-1) + (j - 1)
			b := ring*i + (j - 1)
			cc := ring*i + j
			d := ring*(i-1) + j
			m.Indices = append(m.Indices, a, b, d, b, cc, d)
		}
	}
	return m
}

func transportFrames(tangents []mgl64.Vec3) ([]mgl64.Vec3, []mgl64.Vec3) {
	n := len(tangents)
	normals := make([]mgl64.Vec3, n)
	binormals := make([]mgl64.Vec3, n)

	// Seed the first normal from the tangent's smallest axis.
	t0 := tangents[0]
	axis := mgl64.Vec3{1, 0, 0}
	min := math.Abs(t0.X())
	if math.Abs(t0.Y()) <= min {
		min = math.Abs(t0.Y())
		axis = mgl64.Vec3{0, 1, 0}
	}
	if math.Abs(t0.Z()) <= min {
		axis = mgl64.Vec3{0, 0, 1}
	}
	v := t0.Cross(axis).Normalize()
	normals[0] = t0.Cross(v)
	binormals[0] = t0.Cross(normals[0])

	for i := 1; i < n; i++ {
		normals[i] = normals[i-1]
		binormals[i] = binormals[i-1]
		v := tangents[i-1].Cross(tangents[i])
		if v.Len() > mgl64.Epsilon {
			v = v.Normalize()
			theta := math.Acos(clampF(tangents[i-1].Dot(tangents[i]), -1, 1))
			rot := mgl64.HomogRotate3D(theta, v)
			normals[i] = mgl64.TransformNormal(normals[i], rot)
		}
		binormals[i] = tangents[i].Cross(normals[i])
	}
	return normals, binormals
}
