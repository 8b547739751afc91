package game

// Obstacle footprint.
var obstacleMesh = BoxMesh(1, 1, 1)

// ObstacleField owns the current stage's obstacle set.
type ObstacleField struct {
	Items []*Renderable
}

// Place clears the previous set from the scene and scatters
// ObstaclesPerStage boxes along the curve. Overlaps are allowed.
func (f *ObstacleField) Place(c *TrackCurve, r *Rand, scene Scene) []*Renderable {
	for _, o := range f.Items {
		scene.Remove(o)
	}
	items := make([]*Renderable, 0, ObstaclesPerStage)
	for i := 0; i < ObstaclesPerStage; i++ {
		p := c.PointAt(r.Float64())
		o := NewRenderable(KindObstacle, obstacleMesh, Palette.Obstacle)
		o.Position[0] = p.X() + r.RangeF(-ObstacleJitter, ObstacleJitter)
		o.Position[1] = ObstacleY
		o.Position[2] = p.Z()
		scene.Add(o)
		items = append(items, o)
	}
	f.Items = items
	return items
}
