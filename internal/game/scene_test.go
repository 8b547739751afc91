package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemorySceneAddRemove(t *testing.T) {
	s := NewMemoryScene()
	a := NewRenderable(KindObstacle, obstacleMesh, RGB{})
	b := NewRenderable(KindPlayer, carMesh, RGB{})
	c := NewRenderable(KindAIRacer, carMesh, RGB{})

	s.Add(a)
	s.Add(b)
	s.Add(c)
	s.Add(b)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Added)

	s.Remove(a)
	assert.Equal(t, []*Renderable{b, c}, s.Items())
	s.Remove(a)
	assert.Equal(t, 1, s.Removed)

	s.Remove(b)
	assert.Equal(t, []*Renderable{c}, s.Items())
	assert.Equal(t, 1, s.Count(KindAIRacer))
	assert.Equal(t, 0, s.Count(KindPlayer))
}

func TestBoxMesh(t *testing.T) {
	m := BoxMesh(1, 0.5, 2)
	assert.Equal(t, 24, m.VertexCount())
	assert.Len(t, m.Indices, 36)
	for i := 0; i < len(m.Positions); i += 3 {
		assert.InDelta(t, 0.5, abs32(m.Positions[i]), 1e-6)
		assert.InDelta(t, 0.25, abs32(m.Positions[i+1]), 1e-6)
		assert.InDelta(t, 1.0, abs32(m.Positions[i+2]), 1e-6)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestRenderKindString(t *testing.T) {
	assert.Equal(t, "track", KindTrack.String())
	assert.Equal(t, "ai", KindAIRacer.String())
	assert.Equal(t, "unknown", RenderKind(42).String())
}
