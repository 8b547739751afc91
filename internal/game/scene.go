package game

import (
	"github.com/go-gl/mathgl/mgl64"
	uuid "github.com/satori/go.uuid"
)

type RenderKind int

const (
	KindTrack RenderKind = iota
	KindObstacle
	KindPlayer
	KindAIRacer
)

func (k RenderKind) String() string {
	switch k {
	case KindTrack:
		return "track"
	case KindObstacle:
		return "obstacle"
	case KindPlayer:
		return "player"
	case KindAIRacer:
		return "ai"
	}
	return "unknown"
}

// Mesh is an indexed triangle list in model space.
type Mesh struct {
	Positions []float32 // xyz
	Normals   []float32 // xyz
	Indices   []uint32
}

func (m *Mesh) VertexCount() int { return len(m.Positions) / 3 }

// Renderable is the opaque handle the simulation hands to the render
// boundary. The simulation owns Position and Heading; renderers only read.
type Renderable struct {
	ID       uuid.UUID
	Kind     RenderKind
	Mesh     *Mesh
	Color    RGB
	Position mgl64.Vec3
	Heading  float64 // rotation about +Y, radians
}

func NewRenderable(kind RenderKind, mesh *Mesh, col RGB) *Renderable {
	return &Renderable{
		ID:    uuid.NewV4(),
		Kind:  kind,
		Mesh:  mesh,
		Color: col,
	}
}

// Model returns the world transform: translate * rotateY(heading).
func (r *Renderable) Model() mgl64.Mat4 {
	return mgl64.Translate3D(r.Position.X(), r.Position.Y(), r.Position.Z()).
		Mul4(mgl64.HomogRotate3DY(r.Heading))
}

// Scene is the render boundary's retained object list.
type Scene interface {
	Add(r *Renderable)
	Remove(r *Renderable)
}

// Presenter draws the current frame from the camera's viewpoint.
type Presenter interface {
	Render(cam *FollowCamera)
}

// MemoryScene keeps the live object set in insertion order. It is used
// headless and as the object store behind the GL and terminal views.
type MemoryScene struct {
	items   []*Renderable
	index   map[uuid.UUID]int
	Added   int
	Removed int
	Frames  int
}

func NewMemoryScene() *MemoryScene {
	return &MemoryScene{index: make(map[uuid.UUID]int)}
}

func (s *MemoryScene) Add(r *Renderable) {
	if _, ok := s.index[r.ID]; ok {
		return
	}
	s.index[r.ID] = len(s.items)
	s.items = append(s.items, r)
	s.Added++
}

func (s *MemoryScene) Remove(r *Renderable) {
	i, ok := s.index[r.ID]
	if !ok {
		return
	}
	copy(s.items[i:], s.items[i+1:])
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	delete(s.index, r.ID)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].ID] = j
	}
	s.Removed++
}

// Render counts frames; a headless scene draws nothing.
func (s *MemoryScene) Render(cam *FollowCamera) { s.Frames++ }

func (s *MemoryScene) Items() []*Renderable { return s.items }

func (s *MemoryScene) Len() int { return len(s.items) }

// Count returns how many live renderables have the given kind.
func (s *MemoryScene) Count(kind RenderKind) int {
	n := 0
	for _, r := range s.items {
		if r.Kind == kind {
			n++
		}
	}
	return n
}

// BoxMesh builds an axis-aligned box centred on the origin with flat normals.
func BoxMesh(w, h, d float64) *Mesh {
	hx, hy, hz := float32(w/2), float32(h/2), float32(d/2)
	faces := []struct {
		n       [3]float32
		corners [4][3]float32
	}{
		{[3]float32{1, 0, 0}, [4][3]float32{{hx, -hy, hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-hx, -hy, -hz}, {-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}, {-hx, hy, -hz}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}, {-hx, -hy, hz}}},
		{[3]float32{0, 0, 1}, [4][3]float32{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}},
	}
	m := &Mesh{}
	for _, f := range faces {
		base := uint32(m.VertexCount())
		for _, c := range f.corners {
			m.Positions = append(m.Positions, c[0], c[1], c[2])
			m.Normals = append(m.Normals, f.n[0], f.n[1], f.n[2])
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}
