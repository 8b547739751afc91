package game

import (
	"io"
	"os"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	LogOutput = io.Discard
	os.Exit(m.Run())
}

func testConfig() Config {
	return Config{Seed: 42, StageFrames: StageFrames, FixedStep: true, Width: 800, Height: 600}
}

func newTestRace(t *testing.T) (*Race, *MemoryScene) {
	t.Helper()
	scene := NewMemoryScene()
	race, err := NewRace(testConfig(), DefaultStages(), scene)
	require.NoError(t, err)
	return race, scene
}

func straightCurve(t *testing.T) *TrackCurve {
	t.Helper()
	c, err := NewTrackCurve([]mgl64.Vec3{{0, 0, 0}, {0, 0, -10}, {0, 0, -20}})
	require.NoError(t, err)
	return c
}

func assertVecInDelta(t *testing.T, want, got mgl64.Vec3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v vs %v", i, want, got)
	}
}
