package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageAdvanceWraps(t *testing.T) {
	race, scene := newTestRace(t)
	sc := race.Stages
	require.Equal(t, 0, sc.Index)

	var changed []int
	race.Bus.Subscribe(EventStageChanged, func(e Event) { changed = append(changed, e.Stage) })

	require.NoError(t, sc.Advance())
	assert.Equal(t, 1, sc.Index)
	assert.Len(t, sc.Obstacles.Items, ObstaclesPerStage)
	assert.Equal(t, ObstaclesPerStage, scene.Count(KindObstacle))

	require.NoError(t, sc.Advance())
	assert.Equal(t, 0, sc.Index)
	assert.Len(t, sc.Obstacles.Items, ObstaclesPerStage)
	assert.Equal(t, ObstaclesPerStage, scene.Count(KindObstacle))

	assert.Equal(t, []int{1, 0}, changed)
}

func TestStageEntryReplacesTrack(t *testing.T) {
	race, scene := newTestRace(t)
	first := race.Stages.Track()
	firstCurve := race.Stages.Curve

	require.NoError(t, race.Stages.Advance())
	assert.Equal(t, 1, scene.Count(KindTrack))
	assert.NotEqual(t, first.ID, race.Stages.Track().ID)
	assert.NotSame(t, firstCurve, race.Stages.Curve)
	assertVecInDelta(t, DefaultStages()[1].Points[5], race.Stages.Curve.PointAt(1), 1e-9)
}

func TestStageEntryResetsActors(t *testing.T) {
	race, _ := newTestRace(t)
	race.Player.Body.Position = mgl64.Vec3{7, PlayerRideY, -33}
	race.Player.Speed = 0.3
	race.Player.Body.Heading = 0.7
	for _, ai := range race.AI {
		ai.Progress = 0.9
	}

	require.NoError(t, race.Stages.Advance())

	assertVecInDelta(t, mgl64.Vec3{0, 0.25, 0}, race.Player.Body.Position, 0)
	assert.Equal(t, 0.3, race.Player.Speed)
	assert.Equal(t, 0.7, race.Player.Heading())
	for _, ai := range race.AI {
		assert.GreaterOrEqual(t, ai.Progress, 0.0)
		assert.Less(t, ai.Progress, AIRespawnSpread)
	}
}

func TestStageInitialLoadKeepsSpawnProgress(t *testing.T) {
	race, scene := newTestRace(t)
	for i, ai := range race.AI {
		assert.InDelta(t, float64(i)*AISpawnSpacing, ai.Progress, 1e-12)
	}
	assert.Equal(t, 1, scene.Count(KindTrack))
	assert.Equal(t, 1, scene.Count(KindPlayer))
	assert.Equal(t, AIRacerCount, scene.Count(KindAIRacer))
	assert.Equal(t, ObstaclesPerStage, scene.Count(KindObstacle))
}

func TestStageControllerValidation(t *testing.T) {
	_, err := NewRace(testConfig(), nil, NewMemoryScene())
	assert.ErrorIs(t, err, ErrNoStages)

	stages := DefaultStages()
	stages[1].Points = stages[1].Points[:1]
	_, err = NewRace(testConfig(), stages, NewMemoryScene())
	assert.ErrorIs(t, err, ErrDegenerateStage)
	assert.Contains(t, err.Error(), "Mirror")
}

func TestStageEnterFailureKeepsCurrentStage(t *testing.T) {
	race, scene := newTestRace(t)
	track := race.Stages.Track()
	obstacles := race.Stages.Obstacles.Items
	race.Stages.Stages[1].Points = nil

	err := race.Stages.Advance()
	assert.ErrorIs(t, err, ErrDegenerateStage)
	assert.Equal(t, 0, race.Stages.Index)
	assert.Same(t, track, race.Stages.Track())
	assert.Equal(t, obstacles, race.Stages.Obstacles.Items)
	assert.Equal(t, ObstaclesPerStage, scene.Count(KindObstacle))

	assert.Error(t, race.Stages.Enter(5))
}

func TestSingleStageRaceReentersItself(t *testing.T) {
	scene := NewMemoryScene()
	race, err := NewRace(testConfig(), DefaultStages()[:1], scene)
	require.NoError(t, err)
	require.NoError(t, race.Stages.Advance())
	assert.Equal(t, 0, race.Stages.Index)
	assert.Equal(t, 1, scene.Count(KindTrack))
}
