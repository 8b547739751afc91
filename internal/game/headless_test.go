package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHeadlessOneStage(t *testing.T) {
	sum, err := RunHeadless(testConfig(), DefaultStages(), StageFrames, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(StageFrames), sum.Frames)
	assert.Equal(t, 1, sum.Transitions)
	assert.Equal(t, 1, sum.Stage)
	assert.Equal(t, "Mirror", sum.StageName)
	assert.Equal(t, ObstaclesPerStage, sum.Obstacles)
	// track + obstacles + player + AI racers
	assert.Equal(t, 1+ObstaclesPerStage+1+AIRacerCount, sum.SceneItems)
	assert.Len(t, sum.AIProgress, AIRacerCount)
	assertVecInDelta(t, StageOrigin, sum.Player, 0)
}

func TestRunHeadlessHoldingForward(t *testing.T) {
	in := NewInputState()
	in.Set("w", true)
	sum, err := RunHeadless(testConfig(), DefaultStages(), 1000, in)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Transitions)
	assert.InDelta(t, PlayerMaxSpeed, sum.Speed, 1e-12)
	assert.Zero(t, sum.Heading)
	assert.InDelta(t, 0, sum.Player.X(), 1e-9)
	assert.Less(t, sum.Player.Z(), -300.0)
}

func TestRunHeadlessIsDeterministic(t *testing.T) {
	a, err := RunHeadless(testConfig(), DefaultStages(), 2500, nil)
	require.NoError(t, err)
	b, err := RunHeadless(testConfig(), DefaultStages(), 2500, nil)
	require.NoError(t, err)
	assert.Equal(t, a.AIProgress, b.AIProgress)
}

func TestRunHeadlessRejectsEmptyStages(t *testing.T) {
	_, err := RunHeadless(testConfig(), nil, 10, nil)
	assert.ErrorIs(t, err, ErrNoStages)
}
