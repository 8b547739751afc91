package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func held(keys ...string) InputState {
	in := NewInputState()
	for _, k := range keys {
		in.Set(k, true)
	}
	return in
}

func TestPlayerSpeedIsClamped(t *testing.T) {
	p := NewPlayer()
	for i := 0; i < 100; i++ {
		p.Update(held("w"), 1)
		assert.LessOrEqual(t, p.Speed, PlayerMaxSpeed)
	}
	assert.InDelta(t, PlayerMaxSpeed, p.Speed, 1e-12)

	for i := 0; i < 100; i++ {
		p.Update(held("s"), 1)
		assert.GreaterOrEqual(t, p.Speed, -PlayerMaxSpeed)
	}
	assert.InDelta(t, -PlayerMaxSpeed, p.Speed, 1e-12)
}

func TestPlayerSpeedDecaysWithoutInput(t *testing.T) {
	for _, start := range []float64{0.4, -0.25, 0.1} {
		p := NewPlayer()
		p.Speed = start
		in := NewInputState()
		for n := 1; n <= 50; n++ {
			p.Update(in, 1)
			want := start * math.Pow(PlayerDecay, float64(n))
			assert.InDelta(t, want, p.Speed, 1e-12)
			assert.Equal(t, math.Signbit(start), math.Signbit(p.Speed), "sign flipped at frame %d", n)
		}
		assert.NotZero(t, p.Speed)
	}
}

func TestPlayerForwardWinsOverReverse(t *testing.T) {
	p := NewPlayer()
	p.Update(held("w", "s"), 1)
	assert.InDelta(t, PlayerAccel, p.Speed, 1e-12)
}

func TestPlayerArrowAliases(t *testing.T) {
	p := NewPlayer()
	p.Update(held("arrowup"), 1)
	assert.InDelta(t, PlayerAccel, p.Speed, 1e-12)
	p.Update(held("arrowdown"), 1)
	assert.InDelta(t, 0, p.Speed, 1e-12)
}

func TestPlayerSteeringScalesWithSpeed(t *testing.T) {
	p := NewPlayer()
	p.Update(held("a"), 1)
	assert.Zero(t, p.Heading(), "no turning at rest")

	p.Speed = PlayerMaxSpeed
	p.Update(held("w", "a"), 1)
	assert.InDelta(t, PlayerTurnSpeed, p.Heading(), 1e-12)

	p.Update(held("w", "d"), 1)
	assert.InDelta(t, 0, p.Heading(), 1e-12)

	p.Speed = PlayerMaxSpeed / 2
	p.Body.Heading = 0
	p.Update(held("a"), 1)
	want := PlayerTurnSpeed * (PlayerMaxSpeed / 2 * PlayerDecay) / PlayerMaxSpeed
	assert.InDelta(t, want, p.Heading(), 1e-12)
}

func TestPlayerSteeringInvertsInReverse(t *testing.T) {
	p := NewPlayer()
	p.Speed = -PlayerMaxSpeed
	p.Update(held("s", "a"), 1)
	assert.InDelta(t, -PlayerTurnSpeed, p.Heading(), 1e-12)
}

func TestPlayerMovesAlongHeading(t *testing.T) {
	p := NewPlayer()
	p.Speed = PlayerMaxSpeed
	p.Update(held("w"), 1)
	assertVecInDelta(t, mgl64.Vec3{0, PlayerRideY, -PlayerMaxSpeed}, p.Body.Position, 1e-12)

	p = NewPlayer()
	p.Speed = PlayerMaxSpeed
	p.Body.Heading = math.Pi / 2
	p.Update(held("w"), 1)
	assertVecInDelta(t, mgl64.Vec3{-PlayerMaxSpeed, PlayerRideY, 0}, p.Body.Position, 1e-12)
}

func TestPlayerDeltaTimeScaling(t *testing.T) {
	a := NewPlayer()
	a.Speed = 0.3
	a.Update(NewInputState(), 1)
	a.Update(NewInputState(), 1)

	b := NewPlayer()
	b.Speed = 0.3
	b.Update(NewInputState(), 2)
	assert.InDelta(t, a.Speed, b.Speed, 1e-12)

	c := NewPlayer()
	c.Update(held("w"), 3)
	assert.InDelta(t, 3*PlayerAccel, c.Speed, 1e-12)
}

func TestPlayerResetKeepsMomentum(t *testing.T) {
	p := NewPlayer()
	p.Speed = 0.2
	p.Body.Heading = 1.1
	p.Body.Position = mgl64.Vec3{12, PlayerRideY, -40}
	p.Reset()
	assertVecInDelta(t, StageOrigin, p.Body.Position, 0)
	assert.Equal(t, 0.2, p.Speed)
	assert.Equal(t, 1.1, p.Heading())
}
