package game

import "math"

var carMesh = BoxMesh(1, 0.5, 2)

// Player is the keyboard-driven car. Speed is in world units per
// reference frame, heading is the rotation about +Y.
type Player struct {
	Body     *Renderable
	Speed    float64
	Controls Controls
}

func NewPlayer() *Player {
	p := &Player{
		Body:     NewRenderable(KindPlayer, carMesh, Palette.Player),
		Controls: DefaultControls,
	}
	p.Body.Position = StageOrigin
	return p
}

func (p *Player) Heading() float64 { return p.Body.Heading }

// Update applies one tick of step reference frames. Forward wins over
// reverse; with neither held the speed decays geometrically. Steering is
// scaled by speed/PlayerMaxSpeed, so it is zero at rest and flips in reverse.
func (p *Player) Update(in InputState, step float64) {
	switch {
	case in.Any(p.Controls.Forward):
		p.Speed += PlayerAccel * step
	case in.Any(p.Controls.Reverse):
		p.Speed -= PlayerAccel * step
	default:
		p.Speed *= decayOver(PlayerDecay, step)
	}
	p.Speed = clampF(p.Speed, -PlayerMaxSpeed, PlayerMaxSpeed)

	turn := PlayerTurnSpeed * (p.Speed / PlayerMaxSpeed) * step
	if in.Any(p.Controls.Left) {
		p.Body.Heading += turn
	}
	if in.Any(p.Controls.Right) {
		p.Body.Heading -= turn
	}

	h := p.Body.Heading
	p.Body.Position[0] -= math.Sin(h) * p.Speed * step
	p.Body.Position[2] -= math.Cos(h) * p.Speed * step
}

// Reset moves the car back to the stage origin. Heading and speed carry over.
func (p *Player) Reset() {
	p.Body.Position = StageOrigin
}
