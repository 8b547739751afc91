package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Stage is one authored track layout.
type Stage struct {
	Name   string
	Points []mgl64.Vec3
}

// StageOrigin is where the player is placed on every stage entry.
var StageOrigin = mgl64.Vec3{0, PlayerRideY, 0}

// DefaultStages returns the built-in layouts. Both run from the origin
// roughly 100 units down -Z.
func DefaultStages() []Stage {
	return []Stage{
		{
			Name: "Switchback",
			Points: []mgl64.Vec3{
				{0, 0, 0},
				{5, 0, -20},
				{-5, 0, -40},
				{10, 0, -60},
				{0, 0, -80},
				{0, 0, -100},
			},
		},
		{
			Name: "Mirror",
			Points: []mgl64.Vec3{
				{0, 0, 0},
				{-5, 0, -20},
				{5, 0, -40},
				{-10, 0, -60},
				{0, 0, -80},
				{5, 0, -100},
			},
		},
	}
}

// ValidateStages rejects an empty list and any stage a curve cannot be
// built from.
func ValidateStages(stages []Stage) error {
	if len(stages) == 0 {
		return ErrNoStages
	}
	for i, s := range stages {
		if len(s.Points) < 2 {
			return errors.Wrapf(ErrDegenerateStage, "stage %d (%s) has %d points", i, s.Name, len(s.Points))
		}
	}
	return nil
}
