package game

import "github.com/pkg/errors"

var (
	// ErrNoStages is returned when a race is configured without any stage.
	ErrNoStages = errors.New("no stages configured")
	// ErrDegenerateStage is returned for a stage with fewer than two control points.
	ErrDegenerateStage = errors.New("stage needs at least two control points")
	// ErrHalted is returned by every tick after a frame has failed.
	ErrHalted = errors.New("scheduler halted")
)
