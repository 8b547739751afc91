package game

import (
	"math"

	"github.com/pkg/errors"
)

// Scheduler drives one simulation+render tick per display refresh and
// advances the stage every StageFrames ticks.
type Scheduler struct {
	Race        *Race
	Presenter   Presenter
	Frames      uint64
	Transitions int

	err error
}

func NewScheduler(race *Race, presenter Presenter) *Scheduler {
	return &Scheduler{Race: race, Presenter: presenter}
}

// Step converts a wall-clock delta into reference frames.
func (s *Scheduler) Step(dt float64) float64 {
	if s.Race.Config.FixedStep || dt <= 0 {
		return 1
	}
	return math.Min(dt*ReferenceHz, MaxStep)
}

// Err returns the failure that halted the scheduler, if any.
func (s *Scheduler) Err() error { return s.err }

// Tick runs player, AI, camera, the stage check and finally the render.
// A failing tick halts the scheduler for good.
func (s *Scheduler) Tick(in InputState, dt float64) error {
	if s.err != nil {
		return ErrHalted
	}
	step := s.Step(dt)
	race := s.Race
	race.Update(in, step)
	if err := checkFinite(race); err != nil {
		return s.halt(err)
	}

	s.Frames++
	if s.Frames%uint64(race.Config.StageFrames) == 0 {
		if err := race.Stages.Advance(); err != nil {
			return s.halt(errors.Wrapf(err, "frame %d", s.Frames))
		}
		s.Transitions++
	}

	if s.Presenter != nil {
		s.Presenter.Render(race.Camera)
	}
	return nil
}

func (s *Scheduler) halt(err error) error {
	s.err = err
	Logf("halted at frame %d: %v", s.Frames, err)
	s.Race.Bus.Emit(Event{Type: EventHalted, Stage: s.Race.Stages.Index, Frame: s.Frames})
	return err
}

func checkFinite(r *Race) error {
	p := r.Player.Body.Position
	for i := 0; i < 3; i++ {
		if math.IsNaN(p[i]) || math.IsInf(p[i], 0) {
			return errors.Errorf("player position not finite: %v", p)
		}
	}
	if math.IsNaN(r.Player.Speed) || math.IsNaN(r.Player.Body.Heading) {
		return errors.New("player kinematics not finite")
	}
	return nil
}
