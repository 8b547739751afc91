package game

import "github.com/go-gl/mathgl/mgl64"

// Summary describes the state of a race after a headless run.
type Summary struct {
	Frames      uint64
	Transitions int
	Stage       int
	StageName   string
	Player      mgl64.Vec3
	Speed       float64
	Heading     float64
	AIProgress  []float64
	Obstacles   int
	SceneItems  int
}

// RunHeadless runs frames ticks with the given input held throughout,
// rendering into a MemoryScene.
func RunHeadless(cfg Config, stages []Stage, frames int, in InputState) (Summary, error) {
	scene := NewMemoryScene()
	race, err := NewRace(cfg, stages, scene)
	if err != nil {
		return Summary{}, err
	}
	race.LogEvents()
	sched := NewScheduler(race, scene)
	if in == nil {
		in = NewInputState()
	}
	for i := 0; i < frames; i++ {
		if err := sched.Tick(in, 1/ReferenceHz); err != nil {
			return summarize(sched), err
		}
	}
	return summarize(sched), nil
}

func summarize(s *Scheduler) Summary {
	r := s.Race
	sum := Summary{
		Frames:      s.Frames,
		Transitions: s.Transitions,
		Stage:       r.Stages.Index,
		StageName:   r.Stages.Current().Name,
		Player:      r.Player.Body.Position,
		Speed:       r.Player.Speed,
		Heading:     r.Player.Heading(),
		Obstacles:   len(r.Stages.Obstacles.Items),
	}
	for _, ai := range r.AI {
		sum.AIProgress = append(sum.AIProgress, ai.Progress)
	}
	if ms, ok := r.Scene.(*MemoryScene); ok {
		sum.SceneItems = ms.Len()
	}
	return sum
}
