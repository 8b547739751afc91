package game

import "github.com/pkg/errors"

// StageController owns the active stage index, the track curve, the track
// renderable and the obstacle set.
type StageController struct {
	Stages    []Stage
	Index     int
	Curve     *TrackCurve
	Obstacles ObstacleField

	track  *Renderable
	scene  Scene
	rng    *Rand
	bus    *EventBus
	player *Player
	ai     []*AIRacer
}

// NewStageController validates the stage list and loads stage 0. Actors
// keep their spawn positions on the initial load.
func NewStageController(stages []Stage, scene Scene, rng *Rand, bus *EventBus, player *Player, ai []*AIRacer) (*StageController, error) {
	if err := ValidateStages(stages); err != nil {
		return nil, err
	}
	sc := &StageController{
		Stages: stages,
		scene:  scene,
		rng:    rng,
		bus:    bus,
		player: player,
		ai:     ai,
	}
	if err := sc.load(0); err != nil {
		return nil, err
	}
	return sc, nil
}

func (sc *StageController) Current() Stage { return sc.Stages[sc.Index] }

func (sc *StageController) Track() *Renderable { return sc.track }

// Advance moves to the next stage, wrapping after the last one.
func (sc *StageController) Advance() error {
	if len(sc.Stages) == 0 {
		return ErrNoStages
	}
	return sc.Enter((sc.Index + 1) % len(sc.Stages))
}

// Enter loads stage i and resets the actors: AI progress is scattered over
// [0, AIRespawnSpread) and the player returns to the origin.
func (sc *StageController) Enter(i int) error {
	if err := sc.load(i); err != nil {
		return err
	}
	for _, ai := range sc.ai {
		ai.Progress = sc.rng.Float64() * AIRespawnSpread
	}
	if sc.player != nil {
		sc.player.Reset()
	}
	if sc.bus != nil {
		sc.bus.Emit(Event{Type: EventStageChanged, Stage: i})
	}
	return nil
}

// load swaps the curve, track mesh and obstacles. On failure the previous
// stage stays in place.
func (sc *StageController) load(i int) error {
	if i < 0 || i >= len(sc.Stages) {
		return errors.Errorf("stage index %d out of range [0,%d)", i, len(sc.Stages))
	}
	curve, err := NewTrackCurve(sc.Stages[i].Points)
	if err != nil {
		return errors.Wrapf(err, "stage %d (%s)", i, sc.Stages[i].Name)
	}

	if sc.track != nil {
		sc.scene.Remove(sc.track)
	}
	sc.track = NewRenderable(KindTrack, BuildTube(curve, TubeSegments, TubeRadius, TubeRadialSegments), Palette.Track)
	sc.scene.Add(sc.track)

	sc.Index = i
	sc.Curve = curve
	placed := sc.Obstacles.Place(curve, sc.rng, sc.scene)
	if sc.bus != nil {
		sc.bus.Emit(Event{Type: EventObstaclesPlaced, Stage: i, Data: len(placed)})
	}
	return nil
}
