package game

// Race is the whole simulation context: actors, camera, stage state and
// the scene they are registered with. Nothing here is process-global.
type Race struct {
	Config Config
	Scene  Scene
	Bus    *EventBus
	Rand   *Rand
	Player *Player
	AI     []*AIRacer
	Camera *FollowCamera
	Stages *StageController
}

// NewRace spawns the actors, loads the first stage and registers every
// renderable with scene.
func NewRace(cfg Config, stages []Stage, scene Scene) (*Race, error) {
	if cfg.StageFrames <= 0 {
		cfg.StageFrames = StageFrames
	}
	r := &Race{
		Config: cfg,
		Scene:  scene,
		Bus:    NewEventBus(),
		Rand:   NewRand(cfg.Seed),
		Camera: NewFollowCamera(cfg.Width, cfg.Height),
	}
	r.Player = NewPlayer()
	r.AI = SpawnAIRacers(AIRacerCount, r.Rand)

	sc, err := NewStageController(stages, scene, r.Rand, r.Bus, r.Player, r.AI)
	if err != nil {
		return nil, err
	}
	r.Stages = sc

	scene.Add(r.Player.Body)
	for _, ai := range r.AI {
		scene.Add(ai.Body)
	}
	return r, nil
}

// Update runs the motion part of a tick: player, AI racers, camera.
func (r *Race) Update(in InputState, step float64) {
	r.Player.Update(in, step)
	for _, ai := range r.AI {
		ai.Update(r.Stages.Curve, step)
	}
	r.Camera.Follow(r.Player.Body, step)
}

// LogEvents reports stage changes through Logf.
func (r *Race) LogEvents() {
	r.Bus.Subscribe(EventStageChanged, func(e Event) {
		Logf("stage %d: %s", e.Stage, r.Stages.Stages[e.Stage].Name)
	})
}
