package game

import (
	"os"
	"strconv"
	"time"
)

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 640
)

// Simulation rate. Motion constants below are expressed per reference
// frame; a tick of dt seconds advances dt*ReferenceHz frames.
const (
	ReferenceHz = 60.0
	MaxStep     = 6.0
)

// Stage progression.
const (
	StageFrames       = 2000
	ObstaclesPerStage = 10
	AIRacerCount      = 3
)

// Player kinematics (per reference frame).
const (
	PlayerAccel     = 0.02
	PlayerDecay     = 0.95
	PlayerMaxSpeed  = 0.4
	PlayerTurnSpeed = 0.03
	PlayerRideY     = 0.25
)

// AI racers.
const (
	AISpeedMin      = 0.001
	AISpeedJitter   = 0.002
	AISpawnSpacing  = 0.02
	AIRespawnSpread = 0.1
)

// Obstacles.
const (
	ObstacleJitter = 2.0
	ObstacleY      = 0.5
)

// Track tube geometry.
const (
	TubeSegments       = 200
	TubeRadius         = 3.0
	TubeRadialSegments = 20
	ArcLengthDivisions = 200
)

// Follow camera.
const (
	CameraLerp    = 0.1
	CameraFOV     = 75.0 // degrees
	CameraNear    = 0.1
	CameraFar     = 1000.0
	CameraOffsetY = 5.0
	CameraOffsetZ = 10.0
)

// Config carries the runtime knobs a runner may override.
type Config struct {
	Seed        uint64
	StageFrames int
	// FixedStep advances exactly one reference frame per tick regardless
	// of wall-clock delta.
	FixedStep bool
	Mute      bool
	Volume    float64
	Width     int
	Height    int
}

// DefaultConfig returns the stock configuration seeded from the clock,
// or from RACER_SEED when set.
func DefaultConfig() Config {
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("RACER_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}
	return Config{
		Seed:        seed,
		StageFrames: StageFrames,
		Volume:      0.5,
		Width:       WindowWidth,
		Height:      WindowHeight,
	}
}
