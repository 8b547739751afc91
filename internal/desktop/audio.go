package desktop

import (
	"io"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"racer/internal/game"
)

// oto.FormatFloat32LE
const bitDepth = 0

// AudioSystem plays generated race sounds through oto.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var sfxVolume = 0.5

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(game.SampleRate, game.ChannelCount, bitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// AttachAudio plays cues for race events.
func AttachAudio(bus *game.EventBus) {
	bus.Subscribe(game.EventRaceStarted, func(game.Event) { PlaySound(game.SoundStart) })
	bus.Subscribe(game.EventStageChanged, func(game.Event) { PlaySound(game.SoundStageChange) })
	bus.Subscribe(game.EventHalted, func(game.Event) { PlaySound(game.SoundHalt) })
}

func SetSFXVolume(vol float64) {
	sfxVolume = min(max(vol, 0), 1)
}

// PlaySound plays a sound effect. It is a no-op until the audio context
// is ready.
func PlaySound(kind game.SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := game.GenerateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
