package desktop

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"racer/internal/game"
)

// RunDesktop opens a window and runs the race until it is closed or a
// frame fails.
func RunDesktop(cfg game.Config, stages []game.Stage) error {
	runtime.LockOSThread()
	if err := game.ValidateStages(stages); err != nil {
		return err
	}

	window, err := initWindow(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	if !cfg.Mute {
		if err := InitAudio(); err != nil {
			game.Logf("audio init failed (continuing without sound): %v", err)
		}
		SetSFXVolume(cfg.Volume)
	}

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	race, err := game.NewRace(cfg, stages, rend)
	if err != nil {
		return err
	}
	race.LogEvents()
	if !cfg.Mute {
		AttachAudio(race.Bus)
	}
	race.Bus.Subscribe(game.EventStageChanged, func(e game.Event) {
		window.SetTitle(fmt.Sprintf("Tube Racer - %s", race.Stages.Stages[e.Stage].Name))
	})
	window.SetTitle(fmt.Sprintf("Tube Racer - %s", race.Stages.Current().Name))

	fbW, fbH := window.GetFramebufferSize()
	rend.Resize(fbW, fbH)
	race.Camera.Resize(fbW, fbH)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		rend.Resize(w, h)
		race.Camera.Resize(w, h)
	})

	input := game.NewInputState()
	bindInput(window, input)

	sched := game.NewScheduler(race, rend)
	race.Bus.Emit(game.Event{Type: game.EventRaceStarted})

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		if err := sched.Tick(input, dt); err != nil {
			return err
		}
		window.SwapBuffers()
	}
	return nil
}
