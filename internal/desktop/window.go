package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"

	"racer/internal/game"
)

func initWindow(width, height int) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.True)

	window, err := glfw.CreateWindow(width, height, "Tube Racer", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

var arrowKeys = map[glfw.Key]string{
	glfw.KeyUp:    "arrowup",
	glfw.KeyDown:  "arrowdown",
	glfw.KeyLeft:  "arrowleft",
	glfw.KeyRight: "arrowright",
}

// keyName returns the lowercase identifier for a GLFW key, or "".
func keyName(key glfw.Key, scancode int) string {
	if name, ok := arrowKeys[key]; ok {
		return name
	}
	return strings.ToLower(glfw.GetKeyName(key, scancode))
}

// bindInput routes key events into in. Repeats count as held.
func bindInput(window *glfw.Window, in game.InputState) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		name := keyName(key, scancode)
		if name == "" {
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			in.Set(name, true)
		case glfw.Release:
			in.Set(name, false)
		}
	})
}
