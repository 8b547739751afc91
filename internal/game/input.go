package game

// InputState maps lowercase key identifiers to their pressed state. Key
// events write it; the player rule reads it once per tick.
type InputState map[string]bool

func NewInputState() InputState { return make(InputState) }

// Set records the latest event for key.
func (in InputState) Set(key string, down bool) { in[key] = down }

// Any reports whether any of keys is held.
func (in InputState) Any(keys []string) bool {
	for _, k := range keys {
		if in[k] {
			return true
		}
	}
	return false
}

// Controls binds player actions to key identifiers.
type Controls struct {
	Forward []string
	Reverse []string
	Left    []string
	Right   []string
}

var DefaultControls = Controls{
	Forward: []string{"w", "arrowup"},
	Reverse: []string{"s", "arrowdown"},
	Left:    []string{"a", "arrowleft"},
	Right:   []string{"d", "arrowright"},
}
