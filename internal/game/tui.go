package game

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Terminals report key presses but not releases, so a key counts as held
// for keyHold after its last press or auto-repeat.
const keyHold = 150 * time.Millisecond

const (
	tuiCols = 48
	tuiRows = 24
)

var tuiKeys = map[string]string{
	"w": "w", "a": "a", "s": "s", "d": "d",
	"up": "arrowup", "down": "arrowdown", "left": "arrowleft", "right": "arrowright",
}

type frameMsg time.Time

// TerminalView is a bubbletea model that runs the race and draws a
// top-down map of the current stage.
type TerminalView struct {
	sched   *Scheduler
	input   InputState
	held    map[string]time.Time
	last    time.Time
	now     func() time.Time
	status  string
	err     error
	quit    bool
	frameHz time.Duration
}

func NewTerminalView(sched *Scheduler) *TerminalView {
	return &TerminalView{
		sched:   sched,
		input:   NewInputState(),
		held:    make(map[string]time.Time),
		now:     time.Now,
		frameHz: time.Second / time.Duration(ReferenceHz),
	}
}

// Write keeps the most recent log line for the status bar.
func (m *TerminalView) Write(p []byte) (int, error) {
	m.status = strings.TrimSpace(string(p))
	return len(p), nil
}

func (m *TerminalView) Err() error { return m.err }

func (m *TerminalView) Input() InputState { return m.input }

func (m *TerminalView) nextFrame() tea.Cmd {
	return tea.Tick(m.frameHz, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init implements tea.Model.
func (m *TerminalView) Init() tea.Cmd {
	m.last = m.now()
	m.sched.Race.Bus.Emit(Event{Type: EventRaceStarted})
	return m.nextFrame()
}

// Update implements tea.Model.
func (m *TerminalView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quit = true
			return m, tea.Quit
		}
		if name, ok := tuiKeys[msg.String()]; ok {
			m.input.Set(name, true)
			m.held[name] = m.now()
		}
	case tea.WindowSizeMsg:
		m.sched.Race.Camera.Resize(msg.Width, msg.Height)
	case frameMsg:
		now := time.Time(msg)
		m.releaseExpired(now)
		dt := now.Sub(m.last).Seconds()
		m.last = now
		if err := m.sched.Tick(m.input, dt); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, m.nextFrame()
	}
	return m, nil
}

func (m *TerminalView) releaseExpired(now time.Time) {
	for name, at := range m.held {
		if now.Sub(at) >= keyHold {
			m.input.Set(name, false)
			delete(m.held, name)
		}
	}
}

// View implements tea.Model.
func (m *TerminalView) View() string {
	if m.quit {
		return ""
	}
	race := m.sched.Race
	grid := make([][]rune, tuiRows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", tuiCols))
	}
	td := FitTopDown(race.Stages.Curve.ControlPoints(), tuiCols, tuiRows, TubeRadius+1)
	plot := func(r *Renderable, ch rune) {
		if c, row, ok := td.Project(r.Position); ok {
			grid[row][c] = ch
		}
	}

	for i := 0; i <= 4*tuiRows; i++ {
		p := race.Stages.Curve.PointAt(float64(i) / float64(4*tuiRows))
		if c, row, ok := td.Project(p); ok {
			grid[row][c] = '.'
		}
	}
	for _, o := range race.Stages.Obstacles.Items {
		plot(o, '#')
	}
	for i, ai := range race.AI {
		plot(ai.Body, rune('1'+i))
	}
	plot(race.Player.Body, '@')

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Stage %d/%d: %s   frame %d   next stage in %d\n",
		race.Stages.Index+1, len(race.Stages.Stages), race.Stages.Current().Name,
		m.sched.Frames, uint64(race.Config.StageFrames)-m.sched.Frames%uint64(race.Config.StageFrames)))
	b.WriteString("+" + strings.Repeat("-", tuiCols) + "+\n")
	for _, line := range grid {
		b.WriteString("|" + string(line) + "|\n")
	}
	b.WriteString("+" + strings.Repeat("-", tuiCols) + "+\n")
	b.WriteString(fmt.Sprintf("speed %+.3f  heading %+.2f\n", race.Player.Speed, race.Player.Heading()))
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString("\n(WASD or arrows to drive, q to quit)")
	return b.String()
}
