package game

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBusDispatchesByType(t *testing.T) {
	bus := NewEventBus()
	var got []Event
	bus.Subscribe(EventObstaclesPlaced, func(e Event) { got = append(got, e) })
	bus.Subscribe(EventObstaclesPlaced, func(e Event) { got = append(got, e) })

	bus.Emit(Event{Type: EventStageChanged, Stage: 1})
	assert.Empty(t, got)

	bus.Emit(Event{Type: EventObstaclesPlaced, Stage: 1, Data: 10})
	assert.Len(t, got, 2)
	assert.Equal(t, 10, got[0].Data)
}

func TestLogEventsWritesStageChanges(t *testing.T) {
	race, _ := newTestRace(t)
	var buf stringsWriter
	LogOutput = &buf
	defer func() { LogOutput = io.Discard }()

	race.LogEvents()
	assert.NoError(t, race.Stages.Advance())
	assert.Contains(t, string(buf), "racer: ")
	assert.Contains(t, string(buf), "Mirror")
}

type stringsWriter []byte

func (w *stringsWriter) Write(p []byte) (int, error) {
	*w = append(*w, p...)
	return len(p), nil
}
