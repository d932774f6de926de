package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomekTTX/sdlw/pkg/geometry"
)

func TestQueuePollsInFIFOOrder(t *testing.T) {
	q := NewQueue(KeyDown{Key: KeyReturn}, Quit{})
	q.Push(Text{Text: "x"})
	require.Equal(t, 3, q.Len())

	ev, ok := q.Poll()
	require.True(t, ok)
	assert.Equal(t, KeyDown{Key: KeyReturn}, ev)

	ev, ok = q.Poll()
	require.True(t, ok)
	assert.Equal(t, Quit{}, ev)

	ev, ok = q.Poll()
	require.True(t, ok)
	assert.Equal(t, Text{Text: "x"}, ev)

	_, ok = q.Poll()
	assert.False(t, ok)
	assert.Zero(t, q.Len())
}

func TestQueueStartsEmpty(t *testing.T) {
	q := NewQueue()
	_, ok := q.Poll()
	assert.False(t, ok)
}

func TestQueueCopiesInitialEvents(t *testing.T) {
	events := []Event{MouseMotion{Pos: geometry.Point{X: 1, Y: 2}}}
	q := NewQueue(events...)
	events[0] = Quit{}

	ev, ok := q.Poll()
	require.True(t, ok)
	assert.Equal(t, MouseMotion{Pos: geometry.Point{X: 1, Y: 2}}, ev)
}
