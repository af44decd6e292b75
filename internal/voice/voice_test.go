package voice

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements Listener for testing
type mockListener struct {
	started, stopped int
	startErr         error
	onResult         func(string)
}

func (m *mockListener) StartListening(context.Context) error {
	m.started++
	return m.startErr
}

func (m *mockListener) StopListening() error {
	m.stopped++
	return nil
}

func (m *mockListener) OnResult(fn func(string)) { m.onResult = fn }

func TestCapture_ToggleStartsAndStops(t *testing.T) {
	l := &mockListener{}
	c := NewCapture(l)

	require.NoError(t, c.Toggle(context.Background()))
	assert.True(t, c.Listening())
	assert.Equal(t, 1, l.started)

	require.NoError(t, c.Toggle(context.Background()))
	assert.False(t, c.Listening())
	assert.Equal(t, 1, l.stopped)
}

func TestCapture_ResultSetsPromptAndEndsSession(t *testing.T) {
	l := &mockListener{}
	c := NewCapture(l)

	require.NoError(t, c.Toggle(context.Background()))
	l.onResult("  a portfolio for a photographer ")

	assert.False(t, c.Listening())
	assert.Equal(t, "a portfolio for a photographer", c.Prompt())
}

func TestCapture_StartFailureLeavesIdle(t *testing.T) {
	l := &mockListener{startErr: errors.New("microphone unavailable")}
	c := NewCapture(l)

	require.Error(t, c.Toggle(context.Background()))
	assert.False(t, c.Listening())
}

func TestReaderListener_OneLinePerSession(t *testing.T) {
	l := NewReaderListener(strings.NewReader("first idea\nsecond idea\n"))
	c := NewCapture(l)

	require.NoError(t, c.Toggle(context.Background()))
	assert.Equal(t, "first idea", c.Prompt())
	assert.False(t, c.Listening())

	require.NoError(t, c.Toggle(context.Background()))
	assert.Equal(t, "second idea", c.Prompt())

	err := c.Toggle(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "second idea", c.Prompt())
}

func TestReaderListener_CancelledContext(t *testing.T) {
	l := NewReaderListener(strings.NewReader("ignored\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, l.StartListening(ctx), context.Canceled)
}
