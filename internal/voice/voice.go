// Package voice models speech-to-text prompt capture as an injected capability.
// Generation never depends on it; a recognizer only ever fills in the prompt.
package voice

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// Listener is a speech recognizer.
type Listener interface {
	StartListening(ctx context.Context) error
	StopListening() error
	OnResult(func(transcript string))
}

var ErrAlreadyListening = errors.New("voice: already listening")

// Capture toggles a Listener the way a mic button does and keeps the last
// transcript as the current prompt. Recognition is single-shot: the first
// result ends the listening session.
type Capture struct {
	listener Listener

	mu        sync.Mutex
	listening bool
	prompt    string
}

func NewCapture(l Listener) *Capture {
	c := &Capture{listener: l}
	l.OnResult(func(transcript string) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.prompt = transcript
		c.listening = false
	})
	return c
}

// Toggle starts listening when idle and stops it otherwise.
func (c *Capture) Toggle(ctx context.Context) error {
	c.mu.Lock()
	listening := c.listening
	c.listening = !listening
	c.mu.Unlock()

	if listening {
		return c.listener.StopListening()
	}
	if err := c.listener.StartListening(ctx); err != nil {
		c.mu.Lock()
		c.listening = false
		c.mu.Unlock()
		return err
	}
	return nil
}

func (c *Capture) Listening() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listening
}

// Prompt returns the last recognized transcript, trimmed.
func (c *Capture) Prompt() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.TrimSpace(c.prompt)
}

// ReaderListener recognizes one transcript per line of an io.Reader.
// Each StartListening consumes at most one line.
type ReaderListener struct {
	mu       sync.Mutex
	scanner  *bufio.Scanner
	active   bool
	callback func(string)
}

func NewReaderListener(r io.Reader) *ReaderListener {
	return &ReaderListener{scanner: bufio.NewScanner(r)}
}

func (l *ReaderListener) OnResult(fn func(string)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.callback = fn
}

func (l *ReaderListener) StartListening(ctx context.Context) error {
	l.mu.Lock()
	if l.active {
		l.mu.Unlock()
		return ErrAlreadyListening
	}
	l.active = true
	l.mu.Unlock()

	if err := ctx.Err(); err != nil {
		l.stop()
		return err
	}

	if !l.scanner.Scan() {
		l.stop()
		if err := l.scanner.Err(); err != nil {
			return err
		}
		return io.EOF
	}
	transcript := l.scanner.Text()

	l.mu.Lock()
	cb, active := l.callback, l.active
	l.active = false
	l.mu.Unlock()

	if active && cb != nil {
		cb(transcript)
	}
	return nil
}

func (l *ReaderListener) StopListening() error {
	l.stop()
	return nil
}

func (l *ReaderListener) stop() {
	l.mu.Lock()
	l.active = false
	l.mu.Unlock()
}
