package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidReferenceText is returned when the text source yields an empty text.
var ErrInvalidReferenceText = errors.New("reference text is empty")

// Source supplies reference texts.
type Source interface {
	Next() (string, error)
}

// Option configures an Engine.
type Option func(*Engine)

// WithNow overrides the wall clock.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithLogger sets the logger for session diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.log = logger
	}
}

// WithIDGenerator overrides how session IDs are minted.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// Engine owns one session at a time and applies input events to it.
// It is not safe for concurrent use; all calls must come from the same
// event loop.
type Engine struct {
	source Source
	state  State
	now    func() time.Time
	log    *slog.Logger
	newID  func() string
}

// New creates an engine with an idle session whose reference text comes
// from source.
func New(source Source, strict bool, opts ...Option) (*Engine, error) {
	e := &Engine{
		source: source,
		now:    time.Now,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	ref, err := e.nextReference()
	if err != nil {
		return nil, err
	}
	e.state = NewState(e.newID(), ref, strict)
	e.log.Info("session created", "session_id", e.state.ID, "chars", len(ref), "strict", strict)
	return e, nil
}

// State returns a snapshot of the current session.
func (e *Engine) State() State {
	return e.state
}

// Disabled reports whether the input surface should reject input.
func (e *Engine) Disabled() bool {
	return e.state.Phase == Finished
}

// SubmitInput replaces the typed input with value. The first call starts the
// clock; reaching the reference length finishes the session.
func (e *Engine) SubmitInput(value string) Phase {
	prev := e.state.Phase
	e.state = Reduce(e.state, InputChanged{Value: []rune(value)}, e.now())
	switch {
	case prev == Idle && e.state.Phase != Idle:
		e.log.Info("session started", "session_id", e.state.ID, "timer_id", e.state.Clock.ID())
	case prev == Finished:
		e.log.Debug("input ignored after finish", "session_id", e.state.ID)
	}
	if prev != Finished && e.state.Phase == Finished {
		e.log.Info("session finished",
			"session_id", e.state.ID,
			"elapsed_s", e.state.ElapsedSeconds,
			"wpm", e.state.WPM,
			"accuracy", e.state.Accuracy,
		)
	}
	return e.state.Phase
}

// AttemptDeletion reports whether a deletion keystroke may be applied.
func (e *Engine) AttemptDeletion() bool {
	allowed := e.state.DeletionAllowed()
	if !allowed {
		e.log.Debug("deletion rejected", "session_id", e.state.ID, "phase", e.state.Phase.String(), "strict", e.state.Strict)
	}
	return allowed
}

// ToggleStrictMode flips strict mode and returns the new value.
func (e *Engine) ToggleStrictMode() bool {
	e.state = Reduce(e.state, StrictToggled{}, e.now())
	e.log.Info("strict mode toggled", "session_id", e.state.ID, "strict", e.state.Strict)
	return e.state.Strict
}

// Restart discards the session and begins a new idle one with a fresh
// reference text. On error the current session is kept.
func (e *Engine) Restart() error {
	ref, err := e.nextReference()
	if err != nil {
		return err
	}
	prevID := e.state.ID
	e.state = Reduce(e.state, Restarted{ID: e.newID(), Reference: ref}, e.now())
	e.log.Info("session restarted", "previous_session_id", prevID, "session_id", e.state.ID, "chars", len(ref))
	return nil
}

// TimerID returns the ID of the live timer, valid while running.
func (e *Engine) TimerID() int {
	return e.state.Clock.ID()
}

// Tick refreshes the elapsed seconds for the timer id. It returns false for
// stale ticks, which must not be rescheduled.
func (e *Engine) Tick(id int) bool {
	if e.state.Phase != Running || !e.state.Clock.Accept(id) {
		e.log.Debug("stale tick dropped", "session_id", e.state.ID, "timer_id", id, "live_timer_id", e.state.Clock.ID())
		return false
	}
	e.state = Reduce(e.state, Ticked{TimerID: id}, e.now())
	return true
}

func (e *Engine) nextReference() ([]rune, error) {
	text, err := e.source.Next()
	if err != nil {
		return nil, fmt.Errorf("failed to select reference text: %w", err)
	}
	ref := []rune(text)
	if len(ref) == 0 {
		return nil, fmt.Errorf("failed to select reference text: %w", ErrInvalidReferenceText)
	}
	return ref, nil
}
