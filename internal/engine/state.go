package engine

import (
	"time"

	"github.com/verte-zerg/speedtype/internal/model"
	"github.com/verte-zerg/speedtype/internal/stats"
)

// Phase is the session lifecycle state.
type Phase int

// Session phases.
const (
	Idle Phase = iota
	Running
	Finished
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// State is the full session aggregate. Slices are replaced, never mutated in
// place, so copies of a State are safe to read after further events.
type State struct {
	ID        string
	Reference []rune
	Input     []rune
	Status    []CharStatus
	Correct   int
	Phase     Phase
	Strict    bool
	Clock     Clock

	ElapsedSeconds int
	WPM            int
	Accuracy       int
}

// NewState returns an idle session for the reference text.
func NewState(id string, reference []rune, strict bool) State {
	return State{
		ID:        id,
		Reference: reference,
		Strict:    strict,
	}
}

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// InputChanged replaces the typed input with Value.
type InputChanged struct {
	Value []rune
}

// StrictToggled flips strict mode.
type StrictToggled struct{}

// Restarted discards the session and starts a new idle one.
type Restarted struct {
	ID        string
	Reference []rune
}

// Ticked refreshes the displayed elapsed time for the timer TimerID.
type Ticked struct {
	TimerID int
}

func (InputChanged) isEvent()  {}
func (StrictToggled) isEvent() {}
func (Restarted) isEvent()     {}
func (Ticked) isEvent()        {}

// Reduce applies ev to s at time now and returns the next state.
func Reduce(s State, ev Event, now time.Time) State {
	switch ev := ev.(type) {
	case InputChanged:
		return applyInput(s, ev.Value, now)
	case StrictToggled:
		s.Strict = !s.Strict
		return s
	case Restarted:
		next := NewState(ev.ID, ev.Reference, s.Strict)
		next.Clock = s.Clock
		next.Clock.Reset()
		return next
	case Ticked:
		if s.Phase != Running || !s.Clock.Accept(ev.TimerID) {
			return s
		}
		s.ElapsedSeconds = s.Clock.ElapsedSeconds(now)
		return s
	default:
		return s
	}
}

func applyInput(s State, value []rune, now time.Time) State {
	if s.Phase == Finished {
		return s
	}
	if s.Phase == Idle {
		s.Phase = Running
		s.Clock.Start(now)
	}
	s.Input = append([]rune(nil), value...)
	s.Status, s.Correct = Compare(s.Reference, s.Input)
	if len(s.Input) >= len(s.Reference) {
		return finish(s, now)
	}
	return s
}

func finish(s State, now time.Time) State {
	s.Clock.Stop(now)
	elapsed := s.Clock.ElapsedSeconds(now)
	if elapsed < 1 {
		elapsed = 1
	}
	metrics := stats.Compute(s.Correct, len(s.Input), elapsed)
	s.ElapsedSeconds = elapsed
	s.WPM = metrics.WPM
	s.Accuracy = metrics.Accuracy
	s.Phase = Finished
	return s
}

// DeletionAllowed applies the edit policy to the current state. Deletion is
// never allowed once the session is finished.
func (s State) DeletionAllowed() bool {
	if s.Phase == Finished {
		return false
	}
	return AllowDeletion(s.Strict, s.Status)
}

// Result returns the frozen statistics of a finished session.
func (s State) Result() (model.Result, bool) {
	if s.Phase != Finished {
		return model.Result{}, false
	}
	return model.Result{
		SessionID:      s.ID,
		StartedAt:      s.Clock.StartedAt(),
		EndedAt:        s.Clock.StoppedAt(),
		Strict:         s.Strict,
		Chars:          len(s.Input),
		Correct:        s.Correct,
		ElapsedSeconds: s.ElapsedSeconds,
		WPM:            s.WPM,
		Accuracy:       s.Accuracy,
	}, true
}
