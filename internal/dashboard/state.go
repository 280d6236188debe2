package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/couchcryptid/quake-watch/internal/domain"
)

// Phase is the lifecycle stage of the event list.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State holds the last fetched event list and the minimum-magnitude filter.
// The event list is replaced wholesale on each successful load and never
// mutated in place. State is safe for concurrent use.
type State struct {
	mu        sync.RWMutex
	phase     Phase
	events    []domain.SeismicEvent
	threshold float64
	fetchedAt time.Time
	loadErr   error
}

// NewState returns an empty state in PhaseInit with a zero threshold.
func NewState() *State {
	return &State{threshold: domain.MinThreshold}
}

// Snapshot is a consistent read of the state at one instant.
type Snapshot struct {
	Phase     Phase
	Events    []domain.SeismicEvent
	Threshold float64
	FetchedAt time.Time
	Err       error
}

// BeginLoad moves the state to PhaseLoading.
func (s *State) BeginLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseLoading
}

// LoadSucceeded replaces the event list and moves to PhaseLoaded.
func (s *State) LoadSucceeded(events []domain.SeismicEvent) {
	batch := make([]domain.SeismicEvent, len(events))
	copy(batch, events)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseLoaded
	s.events = batch
	s.fetchedAt = domain.Now()
	s.loadErr = nil
}

// LoadFailed records the failure and moves to PhaseFailed. The event list
// is left empty.
func (s *State) LoadFailed(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseFailed
	s.events = nil
	s.loadErr = err
}

// SetThreshold updates the minimum-magnitude filter. The event list is
// untouched; callers re-render.
func (s *State) SetThreshold(v float64) error {
	if err := domain.ValidateThreshold(v); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threshold = v
	return nil
}

func (s *State) Threshold() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.threshold
}

func (s *State) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

func (s *State) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

// Events returns a copy of the current event list.
func (s *State) Events() []domain.SeismicEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.SeismicEvent, len(s.events))
	copy(out, s.events)
	return out
}

// Lookup finds an event by id in the current list.
func (s *State) Lookup(id string) (domain.SeismicEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return domain.SeismicEvent{}, false
}

// Snapshot returns a consistent copy of the whole state.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]domain.SeismicEvent, len(s.events))
	copy(events, s.events)
	return Snapshot{
		Phase:     s.phase,
		Events:    events,
		Threshold: s.threshold,
		FetchedAt: s.fetchedAt,
		Err:       s.loadErr,
	}
}

// CheckReadiness returns nil once an event list has been loaded.
func (s *State) CheckReadiness(_ context.Context) error {
	switch s.Phase() {
	case PhaseLoaded:
		return nil
	case PhaseFailed:
		return errors.New("event list failed to load")
	default:
		return errors.New("event list has not loaded yet")
	}
}
