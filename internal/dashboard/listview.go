package dashboard

import (
	"github.com/couchcryptid/quake-watch/internal/domain"
)

// ListStatus says what the list area shows.
type ListStatus int

const (
	ListLoading ListStatus = iota
	ListFailed
	ListEmpty
	ListItems
)

// Status messages shown in place of list items.
const (
	MsgLoadingList = "Loading earthquakes…"
	MsgListFailed  = "Failed to load earthquakes. Please try again later."
	msgListEmpty   = "No earthquakes found above magnitude "
)

// ListItem is one rendered row, routed back to its event by ID.
type ListItem struct {
	ID        string
	Magnitude string
	Severity  domain.Severity
	Place     string
	Time      string
}

// ListView is the view model of the event list area.
type ListView struct {
	Status    ListStatus
	Message   string
	Threshold string
	Items     []ListItem
}

// HasItems reports whether the view shows rows rather than a status message.
func (v ListView) HasItems() bool {
	return v.Status == ListItems
}

// Failed reports whether the view shows the load failure message.
func (v ListView) Failed() bool {
	return v.Status == ListFailed
}

// BuildList renders the events passing threshold. It is a pure function of
// its inputs and never modifies events.
func BuildList(phase Phase, events []domain.SeismicEvent, threshold float64, f Formatter) ListView {
	v := ListView{Threshold: f.Magnitude(threshold)}

	switch phase {
	case PhaseInit, PhaseLoading:
		v.Status = ListLoading
		v.Message = MsgLoadingList
		return v
	case PhaseFailed:
		v.Status = ListFailed
		v.Message = MsgListFailed
		return v
	}

	filtered := domain.FilterByMagnitude(events, threshold)
	if len(filtered) == 0 {
		v.Status = ListEmpty
		v.Message = msgListEmpty + v.Threshold
		return v
	}

	v.Status = ListItems
	v.Items = make([]ListItem, len(filtered))
	for i, e := range filtered {
		v.Items[i] = ListItem{
			ID:        e.ID,
			Magnitude: f.Magnitude(e.Magnitude),
			Severity:  e.Severity(),
			Place:     e.DisplayPlace(),
			Time:      f.Time(e.OccurredAtMillis),
		}
	}
	return v
}

// BuildListFromSnapshot renders the list for a state snapshot.
func BuildListFromSnapshot(s Snapshot, f Formatter) ListView {
	return BuildList(s.Phase, s.Events, s.Threshold, f)
}
