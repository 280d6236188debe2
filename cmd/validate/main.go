// Command validate performs data integrity checks on a USGS GeoJSON feed
// file, such as a fixture written by genmock or a saved live response. It
// verifies the file decodes the way the dashboard decodes it, then checks
// identity, value ranges, ordering, and filter behaviour.
//
// Usage:
//
//	go run ./cmd/validate -feed internal/adapter/usgs/testdata/feed.json
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/quake-watch/internal/adapter/usgs"
	"github.com/couchcryptid/quake-watch/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	feedPath := flag.String("feed", "", "path to a USGS GeoJSON feed file")
	flag.Parse()

	if *feedPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(os.Stdout, *feedPath))
}

func run(out io.Writer, feedPath string) int {
	fmt.Fprintln(out, "=== Seismic Feed Integrity Validation ===")
	fmt.Fprintln(out)

	events, err := loadFeed(feedPath)
	if err != nil {
		fmt.Fprintf(out, "FATAL: load feed: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateIdentity(events),
		validateRanges(events),
		validateOrdering(events),
		validateFilter(events),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-42s %s\n", p.name, status)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Events: %d (limit %d)\n", len(events), usgs.EventLimit)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

func loadFeed(path string) ([]domain.SeismicEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return usgs.Decode(f)
}

// ── Phases ──

func validateIdentity(events []domain.SeismicEvent) *phase {
	p := &phase{name: "Phase 1: Identity (ids, count)"}

	if len(events) > usgs.EventLimit {
		p.errorf("feed has %d events, more than the request limit %d", len(events), usgs.EventLimit)
	}
	seen := make(map[string]int, len(events))
	for i, e := range events {
		if prev, ok := seen[e.ID]; ok {
			p.errorf("event %d: id %q duplicates event %d", i, e.ID, prev)
			continue
		}
		seen[e.ID] = i
	}
	return p
}

func validateRanges(events []domain.SeismicEvent) *phase {
	p := &phase{name: "Phase 2: Value Ranges"}

	for i, e := range events {
		if e.Latitude < -90 || e.Latitude > 90 {
			p.errorf("event %d (%s): latitude %g out of range", i, e.ID, e.Latitude)
		}
		if e.Longitude < -180 || e.Longitude > 180 {
			p.errorf("event %d (%s): longitude %g out of range", i, e.ID, e.Longitude)
		}
		// USGS reports small negative magnitudes and depths above sea level.
		if e.Magnitude < -2 || e.Magnitude > 10 {
			p.errorf("event %d (%s): magnitude %g out of range", i, e.ID, e.Magnitude)
		}
		if e.DepthKm < -10 || e.DepthKm > 800 {
			p.errorf("event %d (%s): depth %g km out of range", i, e.ID, e.DepthKm)
		}
		if e.OccurredAtMillis <= 0 {
			p.errorf("event %d (%s): missing origin time", i, e.ID)
		}
	}
	return p
}

func validateOrdering(events []domain.SeismicEvent) *phase {
	p := &phase{name: "Phase 3: Ordering (newest first)"}

	for i := 1; i < len(events); i++ {
		if events[i].OccurredAtMillis > events[i-1].OccurredAtMillis {
			p.errorf("event %d (%s) is newer than event %d (%s)", i, events[i].ID, i-1, events[i-1].ID)
		}
	}
	return p
}

func validateFilter(events []domain.SeismicEvent) *phase {
	p := &phase{name: "Phase 4: Filter Behaviour (all thresholds)"}

	prev := len(events) + 1
	for t := domain.MinThreshold; t <= domain.MaxThreshold; t += domain.ThresholdStep {
		kept := domain.FilterByMagnitude(events, t)

		want := 0
		for _, e := range events {
			if e.Magnitude >= t {
				want++
			}
		}
		if len(kept) != want {
			p.errorf("threshold %.1f: kept %d events, want %d", t, len(kept), want)
		}
		if len(kept) > prev {
			p.errorf("threshold %.1f: kept %d events, more than the previous step's %d", t, len(kept), prev)
		}
		prev = len(kept)
	}
	return p
}
