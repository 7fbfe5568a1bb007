// Command validate checks a journey dataset offline: the files parse and pass
// field validation, every stop resolves to a city and a country, the path
// generator emits the expected samples, and the photo index is consistent.
//
// Usage:
//
//	go run ./cmd/validate -data-dir data
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/couchcryptid/journey-globe-service/internal/dataset"
	"github.com/couchcryptid/journey-globe-service/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
	notes  []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) notef(format string, args ...any) {
	p.notes = append(p.notes, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dataDir := flag.String("data-dir", "data", "directory containing journey.json, cities.json, countries.json and cityPhotos.json")
	flag.Parse()

	os.Exit(run(*dataDir))
}

func run(dataDir string) int {
	fmt.Println("=== Journey Dataset Validation ===")
	fmt.Println()

	j, err := dataset.Load(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load dataset: %v\n", err)
		return 1
	}

	stats := dataset.Analyze(j)
	phases := []*phase{
		validateReferences(j),
		validatePath(j, stats),
		validateZoom(stats),
		validatePhotos(j),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Dataset: %d stops, %d cities, %d countries, %d photo cities\n",
		len(j.Stops), len(j.Cities), len(j.Countries), len(j.Photos))
	fmt.Printf("Path: %d legs, %d samples", stats.Legs, stats.Samples)
	for _, t := range domain.Transports {
		if n := stats.ByTransport[t]; n > 0 {
			fmt.Printf(", %s %d", t, n)
		}
	}
	fmt.Println()

	for _, p := range phases {
		if len(p.notes) == 0 && p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
		for _, n := range p.notes {
			fmt.Printf("  note: %s\n", n)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phases ──

func validateReferences(j *domain.Journey) *phase {
	p := &phase{name: "Phase 1: Stop and country references"}

	if len(j.Stops) < 2 {
		p.errorf("itinerary has %d stops, need at least 2", len(j.Stops))
	}
	if len(j.Stops) > 0 && j.Stops[0].Transport != domain.TransportStart {
		p.notef("first stop %d arrives by %s, expected %s", j.Stops[0].ID, j.Stops[0].Transport, domain.TransportStart)
	}

	for i, s := range j.Stops {
		city, ok := j.Cities.Lookup(s.City)
		if !ok {
			p.errorf("stop %d: city %q not in city table", s.ID, s.City)
			continue
		}
		if len(j.Countries) > 0 {
			if _, ok := j.Country(city.Country); !ok {
				p.errorf("stop %d: country %q of %s has no label record", s.ID, city.Country, s.City)
			}
		}
		if j.CountryOf(i) == "" {
			p.errorf("stop %d: no country resolved", s.ID)
		}
	}

	for _, code := range j.VisitedCountries() {
		if _, ok := j.CountryNames[code]; !ok {
			p.notef("country %s has no localized title, the code is shown instead", code)
		}
	}
	return p
}

func validatePath(j *domain.Journey, stats dataset.PathStats) *phase {
	p := &phase{name: "Phase 2: Path generation"}

	for _, s := range stats.Skipped {
		p.errorf("leg %d -> %d skipped: unknown city %q", s.FromStopID, s.ToStopID, s.City)
	}

	scene := domain.GeneratePath(j.Stops, j.Cities, domain.ScenePathRadius)
	ui := domain.GeneratePath(j.Stops, j.Cities, domain.UIPathRadius)
	if scene.Len() != stats.Samples {
		p.errorf("scene path has %d samples, expected %d", scene.Len(), stats.Samples)
	}
	if ui.Len() != scene.Len() {
		p.errorf("UI path has %d samples, scene path %d", ui.Len(), scene.Len())
	}
	if scene.Len() == 0 {
		p.errorf("path is empty")
		return p
	}

	// progress 0 and 1 must land on the first and last stops
	if got := domain.Resolve(0, scene).CurrentStopID; got != j.Stops[0].ID {
		p.errorf("progress 0 resolves to stop %d, expected %d", got, j.Stops[0].ID)
	}
	last := j.Stops[len(j.Stops)-1].ID
	if got := domain.Resolve(1, scene).CurrentStopID; got != last && len(stats.Skipped) == 0 {
		p.errorf("progress 1 resolves to stop %d, expected %d", got, last)
	}
	return p
}

func validateZoom(stats dataset.PathStats) *phase {
	p := &phase{name: "Phase 3: Zoom coverage"}
	if len(stats.NoZoom) > 0 {
		p.notef("stops without a zoom rule stay fully zoomed out: %v", stats.NoZoom)
	}
	return p
}

func validatePhotos(j *domain.Journey) *phase {
	p := &phase{name: "Phase 4: Photo index"}

	cities := make([]string, 0, len(j.Photos))
	for city := range j.Photos {
		cities = append(cities, city)
	}
	sort.Strings(cities)

	for _, city := range cities {
		if !slices.ContainsFunc(j.Stops, func(s domain.Stop) bool { return s.City == city }) {
			p.errorf("photos for %q, which is not on the itinerary", city)
		}
		seen := make(map[string]bool)
		for _, photo := range j.Photos[city].Photos {
			if seen[photo.ID] {
				p.errorf("%s: duplicate photo id %q", city, photo.ID)
			}
			seen[photo.ID] = true
			if _, ok := photo.Taken(); !ok {
				p.notef("%s: photo %q has unparseable date %q and sorts first", city, photo.ID, photo.Date)
			}
		}
	}
	return p
}
