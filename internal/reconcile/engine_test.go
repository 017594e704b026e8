package reconcile_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"crosscheck/internal/lookup"
	"crosscheck/internal/quality"
	"crosscheck/internal/reconcile"
	"crosscheck/internal/services"
	"crosscheck/internal/services/radarr"
	"crosscheck/internal/services/tracker"
	"crosscheck/internal/testsupport"
)

type fakeInventory struct {
	movies []radarr.Movie
	err    error
}

func (f *fakeInventory) Movies(ctx context.Context) ([]radarr.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.movies, nil
}

type fakeLookups struct {
	calls     int
	responses map[string]*tracker.SearchResponse
	failing   map[string]error
}

func (f *fakeLookups) Lookup(ctx context.Context, imdbID string) (*tracker.SearchResponse, bool, error) {
	f.calls++
	if err, ok := f.failing[imdbID]; ok {
		return nil, false, err
	}
	if response, ok := f.responses[imdbID]; ok {
		return response, false, nil
	}
	return &tracker.SearchResponse{}, false, nil
}

func movieWithFile(title string, year int, imdbID, fileName string, resolution int) radarr.Movie {
	return radarr.Movie{
		Title:   title,
		Year:    year,
		HasFile: true,
		IMDbID:  imdbID,
		File: &radarr.MovieFile{
			RelativePath: fileName,
			Quality: radarr.Quality{
				Quality: radarr.QualityDefinition{Resolution: resolution},
			},
		},
	}
}

func newEngine(t *testing.T, inventory radarr.Lister, lookups reconcile.LookupService) *reconcile.Engine {
	t.Helper()

	target, err := quality.TierFor(2160)
	if err != nil {
		t.Fatalf("TierFor failed: %v", err)
	}
	allowed := quality.NewGroupAllowList([]string{"BHDStudio", "Hallowed"})
	engine, err := reconcile.New(inventory, lookups, target, allowed, nil)
	if err != nil {
		t.Fatalf("reconcile.New failed: %v", err)
	}
	return engine
}

func TestRunSkipsMovieWithoutFile(t *testing.T) {
	inventory := &fakeInventory{movies: []radarr.Movie{
		{Title: "Stalker", Year: 1979, HasFile: false, IMDbID: "tt0079944"},
	}}
	lookups := &fakeLookups{}
	engine := newEngine(t, inventory, lookups)

	report, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Skipped != 1 || report.Checked != 0 {
		t.Fatalf("unexpected counters: %+v", report)
	}
	if report.HasMissing() {
		t.Fatalf("expected empty missing list, got %v", report.Missing)
	}
	if lookups.calls != 0 {
		t.Fatal("skipped movie must not trigger a lookup")
	}
}

func TestRunSkipsWrongResolutionAndGroup(t *testing.T) {
	inventory := &fakeInventory{movies: []radarr.Movie{
		movieWithFile("Heat", 1995, "tt0113277", "Heat.1995-BHDStudio.mkv", 1080),
		movieWithFile("Ronin", 1998, "tt0122690", "Ronin.1998.2160p-FraMeSToR.mkv", 2160),
		movieWithFile("Thief", 1981, "tt0083190", "Thief.1981.2160p.mkv", 2160),
	}}
	lookups := &fakeLookups{}
	engine := newEngine(t, inventory, lookups)

	report, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Skipped != 3 || report.Checked != 0 {
		t.Fatalf("unexpected counters: %+v", report)
	}
	if lookups.calls != 0 {
		t.Fatalf("expected no lookups, got %d", lookups.calls)
	}
}

func TestRunRecordsMissingWhenTrackerHasNothing(t *testing.T) {
	inventory := &fakeInventory{movies: []radarr.Movie{
		movieWithFile("Solaris", 1972, "tt0069293", "Solaris.1972.2160p-Hallowed.mkv", 2160),
	}}
	lookups := &fakeLookups{responses: map[string]*tracker.SearchResponse{
		"tt0069293": {Data: []tracker.Candidate{}},
	}}
	engine := newEngine(t, inventory, lookups)

	report, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Checked != 1 || report.NotFound != 1 || report.Matched != 0 {
		t.Fatalf("unexpected counters: %+v", report)
	}
	want := []string{"Solaris (1972) - Hallowed"}
	if !reflect.DeepEqual(report.Missing, want) {
		t.Fatalf("missing = %v, want %v", report.Missing, want)
	}
}

func TestRunMatchesCandidateCaseInsensitively(t *testing.T) {
	inventory := &fakeInventory{movies: []radarr.Movie{
		movieWithFile("Solaris", 1972, "tt0069293", "Solaris.1972.2160p-Hallowed.mkv", 2160),
	}}
	lookups := &fakeLookups{responses: map[string]*tracker.SearchResponse{
		"tt0069293": {Data: []tracker.Candidate{
			{Name: "Solaris.1972.2160p.BluRay.x265-hallowed", Resolution: "2160p"},
		}},
	}}
	engine := newEngine(t, inventory, lookups)

	report, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Matched != 1 || report.NotFound != 0 {
		t.Fatalf("unexpected counters: %+v", report)
	}
	if report.HasMissing() {
		t.Fatalf("expected no missing records, got %v", report.Missing)
	}
}

func TestRunRejectsCandidateAtWrongTier(t *testing.T) {
	inventory := &fakeInventory{movies: []radarr.Movie{
		movieWithFile("Solaris", 1972, "tt0069293", "Solaris.1972.2160p-Hallowed.mkv", 2160),
	}}
	lookups := &fakeLookups{responses: map[string]*tracker.SearchResponse{
		"tt0069293": {Data: []tracker.Candidate{
			// Right group, wrong tier: not an equivalent release.
			{Name: "Solaris.1972.1080p.BluRay.x264-Hallowed", Resolution: "1080p"},
		}},
	}}
	engine := newEngine(t, inventory, lookups)

	report, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.NotFound != 1 || report.Matched != 0 {
		t.Fatalf("unexpected counters: %+v", report)
	}
}

func TestRunCountsLookupErrorAndContinues(t *testing.T) {
	inventory := &fakeInventory{movies: []radarr.Movie{
		movieWithFile("Solaris", 1972, "tt0069293", "Solaris.1972.2160p-Hallowed.mkv", 2160),
		movieWithFile("Mirror", 1975, "tt0072443", "Mirror.1975.2160p-BHDStudio.mkv", 2160),
	}}
	lookups := &fakeLookups{
		failing: map[string]error{
			"tt0069293": services.Wrap(services.ErrTransport, "tracker", "search", "boom", nil),
		},
		responses: map[string]*tracker.SearchResponse{
			"tt0072443": {Data: []tracker.Candidate{}},
		},
	}
	engine := newEngine(t, inventory, lookups)

	report, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Errors != 1 {
		t.Fatalf("expected one error, got %d", report.Errors)
	}
	if report.NotFound != 1 {
		t.Fatalf("expected the second movie to be processed, got %+v", report)
	}
	want := []string{"Mirror (1975) - BHDStudio"}
	if !reflect.DeepEqual(report.Missing, want) {
		t.Fatalf("failed lookup must not enter the missing list: %v", report.Missing)
	}
}

func TestRunInventoryFailureIsFatal(t *testing.T) {
	inventory := &fakeInventory{err: services.Wrap(services.ErrTransport, "radarr", "list movies", "down", nil)}
	engine := newEngine(t, inventory, &fakeLookups{})

	if _, err := engine.Run(context.Background()); !errors.Is(err, services.ErrTransport) {
		t.Fatalf("expected fatal transport error, got %v", err)
	}
}

func TestRunSortsMissingRecords(t *testing.T) {
	inventory := &fakeInventory{movies: []radarr.Movie{
		movieWithFile("Zardoz", 1974, "tt0070948", "Zardoz.1974.2160p-Hallowed.mkv", 2160),
		movieWithFile("Alphaville", 1965, "tt0058898", "Alphaville.1965.2160p-BHDStudio.mkv", 2160),
	}}
	lookups := &fakeLookups{}
	engine := newEngine(t, inventory, lookups)

	report, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := []string{
		"Alphaville (1965) - BHDStudio",
		"Zardoz (1974) - Hallowed",
	}
	if !reflect.DeepEqual(report.Missing, want) {
		t.Fatalf("missing = %v, want %v", report.Missing, want)
	}
}

type countingSearcher struct {
	calls int
}

func (c *countingSearcher) Search(ctx context.Context, imdbID, resolution string) (*tracker.SearchResponse, json.RawMessage, error) {
	c.calls++
	raw := json.RawMessage(`{"data":[]}`)
	response, err := tracker.Decode(raw)
	return response, raw, err
}

func TestRunTwiceServesSecondPassFromCache(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	target, err := quality.TierFor(2160)
	if err != nil {
		t.Fatalf("TierFor failed: %v", err)
	}
	searcher := &countingSearcher{}
	gateway, err := lookup.NewGateway(store, searcher, target, nil)
	if err != nil {
		t.Fatalf("NewGateway failed: %v", err)
	}

	inventory := &fakeInventory{movies: []radarr.Movie{
		movieWithFile("Solaris", 1972, "tt0069293", "Solaris.1972.2160p-Hallowed.mkv", 2160),
		movieWithFile("Mirror", 1975, "tt0072443", "Mirror.1975.2160p-BHDStudio.mkv", 2160),
	}}
	allowed := quality.NewGroupAllowList([]string{"BHDStudio", "Hallowed"})
	engine, err := reconcile.New(inventory, gateway, target, allowed, nil)
	if err != nil {
		t.Fatalf("reconcile.New failed: %v", err)
	}

	ctx := context.Background()
	first, err := engine.Run(ctx)
	if err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	if searcher.calls != 2 || first.CacheMisses != 2 {
		t.Fatalf("expected two tracker calls on first pass, got calls=%d report=%+v", searcher.calls, first)
	}

	second, err := engine.Run(ctx)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if searcher.calls != 2 {
		t.Fatalf("second pass must be fully cached, tracker calls = %d", searcher.calls)
	}
	if second.CacheHits != 2 || second.CacheMisses != 0 {
		t.Fatalf("unexpected cache counters: %+v", second)
	}
	if !reflect.DeepEqual(first.Missing, second.Missing) {
		t.Fatalf("missing lists differ between passes: %v vs %v", first.Missing, second.Missing)
	}
}

func TestWriteMissing(t *testing.T) {
	report := &reconcile.Report{}
	if err := report.WriteMissing(filepath.Join(t.TempDir(), "out.txt")); err == nil {
		t.Fatal("expected error when nothing is missing")
	}

	inventory := &fakeInventory{movies: []radarr.Movie{
		movieWithFile("Solaris", 1972, "tt0069293", "Solaris.1972.2160p-Hallowed.mkv", 2160),
	}}
	engine := newEngine(t, inventory, &fakeLookups{})
	full, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "movies_not_found.txt")
	if err := full.WriteMissing(path); err != nil {
		t.Fatalf("WriteMissing failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if string(data) != "Solaris (1972) - Hallowed\n" {
		t.Fatalf("unexpected report contents: %q", data)
	}
}
