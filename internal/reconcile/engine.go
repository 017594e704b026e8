package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"crosscheck/internal/logging"
	"crosscheck/internal/quality"
	"crosscheck/internal/services/radarr"
	"crosscheck/internal/services/tracker"
)

// LookupService is the cache-fronted tracker lookup the engine consumes.
type LookupService interface {
	Lookup(ctx context.Context, imdbID string) (*tracker.SearchResponse, bool, error)
}

// Engine drives one reconciliation pass over the Radarr inventory.
type Engine struct {
	inventory radarr.Lister
	lookups   LookupService
	target    quality.Tier
	allowed   quality.GroupAllowList
	logger    *slog.Logger
}

// New constructs an engine.
func New(inventory radarr.Lister, lookups LookupService, target quality.Tier, allowed quality.GroupAllowList, logger *slog.Logger) (*Engine, error) {
	if inventory == nil {
		return nil, errors.New("engine requires an inventory lister")
	}
	if lookups == nil {
		return nil, errors.New("engine requires a lookup service")
	}
	if len(allowed.Groups()) == 0 {
		return nil, errors.New("engine requires at least one allowed release group")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		inventory: inventory,
		lookups:   lookups,
		target:    target,
		allowed:   allowed,
		logger:    logging.NewComponentLogger(logger, "reconcile"),
	}, nil
}

// Run fetches the inventory once and classifies every movie in order. An
// inventory fetch failure is fatal; a per-movie lookup failure is counted and
// the run continues.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	movies, err := e.inventory.Movies(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch inventory: %w", err)
	}
	e.logger.Info("inventory fetched", logging.Int("movies", len(movies)))

	report := &Report{}
	for _, movie := range movies {
		e.evaluate(ctx, movie, report)
	}

	e.logger.Info("reconciliation finished",
		logging.Int("checked", report.Checked),
		logging.Int("matched", report.Matched),
		logging.Int("not_found", report.NotFound),
		logging.Int("skipped", report.Skipped),
		logging.Int("errors", report.Errors),
		logging.Int("cache_hits", report.CacheHits),
		logging.Int("cache_misses", report.CacheMisses))
	return report, nil
}

// evaluate classifies one movie, short-circuiting at the first applicable
// outcome, and folds the result into the report.
func (e *Engine) evaluate(ctx context.Context, movie radarr.Movie, report *Report) {
	outcome, group := e.classify(ctx, movie, report)

	switch {
	case outcome.Skipped():
		report.Skipped++
		e.logger.Debug("movie skipped",
			logging.String("title", movie.Title),
			logging.Int("year", movie.Year),
			logging.String("outcome", outcome.String()))
	case outcome == OutcomeMatched:
		report.Checked++
		report.Matched++
		e.logger.Info("release found on tracker",
			logging.String("title", movie.Title),
			logging.Int("year", movie.Year))
	case outcome == OutcomeNotFound:
		report.Checked++
		report.NotFound++
		report.addMissing(MissingRecord(movie.Title, movie.Year, group))
		e.logger.Info("release missing from tracker",
			logging.String("title", movie.Title),
			logging.Int("year", movie.Year),
			logging.String("release_group", group))
	case outcome == OutcomeError:
		report.Checked++
		report.Errors++
	}
}

func (e *Engine) classify(ctx context.Context, movie radarr.Movie, report *Report) (Outcome, string) {
	if !movie.HasFile || movie.File == nil {
		return OutcomeSkippedNoFile, ""
	}
	if !quality.MeetsTarget(movie.Resolution(), e.target) {
		return OutcomeSkippedResolution, ""
	}
	group, ok := quality.ExtractReleaseGroup(movie.FileName())
	if !ok || !e.allowed.Contains(group) {
		return OutcomeSkippedReleaseGroup, ""
	}

	response, cached, err := e.lookups.Lookup(ctx, movie.IMDbID)
	if err != nil {
		e.logger.Error("lookup failed",
			logging.String("title", movie.Title),
			logging.Int("year", movie.Year),
			logging.String("imdb_id", movie.IMDbID),
			logging.Error(err))
		return OutcomeError, group
	}
	if cached {
		report.CacheHits++
	} else {
		report.CacheMisses++
	}

	if e.anyCandidateMatches(response) {
		return OutcomeMatched, group
	}
	return OutcomeNotFound, group
}

// anyCandidateMatches scans the tracker's candidates for one at the target
// tier whose release name mentions an allow-listed group.
func (e *Engine) anyCandidateMatches(response *tracker.SearchResponse) bool {
	if response == nil {
		return false
	}
	for _, candidate := range response.Data {
		if candidate.Resolution != e.target.DisplayTag {
			continue
		}
		if e.allowed.MatchesAny(candidate.Name) {
			return true
		}
	}
	return false
}
