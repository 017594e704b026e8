package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"crosscheck/internal/logging"
	"crosscheck/internal/lookupcache"
	"crosscheck/internal/quality"
	"crosscheck/internal/services/tracker"
)

// Gateway serves tracker lookups through the durable cache.
type Gateway struct {
	cache    *lookupcache.Store
	searcher tracker.Searcher
	target   quality.Tier
	logger   *slog.Logger
}

// NewGateway wires a cache store and tracker searcher together.
func NewGateway(cache *lookupcache.Store, searcher tracker.Searcher, target quality.Tier, logger *slog.Logger) (*Gateway, error) {
	if cache == nil {
		return nil, errors.New("gateway requires a cache store")
	}
	if searcher == nil {
		return nil, errors.New("gateway requires a tracker searcher")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Gateway{
		cache:    cache,
		searcher: searcher,
		target:   target,
		logger:   logging.NewComponentLogger(logger, "lookup"),
	}, nil
}

// Lookup returns the tracker response for one IMDb ID. The second return
// reports whether the response was served from cache.
func (g *Gateway) Lookup(ctx context.Context, imdbID string) (*tracker.SearchResponse, bool, error) {
	payload, found, err := g.cache.Get(ctx, imdbID)
	if err != nil {
		return nil, false, fmt.Errorf("cache read for %s: %w", imdbID, err)
	}
	if found {
		response, err := tracker.Decode(payload)
		if err != nil {
			// A corrupt cached payload is treated as a miss; the fresh
			// fetch below overwrites it.
			g.logger.Warn("discarding undecodable cache entry",
				logging.String("imdb_id", imdbID),
				logging.Error(err))
		} else {
			g.logger.Debug("lookup served from cache", logging.String("imdb_id", imdbID))
			return response, true, nil
		}
	}

	response, raw, err := g.searcher.Search(ctx, imdbID, g.target.DisplayTag)
	if err != nil {
		return nil, false, err
	}

	if err := g.cache.Set(ctx, imdbID, raw); err != nil {
		return nil, false, fmt.Errorf("cache write for %s: %w", imdbID, err)
	}

	g.logger.Debug("lookup fetched from tracker",
		logging.String("imdb_id", imdbID),
		logging.Int("candidates", len(response.Data)))
	return response, false, nil
}
