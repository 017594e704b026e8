// Package lookupcache persists tracker lookup responses in SQLite so repeated
// runs over a multi-day window do not re-query the tracker for the same movie.
//
// Each movie's IMDb ID maps to at most one row holding the raw response
// payload and a last-checked timestamp. Expiry is lazy: a row older than the
// configured window reads as absent but stays on disk until it is overwritten
// by a fresh lookup or removed by Prune. Writes are idempotent upserts, so a
// repeated Set for the same key simply replaces the payload and timestamp.
//
// The store is the sole durable state crosscheck keeps between runs; if it
// cannot be opened the run fails rather than silently degrading to uncached
// tracker traffic.
package lookupcache
