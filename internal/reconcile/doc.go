// Package reconcile walks the Radarr inventory and decides, movie by movie,
// whether the tracker already carries an equivalent release.
//
// Each movie resolves to exactly one outcome: skipped (no file, wrong
// resolution, or unlisted release group), matched, not found, or error.
// Classification short-circuits in that order, lookup failures are counted
// and logged without aborting the run, and the movies the tracker lacks are
// collected into a deterministically sorted missing list.
package reconcile
