package reconcile

// Outcome is the terminal classification of one inventory movie.
type Outcome string

const (
	// OutcomeSkippedNoFile marks a movie Radarr tracks without a file on disk.
	OutcomeSkippedNoFile Outcome = "skipped-no-file"
	// OutcomeSkippedResolution marks a file outside the target resolution tier.
	OutcomeSkippedResolution Outcome = "skipped-resolution"
	// OutcomeSkippedReleaseGroup marks a file whose release group is absent
	// from the allow-list (or could not be derived at all).
	OutcomeSkippedReleaseGroup Outcome = "skipped-release-group"
	// OutcomeMatched marks a movie with an equivalent release on the tracker.
	OutcomeMatched Outcome = "matched"
	// OutcomeNotFound marks a movie the tracker lacks at the target quality.
	OutcomeNotFound Outcome = "not-found"
	// OutcomeError marks a movie whose lookup failed; the run continues.
	OutcomeError Outcome = "error"
)

// Skipped reports whether the outcome excluded the movie before any lookup.
func (o Outcome) Skipped() bool {
	switch o {
	case OutcomeSkippedNoFile, OutcomeSkippedResolution, OutcomeSkippedReleaseGroup:
		return true
	}
	return false
}

func (o Outcome) String() string {
	return string(o)
}
