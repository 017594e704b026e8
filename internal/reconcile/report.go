package reconcile

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Report accumulates the run's counters and the sorted missing list.
type Report struct {
	Checked     int
	Matched     int
	NotFound    int
	Skipped     int
	Errors      int
	CacheHits   int
	CacheMisses int

	Missing []string
}

// MissingRecord formats one discrepancy line: "<title> (<year>) - <group>".
func MissingRecord(title string, year int, group string) string {
	return fmt.Sprintf("%s (%d) - %s", title, year, group)
}

func (r *Report) addMissing(record string) {
	r.Missing = append(r.Missing, record)
	sort.Strings(r.Missing)
}

// HasMissing reports whether any checked movie was absent from the tracker.
func (r *Report) HasMissing() bool {
	return len(r.Missing) > 0
}

// WriteMissing writes the missing list to path, one record per line,
// overwriting any previous report. Calling it with an empty list is an error;
// the report file only exists when there is something to act on.
func (r *Report) WriteMissing(path string) error {
	if !r.HasMissing() {
		return fmt.Errorf("no missing releases to write")
	}
	content := strings.Join(r.Missing, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write missing report: %w", err)
	}
	return nil
}
