package quality

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// groupPattern captures the trailing -<token> segment of a release file name,
// optionally followed by a known container extension. This is a best-effort
// heuristic over scene-style naming, not a full filename grammar.
var groupPattern = regexp.MustCompile(`-([A-Za-z0-9]+)(?:\.(?:mkv|mp4|avi|m2ts|ts))?$`)

// ExtractReleaseGroup returns the release group embedded at the end of a file
// name, preserving its original casing. The second return is false when the
// name carries no recognizable group token.
func ExtractReleaseGroup(fileName string) (string, bool) {
	matches := groupPattern.FindStringSubmatch(fileName)
	if matches == nil {
		return "", false
	}
	return matches[1], true
}

// GroupAllowList answers case-insensitive membership questions about the
// configured release groups while preserving their configured casing for
// display.
type GroupAllowList struct {
	groups []string
	folded map[string]string
}

var folder = cases.Fold()

// NewGroupAllowList builds an allow-list from the configured group names.
func NewGroupAllowList(groups []string) GroupAllowList {
	folded := make(map[string]string, len(groups))
	kept := make([]string, 0, len(groups))
	for _, group := range groups {
		trimmed := strings.TrimSpace(group)
		if trimmed == "" {
			continue
		}
		key := folder.String(trimmed)
		if _, seen := folded[key]; seen {
			continue
		}
		folded[key] = trimmed
		kept = append(kept, trimmed)
	}
	return GroupAllowList{groups: kept, folded: folded}
}

// Contains reports whether tag names an allow-listed group, ignoring case.
func (l GroupAllowList) Contains(tag string) bool {
	if tag == "" {
		return false
	}
	_, ok := l.folded[folder.String(tag)]
	return ok
}

// MatchesAny reports whether the free-text release name mentions at least one
// allow-listed group, ignoring case.
func (l GroupAllowList) MatchesAny(releaseName string) bool {
	folded := folder.String(releaseName)
	for key := range l.folded {
		if strings.Contains(folded, key) {
			return true
		}
	}
	return false
}

// Groups returns the allow-listed group names in configured order.
func (l GroupAllowList) Groups() []string {
	out := make([]string, len(l.groups))
	copy(out, l.groups)
	return out
}
