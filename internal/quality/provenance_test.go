package quality_test

import (
	"testing"

	"crosscheck/internal/quality"
)

func TestExtractReleaseGroup(t *testing.T) {
	cases := []struct {
		name     string
		fileName string
		want     string
		found    bool
	}{
		{"mkv with group", "Movie.Name.2020-BHDStudio.mkv", "BHDStudio", true},
		{"no trailing token", "Movie.Name.2020.mkv", "", false},
		{"no extension", "Movie.Name.2020-Hallowed", "Hallowed", true},
		{"m2ts container", "Movie.Name.2020-Hallowed.m2ts", "Hallowed", true},
		{"last token wins", "Some-Movie-2020-DON.mkv", "DON", true},
		{"empty name", "", "", false},
		{"unknown extension rejected", "Movie.2020-Group.rar", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, found := quality.ExtractReleaseGroup(tc.fileName)
			if found != tc.found {
				t.Fatalf("ExtractReleaseGroup(%q) found = %v, want %v", tc.fileName, found, tc.found)
			}
			if got != tc.want {
				t.Fatalf("ExtractReleaseGroup(%q) = %q, want %q", tc.fileName, got, tc.want)
			}
		})
	}
}

func TestExtractReleaseGroupPreservesCase(t *testing.T) {
	got, found := quality.ExtractReleaseGroup("Movie.2020-bhdSTUDIO.mkv")
	if !found {
		t.Fatal("expected a group token")
	}
	if got != "bhdSTUDIO" {
		t.Fatalf("expected extraction to preserve case, got %q", got)
	}
}

func TestGroupAllowListContains(t *testing.T) {
	allowed := quality.NewGroupAllowList([]string{"BHDStudio", "Hallowed"})

	if !allowed.Contains("BHDStudio") {
		t.Fatal("exact casing should match")
	}
	if !allowed.Contains("bhdstudio") {
		t.Fatal("lower casing should match")
	}
	if !allowed.Contains("HALLOWED") {
		t.Fatal("upper casing should match")
	}
	if allowed.Contains("FraMeSToR") {
		t.Fatal("unlisted group should not match")
	}
	if allowed.Contains("") {
		t.Fatal("empty tag should not match")
	}
}

func TestGroupAllowListMatchesAny(t *testing.T) {
	allowed := quality.NewGroupAllowList([]string{"Hallowed"})

	if !allowed.MatchesAny("Movie.Name.2020.2160p.WEB-DL.x265-hallowed") {
		t.Fatal("expected case-insensitive substring match")
	}
	if allowed.MatchesAny("Movie.Name.2020.2160p.BluRay-FraMeSToR") {
		t.Fatal("unlisted group should not match")
	}
}

func TestGroupAllowListDedupesAndTrims(t *testing.T) {
	allowed := quality.NewGroupAllowList([]string{" BHDStudio ", "bhdstudio", "", "Hallowed"})
	groups := allowed.Groups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups after dedupe, got %v", groups)
	}
	if groups[0] != "BHDStudio" || groups[1] != "Hallowed" {
		t.Fatalf("unexpected groups: %v", groups)
	}
}
