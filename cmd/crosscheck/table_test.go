package main

import (
	"strings"
	"testing"
)

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable(
		[]string{"Result", "Count"},
		[][]string{{"Checked", "3"}, {"Matched"}},
		[]columnAlignment{alignLeft, alignRight},
	)
	if !strings.Contains(out, "Checked") || !strings.Contains(out, "Matched") {
		t.Fatalf("unexpected table output:\n%s", out)
	}
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	if out := renderTable(nil, nil, nil); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestRedact(t *testing.T) {
	if got := redact(""); got != "(unset)" {
		t.Fatalf("redact empty = %q", got)
	}
	if got := redact("abcd"); got != "****" {
		t.Fatalf("redact short = %q", got)
	}
	got := redact("supersecretkey")
	if strings.Contains(got, "persecret") {
		t.Fatalf("redact leaked middle: %q", got)
	}
	if !strings.HasPrefix(got, "su") || !strings.HasSuffix(got, "ey") {
		t.Fatalf("redact should keep edges: %q", got)
	}
}
