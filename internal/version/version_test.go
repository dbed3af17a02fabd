package version

import (
	"testing"

	"github.com/fatih/color"
)

func withPlain(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func override(t *testing.T, v, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = v, commit, date
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})
}

func TestString(t *testing.T) {
	withPlain(t)
	tests := []struct {
		name                string
		version, commit, at string
		want                string
	}{
		{"dev", "0.1.0-dev", "", "", "fncomp 0.1.0-dev"},
		{"release with commit", "1.2.3", "abc123", "", "fncomp 1.2.3 (abc123)"},
		{"all fields", "1.2.3", "abc123", "2026-01-15", "fncomp 1.2.3 (abc123) built 2026-01-15"},
		{"non semver", "nightly", "", "", "fncomp nightly"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			override(t, tt.version, tt.commit, tt.at)
			if got := String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColoredKeepsText(t *testing.T) {
	withPlain(t)
	override(t, "2.0.1-rc1", "", "")
	if got := Colored(); got != "2.0.1-rc1" {
		t.Errorf("Colored() = %q", got)
	}
}
