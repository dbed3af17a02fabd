package main

import (
	"fmt"
	"os"
	"strings"
)

// progressMode is the --ui setting of `expand <dir>`.
type progressMode string

const (
	progressAuto progressMode = "auto"
	progressOn   progressMode = "on"
	progressOff  progressMode = "off"
)

func readProgressMode(value string) (progressMode, error) {
	switch m := progressMode(strings.TrimSpace(strings.ToLower(value))); m {
	case "":
		return progressAuto, nil
	case progressAuto, progressOn, progressOff:
		return m, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q for expansion progress (expected auto|on|off)", value)
	}
}

// wantProgressUI decides whether the bubbletea progress view replaces the
// plain per-file summary. In auto mode a directory with a single *.rs file
// is not worth a full-screen view, and a non-terminal stdout never gets one.
func wantProgressUI(mode progressMode, files int) bool {
	switch mode {
	case progressOn:
		return true
	case progressOff:
		return false
	default:
		return files > 1 && isTerminal(os.Stdout)
	}
}
