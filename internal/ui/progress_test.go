package ui

import (
	"errors"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"fncomp/internal/driver"
)

func TestApplyEventTracksFiles(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("expand", []string{"a.rs", "b.rs"}, events).(*progressModel)

	m.applyEvent(driver.Event{File: "a.rs", Stage: driver.StageExpand, Status: driver.StatusWorking, Items: 2})
	m.applyEvent(driver.Event{File: "b.rs", Stage: driver.StageParse, Status: driver.StatusError, Err: errors.New("boom")})
	m.applyEvent(driver.Event{File: "missing.rs", Status: driver.StatusDone})

	if m.items[0].status != "expanding" || m.items[0].count != 2 {
		t.Errorf("a.rs = %+v", m.items[0])
	}
	if m.items[1].status != "error" {
		t.Errorf("b.rs = %+v", m.items[1])
	}
	if got := m.percent(); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("percent = %v, want 0.8", got)
	}
}

func TestDoneMsgQuits(t *testing.T) {
	m := NewProgressModel("expand", []string{"a.rs"}, nil)
	next, cmd := m.Update(doneMsg{})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if !strings.Contains(next.View(), "done: expand") {
		t.Errorf("view = %q", next.View())
	}
}

func TestListenForEventClosedChannel(t *testing.T) {
	events := make(chan driver.Event)
	close(events)
	m := NewProgressModel("expand", []string{"a.rs"}, events).(*progressModel)
	if _, ok := m.listenForEvent()().(doneMsg); !ok {
		t.Error("closed channel should produce doneMsg")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("src/components/very_long_name.rs", 12); runewidthLen(got) > 12 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("short.rs", 20); got != "short.rs" {
		t.Errorf("truncate = %q", got)
	}
}

func runewidthLen(s string) int { return len([]rune(s)) }
