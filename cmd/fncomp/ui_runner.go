package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"fncomp/internal/driver"
	"fncomp/internal/source"
	"fncomp/internal/ui"
)

type expandOutcome struct {
	fs      *source.FileSet
	results []*driver.Result
	err     error
}

// runExpandWithUI runs ExpandDir in the background while the progress model
// renders its events.
func runExpandWithUI(ctx context.Context, title string, files []string, dir string, opts driver.Options) (*source.FileSet, []*driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan expandOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.ExpandDir(ctx, dir, optsCopy)
		outcomeCh <- expandOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// модель больше не читает канал (ctrl+c или ошибка)
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
