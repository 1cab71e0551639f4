package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sable/internal/driver"
	"sable/internal/source"
	"sable/internal/ui"
)

type checkOutcome struct {
	results []driver.FileResult
	err     error
}

func runCheckWithUI(ctx context.Context, title string, fs *source.FileSet, files []string, opts driver.Options) ([]driver.FileResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = func(ev driver.Event) { events <- ev }
		res, err := driver.AnalyzePaths(ctx, fs, files, optsCopy)
		outcomeCh <- checkOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	_, uiErr := program.Run()

	var outcome checkOutcome
	select {
	case outcome = <-outcomeCh:
	default:
		// UI закрыта до конца анализа (Ctrl+C): отменяем и дочитываем события
		cancel()
		go func() {
			for range events {
			}
		}()
		outcome = <-outcomeCh
	}
	if uiErr != nil && outcome.err == nil && ctx.Err() == nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
