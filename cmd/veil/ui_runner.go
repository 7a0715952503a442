package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"veil/internal/driver"
	"veil/internal/pipeline"
	"veil/internal/ui"
)

type obfuscateOutcome struct {
	results []driver.FileResult
	err     error
}

// runWithUI drives run under a Bubble Tea progress display. The callback
// receives the sink that feeds the display and must use it for the whole
// run; the display exits when the run closes its side by returning.
func runWithUI(title string, files []string, run func(pipeline.ProgressSink) ([]driver.FileResult, error)) ([]driver.FileResult, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan obfuscateOutcome, 1)

	go func() {
		results, err := run(pipeline.ChannelSink{Ch: events})
		outcomeCh <- obfuscateOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
