package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"oath/internal/driver"
	"oath/internal/ui"
)

// runWithUI runs fn in the background and renders its progress events until
// fn returns. The fn error wins over a UI error.
func runWithUI(title string, files []string, fn func(sink driver.ProgressSink) error) error {
	events := make(chan driver.Event, 256)
	outcome := make(chan error, 1)

	go func() {
		err := fn(driver.ChannelSink{Ch: events})
		close(events)
		outcome <- err
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	if uiErr != nil {
		// дочитываем события, чтобы воркеры не заблокировались
		for range events {
		}
	}
	if err := <-outcome; err != nil {
		return err
	}
	return uiErr
}
