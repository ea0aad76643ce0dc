package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/talevox/talevox/internal/pipeline"
)

// extractedMsg carries the result of loading a PDF into the text view.
type extractedMsg struct {
	text string
	err  error
}

// progressMsg reports a pipeline stage transition during conversion.
type progressMsg struct {
	stage pipeline.Stage
	done  int
	total int
}

// convertDoneMsg ends a conversion.
type convertDoneMsg struct {
	result *pipeline.Result
	err    error
}

// playbackDoneMsg ends play-after-conversion.
type playbackDoneMsg struct {
	err error
}

// listen waits for the next message the conversion goroutine pushes.
func listen(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}
