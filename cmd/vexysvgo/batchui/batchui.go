// Package batchui is a small bubbletea progress view for optimizing many
// files at once, modeled on the donor CLI's streaming tea.Model (frame
// arrival -> state update -> re-render) but driven by file completions
// instead of video frames.
package batchui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
)

// FileResult reports one file's outcome for the progress view.
type FileResult struct {
	Path        string
	BytesBefore int
	BytesAfter  int
	Err         error
}

type fileDoneMsg FileResult

// Run drives the progress view to completion, feeding each FileResult from
// results as it becomes available. It returns the number of files that
// failed.
func Run(total int, results <-chan FileResult) (int, error) {
	m := &model{total: total, results: results}
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	return final.(*model).failed, nil
}

type model struct {
	total   int
	done    int
	failed  int
	results <-chan FileResult
	last    string
}

func (m *model) Init() tea.Cmd {
	return m.waitForResult()
}

func (m *model) waitForResult() tea.Cmd {
	return func() tea.Msg {
		r, ok := <-m.results
		if !ok {
			return fileDoneMsg{}
		}
		return fileDoneMsg(r)
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	case fileDoneMsg:
		if msg.Path == "" {
			return m, tea.Quit
		}
		m.done++
		m.last = msg.Path
		if msg.Err != nil {
			m.failed++
		}
		if m.done >= m.total {
			return m, tea.Quit
		}
		return m, m.waitForResult()
	}
	return m, nil
}

func (m *model) View() tea.View {
	var b strings.Builder
	fmt.Fprintf(&b, "optimizing %d/%d", m.done, m.total)
	if m.last != "" {
		fmt.Fprintf(&b, "  (%s)", m.last)
	}
	if m.failed > 0 {
		fmt.Fprintf(&b, "  %d failed", m.failed)
	}
	return tea.NewView(b.String())
}
