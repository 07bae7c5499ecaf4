package ui

import tea "github.com/charmbracelet/bubbletea"

// TUI wraps the bubbletea program.
type TUI struct {
	program *tea.Program
}

// New prepares a program around m with mouse reporting enabled, which the
// sliders need for dragging.
func New(m Model) *TUI {
	return &TUI{
		program: tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()),
	}
}

// Start runs the main loop and releases the model's resources on exit.
func (t *TUI) Start() error {
	final, err := t.program.Run()
	if m, ok := final.(Model); ok {
		if cerr := m.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Send delivers msg from outside the program, e.g. a config reload.
func (t *TUI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
