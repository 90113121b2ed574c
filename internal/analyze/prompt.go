package analyze

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
)

// confirm asks a yes/no question on the terminal. Swapped out in tests.
var confirm = func(question string) (bool, error) {
	return ask(question, os.Stdin, os.Stderr)
}

// ask runs a confirmModel reading keys from in and drawing to out.
func ask(question string, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(confirmModel{question: question}, tea.WithInput(in), tea.WithOutput(out))
	m, err := p.Run()
	if err != nil {
		return false, err
	}
	return m.(confirmModel).yes, nil
}

// confirmModel is a yes/no prompt. Anything but y counts as no.
type confirmModel struct {
	question string
	yes      bool
	done     bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.yes = true
	case "n", "N", "enter", "esc", "q", "ctrl+c":
		m.yes = false
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return questionStyle.Render(m.question) + " " + helpStyle.Render("[y/N]") + "\n"
}
