package analyze

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jjtimmons/seqan/internal/seqan"
	"github.com/spf13/cobra"
)

var (
	borderColor = lipgloss.Color("#374151")

	detailStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)
)

// BrowseCmd opens an interactive list of the sequences in a FASTA file.
func BrowseCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, args)

	s, err := read(flags.in)
	if err != nil {
		logger.Fatal(err)
	}

	m, err := newBrowseModel(s, locator(conf), flags.frame)
	if err != nil {
		logger.Fatal(err)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr)).Run(); err != nil {
		logger.Fatal("browser failed", "err", err)
	}
}

// seqItem is a sequence in the browser list.
type seqItem struct {
	id      string
	length  int
	frame   seqan.Frame
	orfs    int
	longest int
}

func (i seqItem) FilterValue() string { return i.id }

func (i seqItem) Title() string { return i.id }

func (i seqItem) Description() string {
	if i.orfs == 0 {
		return fmt.Sprintf("%d nt    no ORFs", i.length)
	}
	return fmt.Sprintf("%d nt    %d ORFs    longest %d codons", i.length, i.orfs, i.longest)
}

// newBrowseItems measures every sequence in store order.
func newBrowseItems(s *seqan.Store, l *seqan.Locator, frameNumber int) ([]list.Item, error) {
	ids := s.IDs()
	items := make([]list.Item, 0, len(ids))

	for _, id := range ids {
		seq, err := s.Get(id)
		if err != nil {
			return nil, err
		}

		f, err := seqan.NewFrame(frameNumber, seq)
		if err != nil {
			return nil, err
		}

		item := seqItem{id: id, length: len(seq), frame: f}
		orfs := l.Locate(f)
		item.orfs = len(orfs)
		for _, o := range orfs {
			if o.Len() > item.longest {
				item.longest = o.Len()
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// browseModel lists sequences on the left and the selected one's reading
// frame on the right.
type browseModel struct {
	list        list.Model
	frameNumber int
	width       int
	height      int
}

func newBrowseModel(s *seqan.Store, l *seqan.Locator, frameNumber int) (browseModel, error) {
	items, err := newBrowseItems(s, l, frameNumber)
	if err != nil {
		return browseModel{}, err
	}

	sl := list.New(items, list.NewDefaultDelegate(), 0, 0)
	sl.Title = fmt.Sprintf("%d sequences", len(items))
	sl.SetShowStatusBar(false)
	sl.SetFilteringEnabled(true)

	return browseModel{list: sl, frameNumber: frameNumber}, nil
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width/3, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.detail())
}

// detail renders the selected sequence's codons, wrapped to the right pane
func (m browseModel) detail() string {
	item, ok := m.list.SelectedItem().(seqItem)
	if !ok {
		return ""
	}

	width := m.width - m.width/3 - 4
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s frame %d", item.id, m.frameNumber)))
	b.WriteString("\n")
	b.WriteString(noteStyle.Render(item.Description()))
	b.WriteString("\n\n")
	b.WriteString(item.frame.String())

	return detailStyle.Width(width).Render(b.String())
}
