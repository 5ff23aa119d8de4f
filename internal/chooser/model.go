package chooser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// model is the bubbletea model backing Chooser.Run: a filepicker with a
// thin header/footer reporting the staging result.
type model struct {
	filepicker filepicker.Model
	chooser    *Chooser

	err      error
	selected string
}

func (m model) Init() tea.Cmd {
	return m.filepicker.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.filepicker, cmd = m.filepicker.Update(msg)

	if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
		m.err = m.chooser.Stage(path)
		if m.err == nil {
			m.selected = path
		}
	}
	if didSelect, path := m.filepicker.DidSelectDisabledFile(msg); didSelect {
		m.err = fmt.Errorf("%s is not a .pkm/.pk4/.pk5 file", path)
	}

	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select a Pokémon to stage for the next GTS request"))
	b.WriteString("\n\n")
	b.WriteString(m.filepicker.View())
	if m.err != nil {
		b.WriteString("\n" + errStyle.Render(m.err.Error()))
	}
	if m.selected != "" {
		b.WriteString("\n" + okStyle.Render("staged: "+m.selected))
	}
	return b.String()
}
