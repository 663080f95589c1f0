package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// previewWidth bounds the path preview column in the list view.
const previewWidth = 60

// =============================================================================
// PathListModel - Interactive path browser
// =============================================================================

// PathListModel is the bubbletea model for browsing the paths of a cover.
// Enter opens the selected path; esc returns to the list.
type PathListModel struct {
	Title  string
	Paths  [][]string
	Cursor int
	Height int
	Offset int
	Open   bool
}

// NewPathListModel creates a new path list model.
func NewPathListModel(title string, paths [][]string) PathListModel {
	return PathListModel{
		Title:  title,
		Paths:  paths,
		Height: 15,
	}
}

func (m PathListModel) Init() tea.Cmd {
	return nil
}

func (m PathListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if !m.Open {
				return m, tea.Quit
			}
			m.Open = false
		case "enter":
			if len(m.Paths) > 0 {
				m.Open = !m.Open
			}
		case "up", "k":
			if !m.Open && m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if !m.Open && m.Cursor < len(m.Paths)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if len(m.Paths) > 0 {
				m.Cursor = len(m.Paths) - 1
				m.Offset = max(0, m.Cursor-m.Height+1)
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m PathListModel) View() string {
	if m.Open {
		return m.detailView()
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  q quit"))
	b.WriteString("\n\n")

	if len(m.Paths) == 0 {
		b.WriteString(listDimStyle.Render("  empty graph, no paths"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Paths))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		path := m.Paths[i]
		rows = append(rows, []string{cursor, "#" + strconv.Itoa(i+1), strconv.Itoa(len(path)), preview(path)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Path", "Len", "Vertices").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 3 {
				return listNormalStyle
			}
			return listDimStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Paths))))
	return b.String()
}

func (m PathListModel) detailView() string {
	path := m.Paths[m.Cursor]

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Path #%d", m.Cursor+1)))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d vertices", len(path))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))
	b.WriteString("\n\n")
	for i, v := range path {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("%4d  ", i+1)))
		b.WriteString(listNormalStyle.Render(v))
		b.WriteString("\n")
		if i < len(path)-1 {
			b.WriteString(listDimStyle.Render("      ↓"))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// preview joins path with arrows, cut to previewWidth runes.
func preview(path []string) string {
	s := strings.Join(path, " "+iconArrow+" ")
	if r := []rune(s); len(r) > previewWidth {
		return string(r[:previewWidth-1]) + "…"
	}
	return s
}
