// Package browse provides the Bubble Tea letter distribution browser.
package browse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/letterdist/internal/model"
	"github.com/verte-zerg/letterdist/internal/stats"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle  = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

const (
	headerHeight = 2
	detailHeight = 5
	footerHeight = 1
)

// Model implements the Bubble Tea distribution browser.
type Model struct {
	title          string
	words          int
	dists          model.Distributions
	maxOccurrences int
	table          table.Model

	width  int
	height int
}

// NewModel constructs a browser over the given distributions.
func NewModel(title string, words int, dists model.Distributions, maxOccurrences int) *Model {
	cols, rows := buildTableData(dists, maxOccurrences)
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(10),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles())
	return &Model{
		title:          title,
		words:          words,
		dists:          dists,
		maxOccurrences: maxOccurrences,
		table:          t,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "g", "home":
			m.table.GotoTop()
			return m, nil
		case "G", "end":
			m.table.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	parts := []string{
		m.renderHeader(),
		m.table.View(),
		m.renderDetail(),
		mutedStyle.Render("up/down: select letter  g/G: top/bottom  q: quit"),
	}
	return strings.Join(parts, "\n")
}

// Selected returns the distribution under the cursor.
func (m *Model) Selected() (model.LetterDistribution, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.dists) {
		return model.LetterDistribution{}, false
	}
	return m.dists[idx], true
}

func (m *Model) updateLayout() {
	m.table.SetWidth(m.width)
	bodyHeight := m.height - headerHeight - detailHeight - footerHeight
	m.table.SetHeight(maxInt(3, bodyHeight))
}

func (m *Model) renderHeader() string {
	title := titleStyle.Render(m.title)
	summary := mutedStyle.Render(fmt.Sprintf("%d words, buckets 0-%d", m.words, m.maxOccurrences))
	return title + "\n" + summary
}

func (m *Model) renderDetail() string {
	ld, ok := m.Selected()
	if !ok {
		return cardStyle.Render(cardTitleStyle.Render("No letter stats found."))
	}
	var b strings.Builder
	b.WriteString(cardTitleStyle.Render("Letter "))
	b.WriteString(cardValueStyle.Render(ld.Letter))
	b.WriteString("\n")
	b.WriteString(cardTitleStyle.Render("Histogram "))
	b.WriteString(cardValueStyle.Render(formatHistogram(ld.Histogram)))
	if dropped := stats.Dropped(ld.Histogram, m.maxOccurrences); dropped > 0 {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf("%d words above count%d not exported", dropped, m.maxOccurrences)))
	}
	return cardStyle.Render(b.String())
}

func formatHistogram(h model.Histogram) string {
	if len(h) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(h))
	for _, bucket := range h {
		parts = append(parts, fmt.Sprintf("%d:%d", bucket.Occurrences, bucket.Words))
	}
	return strings.Join(parts, " ")
}

func buildTableData(dists model.Distributions, maxOccurrences int) ([]table.Column, []table.Row) {
	header := stats.Header(maxOccurrences)
	columns := make([]table.Column, 0, len(header)+1)
	columns = append(columns, table.Column{Title: "Char", Width: 4})
	for _, title := range header[1:] {
		columns = append(columns, table.Column{Title: title, Width: maxInt(len(title), 6)})
	}
	columns = append(columns, table.Column{Title: "Dropped", Width: 7})

	reportRows := stats.ReportRows(dists, maxOccurrences)
	rows := make([]table.Row, 0, len(reportRows))
	for i, r := range reportRows {
		row := make(table.Row, 0, len(columns))
		row = append(row, r.Letter)
		for _, c := range r.Counts {
			row = append(row, strconv.Itoa(c))
		}
		row = append(row, strconv.Itoa(stats.Dropped(dists[i].Histogram, maxOccurrences)))
		rows = append(rows, row)
	}
	return columns, rows
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
