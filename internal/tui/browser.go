package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/pinyingen/internal/hanzi"
	"github.com/f3rmion/pinyingen/internal/pinyin"
)

// Filter restricts which entries the browser shows.
type Filter int

const (
	FilterAll Filter = iota
	FilterHeteronyms
	FilterUnknown
)

func (f Filter) String() string {
	switch f {
	case FilterHeteronyms:
		return "heteronyms"
	case FilterUnknown:
		return "unknown"
	default:
		return "all"
	}
}

// BrowserModel is the Bubble Tea model for browsing a pinyin mapping.
type BrowserModel struct {
	title    string
	entries  []hanzi.Entry
	filtered []hanzi.Entry
	parser   *pinyin.Parser

	table table.Model

	searchInput textinput.Model
	searching   bool
	searchTerm  string
	filter      Filter

	width  int
	height int
}

// NewBrowser creates a browser over m. title is shown in the header.
func NewBrowser(title string, m *hanzi.Mapping) BrowserModel {
	si := textinput.New()
	si.Placeholder = "Search character or pinyin..."
	si.CharLimit = 50
	si.Width = 30

	entries := m.Entries()

	t := table.New(
		table.WithColumns(columnsFor(entries)),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(ColorAccent).
		Bold(true)
	t.SetStyles(styles)

	b := BrowserModel{
		title:       title,
		entries:     entries,
		parser:      pinyin.NewParser(),
		table:       t,
		searchInput: si,
	}
	b.applyFilter()
	return b
}

// columnsFor sizes the pinyin column to the widest reading.
func columnsFor(entries []hanzi.Entry) []table.Column {
	pinyinWidth := runewidth.StringWidth("Pinyin")
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Pinyin); w > pinyinWidth {
			pinyinWidth = w
		}
	}
	if pinyinWidth > 40 {
		pinyinWidth = 40
	}

	return []table.Column{
		{Title: "#", Width: 5},
		{Title: "Char", Width: 4},
		{Title: "Pinyin", Width: pinyinWidth},
		{Title: "Readings", Width: 8},
	}
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if h := msg.Height - 12; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter":
				m.searching = false
				m.searchInput.Blur()
				m.searchTerm = strings.TrimSpace(m.searchInput.Value())
				m.applyFilter()
				return m, nil
			case "esc":
				m.searching = false
				m.searchInput.Blur()
				m.searchInput.SetValue("")
				return m, nil
			default:
				var cmd tea.Cmd
				m.searchInput, cmd = m.searchInput.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "/":
			m.searching = true
			return m, m.searchInput.Focus()
		case "c":
			m.searchTerm = ""
			m.searchInput.SetValue("")
			m.filter = FilterAll
			m.applyFilter()
			return m, nil
		case "f":
			m.filter = (m.filter + 1) % 3
			m.applyFilter()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// matches reports whether e passes the current search and filter.
func (m BrowserModel) matches(e hanzi.Entry) bool {
	switch m.filter {
	case FilterHeteronyms:
		if !e.IsHeteronym() {
			return false
		}
	case FilterUnknown:
		if !e.IsUnknown() {
			return false
		}
	}

	if m.searchTerm == "" {
		return true
	}
	if e.Character == m.searchTerm {
		return true
	}
	term := strings.ToLower(m.searchTerm)
	for _, r := range hanzi.SplitReadings(e.Pinyin) {
		if strings.Contains(strings.ToLower(r), term) {
			return true
		}
		if strings.Contains(toneless(m.parser, r), term) {
			return true
		}
	}
	return false
}

// toneless strips tone marks so "shu" finds "shū".
func toneless(p *pinyin.Parser, reading string) string {
	s := p.Parse(reading)
	return s.Initial + s.Final
}

// applyFilter rebuilds the table rows from the search term and filter.
func (m *BrowserModel) applyFilter() {
	m.filtered = make([]hanzi.Entry, 0, len(m.entries))
	rows := make([]table.Row, 0, len(m.entries))
	for i, e := range m.entries {
		if !m.matches(e) {
			continue
		}
		m.filtered = append(m.filtered, e)
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			e.Character,
			e.Pinyin,
			strconv.Itoa(len(hanzi.SplitReadings(e.Pinyin))),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// Selected returns the entry under the cursor.
func (m BrowserModel) Selected() (hanzi.Entry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.filtered) {
		return hanzi.Entry{}, false
	}
	return m.filtered[i], true
}

// View implements tea.Model.
func (m BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString(" ")
	b.WriteString(HelpStyle.Render(fmt.Sprintf("%d/%d entries, filter: %s", len(m.filtered), len(m.entries), m.filter)))
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString(BoxStyle.Render(m.searchInput.View()))
		b.WriteString("\n")
	} else if m.searchTerm != "" {
		b.WriteString(LabelStyle.Render("Search: "))
		b.WriteString(m.searchTerm)
		b.WriteString("\n")
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")

	if e, ok := m.Selected(); ok {
		b.WriteString(m.renderDetail(e))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("↑/↓ navigate • / search • f cycle filter • c clear • q quit"))
	return b.String()
}

// renderDetail shows the syllable breakdown of each reading.
func (m BrowserModel) renderDetail(e hanzi.Entry) string {
	var lines []string
	lines = append(lines, CharacterStyle.Render(e.Character)+"  "+PinyinStyle.Render(e.Pinyin))

	if !e.IsUnknown() {
		for _, r := range hanzi.SplitReadings(e.Pinyin) {
			s := m.parser.Parse(r)
			lines = append(lines, fmt.Sprintf("%s initial %s, final %s, tone %d",
				LabelStyle.Render(padRight(s.Full, 8)), orNull(s.Initial), orNull(s.Final), s.Tone))
		}
	}
	return BoxStyle.Render(strings.Join(lines, "\n"))
}

// padRight pads s to width display cells.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func orNull(s string) string {
	if s == "" {
		return "Ø"
	}
	return s
}
