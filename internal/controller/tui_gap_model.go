package controller

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

const kindColumnWidth = 9

// gapDelegate renders one uncovered entry per line.
type gapDelegate struct {
	offset int
}

func (d gapDelegate) Height() int  { return 1 }
func (d gapDelegate) Spacing() int { return 0 }
func (d gapDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d gapDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(entryItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var sigStyle, kindStyle lipgloss.Style

	var displaySig string

	width := m.Width() - kindColumnWidth - 2

	if isSelected {
		sigStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(kindColumnWidth)

		displaySig = animateScroll(entry.signature, width, d.offset)
	} else {
		sigStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(kindColumnWidth)

		displaySig = truncateToWidth(entry.signature, width)
	}

	line := fmt.Sprintf("%s  %s",
		kindStyle.Render(string(entry.kind)),
		sigStyle.Render(displaySig),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	gap := "   "

	// Ticks to wait before scrolling starts.
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	runes := []rune(text + gap)
	n := len(runes)

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// gapModel browses the entries a coverage run found undocumented.
type gapModel struct {
	width        int
	height       int
	entryList    list.Model
	delegate     gapDelegate
	mode         StartMode
	total        int
	covered      int
	notCovered   int
	sources      int
	rendered     bool
	animOffset   int
	lastSelected int
}

func newGapModel() gapModel {
	delegate := gapDelegate{}
	entryList := list.New([]list.Item{}, delegate, 80, 20)
	entryList.SetShowPagination(false)
	entryList.SetShowFilter(true)
	entryList.SetShowHelp(false)
	entryList.SetShowTitle(false)
	entryList.SetShowStatusBar(false)
	entryList.FilterInput.Placeholder = "Filter by path or signature…"

	return gapModel{
		entryList:    entryList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m gapModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m gapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.entryList.SetWidth(m.width)

	case tickMsg:
		if m.entryList.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.entryList.SetDelegate(m.delegate)

			return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.entryList.FilterState() == list.Filtering && msg.String() == "q" {
				break
			}

			return m, tea.Quit
		}

		m.entryList, cmd = m.entryList.Update(msg)

		if m.entryList.Index() != m.lastSelected {
			m.lastSelected = m.entryList.Index()
			m.animOffset = 0
			m.delegate.offset = 0
			m.entryList.SetDelegate(m.delegate)
		}

		return m, cmd

	case coverageMsg:
		m = m.handleCoverageMsg(msg)
	}

	return m, cmd
}

func (m gapModel) handleCoverageMsg(msg coverageMsg) gapModel {
	m.mode = msg.mode
	m.total = msg.report.Summary.Total
	m.covered = msg.report.Summary.Covered
	m.notCovered = msg.report.Summary.NotCovered

	groups := msg.report.UncoveredBySource()

	sources := make([]string, 0, len(groups))
	for source := range groups {
		sources = append(sources, source)
	}

	sort.Strings(sources)

	items := make([]list.Item, 0, len(msg.report.Uncovered))

	for _, source := range sources {
		for _, entry := range groups[source] {
			items = append(items, entryItem{source: source, signature: entry.Signature, kind: entry.Kind})
		}
	}

	m.sources = len(sources)
	m.entryList.SetItems(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

// selected returns the highlighted entry, if any.
func (m gapModel) selected() (entryItem, bool) {
	entry, ok := m.entryList.SelectedItem().(entryItem)

	return entry, ok
}

// listHeight is the number of rows left for entries once the title,
// summary, detail line, footer, borders and headers are drawn.
func (m gapModel) listHeight() int {
	return max(m.height-10, 5)
}

// fits reports whether every entry is visible without scrolling.
func (m gapModel) fits() bool {
	return m.height > 0 && len(m.entryList.Items()) <= m.listHeight()
}

func (m gapModel) View() string {
	if !m.rendered {
		return "Loading coverage results…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("docgap " + m.mode.String())

	summary := summaryStyle.Render(fmt.Sprintf(
		"Parsed: %s   Covered: %s   Not covered: %s   Files: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.covered)),
		accentStyle.Render(fmt.Sprintf("%d", m.notCovered)),
		accentStyle.Render(fmt.Sprintf("%d", m.sources)),
	))

	if m.notCovered == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			summary,
			"  All parsed API signatures appear to be covered by the scanned docs.\n",
		)
	}

	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Padding(0, 0, 0, 2)

	detail := ""
	if entry, ok := m.selected(); ok {
		detail = detailStyle.Render(entry.source)
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderTable(),
		detail,
		footer,
	)
}

func (m gapModel) renderTable() string {
	listWidth := m.width - 6

	m.entryList.SetHeight(m.listHeight())
	m.entryList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-*s  %s", kindColumnWidth, "Kind", "Signature"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.entryList.View(),
		),
	)
}
