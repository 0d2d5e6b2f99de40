package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "gooze.dev/pkg/subsume/internal/model"
)

// Node roles shown in the browser.
const (
	roleDominator  = "dominator"
	roleLowest     = "lowest"
	roleIsolated   = "isolated"
	roleInner      = "inner"
	roleUndetected = "undetected"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	roleStyles  = map[string]lipgloss.Style{
		roleDominator:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		roleLowest:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		roleIsolated:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		roleInner:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		roleUndetected: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),
	}
)

// nodeItem is one merged node in the browser list.
type nodeItem struct {
	node    string
	role    string
	weight  int
	mutants []m.MutantID
	tests   []m.TestID
	tcap    float64
	hasTCAP bool
}

func (i nodeItem) FilterValue() string {
	return i.node + " " + m.JoinMutants(i.mutants) + " " + m.JoinTests(i.tests)
}

func (i nodeItem) line() string {
	role := roleStyles[i.role].Render(fmt.Sprintf("%-10s", i.role))

	score := "      "
	if i.hasTCAP {
		score = fmt.Sprintf("%6s", formatScore(i.tcap))
	}

	return fmt.Sprintf("%-6s %s %4d %s  %s  %s",
		i.node, role, i.weight, score, m.JoinMutants(i.mutants), mutedStyle.Render(m.JoinTests(i.tests)))
}

type nodeDelegate struct{}

func (d nodeDelegate) Height() int                             { return 1 }
func (d nodeDelegate) Spacing() int                            { return 0 }
func (d nodeDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d nodeDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	node, ok := item.(nodeItem)
	if !ok {
		return
	}

	line := node.line()
	if index == lm.Index() {
		line = lipgloss.NewStyle().Bold(true).Render("> " + line)
	} else {
		line = "  " + line
	}

	_, _ = fmt.Fprint(w, line)
}

// reportModel is the Bubble Tea model browsing the nodes of one run.
type reportModel struct {
	summary  m.Summary
	meanTCAP float64
	items    []nodeItem
	nodeList list.Model
	width    int
	height   int
}

func newReportModel(reports m.Reports) reportModel {
	items := buildNodeItems(reports)

	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	nodeList := list.New(listItems, nodeDelegate{}, 80, 20)
	nodeList.SetShowPagination(false)
	nodeList.SetShowFilter(true)
	nodeList.SetShowHelp(false)
	nodeList.SetShowTitle(false)
	nodeList.SetShowStatusBar(false)
	nodeList.FilterInput.Placeholder = "Filter by node, mutant or test…"

	return reportModel{
		summary:  reports.Summary,
		meanTCAP: m.MeanTCAP(reports.TCAP),
		items:    items,
		nodeList: nodeList,
		width:    80,
		height:   24,
	}
}

// buildNodeItems joins the node mapping with the dominator and lowest-layer
// tables to label every node with its role.
func buildNodeItems(reports m.Reports) []nodeItem {
	dominators := make(map[string]struct{}, len(reports.Dominators))
	for _, row := range reports.Dominators {
		dominators[row.Node] = struct{}{}
	}

	lowest := make(map[string]struct{}, len(reports.LowestLayer))
	for _, row := range reports.LowestLayer {
		lowest[row.Node] = struct{}{}
	}

	scores := make(map[m.MutantID]float64, len(reports.TCAP))
	for _, row := range reports.TCAP {
		scores[row.Mutant] = row.Score
	}

	items := make([]nodeItem, 0, len(reports.Mapping))

	for _, mapping := range reports.Mapping {
		_, isDominator := dominators[mapping.Node]
		_, isLowest := lowest[mapping.Node]

		role := roleInner

		switch {
		case len(mapping.Tests) == 0:
			role = roleUndetected
		case isDominator && isLowest:
			role = roleIsolated
		case isDominator:
			role = roleDominator
		case isLowest:
			role = roleLowest
		}

		item := nodeItem{
			node:    mapping.Node,
			role:    role,
			weight:  mapping.Weight,
			mutants: mapping.Mutants,
			tests:   mapping.Tests,
		}

		if len(mapping.Mutants) > 0 {
			item.tcap, item.hasTCAP = scores[mapping.Mutants[0]]
		}

		items = append(items, item)
	}

	return items
}

func (rm reportModel) resize(width, height int) reportModel {
	rm.width = width
	rm.height = height

	listHeight := height - 8
	if listHeight < 5 {
		listHeight = 5
	}

	rm.nodeList.SetSize(width-2, listHeight)

	return rm
}

func (rm reportModel) Init() tea.Cmd {
	return nil
}

func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return rm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		if rm.nodeList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return rm, tea.Quit
			}
		}
	}

	var cmd tea.Cmd

	rm.nodeList, cmd = rm.nodeList.Update(msg)

	return rm, cmd
}

func (rm reportModel) header() string {
	s := rm.summary

	counts := fmt.Sprintf("Mutants: %s   Nodes: %s   Edges: %s   Dominators: %s   Lowest layer: %s   Undetected: %s",
		accentStyle.Render(fmt.Sprintf("%d", s.Mutants)),
		accentStyle.Render(fmt.Sprintf("%d", s.Nodes)),
		accentStyle.Render(fmt.Sprintf("%d", s.Edges)),
		accentStyle.Render(fmt.Sprintf("%d", s.Dominators)),
		accentStyle.Render(fmt.Sprintf("%d", s.LowestLayer)),
		accentStyle.Render(fmt.Sprintf("%d", s.Undetected)),
	)

	if s.TCAPEnabled {
		counts += fmt.Sprintf("   Mean TCAP: %s", accentStyle.Render(formatScore(rm.meanTCAP)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Mutant Subsumption"),
		summaryStyle.Render(counts),
	)
}

func (rm reportModel) columns() string {
	return mutedStyle.Render(fmt.Sprintf("  %-6s %-10s %4s %6s  %s  %s",
		"Node", "Role", "Size", "TCAP", "Mutants", "Tests"))
}

func (rm reportModel) View() string {
	footer := mutedStyle.
		Align(lipgloss.Center).
		Width(rm.width).
		Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		rm.header(),
		rm.columns(),
		rm.nodeList.View(),
		footer,
	)
}

// staticView renders every node without interaction.
func (rm reportModel) staticView() string {
	var b strings.Builder

	b.WriteString(rm.header())
	b.WriteString("\n")
	b.WriteString(rm.columns())
	b.WriteString("\n")

	for _, item := range rm.items {
		b.WriteString("  ")
		b.WriteString(item.line())
		b.WriteString("\n")
	}

	return b.String()
}
