// Package tui is the interactive shell around a diagram catalog: it renders
// every grid view of the mounted diagram, routes keyboard and mouse motion
// into the views' hover path, and switches diagrams on number keys the way
// the catalog contract prescribes.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/karmanyte/matlens/diagram"
	"github.com/karmanyte/matlens/gridview"
)

// Grid geometry used by both rendering and mouse resolution. Every cell is
// rendered exactly cellWidth runes wide, so the two never drift apart.
const (
	cellWidth  = 6
	viewGap    = 4
	headerRows = 2 // title line + blank line above the grids
)

// keyMap declares the shell bindings; help renders it.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	NextView key.Binding
	Leave    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		NextView: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next grid")),
		Leave:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear hover")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.NextView, k.Leave, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.NextView, k.Leave, k.Quit}}
}

// Model is the bubbletea model owning the catalog and the mounted diagram.
type Model struct {
	catalog *diagram.Catalog
	mounted int // 1-based catalog index of the current diagram

	active   int // index into the mounted diagram's views
	row, col int // keyboard cursor within the active view
	hovering bool

	width, height int
	keys          keyMap
	help          help.Model
	err           error
}

// NewModel mounts catalog entry 1 and returns the shell model.
func NewModel(cat *diagram.Catalog) (Model, error) {
	m := Model{catalog: cat, keys: defaultKeyMap(), help: help.New()}
	m.mount(1)
	if m.err != nil {
		return Model{}, m.err
	}

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			m.resolvePointer(msg.X, msg.Y)
		}
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Numeric keys 1..N switch diagrams directly.
	if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= m.catalog.Size() {
		m.mount(n)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.catalog.Teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextView):
		views := m.views()
		if len(views) > 0 {
			m.active = (m.active + 1) % len(views)
			m.clampCursor()
			m.hoverCursor()
		}

	case key.Matches(msg, m.keys.Leave):
		if v := m.activeView(); v != nil {
			v.Hover(gridview.Leave, gridview.Leave)
		}
		m.hovering = false

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	}

	return m, nil
}

// mount switches to catalog entry n and resets the interaction state.
func (m *Model) mount(n int) {
	d, err := m.catalog.Mount(n)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.mounted = n
	m.active = len(d.Views()) - 1 // start on the derived/result view
	m.row, m.col = 0, 0
	m.hovering = false
}

func (m *Model) views() []*gridview.GridView {
	d := m.catalog.Current()
	if d == nil {
		return nil
	}

	return d.Views()
}

func (m *Model) activeView() *gridview.GridView {
	views := m.views()
	if m.active < 0 || m.active >= len(views) {
		return nil
	}

	return views[m.active]
}

func (m *Model) clampCursor() {
	v := m.activeView()
	if v == nil {
		return
	}
	if m.row >= v.Rows() {
		m.row = v.Rows() - 1
	}
	if m.col >= v.Cols() {
		m.col = v.Cols() - 1
	}
	if m.row < 0 {
		m.row = 0
	}
	if m.col < 0 {
		m.col = 0
	}
}

func (m *Model) moveCursor(dr, dc int) {
	v := m.activeView()
	if v == nil {
		return
	}
	m.row += dr
	m.col += dc
	m.clampCursor()
	m.hoverCursor()
}

func (m *Model) hoverCursor() {
	if v := m.activeView(); v != nil {
		v.Hover(m.row, m.col)
		m.hovering = true
	}
}

// resolvePointer maps a terminal coordinate onto a grid cell and forwards it
// through the hover path; motion outside every grid sends the leave signal.
func (m *Model) resolvePointer(x, y int) {
	views := m.views()
	originX := 0
	for i, v := range views {
		gridTop := headerRows + 1 // name line sits above each grid
		gridWidth := v.Cols() * cellWidth
		if x >= originX && x < originX+gridWidth && y >= gridTop && y < gridTop+v.Rows() {
			m.active = i
			m.row = y - gridTop
			m.col = (x - originX) / cellWidth
			m.hoverCursor()
			return
		}
		originX += gridWidth + viewGap
	}
	if m.hovering {
		if v := m.activeView(); v != nil {
			v.Hover(gridview.Leave, gridview.Leave)
		}
		m.hovering = false
	}
}

// viewLabels names the grids per archetype.
func viewLabels(d diagram.Diagram) []string {
	switch d.Kind() {
	case diagram.KindMultiply:
		return []string{"A", "B", "A×B"}
	case diagram.KindTranspose:
		return []string{"A", "Aᵗ"}
	default:
		return []string{"matrix", "literal"}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	d := m.catalog.Current()
	if d == nil {
		return "no diagram mounted\n"
	}

	var sb strings.Builder
	names := m.catalog.Names()
	title := fmt.Sprintf("matlens %d/%d — %s", m.mounted, m.catalog.Size(), names[m.mounted-1])
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderGrids(d))

	if mul, ok := d.(*diagram.MultiplyDiagram); ok && mul.Invalid() {
		sb.WriteString(errorStyle.Render(mul.Explanation()))
	} else if text := d.Explanation(); text != "" {
		sb.WriteString(explanationStyle.Render(text))
	}
	sb.WriteString("\n\n")

	sb.WriteString(hintStyle.Render(fmt.Sprintf("1-%d switch diagram · ", m.catalog.Size())))
	sb.WriteString(m.help.View(m.keys))
	if m.err != nil {
		sb.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}
	sb.WriteString("\n")

	return sb.String()
}

// renderGrids lays the views out side by side with fixed-width cells, the
// same geometry resolvePointer assumes.
func (m Model) renderGrids(d diagram.Diagram) string {
	views := d.Views()
	labels := viewLabels(d)
	blocks := make([]string, 0, len(views))

	for i, v := range views {
		var b strings.Builder
		name := labels[i%len(labels)]
		if i == m.active {
			b.WriteString(activeViewNameStyle.Render(name))
		} else {
			b.WriteString(viewNameStyle.Render(name))
		}
		b.WriteString("\n")
		b.WriteString(renderGrid(v))
		blocks = append(blocks, b.String())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, interleaveGaps(blocks)...) + "\n"
}

// interleaveGaps inserts the fixed inter-view spacing.
func interleaveGaps(blocks []string) []string {
	out := make([]string, 0, len(blocks)*2-1)
	gap := strings.Repeat(" ", viewGap)
	for i, blk := range blocks {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, blk)
	}

	return out
}

// renderGrid draws one view, cellWidth runes per cell, emphasis from the
// view's channel state.
func renderGrid(v *gridview.GridView) string {
	var b strings.Builder
	mr, mc, _, markActive := v.CellHighlight()
	placeholder := v.Matrix() == nil

	for r := 0; r < v.Rows(); r++ {
		for c := 0; c < v.Cols(); c++ {
			cell, err := v.Cell(r, c)
			if err != nil {
				continue
			}
			text := cell.Content + " "
			if pad := cellWidth - len([]rune(text)); pad > 0 {
				text = strings.Repeat(" ", pad) + text
			}
			switch {
			case markActive && r == mr && c == mc:
				b.WriteString(focusedCellStyle.Render(text))
			case cell.Selected:
				b.WriteString(selectedCellStyle.Render(text))
			case placeholder:
				b.WriteString(mutedCellStyle.Render(text))
			default:
				b.WriteString(cellStyle.Render(text))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
