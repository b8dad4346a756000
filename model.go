package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"kilomon/internal/monitor"
)

// Layout constants
const (
	// Title is shown above the table
	Title = "⚡ KiloMon Process Manager"

	// HighlightSymbol marks the selected row
	HighlightSymbol = ">> "

	// DefaultTableRows is used until the terminal reports its size
	DefaultTableRows = 20

	// MinTableRows is the smallest number of rows ever drawn
	MinTableRows = 3

	// ChromeHeight is the number of lines used by everything except table rows:
	// title, box borders, header, footer
	ChromeHeight = 6

	// DefaultWidth is used until the terminal reports its size
	DefaultWidth = 80

	pidWidth    = 8
	cpuWidth    = 10
	memoryWidth = 12
	minName     = 12
)

// Model is the bubbletea model that draws frames pushed by the event loop and
// forwards key and mouse input back to it.
type Model struct {
	state  monitor.State
	events chan<- monitor.InputEvent
	keys   monitor.KeyMap
	help   help.Model
	offset int // first record shown
	width  int
	height int
}

// NewModel creates a Model that forwards input to events.
func NewModel(events chan<- monitor.InputEvent) Model {
	return Model{
		state:  monitor.State{Records: []monitor.ProcessRecord{}, SortKey: monitor.DefaultSortKey, Running: true},
		events: events,
		keys:   monitor.DefaultKeyMap,
		help:   help.New(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.forward(monitor.Key(msg.String()))

	case tea.MouseMsg:
		m.forward(mouseEvent(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scrollToSelection()

	case frameMsg:
		m.state = msg.state
		m.scrollToSelection()

	case shutdownMsg:
		return m, tea.Quit
	}

	return m, nil
}

// forward hands an event to the event loop. When the loop is behind and the
// buffer is full the event is dropped, the same as a debounced one.
func (m Model) forward(ev monitor.InputEvent) {
	select {
	case m.events <- ev:
	default:
	}
}

func mouseEvent(msg tea.MouseMsg) monitor.InputEvent {
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		return monitor.Mouse(monitor.ScrollDown)
	case tea.MouseButtonWheelUp:
		return monitor.Mouse(monitor.ScrollUp)
	}
	return monitor.Mouse(monitor.ScrollNone)
}

// tableRows is how many records fit on screen
func (m Model) tableRows() int {
	if m.height == 0 {
		return DefaultTableRows
	}
	return max(m.height-ChromeHeight, MinTableRows)
}

// scrollToSelection moves the viewport so the selected row is visible
func (m *Model) scrollToSelection() {
	rows := m.tableRows()
	n := len(m.state.Records)

	if i, ok := m.state.Selected.Index(); ok && i < n {
		if i < m.offset {
			m.offset = i
		}
		if i >= m.offset+rows {
			m.offset = i - rows + 1
		}
	}
	m.offset = max(min(m.offset, n-rows), 0)
}

// nameWidth gives the name column whatever the fixed columns leave over
func (m Model) nameWidth() int {
	width := m.width
	if width == 0 {
		width = DefaultWidth
	}
	// box border (2) + highlight gutter + fixed columns + 3 separators
	used := 2 + len(HighlightSymbol) + pidWidth + cpuWidth + memoryWidth + 3
	return max(width-used, minName)
}

// View renders the UI
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(Title))
	sb.WriteByte('\n')

	var table strings.Builder
	table.WriteString(m.header())

	records := m.state.Records
	if len(records) == 0 {
		table.WriteByte('\n')
		table.WriteString(emptyStyle.Render("No processes"))
	}

	selected, hasSelection := m.state.Selected.Index()
	end := min(m.offset+m.tableRows(), len(records))
	for i := m.offset; i < end; i++ {
		table.WriteByte('\n')
		table.WriteString(m.row(records[i], hasSelection && i == selected))
	}
	sb.WriteString(boxStyle.Render(table.String()))
	sb.WriteByte('\n')

	sb.WriteString(infoStyle.Render(fmt.Sprintf("Total Processes: %d | Sort: %s | ", len(records), m.state.SortKey)))
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

func (m Model) header() string {
	cell := func(title string, key monitor.SortKey, width int) string {
		style := inactiveHeaderStyle
		if m.state.SortKey == key {
			style = activeHeaderStyle
		}
		return style.Render(truncate(title, width))
	}

	return strings.Repeat(" ", len(HighlightSymbol)) + strings.Join([]string{
		cell("PID", monitor.SortByPID, pidWidth),
		cell("Name", monitor.SortByName, m.nameWidth()),
		cell("CPU", monitor.SortByCPU, cpuWidth),
		cell("Memory", monitor.SortByMemory, memoryWidth),
	}, " ")
}

func (m Model) row(rec monitor.ProcessRecord, selected bool) string {
	pid := truncate(strconv.Itoa(int(rec.PID)), pidWidth)
	name := truncate(rec.Name, m.nameWidth())
	cpu := truncate(formatCPU(rec.CPUPercent), cpuWidth)
	mem := truncate(formatMemory(rec.MemoryBytes), memoryWidth)

	if selected {
		return selectedStyle.Render(HighlightSymbol + strings.Join([]string{pid, name, cpu, mem}, " "))
	}
	return strings.Repeat(" ", len(HighlightSymbol)) + strings.Join([]string{
		normalStyle.Render(pid),
		normalStyle.Render(name),
		cpuStyle(rec.CPUPercent).Render(cpu),
		normalStyle.Render(mem),
	}, " ")
}
