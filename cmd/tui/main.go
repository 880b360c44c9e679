package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"RelAlgDb/helpers"
	"RelAlgDb/internal/interpreter"
	"RelAlgDb/internal/relation"
	"RelAlgDb/internal/server"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// execRequest mirrors the request body expected by the HTTP /exec endpoint.
type execRequest struct {
	Expr string `json:"expr"`
}

// execMsg is a Bubble Tea message carrying the relation returned for an
// evaluated expression.
type execMsg struct {
	result relation.Relation
	err    error
}

// execExprCmd wraps executeExpr in a Bubble Tea command so it can run
// asynchronously and send the result back to the Update loop.
func execExprCmd(addr, expr string) tea.Cmd {
	return func() tea.Msg {
		rel, err := executeExpr(addr, expr)
		return execMsg{result: rel, err: err}
	}
}

// key mappings for the TUI.
type keyMap struct {
	Quit key.Binding
	Run  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "evaluate"),
		),
	}
}

// ShortHelp returns keybindings to show in the minimized help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run},
		{k.Quit},
	}
}

// Styles for the UI.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("44")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Italic(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

const symbolsHint = "π_{cols}(e)  σ_{cond}(e)  ρ_{label}(e)  ∪  -  ⋈  ×"

type model struct {
	addr      string
	input     textarea.Model
	viewport  viewport.Model
	results   table.Model
	showTable bool
	label     string
	help      help.Model
	keys      keyMap
	status    string
	loading   bool
	err       error
	width     int
	height    int
}

func newModel(addr string) model {
	ta := textarea.New()
	ta.Placeholder = "Type an expression, e.g. σ_{dept=HR}(Employees)"
	ta.Focus()
	ta.Prompt = "RA> "
	ta.CharLimit = 0
	ta.FocusedStyle.CursorLine = ta.FocusedStyle.CursorLine.Background(lipgloss.Color("236"))
	ta.ShowLineNumbers = false

	vp := viewport.New(80, 20)
	vp.SetContent(subtle.Render("Results will appear here."))

	t := table.New(
		table.WithColumns([]table.Column{{Title: "Results", Width: 20}}),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)
	t.SetStyles(s)

	h := help.New()
	h.ShowAll = true

	return model{
		addr:     addr,
		input:    ta,
		viewport: vp,
		results:  t,
		help:     h,
		keys:     newKeyMap(),
		status:   "Connected to " + addr,
	}
}

// Init satisfies the tea.Model interface.
func (m model) Init() tea.Cmd {
	return textarea.Blink
}

// setResult shows a non-empty relation in the table and anything else in the
// viewport.
func (m *model) setResult(rel relation.Relation) {
	m.label = rel.Label
	if rel.IsEmpty() {
		m.showTable = false
		m.viewport.SetContent(subtle.Render(interpreter.EmptyMarker))
		return
	}

	columns, cells := interpreter.Cells(rel)
	widths := interpreter.ColumnWidths(columns, cells)
	cols := make([]table.Column, len(columns))
	for i, name := range columns {
		cols[i] = table.Column{Title: name, Width: widths[i] + 2}
	}
	rows := make([]table.Row, len(cells))
	for i, row := range cells {
		rows[i] = table.Row(row)
	}

	// Clear rows first so the old rows are never drawn against new columns.
	m.results.SetRows(nil)
	m.results.SetColumns(cols)
	m.results.SetRows(rows)
	m.results.GotoTop()
	m.showTable = true
}

// Update satisfies the tea.Model interface.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

		// title, server, hint, blank, label, input, blank, label, results,
		// blank, status, help
		const chromeLines = 12
		const minInputHeight = 3
		const minResultsHeight = 3

		available := m.height - chromeLines
		if available < 2 {
			available = 2
		}

		inputHeight := available / 3
		if inputHeight < 1 {
			inputHeight = 1
		}
		if available > minInputHeight+minResultsHeight && inputHeight < minInputHeight {
			inputHeight = minInputHeight
		}
		resultsHeight := available - inputHeight
		if resultsHeight < 1 {
			resultsHeight = 1
		}

		m.input.SetWidth(m.width - 6)
		m.input.SetHeight(inputHeight)
		m.viewport.Width = m.width - 6
		m.viewport.Height = resultsHeight
		m.results.SetWidth(m.width - 6)
		m.results.SetHeight(resultsHeight)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		if key.Matches(msg, m.keys.Run) {
			line := strings.TrimSpace(m.input.Value())
			if line == "" {
				break
			}

			m.loading = true
			m.status = "Evaluating..."
			m.err = nil

			return m, execExprCmd(m.addr, line)
		}
	case execMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.status = "Evaluation failed"
			m.showTable = false
			m.label = ""
			m.viewport.SetContent(errorStyle.Render(msg.err.Error()))
		} else {
			m.err = nil
			m.status = fmt.Sprintf("Evaluation succeeded, %d row(s)", msg.result.Len())
			m.setResult(msg.result)
		}
	}

	// Let components update themselves.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View draws the entire interface.
func (m model) View() string {
	title := titleStyle.Render("RelAlgDb") + " " + subtle.Render("TUI client")
	addr := subtle.Render("Server: " + m.addr)
	hint := subtle.Render(symbolsHint)

	inputBox := boxStyle.Render(m.input.View())

	var resultBox string
	if m.showTable {
		resultBox = boxStyle.Render(m.results.View())
	} else {
		resultBox = boxStyle.Render(m.viewport.View())
	}

	resultsTitle := "Results:"
	if m.label != "" {
		resultsTitle += " " + labelStyle.Render(m.label)
	}

	status := m.status
	if m.loading {
		status += " (working...)"
	}
	statusLine := statusStyle.Render(status)
	if m.err != nil {
		statusLine += "  " + errorStyle.Render(m.err.Error())
	}

	helpView := m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		addr,
		hint,
		"",
		"Expression:",
		inputBox,
		"",
		resultsTitle,
		resultBox,
		"",
		statusLine,
		helpView,
	)
}

func main() {
	addr := flag.String("addr", "http://localhost:8080", "RelAlgDb server address")
	flag.Parse()

	*addr = helpers.NormalizeAddr(*addr)

	m := newModel(*addr)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running TUI:", err)
		os.Exit(1)
	}
}

// executeExpr performs the HTTP call to the server and decodes the relation
// from the response.
func executeExpr(addr, expr string) (relation.Relation, error) {
	reqBody, err := json.Marshal(execRequest{Expr: expr})
	if err != nil {
		return relation.Relation{}, fmt.Errorf("failed to encode request: %w", err)
	}

	url := strings.TrimRight(addr, "/") + "/exec"
	resp, err := http.Post(url, "application/json", bytes.NewReader(reqBody))
	if err != nil {
		return relation.Relation{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return relation.Relation{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// The server returns error text in the body; surface it.
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = resp.Status
		}
		return relation.Relation{}, fmt.Errorf("%s", msg)
	}

	var sr server.ExecResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return relation.Relation{}, fmt.Errorf("failed to decode response: %w", err)
	}

	return relation.Relation{Rows: sr.Rows, Label: sr.Label}, nil
}
