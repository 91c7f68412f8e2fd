package main

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/sides/bridge"
	"github.com/wippyai/sides/entry"
	"github.com/wippyai/sides/reference"
	"github.com/wippyai/sides/runtime"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// syncBuffer is written by the entry point while a run is in flight.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type action struct {
	name    string
	imp     *runtime.Import
	summary string
}

type modelState int

const (
	stateSelect modelState = iota
	stateNumber
	stateRunning
)

type interactiveModel struct {
	err      error
	out      *syncBuffer
	tracer   *tracer
	opts     runOptions
	actions  []action
	input    textinput.Model
	spin     spinner.Model
	log      viewport.Model
	thing    bridge.Handle
	selected int
	state    modelState
}

type runDoneMsg struct {
	err error
}

func newInteractiveModel(opts runOptions) (*interactiveModel, error) {
	imports, err := runtime.ThingImports()
	if err != nil {
		return nil, err
	}

	m := &interactiveModel{
		out:    &syncBuffer{},
		tracer: newTracer(),
		opts:   opts,
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		log:    viewport.New(72, 12),
		input:  textinput.New(),
	}
	m.opts.entry.Stdout = m.out
	m.opts.entry.Stderr = m.out
	m.input.Prompt = "number: "
	m.input.Placeholder = "i32"
	m.input.Width = 20

	m.actions = append(m.actions, action{name: "new", summary: "wrap a new reference Thing"})
	for i := range imports {
		m.actions = append(m.actions, action{name: imports[i].Name, imp: &imports[i]})
	}
	m.actions = append(m.actions, action{name: "main", summary: "hand the Thing to the script"})

	bridge.Subscribe(m.tracer)
	m.wrap(opts.number)
	return m, nil
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m *interactiveModel) wrap(n int32) {
	if m.thing != 0 {
		bridge.FromHandle(m.thing).Drop()
	}
	m.thing = bridge.Wrap(reference.New(
		reference.WithNumber(n),
		reference.WithDiagnostics(m.out),
	))
	fmt.Fprintf(m.out, "wrapped Thing %#x\n", uintptr(m.thing))
}

// close destroys the Thing still held, if any.
func (m *interactiveModel) close() {
	if m.thing != 0 {
		bridge.FromHandle(m.thing).Drop()
		m.thing = 0
	}
	bridge.Unsubscribe(m.tracer)
}

func (m *interactiveModel) call() tea.Cmd {
	m.err = nil
	switch a := m.actions[m.selected]; a.name {
	case "new":
		m.state = stateNumber
		m.input.SetValue(strconv.Itoa(int(m.opts.number)))
		m.input.Focus()
		return textinput.Blink
	case "main":
		if m.thing == 0 {
			m.err = fmt.Errorf("no Thing, press enter on new first")
			return nil
		}
		thing := bridge.Own(m.thing)
		m.thing = 0
		m.state = stateRunning
		e := entry.New(m.opts.entry)
		return func() tea.Msg {
			return runDoneMsg{err: e.Main(context.Background(), thing)}
		}
	case "number":
		if m.thing == 0 {
			m.err = fmt.Errorf("no Thing")
			return nil
		}
		fmt.Fprintf(m.out, "number() = %d\n", bridge.FromHandle(m.thing).Number())
	case "destroy":
		if m.thing == 0 {
			m.err = fmt.Errorf("no Thing")
			return nil
		}
		bridge.FromHandle(m.thing).Drop()
		m.thing = 0
	}
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateRunning {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateNumber && msg.String() == "q" {
				break
			}
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelect && m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down", "j":
			if m.state == stateSelect && m.selected < len(m.actions)-1 {
				m.selected++
			}
			return m, nil

		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.log, cmd = m.log.Update(msg)
			return m, cmd

		case "esc":
			m.state = stateSelect
			m.input.Blur()
			return m, nil

		case "enter":
			switch m.state {
			case stateSelect:
				cmd := m.call()
				m.refresh()
				return m, cmd
			case stateNumber:
				n, err := strconv.ParseInt(m.input.Value(), 10, 32)
				if err != nil {
					m.err = err
					return m, nil
				}
				m.wrap(int32(n))
				m.input.Blur()
				m.state = stateSelect
				m.refresh()
				return m, nil
			}
		}

	case runDoneMsg:
		m.err = msg.err
		m.state = stateSelect
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	if m.state == stateNumber {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) refresh() {
	m.log.SetContent(m.out.String() + "\n" + renderTrace(m.tracer.Events(), false))
	m.log.GotoBottom()
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("sides"))
	if m.thing != 0 {
		fmt.Fprintf(&b, " Thing %#x", uintptr(m.thing))
	} else {
		b.WriteString(" no Thing")
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateSelect:
		for i, a := range m.actions {
			line := m.formatAction(a)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	case stateNumber:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case stateRunning:
		b.WriteString(m.spin.View())
		b.WriteString(" running script\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.log.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("↑/↓ select • enter call • pgup/pgdown scroll • esc back • q quit"))
	return b.String()
}

func (m *interactiveModel) formatAction(a action) string {
	if a.imp == nil {
		return funcStyle.Render(a.name) + "  " + helpStyle.Render(a.summary)
	}
	var params, results []string
	for _, p := range a.imp.Params[1:] {
		params = append(params, typeStyle.Render(api.ValueTypeName(p)))
	}
	for _, r := range a.imp.Results {
		results = append(results, typeStyle.Render(api.ValueTypeName(r)))
	}
	s := funcStyle.Render(a.name) + "(" + strings.Join(params, ", ") + ")"
	if len(results) > 0 {
		s += " -> " + strings.Join(results, ", ")
	}
	return s
}

func runInteractive(opts runOptions) error {
	m, err := newInteractiveModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	m.close()
	return err
}
