package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/njs-api/njs-api/binding"
	"github.com/njs-api/njs-api/engine"
	"github.com/njs-api/njs-api/engine/memvm"
	"github.com/njs-api/njs-api/result"
	"github.com/njs-api/njs-api/types"
	"github.com/njs-api/njs-api/wrap"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectItem modelState = iota
	stateInputArgs
	stateShowResult
)

type interactiveModel struct {
	err      error
	ctx      *memvm.Context
	instance engine.Value
	ctor     engine.Value
	class    *binding.Class
	items    []binding.Item
	input    textinput.Model
	result   string
	selected int
	state    modelState
}

type loadedMsg struct {
	err      error
	ctx      *memvm.Context
	instance engine.Value
	ctor     engine.Value
}

type callResultMsg struct {
	err    error
	result string
}

func newInteractiveModel() *interactiveModel {
	c := gaugeClass()
	return &interactiveModel{
		class: c,
		items: c.Items(),
		state: stateSelectItem,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.load
}

// load stands up the in-memory engine, registers the demo class and
// constructs one instance to poke at.
func (m *interactiveModel) load() tea.Msg {
	ctx := memvm.NewContext(memvm.NewRuntime(nil))

	exports := ctx.NewObject()
	if _, code := binding.Register(ctx, exports, m.class, nil); code != result.Ok {
		return loadedMsg{err: fmt.Errorf("register class: %s", code)}
	}

	ctor, ok := ctx.Get(exports, ctx.NewString(m.class.Name()))
	if !ok {
		return loadedMsg{err: fmt.Errorf("constructor lookup failed")}
	}
	instance, ok := ctx.New(ctor)
	if !ok {
		return loadedMsg{err: fmt.Errorf("construct failed: %s", exceptionText(ctx))}
	}

	return loadedMsg{ctx: ctx, instance: instance, ctor: ctor}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputArgs {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectItem && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectItem && m.selected < len(m.items)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectItem:
				if m.needsInput() {
					m.prepareInput()
					m.state = stateInputArgs
				} else {
					return m, m.invoke
				}

			case stateInputArgs:
				return m, m.invoke

			case stateShowResult:
				m.state = stateSelectItem
				m.result = ""
				m.err = nil
			}

		case "esc":
			if m.state != stateSelectItem {
				m.state = stateSelectItem
				m.result = ""
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.ctx = msg.ctx
		m.instance = msg.instance
		m.ctor = msg.ctor

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) needsInput() bool {
	switch m.items[m.selected].Kind {
	case binding.KindGetter:
		return false
	default:
		return true
	}
}

func (m *interactiveModel) prepareInput() {
	item := m.items[m.selected]
	ti := textinput.New()
	ti.Prompt = item.Name + ": "
	ti.Placeholder = "arguments, comma-separated"
	if item.Kind == binding.KindSetter {
		ti.Placeholder = "value"
	}
	ti.Width = 40
	ti.Focus()
	m.input = ti
}

// invoke dispatches the selected item against the live instance the way a
// script would reach it: statics through the constructor object, methods by
// property lookup and call, accessors by property access.
func (m *interactiveModel) invoke() tea.Msg {
	if m.ctx == nil {
		return callResultMsg{err: fmt.Errorf("engine not loaded")}
	}

	ctx := m.ctx
	item := m.items[m.selected]
	name := ctx.NewString(item.Name)
	args := m.parseArgs()

	var (
		v  engine.Value
		ok bool
	)
	switch item.Kind {
	case binding.KindStatic:
		fn, found := ctx.Get(m.ctor, name)
		if !found {
			return callResultMsg{err: fmt.Errorf("%s", exceptionText(ctx))}
		}
		v, ok = ctx.Call(fn, ctx.Undefined(), args...)

	case binding.KindMethod:
		fn, found := ctx.Get(m.instance, name)
		if !found {
			return callResultMsg{err: fmt.Errorf("%s", exceptionText(ctx))}
		}
		v, ok = ctx.Call(fn, m.instance, args...)

	case binding.KindGetter:
		v, ok = ctx.Get(m.instance, name)

	case binding.KindSetter:
		if len(args) == 0 {
			return callResultMsg{err: fmt.Errorf("setter needs a value")}
		}
		if !ctx.Set(m.instance, name, args[0]) {
			return callResultMsg{err: fmt.Errorf("%s", exceptionText(ctx))}
		}
		return callResultMsg{result: "ok"}
	}

	if !ok {
		return callResultMsg{err: fmt.Errorf("%s", exceptionText(ctx))}
	}
	return callResultMsg{result: formatValue(ctx, v)}
}

// parseArgs converts comma-separated input into host values: integers,
// doubles, booleans, everything else as strings.
func (m *interactiveModel) parseArgs() []engine.Value {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}

	var args []engine.Value
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "true" || part == "false":
			args = append(args, m.ctx.NewBool(part == "true"))
		default:
			if n, err := strconv.ParseInt(part, 10, 64); err == nil {
				args = append(args, m.ctx.NewDouble(float64(n)))
			} else if f, err := strconv.ParseFloat(part, 64); err == nil {
				args = append(args, m.ctx.NewDouble(f))
			} else {
				args = append(args, m.ctx.NewString(strings.Trim(part, `"`)))
			}
		}
	}
	return args
}

func formatValue(ctx *memvm.Context, v engine.Value) string {
	switch v.Type() {
	case types.ValueString:
		return fmt.Sprintf("%q", v.String())
	case types.ValueInt32:
		return fmt.Sprintf("%d (Int32)", v.Int32())
	case types.ValueUint32:
		return fmt.Sprintf("%d (Uint32)", v.Uint32())
	case types.ValueDouble:
		return fmt.Sprintf("%g (Number)", v.Number())
	case types.ValueBool:
		return fmt.Sprintf("%v", v.Bool())
	case types.ValueArray:
		length, _ := ctx.Get(v, ctx.NewString("length"))
		var parts []string
		for i := uint32(0); i < length.Uint32(); i++ {
			el, _ := ctx.GetIndex(v, i)
			parts = append(parts, formatValue(ctx, el))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return v.Type().String()
	}
}

func exceptionText(ctx *memvm.Context) string {
	if !ctx.HasPendingException() {
		return "unknown failure"
	}
	exc := ctx.TakePendingException()
	name, _ := ctx.Get(exc, ctx.NewString("name"))
	msg, _ := ctx.Get(exc, ctx.NewString("message"))
	return name.String() + ": " + msg.String()
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.ctx == nil {
		return "Loading engine..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("njs-inspect"))
	b.WriteString(fmt.Sprintf(" %s · %d live pairing(s)\n\n", m.class.Name(), wrap.Live().Len()))

	switch m.state {
	case stateSelectItem:
		b.WriteString("Select a binding to exercise:\n\n")
		for i, item := range m.items {
			line := kindStyle.Render(fmt.Sprintf("%-6s", item.Kind.String())) + " " + itemStyle.Render(item.Name)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> ") + line)
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter invoke • q quit"))

	case stateInputArgs:
		item := m.items[m.selected]
		b.WriteString(fmt.Sprintf("Invoking %s\n\n", itemStyle.Render(item.Name)))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter invoke • esc back"))

	case stateShowResult:
		item := m.items[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", itemStyle.Render(item.Name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("%v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
