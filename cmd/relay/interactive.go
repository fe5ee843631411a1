package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/task-bridge/bridge"
	"github.com/wippyai/task-bridge/config"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const maxShown = 15

type interactiveModel struct {
	err     error
	relayer relayer
	log     *deliveryLog
	cfg     config.Config
	input   textinput.Model
}

type notifiedMsg struct {
	err error
}

func newInteractiveModel(cfg config.Config, r relayer, log *deliveryLog) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "0x1234 0"
	ti.Prompt = "token status> "
	ti.CharLimit = 64
	ti.Focus()

	return &interactiveModel{
		relayer: r,
		log:     log,
		cfg:     cfg,
		input:   ti,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			token, status, err := parsePair(m.input.Value())
			if err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.input.SetValue("")
			return m, m.notify(token, status)
		}

	case notifiedMsg:
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) notify(token bridge.Token, status bridge.Status) tea.Cmd {
	return func() tea.Msg {
		return notifiedMsg{err: m.relayer.Notify(context.Background(), token, status)}
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("task-bridge relay (%s)", m.cfg.Backend)))
	b.WriteString("\n\n")

	items := m.log.snapshot()
	if len(items) == 0 {
		b.WriteString(helpStyle.Render("  no completions relayed yet"))
		b.WriteString("\n")
	}
	if len(items) > maxShown {
		items = items[len(items)-maxShown:]
	}
	for _, d := range items {
		b.WriteString(d.at.Format("15:04:05.000"))
		b.WriteString(formatDelivery(d, true))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter: relay • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// parsePair reads "token status"; token accepts 0x/0o/0b prefixes and
// status must fit in int8.
func parsePair(s string) (bridge.Token, bridge.Status, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected \"token status\", got %q", s)
	}

	token, err := strconv.ParseUint(fields[0], 0, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("token: %w", err)
	}
	status, err := strconv.ParseInt(fields[1], 0, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("status: %w", err)
	}
	return bridge.Token(token), bridge.Status(status), nil
}

func runInteractive(cfg config.Config) error {
	ctx := context.Background()
	log := &deliveryLog{}

	r, err := newRelayer(ctx, cfg, log.record, nil)
	if err != nil {
		return fmt.Errorf("create %s relayer: %w", cfg.Backend, err)
	}
	defer r.Close(ctx)

	p := tea.NewProgram(newInteractiveModel(cfg, r, log))
	_, err = p.Run()
	return err
}
