package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/simon/hs/internal/backend"
	"github.com/simon/hs/internal/history"
)

// mode is the state of the menu loop. Selection, name entry, and the two
// kill prompts all share the same text input and the same submit/cancel
// keystrokes; only the interpretation of the submitted buffer differs.
type mode int

const (
	modeSelect mode = iota
	modeNewName
	modeLongNameConfirm
	modeKillIndex
	modeKillConfirm
)

type sessionsMsg struct {
	sessions []backend.Session
	err      error
}

type killDoneMsg struct {
	name string
	err  error
}

type Model struct {
	backend backend.Backend
	store   *history.Store // nil when the history db is unavailable

	mode     mode
	sessions []backend.Session
	input    textinput.Model
	hint     bool   // extended prompt after an empty selection
	status   string // one-shot line shown above the prompt
	err      error
	loaded   bool

	pendingName string // name awaiting long-name confirmation
	killTarget  string
	emptyStart  bool // name entry was entered because no sessions exist

	// Set before quitting; the caller performs the terminal-taking
	// operation after the program returns.
	AttachTarget string
	CreateTarget string
	Notice       string

	quitting bool
}

func NewModel(b backend.Backend, store *history.Store) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()

	return Model{
		backend: b,
		store:   store,
		input:   ti,
	}
}

func (m Model) Init() tea.Cmd {
	return m.refresh
}

// refresh re-enumerates sessions and their metadata. Called on every return
// to the selection state so the table is never stale.
func (m Model) refresh() tea.Msg {
	sessions, err := backend.Snapshot(m.backend)
	return sessionsMsg{sessions: sessions, err: err}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsMsg:
		m.sessions = msg.sessions
		m.err = msg.err
		m.loaded = true
		if m.mode == modeSelect && msg.err == nil && len(m.sessions) == 0 {
			// nothing to list: go straight to name entry
			m.mode = modeNewName
			m.emptyStart = true
			m.input.Reset()
		}
		return m, nil

	case killDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("failed to kill %q: %v", msg.name, msg.err)
		} else {
			m.status = fmt.Sprintf("killed session %q", msg.name)
		}
		return m, m.refresh

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Escape), key.Matches(msg, keys.CtrlC):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Enter):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit interprets the buffer according to the current state.
func (m Model) submit() (tea.Model, tea.Cmd) {
	buf := m.input.Value()
	m.input.Reset()

	switch m.mode {
	case modeSelect:
		return m.submitSelection(strings.TrimSpace(buf))
	case modeNewName:
		return m.submitName(buf)
	case modeLongNameConfirm:
		return m.submitLongNameConfirm(strings.TrimSpace(buf))
	case modeKillIndex:
		return m.submitKillIndex(strings.TrimSpace(buf))
	case modeKillConfirm:
		// the raw buffer: only the literal answer "y" may kill
		return m.submitKillConfirm(buf)
	}
	return m, nil
}

func (m Model) submitSelection(buf string) (tea.Model, tea.Cmd) {
	m.status = ""

	switch buf {
	case "":
		// re-prompt with the extended hint; same parse rules apply next time
		m.hint = true
		return m, nil
	case "n":
		m.mode = modeNewName
		return m, nil
	case "k":
		m.mode = modeKillIndex
		return m, nil
	case "q", "exit":
		m.quitting = true
		return m, tea.Quit
	}

	if idx, err := strconv.Atoi(buf); err == nil && idx >= 1 && idx <= len(m.sessions) {
		m.AttachTarget = m.sessions[idx-1].Name
		m.quitting = true
		return m, tea.Quit
	}

	// anything else is silently ignored; re-display the table
	return m, m.refresh
}

func (m Model) submitName(name string) (tea.Model, tea.Cmd) {
	if name == "" {
		// cancelled
		m.quitting = true
		return m, tea.Quit
	}

	if err := m.backend.ValidateName(name); err != nil {
		if m.emptyStart {
			m.Notice = err.Error()
			m.quitting = true
			return m, tea.Quit
		}
		m.status = err.Error()
		m.mode = modeSelect
		return m, m.refresh
	}

	if utf8.RuneCountInString(name) > backend.MaxNameDisplay {
		m.pendingName = name
		m.mode = modeLongNameConfirm
		return m, nil
	}

	m.CreateTarget = name
	m.quitting = true
	return m, tea.Quit
}

func (m Model) submitLongNameConfirm(buf string) (tea.Model, tea.Cmd) {
	name := m.pendingName
	m.pendingName = ""

	if buf == "y" {
		m.CreateTarget = name
		m.quitting = true
		return m, tea.Quit
	}

	// declined: nothing is created
	if m.emptyStart {
		m.quitting = true
		return m, tea.Quit
	}
	m.mode = modeSelect
	return m, m.refresh
}

func (m Model) submitKillIndex(buf string) (tea.Model, tea.Cmd) {
	idx, err := strconv.Atoi(buf)
	if err != nil || idx < 1 || idx > len(m.sessions) {
		// out of range aborts the kill silently
		m.mode = modeSelect
		return m, m.refresh
	}
	m.killTarget = m.sessions[idx-1].Name
	m.mode = modeKillConfirm
	return m, nil
}

func (m Model) submitKillConfirm(buf string) (tea.Model, tea.Cmd) {
	name := m.killTarget
	m.killTarget = ""
	m.mode = modeSelect

	// only the exact affirmative proceeds
	if buf != "y" {
		return m, m.refresh
	}
	return m, m.kill(name)
}

func (m Model) kill(name string) tea.Cmd {
	b := m.backend
	store := m.store
	return func() tea.Msg {
		err := b.KillSession(name)
		if err == nil && store != nil {
			_ = store.Record(name, string(b.Kind()), history.ActionKill)
		}
		return killDoneMsg{name: name, err: err}
	}
}
