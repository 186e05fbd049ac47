package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/typelog/internal/backend"
	"github.com/atomicstack/typelog/internal/theme"
	"github.com/atomicstack/typelog/internal/ui/command"
	uistate "github.com/atomicstack/typelog/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusTarget int

const (
	focusInput focusTarget = iota
	focusList
)

func (f focusTarget) String() string {
	if f == focusList {
		return "list"
	}
	return "input"
}

const (
	appTitle         = "typelog"
	inputPlaceholder = "start typing…"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// noticeExpiredMsg clears the notice it was scheduled for, unless a newer
// notice has replaced it.
type noticeExpiredMsg struct {
	seq int
}

// Model implements the Bubble Tea model for the typelog screen.
type Model struct {
	screen *Screen
	list   *uistate.List
	input  textinput.Model
	help   help.Model
	keys   KeyMap
	bus    *command.Bus
	feeder *backend.Feeder
	focus  focusTarget

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	noticeTTL time.Duration
	noticeMsg string
	noticeSeq int
	notices   int
	errMsg    string

	pending  []tea.Cmd
	handlers map[reflect.Type]msgHandler
}

// NewModel builds the screen. width and height fix the viewport when > 0;
// notice is the text shown on every change for noticeTTL. feeder may be nil.
func NewModel(width, height int, showFooter bool, notice string, noticeTTL time.Duration, feeder *backend.Feeder) *Model {
	m := &Model{
		list:       uistate.NewList(),
		help:       help.New(),
		keys:       DefaultKeyMap,
		bus:        command.New(),
		feeder:     feeder,
		focus:      focusInput,
		showFooter: showFooter,
		noticeTTL:  noticeTTL,
	}
	m.screen = NewScreen(m.bus, notice, m.showNotice)
	m.screen.Adapter().OnChanged(m.handleAdapterChanged)

	ti := textinput.New()
	ti.Placeholder = inputPlaceholder
	ti.Prompt = "» "
	ti.CharLimit = 0
	if styles.InputPrompt != nil {
		ti.PromptStyle = *styles.InputPrompt
	}
	if styles.InputText != nil {
		ti.TextStyle = *styles.InputText
	}
	if styles.InputPlaceholder != nil {
		ti.PlaceholderStyle = *styles.InputPlaceholder
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	ti.Focus()
	m.input = ti

	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.applyWidth()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.feeder != nil {
		cmds = append(cmds, waitForFeederEvent(m.feeder))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages. Deliveries queued on the bus
// during the update run before it returns, so a change and its notice and
// redraw land in the same frame.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	} else if cmd := m.updateInput(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.DrainMsg{}):  m.handleDrainMsg,
		reflect.TypeOf(noticeExpiredMsg{}):  m.handleNoticeExpiredMsg,
		reflect.TypeOf(feederEventMsg{}):    m.handleFeederEventMsg,
		reflect.TypeOf(feederDoneMsg{}):     m.handleFeederDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.bus.Drain()
	if len(m.pending) > 0 {
		cmds = append(cmds, m.pending...)
		m.pending = nil
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// handleDrainMsg exists so off-loop publishes wake the loop; finishUpdate
// does the draining.
func (m *Model) handleDrainMsg(tea.Msg) tea.Cmd {
	return nil
}

// AttachSender lets publishes made off the Bubble Tea goroutine wake the
// loop. Pass tea.Program.Send.
func (m *Model) AttachSender(send func(tea.Msg)) {
	m.bus.Attach(send)
}

// Screen exposes the screen controller.
func (m *Model) Screen() *Screen {
	return m.screen
}

// Teardown releases the screen's subscriptions. Safe to call more than once.
func (m *Model) Teardown() {
	m.screen.OnScreenTeardown()
	if m.feeder != nil {
		m.feeder.Stop()
	}
}

func (m *Model) quit() tea.Cmd {
	m.Teardown()
	return tea.Quit
}

func (m *Model) handleAdapterChanged(count int) {
	m.list.SetCount(count)
	m.syncViewport()
}
