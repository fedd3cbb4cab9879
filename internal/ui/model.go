package ui

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/coderibbon/internal/command"
	"github.com/atomicstack/coderibbon/internal/content"
	"github.com/atomicstack/coderibbon/internal/keymap"
	"github.com/atomicstack/coderibbon/internal/logging/events"
	"github.com/atomicstack/coderibbon/internal/ribbon"
	"github.com/atomicstack/coderibbon/internal/state"
	"github.com/atomicstack/coderibbon/internal/theme"
)

type Mode int

const (
	ModeRibbon Mode = iota
	ModePalette
	ModeFinder
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	infoLifetime  = 5 * time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model. Nil collaborators are replaced with defaults.
type Options struct {
	Root       string
	Width      int
	Height     int
	ShowFooter bool
	Registry   *command.Registry
	Keymap     *keymap.Keymap
	Content    *content.Store
}

// Model implements the Bubble Tea model that renders and drives a ribbon.
type Model struct {
	ribbons     state.RibbonStore
	bus         *command.Bus
	keys        *keymap.Keymap
	docs        *content.Store
	root        string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	mode        Mode
	palette     *palette
	stripOffset int
	loading     int
	errMsg      string
	infoMsg     string
	infoExpire  time.Time

	// patchOffsets holds the first visible patch of each strip.
	patchOffsets map[*ribbon.Strip]int

	handlers map[reflect.Type]msgHandler
}

// NewModel builds a model around a fresh single-patch ribbon.
func NewModel(opts Options) *Model {
	registry := opts.Registry
	if registry == nil {
		registry = command.BuildRegistry()
	}
	keys := opts.Keymap
	if keys == nil {
		keys = keymap.Default()
	}
	docs := opts.Content
	if docs == nil {
		docs = content.NewStore(content.Options{})
	}
	root := opts.Root
	if root == "" {
		root = "."
	}
	ribbons := state.NewRibbonStore(ribbon.New(docs))
	m := &Model{
		ribbons:    ribbons,
		bus:        command.NewBus(registry, ribbons),
		keys:       keys,
		docs:       docs,
		root:       root,
		showFooter: opts.ShowFooter,
		mode:       ModeRibbon,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(filesLoadedMsg{}):    m.handleFilesLoadedMsg,
		reflect.TypeOf(contentLoadedMsg{}):  m.handleContentLoadedMsg,
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

// Ribbon returns the ribbon currently shown.
func (m *Model) Ribbon() *ribbon.Ribbon {
	return m.ribbons.Active()
}

// Mode reports which input mode is active.
func (m *Model) Mode() Mode {
	return m.mode
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(resize.Width, resize.Height)
	return nil
}

func (m *Model) viewSize() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoLifetime)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}
