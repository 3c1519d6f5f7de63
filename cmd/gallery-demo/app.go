package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bellroy/infinite-gallery/gallery"
	gtea "github.com/bellroy/infinite-gallery/gallerytea"
	"github.com/bellroy/infinite-gallery/internal/config"
)

const appName = "Infinite Gallery"

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Previous key.Binding
	Next     key.Binding
	Jump     key.Binding
	Digits   key.Binding
	UpDown   key.Binding
	Enter    key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Previous: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Jump:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "jump to slide")),
		Digits:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to")),
		UpDown:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "navigate")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Jump, k.Digits, k.Quit}
}

func (k keyMap) pickerHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.Enter, k.Close, k.Quit}
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type appModel struct {
	cfg     config.Config
	gallery gtea.Model
	keys    keyMap
	picker  *slidePicker
	status  string
	width   int
	height  int
}

func newAppModel(cfg config.Config) appModel {
	gcfg := gallery.DefaultConfig()
	gcfg.TransitionSpeed = cfg.Gallery.TransitionSpeed()
	gcfg.TransitionSpeedWhenAdvancing = cfg.Gallery.AdvanceSpeed()
	gcfg.SwipeOffset = cfg.Gallery.SwipeOffset
	gcfg.EnableDrag = cfg.Gallery.EnableDrag
	gcfg.InitialSlide = cfg.Gallery.InitialSlide
	if cfg.Gallery.WrapStrategy == "advance" {
		gcfg.Wrap = gallery.WrapOnAdvance
	}

	contents := make([]any, len(cfg.Gallery.Slides))
	for i, title := range cfg.Gallery.Slides {
		contents[i] = title
	}
	size := gallery.Size{
		Width:  fmt.Sprintf("%dpx", cfg.UI.SlideWidth),
		Height: fmt.Sprintf("%dpx", cfg.UI.SlideHeight),
	}

	return appModel{
		cfg:     cfg,
		gallery: gtea.New(gallery.New(size, gcfg, contents), cfg.UI.SlideWidth, cfg.UI.SlideHeight),
		keys:    newKeyMap(),
		status:  "Drag with the mouse or use ←/→ to navigate.",
	}
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.picker != nil {
			return m.updatePicker(msg)
		}
		return m.updateMain(msg)
	}
	// Everything else (mouse events, gallery messages, scheduled ticks)
	// belongs to the widget.
	var cmd tea.Cmd
	m.gallery, cmd = m.gallery.Update(msg)
	return m, cmd
}

func (m appModel) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Previous):
		m.gallery, cmd = m.gallery.Update(gallery.PreviousMsg{})
		m.status = ""
		return m, cmd
	case key.Matches(msg, m.keys.Next):
		m.gallery, cmd = m.gallery.Update(gallery.NextMsg{})
		m.status = ""
		return m, cmd
	case key.Matches(msg, m.keys.Jump):
		m.picker = newSlidePicker(m.cfg.Gallery.Slides)
		return m, nil
	case key.Matches(msg, m.keys.Digits):
		idx := int(msg.Runes[0]-'0') - 1
		if idx >= m.gallery.Gallery().Len() {
			m.status = fmt.Sprintf("No slide %d.", idx+1)
			return m, nil
		}
		m.gallery, cmd = m.gallery.Update(gallery.GoToMsg{Index: idx})
		m.status = ""
		return m, cmd
	}
	return m, nil
}

func (m appModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		m.picker = nil
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		idx, ok := m.picker.selected()
		m.picker = nil
		if !ok {
			return m, nil
		}
		slog.Info("jump", "slide", idx)
		var cmd tea.Cmd
		m.gallery, cmd = m.gallery.Update(gallery.SetIndexMsg{Index: idx})
		m.status = fmt.Sprintf("Jumped to %q.", m.cfg.Gallery.Slides[idx])
		return m, cmd
	}
	m.picker.update(msg)
	return m, nil
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m appModel) View() string {
	header := titleStyle.Render(appName)
	body := m.gallery.View()
	if m.picker != nil {
		body = m.picker.view()
	}
	status := statusStyle.Render(m.status)
	footer := m.renderFooter()
	return header + "\n\n" + body + "\n" + status + "\n" + footer
}

func (m appModel) renderFooter() string {
	bindings := m.keys.ShortHelp()
	if m.picker != nil {
		bindings = m.keys.pickerHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, keyStyle.Render(b.Help().Key)+" "+b.Help().Desc)
	}
	line := strings.Join(parts, "  ")
	if m.width > 0 {
		return footerStyle.Render(lipgloss.PlaceHorizontal(m.width-footerStyle.GetHorizontalFrameSize(), lipgloss.Left, line))
	}
	return footerStyle.Render(line)
}
