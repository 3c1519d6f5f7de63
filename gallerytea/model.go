package gallerytea

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bellroy/infinite-gallery/gallery"
)

// Model embeds a gallery in a Bubble Tea program. Mouse press/motion/release
// drive the drag protocol with the pointer's column as the pixel position,
// and the gallery's scheduled follow-ups are delivered back through Update
// as tick commands. Each delay runs on its own timer feeding the one event
// loop, so a user gesture interleaves with pending animation steps in
// wall-clock order.
//
// Terminals have no transition animation to report on, so the model
// synthesizes the transition-end signal after the active transition speed
// whenever a message moves the index. In-range indices make that a no-op.
type Model struct {
	Styles Styles

	gallery     gallery.Gallery
	slideWidth  int
	slideHeight int
}

// New wraps a gallery for terminal hosting. slideWidth and slideHeight are
// the cell dimensions of one slide slot, borders included.
func New(g gallery.Gallery, slideWidth, slideHeight int) Model {
	return Model{
		Styles:      DefaultStyles(),
		gallery:     g,
		slideWidth:  slideWidth,
		slideHeight: slideHeight,
	}
}

// Gallery returns the wrapped gallery state.
func (m Model) Gallery() gallery.Gallery { return m.gallery }

// CurrentIndex returns the wrapped gallery's slide index.
func (m Model) CurrentIndex() int { return m.gallery.CurrentIndex() }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model. It accepts gallery.Msg values directly, so an
// embedding application navigates by returning e.g. gallery.NextMsg{} as a
// command message.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if !m.gallery.Config().EnableDrag {
			return m, nil
		}
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				return m.dispatch(gallery.DragStartMsg{Pos: msg.X})
			}
		case tea.MouseActionMotion:
			return m.dispatch(gallery.DragAtMsg{Pos: msg.X})
		case tea.MouseActionRelease:
			return m.dispatch(gallery.DragEndMsg{})
		}
		return m, nil
	case gallery.Msg:
		return m.dispatch(msg)
	}
	return m, nil
}

func (m Model) dispatch(msg gallery.Msg) (Model, tea.Cmd) {
	before := m.gallery.CurrentIndex()
	g, effects := gallery.Update(msg, m.gallery)
	m.gallery = g

	var cmds []tea.Cmd
	for _, e := range effects {
		cmds = append(cmds, deliver(e.Delay, e.Msg))
	}
	if g.CurrentIndex() != before && g.Config().Wrap == gallery.WrapOnTransitionEnd {
		if _, isEnd := msg.(gallery.TransitionEndMsg); !isEnd {
			cmds = append(cmds, deliver(g.TransitionSpeed(), gallery.TransitionEndMsg{}))
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func deliver(delay time.Duration, msg gallery.Msg) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg { return msg })
}

// View renders the visible window of the slide strip plus a position
// indicator line. The strip carries a clone of the last slide before slot 0
// and a clone of the first slide after the last slot, so boundary moves
// always slide onto adjacent content before the index snaps back in range.
func (m Model) View() string {
	slides := m.gallery.Slides()
	n := len(slides)
	if n == 0 {
		return ""
	}
	current := m.gallery.CurrentIndex()

	boxes := make([]string, 0, n+2)
	boxes = append(boxes, m.renderSlot(slides[n-1], current == -1))
	for _, s := range slides {
		boxes = append(boxes, m.renderSlot(s, s.Index == current))
	}
	boxes = append(boxes, m.renderSlot(slides[0], current == n))
	strip := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)

	// Window origin: one slot per logical step, shifted one slot for the
	// leading clone, plus the live cell adjustment while dragging.
	offset := (current+1)*m.slideWidth + m.gallery.Drag().Delta()
	maxOffset := (n+1)*m.slideWidth
	if offset < 0 {
		offset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}

	lines := strings.Split(strip, "\n")
	for i, line := range lines {
		line = ansi.TruncateLeft(line, offset, "")
		lines[i] = ansi.Truncate(line, m.slideWidth, "")
	}
	return strings.Join(lines, "\n") + "\n" + m.renderDots()
}

func (m Model) renderSlot(s gallery.Slide, active bool) string {
	style := m.Styles.Slide
	if active {
		style = m.Styles.ActiveSlide
	}
	w := m.slideWidth - style.GetHorizontalFrameSize()
	h := m.slideHeight - style.GetVerticalFrameSize()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	content := lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, fmt.Sprint(s.Content))
	return style.Render(content)
}

// renderDots draws one dot per real slide; the sentinel indices light the
// slide their phantom stands in for.
func (m Model) renderDots() string {
	n := m.gallery.Len()
	current := m.gallery.CurrentIndex()
	switch current {
	case n:
		current = 0
	case -1:
		current = n - 1
	}
	dots := make([]string, n)
	for i := range dots {
		if i == current {
			dots[i] = m.Styles.ActiveDot.Render("●")
		} else {
			dots[i] = m.Styles.InactiveDot.Render("○")
		}
	}
	line := strings.Join(dots, " ")
	return lipgloss.PlaceHorizontal(m.slideWidth, lipgloss.Center, line)
}
