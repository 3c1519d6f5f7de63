package gallery

import (
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Domain types
// ---------------------------------------------------------------------------

// Size holds the display dimensions of the gallery viewport. Width and Height
// are raw CSS length strings ("640px", "100%", "24rem") passed through to the
// presentation layer verbatim.
type Size struct {
	Width  string
	Height string
}

// Slide pairs an opaque content handle with its original position in the
// sequence. Index is assigned at construction and never renumbered; the
// caller owns the content, the gallery only references it.
type Slide struct {
	Content any
	Index   int
}

// WrapStrategy selects how the gallery corrects the index after navigating
// past either end of the slide list. The two strategies produce the same
// resting state but choreograph the correction differently.
type WrapStrategy int

const (
	// WrapOnTransitionEnd advances unconditionally, letting the index sit at
	// the sentinel values -1 or len(slides) until the host reports the
	// transition animation finished (TransitionEnd), at which point an
	// unanimated SetIndex snaps it back in range.
	WrapOnTransitionEnd WrapStrategy = iota

	// WrapOnAdvance pre-empts the correction at the moment Next/Previous is
	// triggered on an edge slide: a two-phase batch animates into the phantom
	// slot and then snaps to the real index once the animation has had time
	// to play out.
	WrapOnAdvance
)

// Config holds the immutable-after-construction gallery settings.
type Config struct {
	// RootClassName prefixes every class the presentation layer emits.
	RootClassName string
	// ID scopes the emitted stylesheet. It must be unique per instance on a
	// page; DefaultConfig derives one from a UUID.
	ID string
	// TransitionSpeed is the duration of an animated move.
	TransitionSpeed time.Duration
	// TransitionSpeedWhenAdvancing, when non-zero, overrides TransitionSpeed
	// for moves triggered by Next/Previous (including swipe releases).
	TransitionSpeedWhenAdvancing time.Duration
	// SwipeOffset is the minimum drag distance in pixels required for a
	// gesture release to trigger navigation.
	SwipeOffset int
	// EnableDrag controls whether the presentation layer attaches pointer
	// gesture bindings at all.
	EnableDrag bool
	// InitialSlide is the index the gallery starts on.
	InitialSlide int
	// Wrap selects the boundary-correction strategy.
	Wrap WrapStrategy
}

// DefaultConfig returns a Config with sensible defaults and a unique ID.
func DefaultConfig() Config {
	return Config{
		RootClassName:   "gallery",
		ID:              "gallery-" + uuid.NewString(),
		TransitionSpeed: 300 * time.Millisecond,
		SwipeOffset:     100,
		EnableDrag:      true,
		Wrap:            WrapOnTransitionEnd,
	}
}

// advanceSpeed is the transition speed applied to Next/Previous moves.
func (c Config) advanceSpeed() time.Duration {
	if c.TransitionSpeedWhenAdvancing > 0 {
		return c.TransitionSpeedWhenAdvancing
	}
	return c.TransitionSpeed
}

// DragState tracks an in-flight pointer gesture. The zero value means no
// gesture is active; StartX and CurrentX are only meaningful while Dragging.
type DragState struct {
	Dragging bool
	StartX   int
	CurrentX int
}

// Delta is the horizontal distance dragged so far, positive when the pointer
// moved left of its starting position (the "next" direction).
func (d DragState) Delta() int {
	if !d.Dragging {
		return 0
	}
	return d.StartX - d.CurrentX
}

// ---------------------------------------------------------------------------
// Gallery
// ---------------------------------------------------------------------------

// Gallery is the aggregate carousel state. It is an immutable value: every
// transition produces a new Gallery, the host owns the single current
// instance. During steady state CurrentIndex is within [0, len(slides));
// immediately after an edge navigation it may transiently equal -1 or
// len(slides), which is the trigger for wraparound correction.
type Gallery struct {
	size    Size
	cfg     Config
	current int
	drag    DragState
	slides  []Slide
	speed   time.Duration
}

// New constructs a Gallery from a viewport size, a config, and the ordered
// slide contents. Index assignment happens here and is immutable thereafter.
func New(size Size, cfg Config, contents []any) Gallery {
	slides := make([]Slide, len(contents))
	for i, c := range contents {
		slides[i] = Slide{Content: c, Index: i}
	}
	return Gallery{
		size:    size,
		cfg:     cfg,
		current: cfg.InitialSlide,
		slides:  slides,
		speed:   cfg.TransitionSpeed,
	}
}

// Size returns the configured viewport dimensions.
func (g Gallery) Size() Size { return g.size }

// Config returns the gallery configuration.
func (g Gallery) Config() Config { return g.cfg }

// CurrentIndex returns the logical position of the active slide. It may be
// -1 or Len() mid-wraparound; see Gallery.
func (g Gallery) CurrentIndex() int { return g.current }

// Drag returns the current gesture state.
func (g Gallery) Drag() DragState { return g.drag }

// Slides returns the slide sequence. The returned slice is a copy; the
// content handles are shared with the caller that supplied them.
func (g Gallery) Slides() []Slide {
	out := make([]Slide, len(g.slides))
	copy(out, g.slides)
	return out
}

// Len returns the number of slides.
func (g Gallery) Len() int { return len(g.slides) }

// TransitionSpeed returns the speed applied to the current animated move.
// It is transiently zero while an unanimated repositioning is in flight.
func (g Gallery) TransitionSpeed() time.Duration { return g.speed }

// ---------------------------------------------------------------------------
// Convenience wrappers
// ---------------------------------------------------------------------------

// Next advances one slide, wrapping past the last slide to the first.
func (g Gallery) Next() (Gallery, []Scheduled) { return Update(NextMsg{}, g) }

// Previous moves back one slide, wrapping past the first slide to the last.
func (g Gallery) Previous() (Gallery, []Scheduled) { return Update(PreviousMsg{}, g) }

// GoTo jumps to index with the currently active transition speed. The index
// is not validated; values outside [0, Len()) other than the wraparound
// sentinels -1 and Len() are a caller error and leave the gallery in an
// unspecified state.
func (g Gallery) GoTo(index int) (Gallery, []Scheduled) {
	return Update(GoToMsg{Index: index}, g)
}

// SetIndex jumps to index without a sliding animation. The jump is
// choreographed as a scheduled batch, so the new index is observable only
// after the host has delivered the pending effects. Index validation rules
// are the same as GoTo's.
func (g Gallery) SetIndex(index int) (Gallery, []Scheduled) {
	return Update(SetIndexMsg{Index: index}, g)
}
