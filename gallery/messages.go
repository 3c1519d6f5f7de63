package gallery

import "time"

// frameInterval separates the steps of an unanimated repositioning batch,
// one animation frame at 30fps.
const frameInterval = time.Second / 30

// Msg is the closed set of messages the gallery reacts to. Hosts construct
// the navigation and gesture variants; the batch and correction variants are
// mostly produced internally by Update itself.
type Msg interface{ isMsg() }

// DragStartMsg begins tracking a gesture at pointer position Pos.
type DragStartMsg struct{ Pos int }

// DragAtMsg updates the tracked pointer position. Ignored unless a gesture
// is active.
type DragAtMsg struct{ Pos int }

// DragEndMsg finalizes the gesture: past the swipe offset it navigates,
// otherwise the strip snaps back.
type DragEndMsg struct{}

// NextMsg advances one slide.
type NextMsg struct{}

// PreviousMsg moves back one slide.
type PreviousMsg struct{}

// GoToMsg jumps to Index, animated at the active transition speed.
type GoToMsg struct{ Index int }

// SetIndexMsg jumps to Index without animation, via a scheduled batch that
// zeroes the transition speed, moves, and restores the configured speed.
type SetIndexMsg struct{ Index int }

// SetTransitionSpeedMsg replaces the active transition speed.
type SetTransitionSpeedMsg struct{ Speed time.Duration }

// BatchMsg is an ordered sequence of delayed messages: the first entry's
// message is processed immediately and the remainder is rescheduled as a new
// batch after that entry's delay. An empty batch is the identity.
type BatchMsg []Scheduled

// TransitionEndMsg reports that the host's transition animation finished.
// Under WrapOnTransitionEnd this is where an out-of-range index snaps back:
// len(slides) corrects to 0 and -1 corrects to the last index. In range it
// is a no-op.
type TransitionEndMsg struct{}

func (DragStartMsg) isMsg()          {}
func (DragAtMsg) isMsg()             {}
func (DragEndMsg) isMsg()            {}
func (NextMsg) isMsg()               {}
func (PreviousMsg) isMsg()           {}
func (GoToMsg) isMsg()               {}
func (SetIndexMsg) isMsg()           {}
func (SetTransitionSpeedMsg) isMsg() {}
func (BatchMsg) isMsg()              {}
func (TransitionEndMsg) isMsg()      {}

// Scheduled pairs a message with the delay after which the host must feed it
// back into Update. Scheduled effects are opaque to the caller beyond that
// contract; once produced they always eventually fire, there is no
// cancellation.
type Scheduled struct {
	Delay time.Duration
	Msg   Msg
}
