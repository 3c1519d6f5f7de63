package gallery

// Update applies one message to the gallery and returns the new state plus
// any follow-up messages the host must deliver after their delays elapse.
// All recognized error conditions are absorbed here: stray drag messages,
// empty slide lists, and unrecognized states fall through as no-ops.
func Update(msg Msg, g Gallery) (Gallery, []Scheduled) {
	switch msg := msg.(type) {
	case DragStartMsg:
		g.drag = DragState{Dragging: true, StartX: msg.Pos, CurrentX: msg.Pos}
		return g, nil

	case DragAtMsg:
		if !g.drag.Dragging {
			return g, nil
		}
		g.drag.CurrentX = msg.Pos
		return g, nil

	case DragEndMsg:
		if !g.drag.Dragging {
			return g, nil
		}
		delta := g.drag.StartX - g.drag.CurrentX
		// The second branch is only reachable for a large negative delta.
		// The asymmetric phrasing is kept as observed; do not fold it into
		// delta < -swipeOffset.
		switch {
		case delta > g.cfg.SwipeOffset:
			return Update(NextMsg{}, g)
		case abs(delta) > g.cfg.SwipeOffset:
			return Update(PreviousMsg{}, g)
		default:
			g.drag = DragState{}
			return g, nil
		}

	case NextMsg:
		return advance(g, +1)

	case PreviousMsg:
		return advance(g, -1)

	case GoToMsg:
		g.current = msg.Index
		g.drag = DragState{}
		return g, nil

	case SetIndexMsg:
		return Update(BatchMsg{
			{Delay: frameInterval, Msg: SetTransitionSpeedMsg{Speed: 0}},
			{Delay: frameInterval, Msg: GoToMsg{Index: msg.Index}},
			{Delay: frameInterval, Msg: SetTransitionSpeedMsg{Speed: g.cfg.TransitionSpeed}},
		}, g)

	case SetTransitionSpeedMsg:
		g.speed = msg.Speed
		return g, nil

	case BatchMsg:
		if len(msg) == 0 {
			return g, nil
		}
		head, rest := msg[0], msg[1:]
		g, effects := Update(head.Msg, g)
		if len(rest) > 0 {
			effects = append(effects, Scheduled{Delay: head.Delay, Msg: BatchMsg(rest)})
		}
		return g, effects

	case TransitionEndMsg:
		if g.Len() == 0 {
			return g, nil
		}
		switch g.current {
		case g.Len():
			return Update(SetIndexMsg{Index: 0}, g)
		case -1:
			return Update(SetIndexMsg{Index: g.Len() - 1}, g)
		}
		return g, nil
	}
	return g, nil
}

// advance moves one slide in the given direction, clearing any in-flight
// gesture. Under WrapOnAdvance an edge move becomes a two-phase batch:
// animate into the phantom slot, then snap (unanimated) to the real index
// once the animation has played. Under WrapOnTransitionEnd the index is
// simply stepped, possibly onto a sentinel, and corrected later.
func advance(g Gallery, dir int) (Gallery, []Scheduled) {
	g.drag = DragState{}
	n := g.Len()
	if n == 0 {
		return g, nil
	}
	g.speed = g.cfg.advanceSpeed()
	if g.cfg.Wrap == WrapOnAdvance {
		switch {
		case dir > 0 && g.current >= n-1:
			return Update(BatchMsg{
				{Delay: g.speed, Msg: GoToMsg{Index: n}},
				{Delay: 0, Msg: SetIndexMsg{Index: 0}},
			}, g)
		case dir < 0 && g.current <= 0:
			return Update(BatchMsg{
				{Delay: g.speed, Msg: GoToMsg{Index: -1}},
				{Delay: 0, Msg: SetIndexMsg{Index: n - 1}},
			}, g)
		}
	}
	g.current += dir
	return g, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
