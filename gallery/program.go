package gallery

import (
	"sort"
	"sync"
	"time"
)

// Flush synchronously drains a set of scheduled effects, applying each
// message (and any follow-ups it produces) in wall-clock fire order without
// actually waiting. It returns the settled gallery. Hosts use it when they
// need the resting state immediately, tests use it to assert post-animation
// properties.
func Flush(g Gallery, effects []Scheduled) Gallery {
	type pending struct {
		at  time.Duration
		seq int
		msg Msg
	}
	var queue []pending
	seq := 0
	enqueue := func(now time.Duration, effs []Scheduled) {
		for _, e := range effs {
			queue = append(queue, pending{at: now + e.Delay, seq: seq, msg: e.Msg})
			seq++
		}
	}
	enqueue(0, effects)
	for len(queue) > 0 {
		sort.SliceStable(queue, func(i, j int) bool {
			if queue[i].at != queue[j].at {
				return queue[i].at < queue[j].at
			}
			return queue[i].seq < queue[j].seq
		})
		head := queue[0]
		queue = queue[1:]
		var effs []Scheduled
		g, effs = Update(head.msg, g)
		enqueue(head.at, effs)
	}
	return g
}

// Program owns the single current Gallery on behalf of a host that has no
// event loop of its own. Every dispatch runs through one entry point; delayed
// effects fire from independent timers back into that same entry point, so a
// later user gesture interleaves with pending animation steps in wall-clock
// order, exactly as a browser event queue would. There is no cancellation:
// once scheduled, a delayed message always eventually fires against whatever
// the state is by then.
//
// Because a headless host has no CSS transition to report completion,
// Program synthesizes TransitionEndMsg after the active transition speed
// whenever a dispatch moves the index. In-range indices make that a no-op.
type Program struct {
	mu      sync.Mutex
	settled *sync.Cond
	g       Gallery
	pending int
}

// NewProgram wraps a gallery for timer-driven hosting.
func NewProgram(g Gallery) *Program {
	p := &Program{g: g}
	p.settled = sync.NewCond(&p.mu)
	return p
}

// Gallery returns the current state.
func (p *Program) Gallery() Gallery {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.g
}

// CurrentIndex returns the current state's slide index.
func (p *Program) CurrentIndex() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.g.CurrentIndex()
}

// Dispatch applies one message and schedules its follow-ups.
func (p *Program) Dispatch(msg Msg) {
	p.mu.Lock()
	before := p.g.CurrentIndex()
	g, effects := Update(msg, p.g)
	p.g = g
	if g.CurrentIndex() != before && g.cfg.Wrap == WrapOnTransitionEnd {
		if _, isEnd := msg.(TransitionEndMsg); !isEnd {
			effects = append(effects, Scheduled{Delay: g.speed, Msg: TransitionEndMsg{}})
		}
	}
	p.pending += len(effects)
	p.mu.Unlock()

	for _, e := range effects {
		e := e
		time.AfterFunc(e.Delay, func() {
			p.Dispatch(e.Msg)
			p.mu.Lock()
			p.pending--
			if p.pending == 0 {
				p.settled.Broadcast()
			}
			p.mu.Unlock()
		})
	}
}

// Settle blocks until no scheduled messages remain in flight.
func (p *Program) Settle() {
	p.mu.Lock()
	for p.pending > 0 {
		p.settled.Wait()
	}
	p.mu.Unlock()
}
