package animation

import (
	"slices"
	"time"

	"github.com/go-drift/motion/pkg/errors"
)

// FastenerID identifies a fastener within a [Graph]. IDs carry a generation
// so an ID kept after its fastener was removed never resolves to a newer
// fastener that reused the slot. The zero ID is invalid.
type FastenerID struct {
	index uint32
	gen   uint32
}

// IsZero reports whether id is the invalid zero ID.
func (id FastenerID) IsZero() bool { return id.gen == 0 }

// Fastener is a property slot that can join a Graph. Every animator type in
// this module implements it; the interface is sealed.
type Fastener interface {
	// FastenerName returns the slot name used in logs and signals.
	FastenerName() string
	// Recohere resolves the fastener for frame time t if it is decoherent.
	Recohere(t time.Duration)

	bind(g *Graph, id FastenerID)
	detached()
	decohere()
	isDecoherent() bool
}

type slot struct {
	gen    uint32
	node   Fastener
	super  FastenerID
	subs   []FastenerID
	queued bool
}

// Graph is an arena of fasteners with their inheritance links, plus the
// queue of fasteners that need recoherence on the next frame.
//
// Links are stored as IDs, never as pointers between animators, so
// detaching or removing a fastener only invalidates indices.
//
// The frame driver calls [Graph.Step] once per frame with a non-decreasing
// time, or [Graph.Tick] to read the time from the package [Clock]. Graph is
// not safe for concurrent use.
type Graph struct {
	slots []slot
	free  []uint32
	queue []FastenerID
	epoch time.Time
	now   time.Duration
}

// NewGraph returns an empty graph whose Tick clock starts now.
func NewGraph() *Graph {
	return &Graph{epoch: Now()}
}

// Add registers f and returns its ID. Adding a fastener twice returns the
// existing ID; adding a fastener owned by another graph fails with
// errors.ErrGraphMismatch.
func (g *Graph) Add(f Fastener) (FastenerID, error) {
	if owner, ok := f.(interface {
		Graph() *Graph
		ID() FastenerID
	}); ok {
		switch owner.Graph() {
		case nil:
		case g:
			return owner.ID(), nil
		default:
			return FastenerID{}, errors.ErrGraphMismatch
		}
	}

	var index uint32
	if n := len(g.free); n > 0 {
		index = g.free[n-1]
		g.free = g.free[:n-1]
	} else {
		g.slots = append(g.slots, slot{})
		index = uint32(len(g.slots) - 1)
	}
	s := &g.slots[index]
	s.gen++
	s.node = f
	id := FastenerID{index: index, gen: s.gen}
	f.bind(g, id)
	return id, nil
}

// Remove unregisters the fastener with id. Its super link and every sub
// link are torn down together; the fastener and its subs relinquish
// inheritance.
func (g *Graph) Remove(id FastenerID) {
	s := g.slot(id)
	if s == nil {
		return
	}
	node := s.node
	linked := g.unlink(id)
	subs := s.subs
	s.subs = nil
	s.node = nil
	s.queued = false
	s.gen++
	g.free = append(g.free, id.index)
	node.bind(nil, FastenerID{})
	if linked {
		node.detached()
	}
	for _, sub := range subs {
		if ss := g.slot(sub); ss != nil {
			ss.super = FastenerID{}
			ss.node.detached()
		}
	}
}

// Contains reports whether id refers to a live fastener.
func (g *Graph) Contains(id FastenerID) bool {
	return g.slot(id) != nil
}

// Len returns the number of live fasteners.
func (g *Graph) Len() int {
	return len(g.slots) - len(g.free)
}

// Fastener returns the live fastener with id, or nil.
func (g *Graph) Fastener(id FastenerID) Fastener {
	if s := g.slot(id); s != nil {
		return s.node
	}
	return nil
}

// Depth returns the number of super links above id.
func (g *Graph) Depth(id FastenerID) int {
	depth := 0
	for s := g.slot(id); s != nil && !s.super.IsZero(); s = g.slot(s.super) {
		depth++
	}
	return depth
}

func (g *Graph) slot(id FastenerID) *slot {
	if g == nil || id.IsZero() || int(id.index) >= len(g.slots) {
		return nil
	}
	s := &g.slots[id.index]
	if s.gen != id.gen || s.node == nil {
		return nil
	}
	return s
}

// link makes parent the super fastener of child.
func (g *Graph) link(child, parent FastenerID) error {
	cs, ps := g.slot(child), g.slot(parent)
	if cs == nil || ps == nil {
		return errors.ErrNotRegistered
	}
	for id := parent; !id.IsZero(); id = g.slot(id).super {
		if id == child {
			return errors.ErrCycle
		}
	}
	if cs.super == parent {
		return nil
	}
	g.unlink(child)
	cs.super = parent
	ps.subs = append(ps.subs, child)
	return nil
}

// unlink removes child from its super fastener and reports whether a link
// existed.
func (g *Graph) unlink(child FastenerID) bool {
	cs := g.slot(child)
	if cs == nil || cs.super.IsZero() {
		return false
	}
	if ps := g.slot(cs.super); ps != nil {
		ps.subs = slices.DeleteFunc(ps.subs, func(id FastenerID) bool { return id == child })
	}
	cs.super = FastenerID{}
	return true
}

func (g *Graph) superOf(id FastenerID) Fastener {
	if s := g.slot(id); s != nil {
		return g.Fastener(s.super)
	}
	return nil
}

func (g *Graph) subsOf(id FastenerID) []Fastener {
	s := g.slot(id)
	if s == nil || len(s.subs) == 0 {
		return nil
	}
	subs := make([]Fastener, 0, len(s.subs))
	for _, sub := range s.subs {
		if f := g.Fastener(sub); f != nil {
			subs = append(subs, f)
		}
	}
	return subs
}

// schedule queues id for recoherence on the next Step.
func (g *Graph) schedule(id FastenerID) {
	s := g.slot(id)
	if s == nil || s.queued {
		return
	}
	s.queued = true
	g.queue = append(g.queue, id)
}

// Pending reports whether any queued fastener still awaits recoherence.
func (g *Graph) Pending() bool {
	for _, id := range g.queue {
		if f := g.Fastener(id); f != nil && f.isDecoherent() {
			return true
		}
	}
	return false
}

// Time returns the frame time of the last Step.
func (g *Graph) Time() time.Duration {
	return g.now
}

// Step recoheres every queued fastener at frame time t, super fasteners
// before their subs. Work is proportional to the number of fasteners that
// changed, not to the size of the graph. Fasteners still tweening afterward
// are queued for the next Step.
func (g *Graph) Step(t time.Duration) {
	g.now = t
	if len(g.queue) == 0 {
		return
	}
	batch := g.queue
	g.queue = nil

	type entry struct {
		id    FastenerID
		depth int
	}
	entries := make([]entry, 0, len(batch))
	for _, id := range batch {
		if s := g.slot(id); s != nil {
			s.queued = false
			entries = append(entries, entry{id: id, depth: g.Depth(id)})
		}
	}
	slices.SortStableFunc(entries, func(a, b entry) int { return a.depth - b.depth })

	for _, e := range entries {
		if f := g.Fastener(e.id); f != nil {
			f.Recohere(t)
		}
	}
}

// Tick steps the graph at the package clock's time since the graph was
// created.
func (g *Graph) Tick() {
	g.Step(Now().Sub(g.epoch))
}
