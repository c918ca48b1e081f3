package testing

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
)

// DefaultFrameDuration is the clock advance between pumped frames.
const DefaultFrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: graph did not settle")

type tracked struct {
	name  string
	value func() string
}

// GraphTester drives an animation.Graph from a fake clock. It installs the
// clock as the animation package clock for the tester's lifetime, so
// Graph.Tick reads fake time.
type GraphTester struct {
	graph     *animation.Graph
	clock     *FakeClock
	prevClock animation.Clock
	frame     time.Duration
	tracked   []tracked
	frames    []Frame
}

// NewGraphTester creates a tester with an empty graph.
// Call Cleanup() when done, or use NewGraphTesterWithT() instead.
func NewGraphTester() *GraphTester {
	clk := NewFakeClock()
	t := &GraphTester{
		clock: clk,
		frame: DefaultFrameDuration,
	}
	t.prevClock = animation.SetClock(clk)
	t.graph = animation.NewGraph()
	return t
}

// NewGraphTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewGraphTesterWithT(t *testing.T) *GraphTester {
	tester := NewGraphTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the previous animation clock.
func (t *GraphTester) Cleanup() {
	animation.SetClock(t.prevClock)
}

// Graph returns the tester's graph.
func (t *GraphTester) Graph() *animation.Graph {
	return t.graph
}

// Clock returns the fake clock for advancing time in tests.
func (t *GraphTester) Clock() *FakeClock {
	return t.clock
}

// Now returns the frame time the next Pump will step at.
func (t *GraphTester) Now() time.Duration {
	return t.clock.Elapsed()
}

// SetFrameDuration sets the clock advance used by PumpFrames and
// PumpAndSettle.
func (t *GraphTester) SetFrameDuration(d time.Duration) {
	t.frame = d
}

// Add registers f in the tester's graph and fails loudly on wiring errors.
func (t *GraphTester) Add(f animation.Fastener) animation.FastenerID {
	id, err := t.graph.Add(f)
	if err != nil {
		panic(fmt.Sprintf("motiontest: add %s: %v", f.FastenerName(), err))
	}
	return id
}

// Pump steps the graph once at the current fake time and records a frame
// for every tracked animator.
func (t *GraphTester) Pump() {
	t.graph.Tick()
	if len(t.tracked) == 0 {
		return
	}
	frame := Frame{Time: t.Now().String(), Values: make(map[string]string, len(t.tracked))}
	for _, tr := range t.tracked {
		frame.Values[tr.name] = tr.value()
	}
	t.frames = append(t.frames, frame)
}

// PumpFrames pumps n frames, advancing the clock by the frame duration
// before each.
func (t *GraphTester) PumpFrames(n int) {
	for range n {
		t.clock.Advance(t.frame)
		t.Pump()
	}
}

// PumpAndSettle pumps frames until no fastener awaits recoherence or the
// timeout is reached. The first frame runs at the current time.
func (t *GraphTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !t.graph.Pending() {
			return nil
		}
		t.clock.Advance(t.frame)
		elapsed += t.frame
	}
	return ErrSettleTimeout
}

// Track records a's value in every pumped frame under a.Name.
func Track[T any](t *GraphTester, a *animation.Animator[T]) {
	t.tracked = append(t.tracked, tracked{
		name:  a.Name,
		value: func() string { return fmt.Sprint(a.Value()) },
	})
}
