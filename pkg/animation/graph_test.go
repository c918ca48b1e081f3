package animation

import (
	"testing"

	"github.com/go-drift/motion/pkg/errors"
)

func newFamily(t *testing.T) (*Graph, *Animator[float64], *Animator[float64]) {
	t.Helper()
	g := NewGraph()
	parent := NewAnimator("parent", Float64, 1.0)
	child := NewAnimator("child", Float64, 0.0)
	if _, err := g.Add(parent); err != nil {
		t.Fatalf("add parent: %v", err)
	}
	if err := child.Attach(parent); err != nil {
		t.Fatalf("attach: %v", err)
	}
	return g, parent, child
}

func TestGraph_AddRemoveGenerations(t *testing.T) {
	g := NewGraph()
	a := NewAnimator("a", Float64, 0.0)
	id, err := g.Add(a)
	if err != nil {
		t.Fatal(err)
	}
	if again, _ := g.Add(a); again != id {
		t.Errorf("expected re-adding to return the same ID")
	}
	if g.Len() != 1 || !g.Contains(id) || a.Graph() != g || a.ID() != id {
		t.Fatal("expected a registered")
	}

	g.Remove(id)
	if g.Contains(id) || a.Graph() != nil || g.Len() != 0 {
		t.Error("expected a unregistered")
	}

	b := NewAnimator("b", Float64, 0.0)
	idB, _ := g.Add(b)
	if idB == id {
		t.Error("expected a reused slot to get a new generation")
	}
	if g.Fastener(id) != nil {
		t.Error("expected the stale ID not to resolve")
	}
}

func TestGraph_AddToSecondGraphFails(t *testing.T) {
	a := NewAnimator("a", Float64, 0.0)
	NewGraph().Add(a)
	if _, err := NewGraph().Add(a); !errors.Is(err, errors.ErrGraphMismatch) {
		t.Errorf("expected ErrGraphMismatch, got %v", err)
	}
}

func TestGraph_AttachErrors(t *testing.T) {
	parent := NewAnimator("parent", Float64, 0.0)
	child := NewAnimator("child", Float64, 0.0)
	if err := child.Attach(parent); !errors.Is(err, errors.ErrNotRegistered) {
		t.Errorf("expected ErrNotRegistered, got %v", err)
	}

	g1, g2 := NewGraph(), NewGraph()
	g1.Add(parent)
	g2.Add(child)
	if err := child.Attach(parent); !errors.Is(err, errors.ErrGraphMismatch) {
		t.Errorf("expected ErrGraphMismatch, got %v", err)
	}

	_, p, c := newFamily(t)
	if err := p.Attach(c); !errors.Is(err, errors.ErrCycle) {
		t.Errorf("expected ErrCycle, got %v", err)
	}
	if err := p.Attach(p); !errors.Is(err, errors.ErrCycle) {
		t.Errorf("expected ErrCycle for self attach, got %v", err)
	}
}

func TestGraph_InheritOnStep(t *testing.T) {
	g, parent, child := newFamily(t)
	if !child.Inherits() || child.Affinity() != Inherited {
		t.Fatalf("expected child inheriting, got %v %v", child.Inherits(), child.Affinity())
	}
	if child.SuperFastener() != parent {
		t.Fatal("expected parent as super fastener")
	}
	if subs := parent.SubFasteners(); len(subs) != 1 || subs[0] != child {
		t.Fatalf("expected child as only sub, got %v", subs)
	}

	g.Step(0)
	if child.Value() != 1 || child.State() != 1 {
		t.Errorf("expected child to inherit 1, got %v", child.Value())
	}

	parent.SetState(5, nil)
	if child.Coherent() {
		t.Error("expected a parent change to decohere the child")
	}
	g.Step(16 * ms)
	if child.Value() != 5 {
		t.Errorf("expected 5, got %v", child.Value())
	}
	if g.Pending() {
		t.Error("expected nothing pending once settled")
	}
}

func TestGraph_InheritedTweenCopiesValueNotTiming(t *testing.T) {
	g := NewGraph()
	parent := NewAnimator("parent", Float64, 0.0)
	child := NewAnimator("child", Float64, 0.0)
	g.Add(parent)
	child.Attach(parent)

	parent.SetState(10, linear(1000*ms))
	g.Step(0)
	g.Step(500 * ms)

	if parent.Value() != 5 || child.Value() != 5 {
		t.Errorf("expected both at 5, got parent=%v child=%v", parent.Value(), child.Value())
	}
	if child.State() != 10 {
		t.Errorf("expected child state 10, got %v", child.State())
	}
	if child.IsTweening() {
		t.Error("expected the child not to tween on its own")
	}
	if _, ok := child.Timing(); ok {
		t.Error("expected no timing on the inheriting child")
	}

	g.Step(1000 * ms)
	if child.Value() != 10 || parent.IsTweening() {
		t.Errorf("expected both settled at 10, got child=%v", child.Value())
	}
	if g.Pending() {
		t.Error("expected nothing pending after the tween")
	}
}

func TestGraph_OverrideAndResumeInheritance(t *testing.T) {
	g, parent, child := newFamily(t)
	g.Step(0)

	child.SetState(3, nil)
	if child.Inherits() || !child.Flags().Overridden {
		t.Fatalf("expected an extrinsic set to override, got %+v", child.Flags())
	}

	parent.SetState(8, nil)
	g.Step(16 * ms)
	if child.Value() != 3 {
		t.Errorf("expected the override to hold 3, got %v", child.Value())
	}

	child.SetAffinity(Inherited)
	if !child.Inherits() {
		t.Fatal("expected inheritance resumed")
	}
	g.Step(32 * ms)
	if child.Value() != 8 {
		t.Errorf("expected 8 after resuming, got %v", child.Value())
	}
}

func TestGraph_AttachWithStrongAffinityIsOverridden(t *testing.T) {
	g := NewGraph()
	parent := NewAnimator("parent", Float64, 1.0)
	child := NewAnimator("child", Float64, 2.0)
	g.Add(parent)
	child.SetState(2, nil)

	if err := child.Attach(parent); err != nil {
		t.Fatal(err)
	}
	if child.Inherits() || !child.Flags().Overridden {
		t.Errorf("expected overridden, got %+v", child.Flags())
	}
	g.Step(0)
	if child.Value() != 2 {
		t.Errorf("expected child to keep 2, got %v", child.Value())
	}
}

func TestGraph_DetachFlushesDeferred(t *testing.T) {
	g, _, child := newFamily(t)
	g.Step(0)

	child.SetStateAffinity(4, nil, Reflexive)
	if child.Value() != 1 {
		t.Fatalf("expected the reflexive call deferred, got %v", child.Value())
	}

	child.Detach()
	if child.Inherits() || child.SuperFastener() != nil {
		t.Error("expected detached")
	}
	if child.Value() != 4 || child.Affinity() != Reflexive {
		t.Errorf("expected deferred 4 applied at reflexive, got %v at %v", child.Value(), child.Affinity())
	}
}

func TestGraph_RemoveParentReleasesChildren(t *testing.T) {
	g, parent, child := newFamily(t)
	g.Step(0)

	parent.Dispose()
	if child.Inherits() || child.SuperFastener() != nil {
		t.Error("expected the child to relinquish inheritance")
	}
	if child.Value() != 1 {
		t.Errorf("expected the child to keep its last value, got %v", child.Value())
	}
	if !g.Contains(child.ID()) {
		t.Error("expected the child to stay registered")
	}
}

func TestGraph_StepOrdersParentsFirst(t *testing.T) {
	g := NewGraph()
	root := NewAnimator("root", Float64, 0.0)
	mid := NewAnimator("mid", Float64, 0.0)
	leaf := NewAnimator("leaf", Float64, 0.0)
	g.Add(root)
	mid.Attach(root)
	leaf.Attach(mid)
	g.Step(0)

	if g.Depth(leaf.ID()) != 2 || g.Depth(root.ID()) != 0 {
		t.Fatalf("unexpected depths %d %d", g.Depth(leaf.ID()), g.Depth(root.ID()))
	}

	var order []string
	for _, a := range []*Animator[float64]{root, mid, leaf} {
		a.AddObserver(&Observer[float64]{
			OnSetValue: func(float64, float64) { order = append(order, a.Name) },
		})
	}

	// Queue the leaf first; the step must still resolve top-down.
	leaf.Decohere()
	root.SetState(7, linear(0))
	g.Step(16 * ms)

	if leaf.Value() != 7 || mid.Value() != 7 {
		t.Errorf("expected 7 through the chain, got mid=%v leaf=%v", mid.Value(), leaf.Value())
	}
	want := []string{"root", "mid", "leaf"}
	if len(order) != 3 || order[0] != want[0] || order[1] != want[1] || order[2] != want[2] {
		t.Errorf("expected %v, got %v", want, order)
	}
}

func TestGraph_TweeningSubAdvancesOncePerFrame(t *testing.T) {
	g := NewGraph()
	parent := NewAnimator("parent", Float64, 0.0)
	child := NewAnimator("child", Float64, 0.0)
	g.Add(parent)
	child.SetState(0, nil)
	child.Attach(parent)

	updates := 0
	child.AddObserver(&Observer[float64]{OnUpdate: func(float64) { updates++ }})

	parent.SetState(10, linear(1000*ms))
	child.SetState(20, linear(1000*ms))
	g.Step(0)
	g.Step(100 * ms)

	if updates != 2 {
		t.Errorf("expected one update per frame, got %d", updates)
	}
	if child.Value() != 2 {
		t.Errorf("expected 2 at 100ms, got %v", child.Value())
	}
}

func TestGraph_InheritedWithoutSuperIsInvariant(t *testing.T) {
	h := captureErrors(t)
	a := NewAnimator("orphan", Float64, 0.0)
	a.flags.Inherited = true
	a.Decohere()

	a.Recohere(0)
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindInvariant {
		t.Fatalf("expected one invariant report, got %v", h.errs)
	}

	errors.SetDebugMode(true)
	t.Cleanup(func() { errors.SetDebugMode(false) })
	a.Decohere()
	defer func() {
		r := recover()
		if _, ok := r.(*errors.InvariantError); !ok {
			t.Errorf("expected an InvariantError panic in debug mode, got %v", r)
		}
	}()
	a.Recohere(16 * ms)
}

type labeled struct {
	*Animator[float64]
	label string
}

func TestGraph_EmbeddingTypesInherit(t *testing.T) {
	g := NewGraph()
	parent := &labeled{Animator: NewAnimator("parent", Float64, 0.0), label: "p"}
	child := &labeled{Animator: NewAnimator("child", Float64, 0.0), label: "c"}
	g.Add(parent)
	g.Add(child)
	if err := child.Attach(parent.Animator); err != nil {
		t.Fatal(err)
	}
	if child.SuperFastener() != parent.Animator {
		t.Fatalf("expected parent as super fastener, got %v", child.SuperFastener())
	}
	if subs := parent.SubFasteners(); len(subs) != 1 || subs[0] != child.Animator {
		t.Fatalf("expected child as only sub, got %v", subs)
	}
	if id, err := g.Add(child.Animator); err != nil || id != child.ID() {
		t.Errorf("expected the embedded animator to resolve to its slot, got %v %v", id, err)
	}

	parent.SetState(10, linear(100*ms))
	g.Step(0)
	g.Step(50 * ms)
	if child.Value() != 5 || child.State() != 10 {
		t.Errorf("expected the child to follow at 5 toward 10, got %v %v", child.Value(), child.State())
	}
}

func TestGraph_InheritedValuesAreCopied(t *testing.T) {
	g := NewGraph()
	parent := NewAnimator("parent", Deep[[]int]{}, []int{1, 2})
	child := NewAnimator("child", Deep[[]int]{}, []int(nil))
	g.Add(parent)
	if err := child.Attach(parent); err != nil {
		t.Fatal(err)
	}
	g.Step(0)

	parent.Value()[0] = 99
	parent.State()[1] = 98
	if v, s := child.Value(), child.State(); v[0] != 1 || s[1] != 2 {
		t.Errorf("expected the child to hold its own copy, got value %v state %v", v, s)
	}
}

func TestGraph_RemoveInheritingChild(t *testing.T) {
	g, parent, child := newFamily(t)
	g.Step(0)

	g.Remove(child.ID())
	if child.Inherits() || child.Affinity() != Transient || child.Graph() != nil {
		t.Fatalf("expected the removed child to relinquish inheritance, got %v %v", child.Inherits(), child.Affinity())
	}
	if subs := parent.SubFasteners(); len(subs) != 0 {
		t.Errorf("expected no subs left, got %v", subs)
	}

	errors.SetDebugMode(true)
	t.Cleanup(func() { errors.SetDebugMode(false) })
	child.Decohere()
	child.Recohere(16 * ms)
	if child.Value() != 1 || !child.Coherent() {
		t.Errorf("expected the child to keep 1, got %v", child.Value())
	}
}
