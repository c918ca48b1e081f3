package theme

import (
	"testing"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/constraint"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/graphics"
)

// countingSolver wraps a table and counts pushes per variable.
type countingSolver struct {
	*constraint.Table
	pushes map[constraint.Variable]int
}

func newCountingSolver() *countingSolver {
	return &countingSolver{Table: constraint.NewTable(), pushes: make(map[constraint.Variable]int)}
}

func (s *countingSolver) SetConstraintVariable(v constraint.Variable, value float64) {
	s.pushes[v]++
	s.Table.SetConstraintVariable(v, value)
}

func TestThemeConstraintAnimator_Expression(t *testing.T) {
	a := NewThemeConstraintAnimator("width", animation.Float64, 0.0)
	if a.Coefficient() != 1 || a.Constant() != 0 || a.VariableName() != "width" {
		t.Error("unexpected expression")
	}
	terms := a.Terms()
	if len(terms) != 1 || terms[a] != 1 {
		t.Errorf("expected {self: 1}, got %v", terms)
	}

	tbl := constraint.NewTable()
	a.Constrain(tbl)
	a.SetState(6, nil)
	if got := tbl.Evaluate(a); got != 6 {
		t.Errorf("Evaluate = %v, want 6", got)
	}
}

func TestThemeConstraintAnimator_ConstrainPushesValue(t *testing.T) {
	s := newCountingSolver()
	a := NewThemeConstraintAnimator("width", animation.Float64, 3.0)
	a.Constrain(s)

	if !a.Constraining() || a.Solver() != s {
		t.Fatal("expected constraining")
	}
	if v, ok := s.Value(a); !ok || v != 3 {
		t.Errorf("expected 3 pushed, got %v %v", v, ok)
	}
	if vars := s.Variables(); len(vars) != 1 {
		t.Errorf("expected one registered variable, got %d", len(vars))
	}

	a.Constrain(s)
	if s.pushes[a] != 1 {
		t.Errorf("expected rebinding the same solver to be a no-op, got %d pushes", s.pushes[a])
	}

	a.Unconstrain()
	if a.Constraining() || len(s.Variables()) != 0 {
		t.Error("expected unconstrained")
	}
	a.SetState(9, nil)
	if s.pushes[a] != 1 {
		t.Errorf("expected no push after unconstrain, got %d", s.pushes[a])
	}
}

func TestThemeConstraintAnimator_SolutionFlowsToConstrained(t *testing.T) {
	s := newCountingSolver()
	src := NewThemeConstraintAnimator("src", animation.Float64, 0.0)
	dst := NewThemeConstraintAnimator("dst", animation.Float64, 0.0)
	dst.SetConstrained(true)
	src.Constrain(s)
	dst.Constrain(s)
	s.Equate(dst, src)

	src.SetState(5, nil)
	if dst.Value() != 5 || dst.Affinity() != animation.Reflexive {
		t.Errorf("expected dst=5 at reflexive, got %v at %v", dst.Value(), dst.Affinity())
	}
	if s.pushes[dst] != 1 {
		t.Errorf("expected only dst's initial push, got %d", s.pushes[dst])
	}
}

func TestThemeConstraintAnimator_IgnoresSolutionUnlessConstrained(t *testing.T) {
	a := NewThemeConstraintAnimator("a", animation.Float64, 1.0)
	a.UpdateConstraintSolution(7)
	if a.Value() != 1 {
		t.Errorf("expected the solution ignored, got %v", a.Value())
	}

	a.SetConstrained(true)
	a.SetState(2, nil)
	a.UpdateConstraintSolution(7)
	if a.Value() != 2 {
		t.Errorf("expected the extrinsic value to hold, got %v", a.Value())
	}
	if v, aff, ok := a.Deferred(); !ok || v != 7 || aff != animation.Reflexive {
		t.Errorf("expected the solution deferred, got %v %v %v", v, aff, ok)
	}
}

func TestThemeConstraintAnimator_PushesEveryFrame(t *testing.T) {
	g := animation.NewGraph()
	s := newCountingSolver()
	a := NewThemeConstraintAnimator("a", animation.Float64, 0.0)
	g.Add(a)
	a.Constrain(s)

	a.SetState(10, linear(1000*ms))
	g.Step(0)
	g.Step(500 * ms)
	if v, _ := s.Value(a); v != 5 {
		t.Errorf("expected 5 pushed halfway, got %v", v)
	}
	g.Step(1000 * ms)
	if v, _ := s.Value(a); v != 10 {
		t.Errorf("expected 10 pushed at the end, got %v", v)
	}
}

func TestThemeConstraintAnimator_UnchangedStateDoesNotPush(t *testing.T) {
	s := newCountingSolver()
	a := NewThemeConstraintAnimator("a", animation.Float64, 4.0)
	a.Constrain(s)

	a.SetState(4, linear(200*ms))
	if s.pushes[a] != 1 || a.IsTweening() {
		t.Errorf("expected no push and no tween, got %d pushes", s.pushes[a])
	}
}

func TestThemeConstraintAnimator_NonNumericKind(t *testing.T) {
	h := captureErrors(t)
	s := newCountingSolver()
	a := NewThemeConstraintAnimator("fill", animation.Color, graphics.ColorRed)
	a.Constrain(s)

	if s.pushes[a] != 0 {
		t.Error("expected no push for a color")
	}
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindCoercion {
		t.Fatalf("expected a coercion report, got %v", h.errs)
	}
	var ce *errors.CoercionError
	if !errors.As(h.errs[0], &ce) {
		t.Errorf("expected a CoercionError, got %v", h.errs[0].Err)
	}

	a.SetConstrained(true)
	a.UpdateConstraintSolution(0.5)
	if a.Value() != graphics.ColorRed {
		t.Errorf("expected the color kept, got %v", a.Value())
	}
}
