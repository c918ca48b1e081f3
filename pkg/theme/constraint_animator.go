package theme

import (
	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/constraint"
	"github.com/go-drift/motion/pkg/errors"
)

// ThemeConstraintAnimator is a theme animator that also takes part in
// constraint solving as the expression 1·self + 0.
//
// While Constraining, every value change is pushed into the bound solver.
// While Constrained, solutions from the solver set the state at Reflexive
// affinity, so they yield to theme values and explicit calls. A solution
// being applied is not pushed back to the solver.
//
// Only numeric kinds can be constrained; other kinds report a coercion
// error on every push or solution.
type ThemeConstraintAnimator[T any] struct {
	*ThemeAnimator[T]

	solver   constraint.Solver
	applying bool
}

var _ constraint.Variable = (*ThemeConstraintAnimator[float64])(nil)

// NewThemeConstraintAnimator returns an unconstrained animator whose value
// and state are initial.
func NewThemeConstraintAnimator[T any](name string, kind animation.Kind[T], initial T) *ThemeConstraintAnimator[T] {
	a := &ThemeConstraintAnimator[T]{ThemeAnimator: NewThemeAnimator(name, kind, initial)}
	a.AddObserver(&animation.Observer[T]{
		OnSetValue: func(newValue, _ T) { a.push(newValue) },
	})
	return a
}

func (a *ThemeConstraintAnimator[T]) VariableName() string { return a.Name }
func (a *ThemeConstraintAnimator[T]) Coefficient() float64 { return 1 }
func (a *ThemeConstraintAnimator[T]) Constant() float64    { return 0 }

func (a *ThemeConstraintAnimator[T]) Terms() map[constraint.Variable]float64 {
	return map[constraint.Variable]float64{a: 1}
}

// Solver returns the bound solver, or nil.
func (a *ThemeConstraintAnimator[T]) Solver() constraint.Solver { return a.solver }

// UpdateConstraintSolution sets the state to value at Reflexive affinity.
// It is ignored unless the animator is Constrained.
func (a *ThemeConstraintAnimator[T]) UpdateConstraintSolution(value float64) {
	if !a.Constrained() {
		return
	}
	v, err := animation.FromFloat(a.Kind(), value)
	if err != nil {
		a.reportCoercion("theme.ThemeConstraintAnimator.UpdateConstraintSolution", err)
		return
	}
	a.applying = true
	defer func() { a.applying = false }()
	a.SetStateAffinity(v, nil, animation.Reflexive)
}

// Constrain binds solver, registers the animator with it and pushes the
// current value. Binding a different solver unbinds the previous one first.
func (a *ThemeConstraintAnimator[T]) Constrain(solver constraint.Solver) {
	if a.solver == solver {
		return
	}
	if a.solver != nil {
		a.Unconstrain()
	}
	a.solver = solver
	a.SetConstraining(true)
	solver.AddConstraintVariable(a)
	a.push(a.Value())
}

// Unconstrain removes the animator from its solver.
func (a *ThemeConstraintAnimator[T]) Unconstrain() {
	if a.solver == nil {
		return
	}
	solver := a.solver
	a.solver = nil
	a.SetConstraining(false)
	solver.RemoveConstraintVariable(a)
}

func (a *ThemeConstraintAnimator[T]) push(v T) {
	if !a.Constraining() || a.solver == nil || a.applying {
		return
	}
	f, err := animation.ToFloat(a.Kind(), v)
	if err != nil {
		a.reportCoercion("theme.ThemeConstraintAnimator.SetConstraintVariable", err)
		return
	}
	a.solver.SetConstraintVariable(a, f)
}

func (a *ThemeConstraintAnimator[T]) reportCoercion(op string, err error) {
	errors.Report(&errors.MotionError{
		Op:       op,
		Kind:     errors.KindCoercion,
		Fastener: a.Name,
		Err:      err,
	})
}
