// Package constraint defines the contract between animators and a linear
// constraint solver.
//
// A [Variable] exposes a linear expression (a coefficient, weighted terms
// and a constant) and accepts solutions. A [Solver] tracks variables, takes
// their current values and hands solutions back through
// [Variable.UpdateConstraintSolution].
package constraint

import (
	"slices"
	"strings"
)

// Variable is a numeric unknown bound to a solver.
type Variable interface {
	// VariableName identifies the variable in logs.
	VariableName() string
	// Coefficient scales the variable in its own expression.
	Coefficient() float64
	// Terms returns the expression's terms keyed by variable.
	Terms() map[Variable]float64
	// Constant is the expression's constant part.
	Constant() float64
	// UpdateConstraintSolution delivers a solved value.
	UpdateConstraintSolution(value float64)
}

// Solver receives variables and their values.
type Solver interface {
	AddConstraintVariable(v Variable)
	RemoveConstraintVariable(v Variable)
	SetConstraintVariable(v Variable, value float64)
}

// Term is one weighted variable of an expression.
type Term struct {
	Variable    Variable
	Coefficient float64
}

// Expand returns v's terms ordered by variable name, each scaled by v's own
// coefficient.
func Expand(v Variable) []Term {
	terms := make([]Term, 0, len(v.Terms()))
	for tv, c := range v.Terms() {
		terms = append(terms, Term{Variable: tv, Coefficient: c * v.Coefficient()})
	}
	slices.SortFunc(terms, func(a, b Term) int {
		return strings.Compare(a.Variable.VariableName(), b.Variable.VariableName())
	})
	return terms
}

// Evaluate computes v's expression, Constant + Σ coefficient·value, reading
// term values through lookup.
func Evaluate(v Variable, lookup func(Variable) float64) float64 {
	sum := v.Constant()
	for _, t := range Expand(v) {
		sum += t.Coefficient * lookup(t.Variable)
	}
	return sum
}
