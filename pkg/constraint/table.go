package constraint

import (
	"slices"

	"github.com/go-drift/motion/pkg/logging"
)

type relation struct {
	dst, src Variable
	scale    float64
	offset   float64
}

// Table is a solver for chains of linear equalities of the form
// dst = scale·src + offset. A value pushed for src is solved into every
// dependent variable, transitively, within the same call. Each variable is
// solved at most once per push, so cyclic relations terminate.
//
// Table is not safe for concurrent use.
type Table struct {
	vars      []Variable
	values    map[Variable]float64
	relations []relation
	visiting  map[Variable]bool
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{values: make(map[Variable]float64)}
}

// AddConstraintVariable registers v. Adding a registered variable is a no-op.
func (t *Table) AddConstraintVariable(v Variable) {
	if slices.Contains(t.vars, v) {
		return
	}
	t.vars = append(t.vars, v)
}

// RemoveConstraintVariable unregisters v and drops its value and every
// relation it takes part in.
func (t *Table) RemoveConstraintVariable(v Variable) {
	t.vars = slices.DeleteFunc(t.vars, func(x Variable) bool { return x == v })
	delete(t.values, v)
	t.relations = slices.DeleteFunc(t.relations, func(r relation) bool {
		return r.dst == v || r.src == v
	})
}

// SetConstraintVariable records value for v and solves every variable that
// depends on it.
func (t *Table) SetConstraintVariable(v Variable, value float64) {
	t.values[v] = value
	if t.visiting[v] {
		return
	}
	if t.visiting == nil {
		t.visiting = make(map[Variable]bool)
		defer func() { t.visiting = nil }()
	}
	t.propagate(v, value)
}

func (t *Table) propagate(src Variable, value float64) {
	t.visiting[src] = true
	for _, r := range slices.Clone(t.relations) {
		if r.src != src || t.visiting[r.dst] {
			continue
		}
		solved := r.scale*value + r.offset
		t.values[r.dst] = solved
		t.visiting[r.dst] = true
		logging.Logger().Debug("constraint solved",
			"variable", r.dst.VariableName(), "from", src.VariableName(), "value", solved)
		r.dst.UpdateConstraintSolution(solved)
		t.propagate(r.dst, solved)
	}
}

// Equate makes dst follow src exactly.
func (t *Table) Equate(dst, src Variable) {
	t.Relate(dst, src, 1, 0)
}

// Relate makes dst follow scale·src + offset. If src already has a value,
// dst is solved immediately.
func (t *Table) Relate(dst, src Variable, scale, offset float64) {
	t.relations = append(t.relations, relation{dst: dst, src: src, scale: scale, offset: offset})
	if value, ok := t.values[src]; ok {
		t.SetConstraintVariable(src, value)
	}
}

// Value returns the last value recorded or solved for v.
func (t *Table) Value(v Variable) (float64, bool) {
	value, ok := t.values[v]
	return value, ok
}

// Evaluate computes v's expression against the recorded values. Missing
// values count as 0.
func (t *Table) Evaluate(v Variable) float64 {
	return Evaluate(v, func(term Variable) float64 { return t.values[term] })
}

// Variables returns the registered variables in registration order.
func (t *Table) Variables() []Variable {
	return slices.Clone(t.vars)
}
