package constraint

import "testing"

type variable struct {
	name      string
	solutions []float64
	terms     map[Variable]float64
	constant  float64
}

func newVariable(name string) *variable { return &variable{name: name} }

func (v *variable) VariableName() string { return v.name }
func (v *variable) Coefficient() float64 { return 1 }
func (v *variable) Constant() float64    { return v.constant }

func (v *variable) Terms() map[Variable]float64 {
	if v.terms != nil {
		return v.terms
	}
	return map[Variable]float64{v: 1}
}

func (v *variable) UpdateConstraintSolution(value float64) {
	v.solutions = append(v.solutions, value)
}

func TestTable_Equate(t *testing.T) {
	tbl := NewTable()
	a, b := newVariable("a"), newVariable("b")
	tbl.AddConstraintVariable(a)
	tbl.Equate(b, a)

	tbl.SetConstraintVariable(a, 4)
	if len(b.solutions) != 1 || b.solutions[0] != 4 {
		t.Fatalf("expected b solved to 4, got %v", b.solutions)
	}
	if len(a.solutions) != 0 {
		t.Errorf("expected no solution echoed to the source, got %v", a.solutions)
	}
	if v, ok := tbl.Value(b); !ok || v != 4 {
		t.Errorf("Value(b) = %v, %v", v, ok)
	}
}

func TestTable_RelateSolvesExistingValue(t *testing.T) {
	tbl := NewTable()
	a, b := newVariable("a"), newVariable("b")
	tbl.SetConstraintVariable(a, 10)
	tbl.Relate(b, a, 0.5, 1)

	if len(b.solutions) != 1 || b.solutions[0] != 6 {
		t.Errorf("expected 6, got %v", b.solutions)
	}
}

func TestTable_ChainsAndCycles(t *testing.T) {
	tbl := NewTable()
	a, b, c := newVariable("a"), newVariable("b"), newVariable("c")
	tbl.Equate(b, a)
	tbl.Equate(c, b)
	tbl.Equate(a, c)

	tbl.SetConstraintVariable(a, 2)
	if len(b.solutions) != 1 || len(c.solutions) != 1 {
		t.Fatalf("expected one solution each, got b=%v c=%v", b.solutions, c.solutions)
	}
	if c.solutions[0] != 2 {
		t.Errorf("expected c=2, got %v", c.solutions[0])
	}
	if len(a.solutions) != 0 {
		t.Errorf("expected the cycle to stop at a, got %v", a.solutions)
	}
}

func TestTable_ReentrantPushIsRecorded(t *testing.T) {
	tbl := NewTable()
	a := newVariable("a")
	b := &echo{variable: newVariable("b"), table: tbl}
	tbl.Equate(b, a)

	tbl.SetConstraintVariable(a, 3)
	if v, _ := tbl.Value(b); v != 3 {
		t.Errorf("expected b=3, got %v", v)
	}
	if b.calls != 1 {
		t.Errorf("expected a single solution, got %d", b.calls)
	}
}

type echo struct {
	*variable
	table *Table
	calls int
}

func (e *echo) UpdateConstraintSolution(value float64) {
	e.calls++
	e.table.SetConstraintVariable(e, value)
}

func TestTable_RemoveDropsRelations(t *testing.T) {
	tbl := NewTable()
	a, b := newVariable("a"), newVariable("b")
	tbl.AddConstraintVariable(a)
	tbl.AddConstraintVariable(a)
	tbl.AddConstraintVariable(b)
	tbl.Equate(b, a)

	if got := len(tbl.Variables()); got != 2 {
		t.Fatalf("expected 2 variables, got %d", got)
	}
	tbl.RemoveConstraintVariable(b)
	tbl.SetConstraintVariable(a, 1)
	if len(b.solutions) != 0 {
		t.Errorf("expected no solution after removal, got %v", b.solutions)
	}
	if _, ok := tbl.Value(b); ok {
		t.Error("expected b's value dropped")
	}
}

func TestEvaluate(t *testing.T) {
	a, b := newVariable("a"), newVariable("b")
	sum := &variable{name: "sum", terms: map[Variable]float64{a: 2, b: -1}, constant: 5}

	tbl := NewTable()
	tbl.SetConstraintVariable(a, 3)
	tbl.SetConstraintVariable(b, 4)
	if got := tbl.Evaluate(sum); got != 7 {
		t.Errorf("Evaluate = %v, want 7", got)
	}
}

func TestExpand(t *testing.T) {
	b, a := newVariable("b"), newVariable("a")
	sum := &variable{name: "sum", terms: map[Variable]float64{b: 3, a: 2}}

	terms := Expand(sum)
	if len(terms) != 2 || terms[0].Variable != a || terms[1].Variable != b {
		t.Fatalf("expected terms ordered by name, got %+v", terms)
	}
	if terms[0].Coefficient != 2 || terms[1].Coefficient != 3 {
		t.Errorf("unexpected coefficients %+v", terms)
	}
}
