package animation

import (
	"reflect"
	"testing"
)

func TestExpansionAnimator_ExpandCollapse(t *testing.T) {
	e := NewExpansionAnimator("disclosure", false)
	var hooks []string
	e.WillExpand = func() { hooks = append(hooks, "willExpand") }
	e.DidExpand = func() { hooks = append(hooks, "didExpand") }
	e.WillCollapse = func() { hooks = append(hooks, "willCollapse") }
	e.DidCollapse = func() { hooks = append(hooks, "didCollapse") }

	if !e.Collapsed() {
		t.Fatal("expected collapsed at rest")
	}
	if !e.Expand(Linear.WithDuration(200 * ms)) {
		t.Fatal("expected Expand to start")
	}
	if !e.Expanding() {
		t.Error("expected the direction set before the first frame")
	}
	if e.Expand(true) {
		t.Error("expected a second Expand to be ignored")
	}

	e.Animate(0)
	e.Animate(100 * ms)
	if v := e.Value(); v.Value != 0.5 || v.Direction != 1 {
		t.Errorf("expected halfway and expanding, got %+v", v)
	}
	e.Animate(200 * ms)
	if !e.Expanded() {
		t.Errorf("expected expanded at rest, got %+v", e.Value())
	}

	e.Collapse(false)
	if !e.Collapsed() {
		t.Errorf("expected an immediate collapse, got %+v", e.Value())
	}

	want := []string{"willExpand", "didExpand", "willCollapse", "didCollapse"}
	if !reflect.DeepEqual(hooks, want) {
		t.Errorf("expected %v, got %v", want, hooks)
	}
}

func TestExpansionAnimator_ToggleMidFlight(t *testing.T) {
	e := NewExpansionAnimator("disclosure", true)
	e.Toggle(Linear.WithDuration(100 * ms))
	e.Animate(0)
	e.Animate(50 * ms)
	if !e.Collapsing() {
		t.Fatalf("expected collapsing, got %+v", e.Value())
	}

	e.Toggle(Linear.WithDuration(100 * ms))
	e.Animate(60 * ms)
	if !e.Expanding() {
		t.Errorf("expected the toggle to reverse direction, got %+v", e.Value())
	}
	e.Animate(160 * ms)
	if !e.Expanded() {
		t.Errorf("expected expanded, got %+v", e.Value())
	}
}

func TestFocusAndPresence(t *testing.T) {
	f := NewFocusAnimator("ring", false)
	f.Focus(nil)
	if !f.Focused() {
		t.Errorf("expected focused, got %+v", f.Value())
	}
	f.Unfocus(nil)
	if !f.Unfocused() {
		t.Errorf("expected unfocused, got %+v", f.Value())
	}

	p := NewPresenceAnimator("sheet", false)
	p.Present(Linear.WithDuration(100 * ms))
	if !p.Presenting() {
		t.Error("expected presenting")
	}
	p.Animate(0)
	p.Animate(100 * ms)
	if !p.Presented() {
		t.Errorf("expected presented, got %+v", p.Value())
	}
	p.Dismiss(Linear.WithDuration(100 * ms))
	if !p.Dismissing() {
		t.Error("expected dismissing")
	}
	p.Animate(100 * ms)
	p.Animate(200 * ms)
	if !p.Dismissed() {
		t.Errorf("expected dismissed, got %+v", p.Value())
	}
}

func TestPhaseKind_Coerce(t *testing.T) {
	tests := []struct {
		in   any
		want Phase
	}{
		{true, Phase{Value: 1}},
		{false, Phase{}},
		{0.25, Phase{Value: 0.25}},
		{map[string]any{"value": 0.5, "direction": -1}, Phase{Value: 0.5, Direction: -1}},
	}
	for _, tt := range tests {
		got, err := PhaseKind.Coerce(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("Coerce(%#v) = %+v, %v", tt.in, got, err)
		}
	}
	if _, err := PhaseKind.Coerce(nil); err == nil {
		t.Error("expected an error for nil")
	}
}
