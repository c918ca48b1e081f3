package testing

import (
	"reflect"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
)

func TestRecorder_Only(t *testing.T) {
	rec := &Recorder{}
	rec.Record("began %s", "a")
	rec.Record("update %s", "a")
	rec.Record("ended %s", "a")

	got := rec.Only("began", "ended")
	want := []string{"began a", "ended a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if rec.Count("update") != 1 {
		t.Errorf("expected 1 update, got %d", rec.Count("update"))
	}

	rec.Reset()
	if len(rec.Events()) != 0 {
		t.Error("expected no events after Reset")
	}
}

func TestObserve_TweenLifecycle(t *testing.T) {
	rec := &Recorder{}
	x := animation.NewAnimator("x", animation.Float64, 0.0)
	stop := Observe(rec, x)

	tr := animation.NewTransition[float64](time.Second, animation.Linear).
		WithOnEnd(Callback[float64](rec, "onEnd"))
	x.SetState(10, tr)
	x.Animate(0)
	x.Animate(time.Second)

	want := []string{
		"setState x 10 0",
		"began x 0",
		"setValue x 10 0",
		"onEnd 10",
		"ended x 10",
	}
	got := rec.Only("setState", "began", "setValue", "ended", "onEnd")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	stop()
	rec.Reset()
	x.SetState(0, nil)
	if len(rec.Events()) != 0 {
		t.Errorf("expected no events after stop, got %v", rec.Events())
	}
}
