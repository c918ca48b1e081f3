package testing

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
)

type fakeT struct {
	failed bool
	msg    string
}

func (f *fakeT) Helper()                           {}
func (f *fakeT) Name() string                      { return "TestFake" }
func (f *fakeT) Errorf(format string, args ...any) { f.failed = true; f.msg = format }
func (f *fakeT) Fatalf(format string, args ...any) { f.failed = true; f.msg = format }

func trackedTester(t *testing.T) *GraphTester {
	tester := NewGraphTesterWithT(t)
	tester.SetFrameDuration(250 * time.Millisecond)
	x := animation.NewAnimator("x", animation.Float64, 0.0)
	tester.Add(x)
	Track(tester, x)
	x.SetState(4, animation.Linear.WithDuration(time.Second))
	tester.Pump()
	tester.PumpFrames(4)
	return tester
}

func TestCaptureSnapshot_Frames(t *testing.T) {
	snap := trackedTester(t).CaptureSnapshot()
	if len(snap.Frames) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(snap.Frames))
	}
	want := []string{"0", "1", "2", "3", "4"}
	for i, f := range snap.Frames {
		if f.Values["x"] != want[i] {
			t.Errorf("frame %d: expected %s, got %s", i, want[i], f.Values["x"])
		}
	}
	if snap.Frames[2].Time != "500ms" {
		t.Errorf("expected frame time 500ms, got %s", snap.Frames[2].Time)
	}
}

func TestSnapshot_Diff(t *testing.T) {
	a := trackedTester(t).CaptureSnapshot()
	b := trackedTester(t).CaptureSnapshot()
	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical runs, got:\n%s", diff)
	}

	b.Frames[1].Values["x"] = "9"
	diff := a.Diff(b)
	if !strings.Contains(diff, `-        "x": "9"`) || !strings.Contains(diff, `+        "x": "1"`) {
		t.Errorf("unexpected diff:\n%s", diff)
	}
}

func TestSnapshot_FileRoundTrip(t *testing.T) {
	snap := trackedTester(t).CaptureSnapshot()
	path := filepath.Join(t.TempDir(), "nested", "x.snapshot.json")
	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	ft := &fakeT{}
	snap.MatchesFile(ft, path)
	if ft.failed {
		t.Errorf("expected match, got failure: %s", ft.msg)
	}

	missing := &fakeT{}
	snap.MatchesFile(missing, filepath.Join(t.TempDir(), "none.json"))
	if !missing.failed {
		t.Error("expected failure for missing snapshot file")
	}
}
