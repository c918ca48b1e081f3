// Package testing provides a frame-driving harness for motion tests.
//
// # Quick Start
//
// Create a tester, register animators in its graph, and pump frames:
//
//	func TestFade(t *testing.T) {
//	    tester := motiontest.NewGraphTesterWithT(t)
//	    opacity := animation.NewAnimator("opacity", animation.Float64, 0.0)
//	    tester.Add(opacity)
//
//	    opacity.SetState(1, animation.Linear.WithDuration(100*time.Millisecond))
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	    if opacity.Value() != 1 {
//	        t.Errorf("expected 1, got %v", opacity.Value())
//	    }
//	}
//
// # Callback Recording
//
// A [Recorder] collects animator callbacks in order:
//
//	rec := &motiontest.Recorder{}
//	motiontest.Observe(rec, opacity)
//	// ...
//	rec.Only("began", "ended") // []string{"began opacity 0", "ended opacity 1"}
//
// # Snapshot Testing
//
// Track animators and compare the recorded frames against a golden file:
//
//	motiontest.Track(tester, opacity)
//	tester.PumpFrames(10)
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/fade.snapshot.json")
//
// Update snapshots with:
//
//	MOTION_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import motiontest "github.com/go-drift/motion/pkg/testing"
package testing
