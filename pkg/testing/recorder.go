package testing

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-drift/motion/pkg/animation"
)

// Recorder collects callback events as strings, in call order. The zero
// value is ready to use and safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []string
}

// Record appends one event built from format and args.
func (r *Recorder) Record(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

// Events returns a copy of every event recorded so far.
func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

// Only returns the events whose first word is one of kinds.
func (r *Recorder) Only(kinds ...string) []string {
	var out []string
	for _, e := range r.Events() {
		kind, _, _ := strings.Cut(e, " ")
		for _, k := range kinds {
			if kind == k {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// Count returns how many events have the given first word.
func (r *Recorder) Count(kind string) int {
	return len(r.Only(kind))
}

// Reset discards recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Callback returns a func(T) that records "name value". Use it for
// transition callbacks.
func Callback[T any](r *Recorder, name string) func(T) {
	return func(v T) {
		r.Record("%s %v", name, v)
	}
}

// Observe records every callback of a as "kind name values...", with kinds
// setState, setValue, began, update, ended and interrupted. It returns the
// function that stops observing.
func Observe[T any](r *Recorder, a *animation.Animator[T]) func() {
	name := a.Name
	return a.AddObserver(&animation.Observer[T]{
		OnSetState: func(newState, oldState T) {
			r.Record("setState %s %v %v", name, newState, oldState)
		},
		OnSetValue: func(newValue, oldValue T) {
			r.Record("setValue %s %v %v", name, newValue, oldValue)
		},
		OnBegin: func(v T) {
			r.Record("began %s %v", name, v)
		},
		OnUpdate: func(v T) {
			r.Record("update %s %v", name, v)
		},
		OnEnd: func(v T) {
			r.Record("ended %s %v", name, v)
		},
		OnInterrupt: func(v T) {
			r.Record("interrupted %s %v", name, v)
		},
	})
}
