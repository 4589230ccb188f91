package probe

import (
	"context"
	"sync"
)

// Sink receives the outcome of a completed probe.
type Sink interface {
	Set(result string)
}

// Slot holds the currently displayed probe result. It starts empty and is
// fully replaced on every completion; when several probes are in flight the
// last one to complete wins.
type Slot struct {
	mu sync.RWMutex
	v  string
}

func (s *Slot) Set(result string) {
	s.mu.Lock()
	s.v = result
	s.mu.Unlock()
}

func (s *Slot) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v
}

// Task is the handle for one in-flight probe.
type Task struct {
	done   chan struct{}
	result string
}

// Done is closed once the probe has completed and the sink was updated.
func (t *Task) Done() <-chan struct{} { return t.done }

// Result blocks until the probe completes, then returns its text.
func (t *Task) Result() string {
	<-t.done
	return t.result
}

// Trigger starts a probe in the background and delivers the outcome to sink.
// Each trigger is independent: no queueing, no cancellation of earlier ones.
func (p *Prober) Trigger(ctx context.Context, sink Sink) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		t.result = p.Run(ctx)
		sink.Set(t.result)
		close(t.done)
	}()
	return t
}
