// Package profiler times named scopes of the frame and samples runtime
// memory counters for the debug overlay. Not safe for concurrent use.
package profiler

import (
	"runtime"
	"time"
)

// smoothing weight of the newest sample in Scope.Avg
const smoothing = 0.1

type Scope struct {
	Name  string
	Last  time.Duration
	Avg   time.Duration // exponential moving average
	Max   time.Duration
	Count int
}

type Profiler struct {
	scopes map[string]*Scope
	order  []string
	now    func() time.Time
}

func New() *Profiler {
	return &Profiler{scopes: make(map[string]*Scope), now: time.Now}
}

// Start begins a scope and returns an end func to be deferred. A nil
// Profiler records nothing.
func (p *Profiler) Start(name string) func() {
	if p == nil {
		return func() {}
	}
	begin := p.now()
	return func() { p.record(name, p.now().Sub(begin)) }
}

func (p *Profiler) record(name string, d time.Duration) {
	s, ok := p.scopes[name]
	if !ok {
		s = &Scope{Name: name, Avg: d}
		p.scopes[name] = s
		p.order = append(p.order, name)
	}
	s.Last = d
	s.Avg += time.Duration(smoothing * float64(d-s.Avg))
	if d > s.Max {
		s.Max = d
	}
	s.Count++
}

// Scopes returns a snapshot in first-seen order.
func (p *Profiler) Scopes() []Scope {
	out := make([]Scope, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, *p.scopes[name])
	}
	return out
}

// Reset forgets every scope.
func (p *Profiler) Reset() {
	p.scopes = make(map[string]*Scope)
	p.order = p.order[:0]
}

// Memory is a sample of the Go runtime counters.
type Memory struct {
	Alloc      uint64 // bytes of live heap objects
	Mallocs    uint64 // cumulative heap allocations
	NumGC      uint32
	Goroutines int
}

// ReadMemory stops the world briefly; sample it at most a few times per
// second.
func ReadMemory() Memory {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Memory{
		Alloc:      m.Alloc,
		Mallocs:    m.Mallocs,
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}
}
