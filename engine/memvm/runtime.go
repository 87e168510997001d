package memvm

import "github.com/njs-api/njs-api/engine"

// DefaultMaxStringLength mirrors the order of magnitude real engines allow
// for a single string, in UTF-16 code units.
const DefaultMaxStringLength = 1 << 29

// Runtime is the in-memory engine.Runtime. It owns the persistent reference
// set and the simulated garbage collector.
type Runtime struct {
	runner      engine.TaskRunner
	maxStrLen   int
	persistents map[*persistentRef]struct{}
	interned    map[string]engine.Value
}

// NewRuntime builds a runtime. runner may be nil for hosts that never post
// tasks.
func NewRuntime(runner engine.TaskRunner) *Runtime {
	return &Runtime{
		runner:      runner,
		maxStrLen:   DefaultMaxStringLength,
		persistents: make(map[*persistentRef]struct{}),
		interned:    make(map[string]engine.Value),
	}
}

// SetMaxStringLength overrides the string length limit, in UTF-16 code
// units. Used by tests to exercise over-long string failures.
func (rt *Runtime) SetMaxStringLength(n int) { rt.maxStrLen = n }

// Enter runs fn inside a fresh context.
func (rt *Runtime) Enter(fn func(engine.Context)) {
	fn(&Context{rt: rt})
}

// TaskRunner returns the runner handed to NewRuntime.
func (rt *Runtime) TaskRunner() engine.TaskRunner { return rt.runner }

// Collect simulates a full garbage collection pass: every persistent
// reference currently in the weak state is treated as unreachable. Its
// target object is invalidated and its finalizer runs. Returns the number
// of references collected.
func (rt *Runtime) Collect() int {
	var doomed []*persistentRef
	for p := range rt.persistents {
		if p.weak && p.target != nil {
			doomed = append(doomed, p)
		}
	}
	for _, p := range doomed {
		if o, ok := p.target.(*object); ok {
			o.dead = true
		}
		fin := p.fin
		p.weak = false
		p.fin = nil
		if fin != nil {
			fin()
		}
	}
	return len(doomed)
}

// persistentRef implements engine.Persistent.
type persistentRef struct {
	rt     *Runtime
	target engine.Value
	weak   bool
	fin    func()
}

func (p *persistentRef) Local(ctx engine.Context) engine.Value {
	if p.target == nil {
		return invalidVal{}
	}
	return p.target
}

func (p *persistentRef) SetWeak(fn func()) {
	p.weak = true
	p.fin = fn
}

func (p *persistentRef) ClearWeak() {
	p.weak = false
	p.fin = nil
}

func (p *persistentRef) IsWeak() bool { return p.weak }

func (p *persistentRef) Reset() {
	delete(p.rt.persistents, p)
	p.target = nil
	p.weak = false
	p.fin = nil
}
