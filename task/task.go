package task

import (
	"github.com/njs-api/njs-api/engine"
	"github.com/njs-api/njs-api/result"
)

// Task is one unit of native work with a host-side completion.
type Task interface {
	// OnWork runs off the VM thread. No host context is available; only
	// plain native data may be touched.
	OnWork()

	// OnDone runs on the VM thread inside a fresh context. data is the
	// value captured at Post, re-entered from its persistent reference.
	OnDone(ctx engine.Context, data engine.Value)
}

// Destroyer is optionally implemented by tasks that clean up after
// completion.
type Destroyer interface {
	OnDestroy(ctx engine.Context)
}

// Post captures data as a GC-safe persistent reference and schedules t on
// the runtime's task runner. Must be called on the VM thread.
func Post(ctx engine.Context, data engine.Value, t Task) result.Code {
	if code := result.OfHandle(data); code != result.Ok {
		return code
	}

	rt := ctx.Runtime()
	runner := rt.TaskRunner()
	if runner == nil {
		return result.InvalidState
	}

	p := ctx.MakePersistent(data)
	runner.Post(t.OnWork, func() {
		rt.Enter(func(ctx engine.Context) {
			t.OnDone(ctx, p.Local(ctx))
			if d, ok := t.(Destroyer); ok {
				d.OnDestroy(ctx)
			}
			p.Reset()
		})
	})
	return result.Ok
}
