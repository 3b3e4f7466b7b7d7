package nodetrace

import (
	"context"
	"time"

	"github.com/aretw0/nodetrace/pkg/domain"
	"github.com/aretw0/nodetrace/pkg/format"
)

// NodeFunc is the shape of a pipeline node: it receives the pipeline state and the
// per-invocation config and returns a result.
type NodeFunc[S, R any] func(ctx context.Context, state S, cfg domain.InvocationConfig) (R, error)

// Wrap returns fn instrumented with start and end events for the node name.
//
// The returned function calls fn inline with the original arguments and returns its result and
// error untouched. A failing (or panicking) fn gets a start event but no end event.
// The end event names the successor when the result implements domain.HasSuccessor.
// A nil Tracer returns fn itself.
func Wrap[S, R any](t *Tracer, name string, fn NodeFunc[S, R]) NodeFunc[S, R] {
	if t == nil {
		return fn
	}
	return func(ctx context.Context, state S, cfg domain.InvocationConfig) (R, error) {
		id := CorrelationIDFrom(cfg)

		if t.toggles.IsEnabled(domain.CategoryNodeStart) {
			now := t.now()
			t.emit(domain.Event{
				Kind:      domain.EventStart,
				Label:     name,
				ID:        id,
				Timestamp: now,
				Lines:     format.Start(name, id, now),
			})
		}

		started := time.Now()
		result, err := fn(ctx, state, cfg)
		t.metrics.ObserveNode(name, time.Since(started), err)
		if err != nil {
			return result, err
		}

		if t.toggles.IsEnabled(domain.CategoryNodeEnd) {
			now := t.now()
			t.emit(domain.Event{
				Kind:      domain.EventEnd,
				Label:     name,
				ID:        id,
				Timestamp: now,
				Lines:     format.End(name, id, now, t.successor(name, result)),
			})
		}

		return result, nil
	}
}

// successor looks up the next node on result. Panics raised by the lookup are reported on the
// diagnostic logger and yield no successor.
func (t *Tracer) successor(node string, result any) (next string) {
	hs, ok := result.(domain.HasSuccessor)
	if !ok {
		return ""
	}

	defer func() {
		if r := recover(); r != nil {
			t.logger.Warn("successor lookup failed", "node", node, "panic", r)
			next = ""
		}
	}()

	next, ok = hs.Successor()
	if !ok {
		return ""
	}
	return next
}
