package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/aretw0/nodetrace"
	"github.com/aretw0/nodetrace/pkg/domain"
)

// research is the state flowing through the demo pipeline.
type research struct {
	Topic    string
	Findings []string
	Draft    string
}

// DemoOptions configures RunDemo.
type DemoOptions struct {
	Topic       string
	Researchers int
}

// RunDemo runs a small research pipeline with several researchers in parallel.
// Every emitter of the tracer is exercised; the log path is printed to w at the end.
func RunDemo(ctx context.Context, rt *Runtime, opts DemoOptions, w io.Writer) error {
	if opts.Researchers < 1 {
		opts.Researchers = 1
	}
	if opts.Topic == "" {
		opts.Topic = "node tracing"
	}
	t := rt.Tracer

	plan := nodetrace.Wrap(t, "plan", func(ctx context.Context, s *research, cfg domain.InvocationConfig) (domain.Command, error) {
		return domain.Command{Goto: "search", Update: map[string]any{"topic": s.Topic}}, nil
	})

	search := nodetrace.Wrap(t, "search", func(ctx context.Context, s *research, cfg domain.InvocationConfig) (domain.Command, error) {
		id := nodetrace.CorrelationIDFrom(cfg)
		t.ModelCall("demo-model", 3, id)
		t.ToolBatch([]domain.ToolInvocation{
			{domain.KeyName: "web_search", "args": map[string]any{"q": s.Topic}},
			{domain.KeyName: "fetch_page"},
			{"args": "missing name"},
		}, id)
		if err := ctx.Err(); err != nil {
			return domain.Command{}, err
		}
		s.Findings = append(s.Findings, "finding about "+s.Topic, "second finding")
		return domain.Command{Goto: "summarize"}, nil
	})

	summarize := nodetrace.Wrap(t, "summarize", func(ctx context.Context, s *research, cfg domain.InvocationConfig) (*research, error) {
		s.Draft = fmt.Sprintf("%d findings on %s", len(s.Findings), s.Topic)
		return s, nil
	})

	run := func(n int) error {
		id := fmt.Sprintf("researcher-%d", n)
		cfg := domain.InvocationConfig{
			domain.KeyConfigurable: map[string]any{domain.KeyResearcherID: id},
		}
		state := &research{Topic: opts.Topic}

		if _, err := plan(ctx, state, cfg); err != nil {
			return err
		}
		t.Transition("plan", "search", domain.CorrelationID(id))
		if _, err := search(ctx, state, cfg); err != nil {
			t.Log(fmt.Sprintf("%s failed: %v", id, err), domain.LogError)
			return err
		}
		t.Transition("search", "summarize", domain.CorrelationID(id))
		if _, err := summarize(ctx, state, cfg); err != nil {
			return err
		}

		t.StateSummary(domain.Snapshot{
			{Key: "topic", Value: state.Topic},
			{Key: "findings", Value: state.Findings},
			{Key: "draft", Value: state.Draft},
		}, id+" state")
		return nil
	}

	t.Log(fmt.Sprintf("starting demo with %d researchers", opts.Researchers), domain.LogInfo)

	var wg sync.WaitGroup
	errs := make([]error, opts.Researchers)
	for i := range opts.Researchers {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs[n] = run(n + 1)
		}(i)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		t.Log("demo finished with errors", domain.LogWarning)
		return err
	}
	t.Log("demo finished", domain.LogSuccess)

	if path, err := t.LogPath(); err == nil {
		printSystemMessage(w, "Trace written to %s", path)
	}
	return nil
}
