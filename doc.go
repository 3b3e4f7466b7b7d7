/*
Package nodetrace traces the execution of named processing steps ("nodes") inside a larger
pipeline and prints correlated, human-readable trace events to the console and to an
append-only log file.

It is an instrumentation layer: the pipeline, its nodes and their business logic stay in the
host application. nodetrace only observes them.

# Concept

A Tracer owns the runtime toggles (a master switch plus one switch per category) and the log
sink. Node functions are wrapped with Wrap, which brackets every call with a start and an end
event correlated by the id found under configurable.researcher_id of the invocation config.
Log, StateSummary and ToolBatch can be called anywhere in the pipeline.

Every event is written as one contiguous block to both sinks, byte for byte identical. The log
file is created on first use under <dir>/logs/debug_<YYYYMMDD>_<HHMMSS>.log and reused until
Close. When the file cannot be written, tracing continues on the console only.

# Key Features

  - Transparent: wrapped nodes return exactly what the original returns, errors included.
  - Runtime toggles: category switches can change at any time (API, YAML, env, Redis, HTTP).
  - Never fails the pipeline: instrumentation errors are recovered and reported on a separate
    diagnostic slog.Logger.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/nodetrace"
		"github.com/aretw0/nodetrace/pkg/domain"
	)

	type State map[string]any

	func main() {
		tracer, err := nodetrace.New()
		if err != nil {
			log.Fatal(err)
		}
		defer tracer.Close()

		planner := nodetrace.Wrap(tracer, "planner",
			func(ctx context.Context, s State, cfg domain.InvocationConfig) (domain.Command, error) {
				tracer.ToolBatch([]domain.ToolInvocation{{"name": "search"}}, nodetrace.CorrelationIDFrom(cfg))
				return domain.Command{Goto: "writer"}, nil
			})

		cfg := domain.InvocationConfig{"configurable": map[string]any{"researcher_id": "r-1"}}
		if _, err := planner(context.Background(), State{}, cfg); err != nil {
			log.Fatal(err)
		}
	}
*/
package nodetrace
