package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/nodetrace"
	"github.com/aretw0/nodetrace/pkg/adapters/redis"
	"github.com/aretw0/nodetrace/pkg/domain"
	"github.com/aretw0/nodetrace/pkg/metrics"
	"github.com/aretw0/nodetrace/pkg/toggles"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultWatchInterval is how often a remote toggle source is polled.
const DefaultWatchInterval = 2 * time.Second

// Options are the settings shared by every command.
type Options struct {
	ConfigPath string
	Dir        string
	RedisAddr  string
	Debug      bool

	// Console replaces os.Stdout as the trace console.
	Console io.Writer
	// Lookup resolves DEBUG_* variables (default: os.LookupEnv).
	Lookup func(string) (string, bool)
}

// Runtime bundles a Tracer with the resources the CLI created for it.
type Runtime struct {
	Tracer   *nodetrace.Tracer
	Registry *prometheus.Registry
	Source   toggles.Source
	Logger   *slog.Logger

	redis *redis.ToggleSource
}

// ResolveToggles computes the effective toggles: defaults, then the config file, then env.
// It also returns the log directory named by the config file (empty when unset).
func ResolveToggles(opts Options) (domain.ToggleSet, string, error) {
	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	ts := domain.DefaultToggles()
	var logDir string
	if opts.ConfigPath != "" {
		fc, err := toggles.LoadFile(opts.ConfigPath)
		if err != nil {
			return ts, "", err
		}
		if ts, err = fc.Toggles(); err != nil {
			return ts, "", fmt.Errorf("invalid toggle config %s: %w", opts.ConfigPath, err)
		}
		logDir = fc.LogDir
	}
	return toggles.ApplyEnv(ts, lookup), logDir, nil
}

// NewRuntime initializes a Tracer with standard CLI conventions.
// When a redis address is set, its toggles are loaded once before returning.
func NewRuntime(ctx context.Context, opts Options) (*Runtime, error) {
	logger := createLogger(opts.Debug)

	ts, logDir, err := ResolveToggles(opts)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	collector, err := metrics.New(reg)
	if err != nil {
		return nil, fmt.Errorf("error initializing metrics: %w", err)
	}

	tracerOpts := []nodetrace.Option{
		nodetrace.WithToggles(ts),
		nodetrace.WithLogger(logger),
		nodetrace.WithMetrics(collector),
	}
	if opts.Dir != "" {
		tracerOpts = append(tracerOpts, nodetrace.WithDir(opts.Dir))
	}
	if logDir != "" {
		tracerOpts = append(tracerOpts, nodetrace.WithLogDir(logDir))
	}
	if opts.Console != nil {
		tracerOpts = append(tracerOpts, nodetrace.WithConsole(opts.Console))
	}

	tracer, err := nodetrace.New(tracerOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing tracer: %w", err)
	}

	rt := &Runtime{
		Tracer:   tracer,
		Registry: reg,
		Logger:   logger,
	}

	switch {
	case opts.RedisAddr != "":
		rt.redis = redis.New(opts.RedisAddr, "", 0)
		rt.Source = rt.redis
		if err := toggles.Refresh(ctx, rt.Source, tracer.Toggles()); err != nil {
			rt.Close()
			return nil, fmt.Errorf("error loading toggles from redis: %w", err)
		}
	case opts.ConfigPath != "":
		rt.Source = toggles.FileSource{Path: opts.ConfigPath}
	}

	return rt, nil
}

// Watch polls the runtime's toggle source until ctx is done. It returns at once without a source.
func (rt *Runtime) Watch(ctx context.Context, interval time.Duration) {
	if rt.Source == nil {
		return
	}
	toggles.Watch(ctx, rt.Source, rt.Tracer.Toggles(), interval, rt.Logger)
}

// Close releases the tracer and the redis client.
func (rt *Runtime) Close() error {
	err := rt.Tracer.Close()
	if rt.redis != nil {
		if rerr := rt.redis.Close(); err == nil {
			err = rerr
		}
	}
	return err
}
