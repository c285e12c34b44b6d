// Package observability provides hooks for metrics and tracing.
//
// This package enables optional instrumentation without adding hard
// dependencies on observability backends to the engine. Consumers register
// hooks at startup to receive events about pipeline stages and scheduled
// computations; libraries emit events through the registry.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    metrics := observability.NewPrometheus()
//	    observability.SetPipelineHooks(metrics)
//	    observability.SetSchedulerHooks(metrics)
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnStageStart(ctx, runID, "sort:heap-sort")
//	// ... run the stage ...
//	observability.Pipeline().OnStageComplete(ctx, runID, "sort:heap-sort", duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the pipeline composer.
type PipelineHooks interface {
	// Stage events
	OnStageStart(ctx context.Context, runID, stage string)
	OnStageComplete(ctx context.Context, runID, stage string, duration time.Duration, err error)

	// Run events
	OnRunComplete(ctx context.Context, runID string, stages int, duration time.Duration, err error)
}

// =============================================================================
// Scheduler Hooks
// =============================================================================

// SchedulerHooks receives events from the work-quantum scheduler.
type SchedulerHooks interface {
	// OnFrame records one resumption rendered for algorithm.
	OnFrame(ctx context.Context, algorithm string)

	// OnComputationComplete records a computation that ran to completion or
	// stopped early.
	OnComputationComplete(ctx context.Context, algorithm string, units, frames int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnStageStart(context.Context, string, string) {}
func (NoopPipelineHooks) OnStageComplete(context.Context, string, string, time.Duration, error) {
}
func (NoopPipelineHooks) OnRunComplete(context.Context, string, int, time.Duration, error) {}

// NoopSchedulerHooks is a no-op implementation of SchedulerHooks.
type NoopSchedulerHooks struct{}

func (NoopSchedulerHooks) OnFrame(context.Context, string) {}
func (NoopSchedulerHooks) OnComputationComplete(context.Context, string, int, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks  PipelineHooks  = NoopPipelineHooks{}
	schedulerHooks SchedulerHooks = NoopSchedulerHooks{}
	hooksMu        sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline runs.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetSchedulerHooks registers custom scheduler hooks.
func SetSchedulerHooks(h SchedulerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		schedulerHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Scheduler returns the registered scheduler hooks.
func Scheduler() SchedulerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return schedulerHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	schedulerHooks = NoopSchedulerHooks{}
}
