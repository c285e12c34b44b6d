package observability

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnStageStart(ctx, "run", "build")
	p.OnStageComplete(ctx, "run", "build", time.Second, nil)
	p.OnRunComplete(ctx, "run", 3, time.Second, nil)

	s := NoopSchedulerHooks{}
	s.OnFrame(ctx, "heap-sort")
	s.OnComputationComplete(ctx, "heap-sort", 100, 10, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Scheduler().(NoopSchedulerHooks); !ok {
		t.Error("Scheduler() should return NoopSchedulerHooks by default")
	}

	custom := &testHooks{}
	SetPipelineHooks(custom)
	SetSchedulerHooks(custom)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks should set custom hooks")
	}
	if Scheduler() != custom {
		t.Error("SetSchedulerHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should keep the previous hooks")
	}
}

func TestPrometheusHandlerExposesMetrics(t *testing.T) {
	ctx := context.Background()
	p := NewPrometheus()

	p.OnFrame(ctx, "heap-sort")
	p.OnFrame(ctx, "heap-sort")
	p.OnComputationComplete(ctx, "heap-sort", 42, 2, time.Second, nil)
	p.OnStageComplete(ctx, "run", "sort:heap-sort", 2*time.Second, errors.New("boom"))
	p.OnRunComplete(ctx, "run", 1, time.Second, nil)

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()

	for _, want := range []string{
		`sortwheel_frames_total{algorithm="heap-sort"} 2`,
		`sortwheel_units_total{algorithm="heap-sort"} 42`,
		`sortwheel_computations_total{algorithm="heap-sort",outcome="ok"} 1`,
		`sortwheel_stage_errors_total{stage="sort:heap-sort"} 1`,
		`sortwheel_runs_total{outcome="ok"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestPrometheusInstancesAreIndependent(t *testing.T) {
	a := NewPrometheus()
	b := NewPrometheus()
	a.OnFrame(context.Background(), "merge-sort")

	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if strings.Contains(rec.Body.String(), `algorithm="merge-sort"`) {
		t.Error("second registry should not see the first registry's samples")
	}
}

type testHooks struct {
	NoopPipelineHooks
	NoopSchedulerHooks
}
