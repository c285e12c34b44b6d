package observability

import (
	"context"
	"time"
)

// MultiPipeline returns hooks that forward every event to each of hooks in
// order. Nil entries are skipped.
func MultiPipeline(hooks ...PipelineHooks) PipelineHooks {
	var m multiPipeline
	for _, h := range hooks {
		if h != nil {
			m = append(m, h)
		}
	}
	return m
}

type multiPipeline []PipelineHooks

func (m multiPipeline) OnStageStart(ctx context.Context, runID, stage string) {
	for _, h := range m {
		h.OnStageStart(ctx, runID, stage)
	}
}

func (m multiPipeline) OnStageComplete(ctx context.Context, runID, stage string, d time.Duration, err error) {
	for _, h := range m {
		h.OnStageComplete(ctx, runID, stage, d, err)
	}
}

func (m multiPipeline) OnRunComplete(ctx context.Context, runID string, stages int, d time.Duration, err error) {
	for _, h := range m {
		h.OnRunComplete(ctx, runID, stages, d, err)
	}
}
