package task

import (
	"context"
	"time"

	"github.com/haierkeys/lead-intention-service/internal/app"
	"github.com/haierkeys/lead-intention-service/internal/domain"
	"github.com/haierkeys/lead-intention-service/pkg/metrics"

	"github.com/pkg/errors"
)

func init() {
	Register(NewIntentionStatsTask)
}

// IntentionStatsTask 刷新已关联 / 未关联线索的意向数量指标
type IntentionStatsTask struct {
	repo     domain.IntentionRepository
	metrics  *metrics.Metrics
	interval time.Duration
}

// NewIntentionStatsTask 创建意向统计任务
func NewIntentionStatsTask(a *app.App) (Task, error) {
	if a == nil || a.IntentionRepo == nil || a.Metrics == nil {
		return nil, nil
	}
	return &IntentionStatsTask{
		repo:     a.IntentionRepo,
		metrics:  a.Metrics,
		interval: a.Config().GetStatsInterval(),
	}, nil
}

func (t *IntentionStatsTask) Name() string {
	return "IntentionStats"
}

func (t *IntentionStatsTask) LoopInterval() time.Duration {
	return t.interval
}

func (t *IntentionStatsTask) IsStartupRun() bool {
	return true
}

func (t *IntentionStatsTask) Run(ctx context.Context) error {
	linked, unlinked, err := t.repo.CountByLinkState(ctx)
	if err != nil {
		return errors.Wrap(err, "count intentions")
	}
	t.metrics.SetIntentionCounts(linked, unlinked)
	return nil
}
