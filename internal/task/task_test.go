package task

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/haierkeys/lead-intention-service/internal/domain"
	"github.com/haierkeys/lead-intention-service/pkg/metrics"
	"github.com/haierkeys/lead-intention-service/pkg/safe_close"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingTask struct {
	runs     atomic.Int32
	interval time.Duration
	startup  bool
	panics   bool
}

func (t *countingTask) Name() string                { return "counting" }
func (t *countingTask) LoopInterval() time.Duration { return t.interval }
func (t *countingTask) IsStartupRun() bool          { return t.startup }
func (t *countingTask) Run(ctx context.Context) error {
	t.runs.Add(1)
	if t.panics {
		panic("boom")
	}
	return nil
}

func TestScheduler_StartupAndLoop(t *testing.T) {
	sc := safe_close.NewSafeClose()
	s := NewScheduler(zap.NewNop(), sc)
	task := &countingTask{interval: time.Second, startup: true}
	s.AddTask(task)
	s.Start()

	require.Eventually(t, func() bool { return task.runs.Load() >= 1 }, time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return task.runs.Load() >= 2 }, 3*time.Second, 50*time.Millisecond)

	sc.SendCloseSignal(nil)
	assert.NoError(t, sc.WaitClosed())
}

func TestScheduler_PanicIsRecovered(t *testing.T) {
	sc := safe_close.NewSafeClose()
	s := NewScheduler(zap.NewNop(), sc)
	task := &countingTask{startup: true, panics: true}
	s.AddTask(task)
	s.Start()

	require.Eventually(t, func() bool { return task.runs.Load() == 1 }, time.Second, 10*time.Millisecond)

	sc.SendCloseSignal(nil)
	assert.NoError(t, sc.WaitClosed())
}

func TestScheduler_NoTasks(t *testing.T) {
	sc := safe_close.NewSafeClose()
	NewScheduler(zap.NewNop(), sc).Start()

	sc.SendCloseSignal(nil)
	assert.NoError(t, sc.WaitClosed())
}

type fakeIntentionRepo struct {
	domain.IntentionRepository
	linked, unlinked int64
	err              error
}

func (f *fakeIntentionRepo) CountByLinkState(ctx context.Context) (int64, int64, error) {
	return f.linked, f.unlinked, f.err
}

func TestIntentionStatsTask(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	repo := &fakeIntentionRepo{linked: 3, unlinked: 7}
	task := &IntentionStatsTask{repo: repo, metrics: m, interval: time.Minute}

	assert.Equal(t, "IntentionStats", task.Name())
	assert.True(t, task.IsStartupRun())
	assert.Equal(t, time.Minute, task.LoopInterval())

	require.NoError(t, task.Run(context.Background()))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.IntentionsByLinkage.WithLabelValues("linked")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.IntentionsByLinkage.WithLabelValues("unlinked")))

	repo.err = errors.New("database is locked")
	assert.ErrorIs(t, task.Run(context.Background()), repo.err)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.IntentionsByLinkage.WithLabelValues("linked")))
}

func TestManager_SkipsDisabledTasks(t *testing.T) {
	sc := safe_close.NewSafeClose()
	m := NewManager(zap.NewNop(), sc, nil)

	require.NoError(t, m.RegisterTasks())
	assert.Empty(t, m.scheduler.tasks)
	assert.NotEmpty(t, GetFactories())
}
