package task

import (
	"context"
	"time"

	"github.com/haierkeys/lead-intention-service/pkg/safe_close"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Task 定义任务接口
type Task interface {
	Name() string                  // 任务名称
	Run(ctx context.Context) error // 执行任务
	LoopInterval() time.Duration   // 执行间隔，<= 0 表示只在启动时执行
	IsStartupRun() bool            // 是否立即执行一次
}

// Scheduler 任务调度器，周期任务由 cron 以 @every 规则驱动
type Scheduler struct {
	logger *zap.Logger
	tasks  []Task
	sc     *safe_close.SafeClose
	cron   *cron.Cron
}

// NewScheduler 创建任务调度器
func NewScheduler(logger *zap.Logger, sc *safe_close.SafeClose) *Scheduler {
	return &Scheduler{
		logger: logger,
		tasks:  make([]Task, 0),
		sc:     sc,
		cron:   cron.New(),
	}
}

// AddTask 添加任务
func (s *Scheduler) AddTask(task Task) {
	s.tasks = append(s.tasks, task)
}

// Start 启动所有任务
func (s *Scheduler) Start() {
	if len(s.tasks) == 0 {
		s.logger.Info("no tasks to schedule")
		return
	}

	s.logger.Info("tasks starting", zap.Int("count", len(s.tasks)))

	for _, task := range s.tasks {
		s.startTask(task)
	}

	s.cron.Start()
	s.sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()
		<-closeSignal
		// 等待正在执行的任务结束
		<-s.cron.Stop().Done()
		s.logger.Info("tasks stopped")
	})
}

// startTask 启动单个任务
func (s *Scheduler) startTask(task Task) {
	if task.IsStartupRun() {
		go s.run(task, "startupRun")
	}

	if task.LoopInterval() <= 0 {
		return
	}

	spec := "@every " + task.LoopInterval().String()
	if _, err := s.cron.AddFunc(spec, func() { s.run(task, "loopRun") }); err != nil {
		s.logger.Error("task schedule error", zap.String("name", task.Name()), zap.String("spec", spec), zap.Error(err))
	}
}

// run 执行一次任务，panic 会被记录而不会终止调度器
func (s *Scheduler) run(task Task, mode string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("task panic",
				zap.String("name", task.Name()),
				zap.String("mode", mode),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()

	start := time.Now()
	if err := task.Run(context.Background()); err != nil {
		s.logger.Error("task running error",
			zap.String("name", task.Name()),
			zap.String("mode", mode),
			zap.Error(err))
		return
	}
	s.logger.Debug("task finished",
		zap.String("name", task.Name()),
		zap.String("mode", mode),
		zap.Duration("duration", time.Since(start)))
}
