// Package workerpool 提供有界并发的 Worker Pool
// 用于限制对外连接（邮件发送）的并发量
package workerpool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	// ErrPoolFull 任务队列已满
	ErrPoolFull = errors.New("worker pool queue is full")
	// ErrPoolClosed Worker Pool 已关闭
	ErrPoolClosed = errors.New("worker pool is closed")
)

// Config Worker Pool 配置
type Config struct {
	// Name 用于日志区分不同的池
	Name string
	// MaxWorkers 最大并发 worker 数量，默认 4
	MaxWorkers int
	// QueueSize 任务队列大小，默认 64
	QueueSize int
}

type job struct {
	ctx  context.Context
	fn   func(context.Context) error
	done chan error
}

// Pool bounded set of goroutines draining a job queue
type Pool struct {
	cfg    Config
	logger *zap.Logger

	jobs chan job
	wg   sync.WaitGroup

	active    atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.RWMutex
	closed bool
}

// New 创建并启动 Worker Pool
func New(cfg Config, logger *zap.Logger) *Pool {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.Name == "" {
		cfg.Name = "default"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		cfg:    cfg,
		logger: logger.With(zap.String("pool", cfg.Name)),
		jobs:   make(chan job, cfg.QueueSize),
		ctx:    ctx,
		cancel: cancel,
	}

	for i := 0; i < cfg.MaxWorkers; i++ {
		p.wg.Add(1)
		go p.work()
	}

	p.logger.Info("worker pool started",
		zap.Int("maxWorkers", cfg.MaxWorkers),
		zap.Int("queueSize", cfg.QueueSize))

	return p
}

func (p *Pool) work() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case j, ok := <-p.jobs:
			if !ok {
				return
			}
			p.run(j)
		}
	}
}

func (p *Pool) run(j job) {
	p.active.Add(1)
	defer p.active.Add(-1)

	var err error
	if err = j.ctx.Err(); err == nil {
		err = j.fn(j.ctx)
	}

	if err != nil {
		p.failed.Add(1)
	} else {
		p.completed.Add(1)
	}

	if j.done != nil {
		j.done <- err
	}
}

func (p *Pool) enqueue(j job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}
	select {
	case p.jobs <- j:
		return nil
	default:
		return ErrPoolFull
	}
}

// enqueueWait blocks until the job is queued, ctx ends or the pool is cancelled.
// The read lock keeps Shutdown from closing jobs under a pending send.
func (p *Pool) enqueueWait(ctx context.Context, j job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}
	select {
	case p.jobs <- j:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return ErrPoolClosed
	}
}

// Submit runs fn on a worker and waits for its result.
// A full queue makes Submit wait for a free slot instead of failing.
// Submit 提交任务并等待执行结果，队列满时阻塞等待
func (p *Pool) Submit(ctx context.Context, fn func(context.Context) error) error {
	done := make(chan error, 1)
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.enqueueWait(ctx, job{ctx: ctx, fn: fn, done: done}); err != nil {
		return err
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SubmitAsync 异步提交任务，不等待结果；队列满时返回 ErrPoolFull
func (p *Pool) SubmitAsync(ctx context.Context, fn func(context.Context) error) error {
	return p.enqueue(job{ctx: ctx, fn: fn})
}

// Stats 当前运行指标
type Stats struct {
	MaxWorkers int   `json:"max_workers"`
	Active     int64 `json:"active"`
	Queued     int   `json:"queued"`
	Completed  int64 `json:"completed"`
	Failed     int64 `json:"failed"`
	Closed     bool  `json:"closed"`
}

// Stats 获取指标快照
func (p *Pool) Stats() Stats {
	p.mu.RLock()
	closed := p.closed
	p.mu.RUnlock()

	return Stats{
		MaxWorkers: p.cfg.MaxWorkers,
		Active:     p.active.Load(),
		Queued:     len(p.jobs),
		Completed:  p.completed.Load(),
		Failed:     p.failed.Load(),
		Closed:     closed,
	}
}

// Shutdown stops accepting jobs and waits for queued ones to drain.
// If ctx expires first the workers are cancelled.
// Shutdown 停止接收任务并等待队列清空，超时则强制取消
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.logger.Info("worker pool shutting down",
		zap.Int64("active", p.active.Load()),
		zap.Int("queued", len(p.jobs)))

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		p.logger.Warn("worker pool shutdown timeout, forcing cancellation")
		return ctx.Err()
	}
}
