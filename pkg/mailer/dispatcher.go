package mailer

import (
	"context"
	"time"

	"github.com/haierkeys/lead-intention-service/pkg/workerpool"
)

// Dispatcher runs sends on a bounded worker pool and waits for the outcome,
// so callers still see the driver's error.
// Dispatcher 通过 Worker Pool 限制并发发送，调用方同步获得结果
type Dispatcher struct {
	sender  Sender
	pool    *workerpool.Pool
	timeout time.Duration
}

var _ Sender = (*Dispatcher)(nil)

func NewDispatcher(sender Sender, pool *workerpool.Pool, timeout time.Duration) *Dispatcher {
	return &Dispatcher{sender: sender, pool: pool, timeout: timeout}
}

func (d *Dispatcher) Send(ctx context.Context, msg *Message) error {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	if d.pool == nil {
		return d.sender.Send(ctx, msg)
	}
	return d.pool.Submit(ctx, func(ctx context.Context) error {
		return d.sender.Send(ctx, msg)
	})
}
