package events

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/logger"
)

type job struct {
	event model.OrderEvent
	enqAt time.Time
}

// Dispatcher publishes order events off the request path. Delivery is best
// effort: a full queue drops events and publish failures are only logged.
type Dispatcher struct {
	pub       Publisher
	ch        chan job
	timeout   time.Duration
	metricsCh chan time.Duration
	wg        sync.WaitGroup
}

func NewDispatcher(pub Publisher, queueSize int, timeout time.Duration) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1024
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{pub: pub, ch: make(chan job, queueSize), timeout: timeout, metricsCh: make(chan time.Duration, 4096)}
}

// Start launches workers and returns the stop function. Stop drains what is
// left in the queue until ctx is done, then waits for the workers to exit.
func (d *Dispatcher) Start(workers int) func(context.Context) error {
	if workers <= 0 {
		workers = 2
	}
	stopCh := make(chan struct{})
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for {
				select {
				case j := <-d.ch:
					d.publish(j)
				case <-stopCh:
					return
				}
			}
		}()
	}

	var once sync.Once
	return func(ctx context.Context) error {
		once.Do(func() {
			close(stopCh)
			d.wg.Wait()
			d.drain(ctx)
		})
		return nil
	}
}

func (d *Dispatcher) drain(ctx context.Context) {
	for {
		select {
		case j := <-d.ch:
			d.publish(j)
		case <-ctx.Done():
			if n := len(d.ch); n > 0 {
				logger.Warn("dispatcher stopped with undelivered events", zap.Int("count", n))
			}
			return
		default:
			return
		}
	}
}

func (d *Dispatcher) publish(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	topic := TopicOrderCreated
	if j.event.Type == model.OrderEventStatusChanged {
		topic = TopicOrderStatusChanged
	}
	if err := d.pub.PublishEvent(ctx, topic, j.event.OrderID, j.event); err != nil {
		logger.Error("publish order event failed",
			zap.String("topic", topic),
			zap.String("order_id", j.event.OrderID),
			zap.Error(err))
		return
	}
	select {
	case d.metricsCh <- time.Since(j.enqAt):
	default:
	}
}

// Enqueue never blocks.
func (d *Dispatcher) Enqueue(e model.OrderEvent) {
	select {
	case d.ch <- job{event: e, enqAt: time.Now()}:
	default:
		logger.Warn("event queue full, drop", zap.String("type", string(e.Type)), zap.String("order_id", e.OrderID))
	}
}

// Metrics delivers one enqueue-to-publish latency per published event.
func (d *Dispatcher) Metrics() <-chan time.Duration { return d.metricsCh }

// QueueLen returns the sampled queue length.
func (d *Dispatcher) QueueLen() int { return len(d.ch) }
