package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
)

type published struct {
	topic string
	key   string
	event model.OrderEvent
}

type fakePublisher struct {
	mu   sync.Mutex
	got  []published
	fail bool
}

func (p *fakePublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	if p.fail {
		return errors.New("broker down")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, published{topic: topic, key: key, event: event.(model.OrderEvent)})
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.got)
}

func TestDispatcherPublishesByType(t *testing.T) {
	defer goleak.VerifyNone(t)

	pub := &fakePublisher{}
	d := NewDispatcher(pub, 16, time.Second)
	stop := d.Start(2)

	d.Enqueue(model.OrderEvent{Type: model.OrderEventCreated, OrderID: "o1"})
	d.Enqueue(model.OrderEvent{Type: model.OrderEventStatusChanged, OrderID: "o1", Status: model.OrderStatusProcessing})

	require.Eventually(t, func() bool { return pub.count() == 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, stop(context.Background()))

	topics := map[string]string{}
	for _, p := range pub.got {
		topics[p.topic] = p.key
	}
	assert.Equal(t, map[string]string{TopicOrderCreated: "o1", TopicOrderStatusChanged: "o1"}, topics)
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	pub := &fakePublisher{}
	d := NewDispatcher(pub, 1, time.Second)

	d.Enqueue(model.OrderEvent{Type: model.OrderEventCreated, OrderID: "a"})
	d.Enqueue(model.OrderEvent{Type: model.OrderEventCreated, OrderID: "b"})
	assert.Equal(t, 1, d.QueueLen())

	stop := d.Start(1)
	require.NoError(t, stop(context.Background()))
	assert.Equal(t, 1, pub.count())
	assert.Equal(t, "a", pub.got[0].key)
}

func TestDispatcherSurvivesPublishFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	pub := &fakePublisher{fail: true}
	d := NewDispatcher(pub, 4, 50*time.Millisecond)
	stop := d.Start(1)
	d.Enqueue(model.OrderEvent{Type: model.OrderEventCreated, OrderID: "x"})

	require.Eventually(t, func() bool { return d.QueueLen() == 0 }, time.Second, 5*time.Millisecond)
	require.NoError(t, stop(context.Background()))
	assert.Zero(t, pub.count())
}

func TestStopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	stop := NewDispatcher(&fakePublisher{}, 1, time.Second).Start(3)
	require.NoError(t, stop(context.Background()))
	require.NoError(t, stop(context.Background()))
}
