package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/config"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/repository"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/database"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []model.OrderEvent
}

func (n *recordingNotifier) Enqueue(e model.OrderEvent) {
	n.mu.Lock()
	n.events = append(n.events, e)
	n.mu.Unlock()
}

// tickingClock advances one millisecond per call.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Millisecond)
		return t
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("order-%d", n)
	}
}

func newOrderRepo(t *testing.T) repository.OrderRepository {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, repository.InitSchema(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return repository.NewGormOrderRepository(db)
}

func newOrderService(t *testing.T, notifier OrderNotifier) OrderService {
	return NewOrderService(newOrderRepo(t), notifier, WithClock(tickingClock()), WithIDGenerator(sequentialIDs()))
}

var goldenDraft = model.OrderDraft{
	SimID:         "2",
	PhoneNumber:   "0918.888.999",
	Price:         15000000,
	CustomerName:  "Trần Thị B",
	CustomerPhone: "0909111222",
	Address:       "TP.HCM",
}

func TestCreateOrderSnapshotsListing(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newOrderService(t, notifier)

	order, err := svc.Create(context.Background(), goldenDraft)
	require.NoError(t, err)

	assert.Equal(t, model.OrderStatusNew, order.Status)
	assert.Equal(t, int64(15000000), order.Price)
	assert.Equal(t, "0918.888.999", order.PhoneNumber)
	assert.NotZero(t, order.CreatedAt)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, model.OrderEventCreated, notifier.events[0].Type)
	assert.Equal(t, order.ID, notifier.events[0].OrderID)
}

func TestCreateThenCompleteDirectlyIsRejected(t *testing.T) {
	svc := newOrderService(t, nil)
	ctx := context.Background()

	order, err := svc.Create(ctx, goldenDraft)
	require.NoError(t, err)

	_, err = svc.Transition(ctx, order.ID, model.OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	orders, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, model.OrderStatusNew, orders[0].Status)
}

func TestCreateRequiresCustomerNameAndPhone(t *testing.T) {
	svc := newOrderService(t, nil)
	ctx := context.Background()

	for _, d := range []model.OrderDraft{
		{PhoneNumber: "0912.345.678", CustomerPhone: "0909"},
		{PhoneNumber: "0912.345.678", CustomerName: "A"},
		{PhoneNumber: "0912.345.678", CustomerName: "   ", CustomerPhone: "0909"},
	} {
		_, err := svc.Create(ctx, d)
		assert.ErrorIs(t, err, ErrInvalidOrder)
	}

	d := goldenDraft
	d.Address = ""
	_, err := svc.Create(ctx, d)
	assert.NoError(t, err, "address is optional")
}

func TestTransitionGraph(t *testing.T) {
	statuses := []model.OrderStatus{model.OrderStatusNew, model.OrderStatusProcessing, model.OrderStatusCompleted, model.OrderStatusCancelled}
	// paths from new that reach each starting status
	reach := map[model.OrderStatus][]model.OrderStatus{
		model.OrderStatusNew:        nil,
		model.OrderStatusProcessing: {model.OrderStatusProcessing},
		model.OrderStatusCompleted:  {model.OrderStatusProcessing, model.OrderStatusCompleted},
		model.OrderStatusCancelled:  {model.OrderStatusCancelled},
	}

	for _, from := range statuses {
		for _, to := range append(statuses, "shipped") {
			t.Run(fmt.Sprintf("%s->%s", from, to), func(t *testing.T) {
				svc := newOrderService(t, nil)
				ctx := context.Background()
				order, err := svc.Create(ctx, goldenDraft)
				require.NoError(t, err)
				for _, step := range reach[from] {
					_, err := svc.Transition(ctx, order.ID, step)
					require.NoError(t, err)
				}

				got, err := svc.Transition(ctx, order.ID, to)
				if model.CanTransition(from, to) {
					require.NoError(t, err)
					assert.Equal(t, to, got.Status)
				} else {
					assert.ErrorIs(t, err, ErrInvalidTransition)
				}
			})
		}
	}
}

func TestTransitionUnknownOrder(t *testing.T) {
	svc := newOrderService(t, nil)
	_, err := svc.Transition(context.Background(), "missing", model.OrderStatusProcessing)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestTransitionKeepsSnapshotAndNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newOrderService(t, notifier)
	ctx := context.Background()

	order, err := svc.Create(ctx, goldenDraft)
	require.NoError(t, err)
	got, err := svc.Transition(ctx, order.ID, model.OrderStatusProcessing)
	require.NoError(t, err)

	assert.Equal(t, order.Price, got.Price)
	assert.Equal(t, order.PhoneNumber, got.PhoneNumber)
	require.Len(t, notifier.events, 2)
	assert.Equal(t, model.OrderEventStatusChanged, notifier.events[1].Type)
	assert.Equal(t, model.OrderStatusNew, notifier.events[1].PreviousStatus)
	assert.Equal(t, model.OrderStatusProcessing, notifier.events[1].Status)
}

func TestListSortedNewestFirstAcrossMutations(t *testing.T) {
	svc := newOrderService(t, nil)
	ctx := context.Background()

	assertSorted := func() {
		orders, err := svc.List(ctx)
		require.NoError(t, err)
		for i := 1; i < len(orders); i++ {
			assert.GreaterOrEqual(t, orders[i-1].CreatedAt, orders[i].CreatedAt)
		}
	}

	var ids []string
	for i := 0; i < 4; i++ {
		o, err := svc.Create(ctx, goldenDraft)
		require.NoError(t, err)
		ids = append(ids, o.ID)
		assertSorted()
	}

	_, err := svc.Transition(ctx, ids[0], model.OrderStatusProcessing)
	require.NoError(t, err)
	assertSorted()
	_, err = svc.Transition(ctx, ids[2], model.OrderStatusCancelled)
	require.NoError(t, err)
	assertSorted()

	orders, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, ids[3], orders[0].ID)
}

type brokenOrderRepo struct {
	repository.OrderRepository
	err error
}

func (r brokenOrderRepo) Create(context.Context, *model.Order) error { return r.err }
func (r brokenOrderRepo) List(context.Context) ([]*model.Order, error) {
	return nil, r.err
}
func (r brokenOrderRepo) GetByID(context.Context, string) (*model.Order, error) {
	return nil, r.err
}

func TestStoreFailuresSurfaceAsPersistenceError(t *testing.T) {
	storeErr := errors.New("connection reset")
	svc := NewOrderService(brokenOrderRepo{err: storeErr}, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, goldenDraft)
	require.Error(t, err)
	assert.True(t, IsPersistence(err))
	assert.ErrorIs(t, err, storeErr)

	_, err = svc.List(ctx)
	assert.True(t, IsPersistence(err))

	_, err = svc.Transition(ctx, "x", model.OrderStatusProcessing)
	assert.True(t, IsPersistence(err))
}

type fakeSimRepo struct {
	repository.SimRepository
	sims []*model.Sim
	err  error
}

func (r fakeSimRepo) ListAvailable(context.Context) ([]*model.Sim, error) { return r.sims, r.err }

func TestCatalogSearchUsesStoreFilteredListings(t *testing.T) {
	// the store has already dropped 0945.678.910 (sold)
	svc := NewCatalogService(fakeSimRepo{sims: []*model.Sim{
		{ID: "1", PhoneNumber: "0912.345.678", Status: model.SimStatusAvailable},
	}})
	ctx := context.Background()

	all, err := svc.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	hit, err := svc.Search(ctx, "912")
	require.NoError(t, err)
	require.Len(t, hit, 1)
	assert.Equal(t, "0912.345.678", hit[0].PhoneNumber)

	miss, err := svc.Search(ctx, "945")
	require.NoError(t, err)
	assert.Empty(t, miss)
}

func TestCatalogStoreFailure(t *testing.T) {
	svc := NewCatalogService(fakeSimRepo{err: errors.New("down")})
	_, err := svc.Search(context.Background(), "")
	assert.True(t, IsPersistence(err))
}
