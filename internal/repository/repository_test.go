package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/config"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/catalog"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/database"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, InitSchema(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func seededSims(t *testing.T, db *gorm.DB) SimRepository {
	t.Helper()
	seed, err := catalog.DemoSeed(time.Now())
	require.NoError(t, err)
	repo := NewSimRepository(db)
	require.NoError(t, repo.Seed(context.Background(), seed.Sims))
	return repo
}

func TestSimListAvailableExcludesSold(t *testing.T) {
	repo := seededSims(t, setupDB(t))

	sims, err := repo.ListAvailable(context.Background())
	require.NoError(t, err)
	assert.Len(t, sims, 7)
	for _, s := range sims {
		assert.Equal(t, model.SimStatusAvailable, s.Status)
		assert.NotEqual(t, "0945.678.910", s.PhoneNumber)
	}
	assert.Equal(t, []string{"Sảnh Tiến", "Phong Thủy"}, sims[0].Category)
	require.NotNil(t, sims[0].Score)
	assert.Equal(t, 9.5, *sims[0].Score)
}

func TestSimSeedIsIdempotent(t *testing.T) {
	db := setupDB(t)
	repo := seededSims(t, db)

	require.NoError(t, repo.Seed(context.Background(), []*model.Sim{{ID: "99", PhoneNumber: "0999.999.999", Provider: model.ProviderOther, Status: model.SimStatusAvailable}}))
	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(8), n)
}

func TestSimGetByIDNotFound(t *testing.T) {
	repo := seededSims(t, setupDB(t))
	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	sim, err := repo.GetByID(context.Background(), "6")
	require.NoError(t, err)
	assert.Equal(t, model.SimStatusSold, sim.Status)
}

func newOrder(id string, createdAt int64) *model.Order {
	return &model.Order{
		ID:            id,
		SimID:         "2",
		PhoneNumber:   "0918.888.999",
		Price:         15000000,
		CustomerName:  "Trần Thị B",
		CustomerPhone: "0909111222",
		Status:        model.OrderStatusNew,
		CreatedAt:     createdAt,
	}
}

func TestOrderListNewestFirst(t *testing.T) {
	repo := NewGormOrderRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newOrder("a", 1000)))
	require.NoError(t, repo.Create(ctx, newOrder("b", 3000)))
	require.NoError(t, repo.Create(ctx, newOrder("c", 2000)))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{orders[0].ID, orders[1].ID, orders[2].ID})
}

func TestOrderListEmpty(t *testing.T) {
	orders, err := NewGormOrderRepository(setupDB(t)).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrderUpdateStatusIsConditional(t *testing.T) {
	repo := NewGormOrderRepository(setupDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newOrder("a", 1000)))

	require.NoError(t, repo.UpdateStatus(ctx, "a", model.OrderStatusNew, model.OrderStatusProcessing))
	err := repo.UpdateStatus(ctx, "a", model.OrderStatusNew, model.OrderStatusCancelled)
	assert.ErrorIs(t, err, ErrStatusConflict)

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusProcessing, got.Status)
	assert.Equal(t, int64(15000000), got.Price)
	assert.Equal(t, "0918.888.999", got.PhoneNumber)
}

func TestOrderGetByIDNotFound(t *testing.T) {
	_, err := NewGormOrderRepository(setupDB(t)).GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderSeedOnlyWhenEmpty(t *testing.T) {
	repo := NewGormOrderRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, []*model.Order{newOrder("s1", 1)}))
	require.NoError(t, repo.Seed(ctx, []*model.Order{newOrder("s2", 2)}))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCachedSimRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := NewCachedSimRepository(seededSims(t, setupDB(t)), client, time.Minute)
	ctx := context.Background()

	first, err := repo.ListAvailable(ctx)
	require.NoError(t, err)
	second, err := repo.ListAvailable(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), repo.StoreLoads())
	assert.True(t, mr.Exists(AvailableSimsKey))

	mr.FastForward(2 * time.Minute)
	_, err = repo.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), repo.StoreLoads())
}

func TestCachedSimRepositoryFallsThroughWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	repo := NewCachedSimRepository(seededSims(t, setupDB(t)), client, time.Minute)

	mr.Close()
	sims, err := repo.ListAvailable(context.Background())
	require.NoError(t, err)
	assert.Len(t, sims, 7)
}
