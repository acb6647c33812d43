package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
)

// SimRepository is the read side of the catalog. Listings are only written by
// seeding.
type SimRepository interface {
	// ListAvailable returns listings with status available, ordered by id.
	ListAvailable(ctx context.Context) ([]*model.Sim, error)
	GetByID(ctx context.Context, id string) (*model.Sim, error)
	Seed(ctx context.Context, sims []*model.Sim) error
	Count(ctx context.Context) (int64, error)
}

type simRepository struct{ db *gorm.DB }

func NewSimRepository(db *gorm.DB) SimRepository { return &simRepository{db: db} }

func (r *simRepository) ListAvailable(ctx context.Context) ([]*model.Sim, error) {
	sims := make([]*model.Sim, 0)
	err := r.db.WithContext(ctx).
		Where("status = ?", model.SimStatusAvailable).
		Order("id").
		Find(&sims).Error
	return sims, err
}

func (r *simRepository) GetByID(ctx context.Context, id string) (*model.Sim, error) {
	var sim model.Sim
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&sim).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sim, nil
}

func (r *simRepository) Seed(ctx context.Context, sims []*model.Sim) error {
	if len(sims) == 0 {
		return nil
	}
	n, err := r.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil // already seeded
	}
	if err := r.db.WithContext(ctx).CreateInBatches(&sims, 500).Error; err != nil {
		return fmt.Errorf("seed sims: %w", err)
	}
	return nil
}

func (r *simRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Sim{}).Count(&count).Error
	return count, err
}
