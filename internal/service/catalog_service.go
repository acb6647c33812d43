package service

import (
	"context"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/catalog"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/repository"
)

// CatalogService serves the listing catalog.
type CatalogService interface {
	// ListAvailable returns what the store classifies as available.
	ListAvailable(ctx context.Context) ([]*model.Sim, error)
	// Search filters the available listings by phone number substring.
	Search(ctx context.Context, query string) ([]*model.Sim, error)
}

type catalogService struct {
	simRepo repository.SimRepository
}

func NewCatalogService(simRepo repository.SimRepository) CatalogService {
	return &catalogService{simRepo: simRepo}
}

func (s *catalogService) ListAvailable(ctx context.Context) ([]*model.Sim, error) {
	sims, err := s.simRepo.ListAvailable(ctx)
	if err != nil {
		return nil, persistence("list sims", err)
	}
	return sims, nil
}

func (s *catalogService) Search(ctx context.Context, query string) ([]*model.Sim, error) {
	sims, err := s.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Filter(sims, query), nil
}
