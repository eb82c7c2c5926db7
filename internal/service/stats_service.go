package service

import (
	"context"

	"github.com/Icer178/traffic-val/internal/domain"
)

type StatsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) Overview(ctx context.Context) (*domain.ViolationStats, error) {
	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := s.repo.CountByType(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}

	return &domain.ViolationStats{
		Total:    total,
		ByStatus: byStatus,
		ByType:   byType,
	}, nil
}
