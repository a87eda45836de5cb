package service

import (
	"context"
	"fmt"

	"bluestrek/internal/dto"
)

// StatsAPI is the slice of the remote API the dashboard needs.
type StatsAPI interface {
	DailyOrderStats(ctx context.Context, month, year int) ([]dto.DailyTotal, error)
}

type StatsService interface {
	// DailyOrderStats returns the raw per-day totals for one month. Series
	// building (zero-filling missing days, label thinning) is screen logic.
	DailyOrderStats(ctx context.Context, month, year int) ([]dto.DailyTotal, error)
}

type statsService struct {
	api StatsAPI
}

func NewStatsService(api StatsAPI) StatsService {
	return &statsService{api: api}
}

func (s *statsService) DailyOrderStats(ctx context.Context, month, year int) ([]dto.DailyTotal, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("stats: month out of range: %d", month)
	}
	return s.api.DailyOrderStats(ctx, month, year)
}
