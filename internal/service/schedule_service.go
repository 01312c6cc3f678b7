package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tasatop/schedule-engine/internal/domain"
	"github.com/tasatop/schedule-engine/internal/metrics"
	"github.com/tasatop/schedule-engine/internal/repository"
	"github.com/tasatop/schedule-engine/internal/schedule"
)

// ScheduleService wraps the pure engine with caching, logging and
// metrics. The cache is best-effort: any cache failure falls through to
// a fresh computation.
type ScheduleService struct {
	cache  repository.ScheduleCache
	logger *zap.Logger
}

func NewScheduleService(cache repository.ScheduleCache, logger *zap.Logger) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{
		cache:  cache,
		logger: logger,
	}
}

// Generate returns the schedule for the validated input, from cache
// when possible.
func (s *ScheduleService) Generate(ctx context.Context, input domain.ScheduleInput) *domain.ScheduleResult {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, input); ok {
			metrics.ScheduleCache.WithLabelValues("hit").Inc()
			s.logger.Debug("schedule served from cache",
				zap.String("product", input.Product),
				zap.Int("term_months", input.TermMonths))
			return cached
		}
		metrics.ScheduleCache.WithLabelValues("miss").Inc()
	}

	result := schedule.Generate(input)
	metrics.SchedulesGenerated.WithLabelValues("ok").Inc()

	s.logger.Info("schedule generated",
		zap.String("product", input.Product),
		zap.String("currency", input.Currency),
		zap.Int("term_months", input.TermMonths),
		zap.Int("rows", len(result.Rows)),
		zap.Float64("total_deposit", result.Totals.TotalDeposit))

	if s.cache != nil {
		if err := s.cache.Set(ctx, input, result); err != nil {
			// Never fail a computation because the cache write did.
			s.logger.Warn("schedule cache write failed", zap.Error(err))
		}
	}

	return result
}
