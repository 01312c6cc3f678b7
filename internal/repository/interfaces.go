package repository

import (
	"context"

	"github.com/tasatop/schedule-engine/internal/domain"
)

// ScheduleCache stores computed schedules keyed by their input. A cache
// is always best-effort: a miss or a failed write must never block
// schedule generation.
type ScheduleCache interface {
	Get(ctx context.Context, input domain.ScheduleInput) (*domain.ScheduleResult, bool)
	Set(ctx context.Context, input domain.ScheduleInput, result *domain.ScheduleResult) error
}

// AssetCache stores the fetched letterhead image between exports.
type AssetCache interface {
	GetLetterhead(ctx context.Context) ([]byte, bool)
	SetLetterhead(ctx context.Context, data []byte) error
}
