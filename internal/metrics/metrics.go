package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SchedulesGenerated counts schedule computations by outcome.
	SchedulesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedules_generated_total",
			Help: "Number of schedules generated",
		},
		[]string{"status"},
	)

	// ScheduleCache counts cache lookups by result.
	ScheduleCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_cache_total",
			Help: "Schedule cache lookups by result",
		},
		[]string{"result"},
	)

	// ScheduleExports counts PDF exports and whether the letterhead
	// image made it into the document.
	ScheduleExports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_exports_total",
			Help: "Schedule PDF exports by letterhead presence",
		},
		[]string{"letterhead"},
	)
)
