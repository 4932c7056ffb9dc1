package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collectors for scratchdir.Dir metrics.
var (
	ScratchdirCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scratchdir_created_total",
		Help: "Cumulative number of scratch directories created.",
	})
	ScratchdirRemovedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scratchdir_removed_total",
		Help: "Cumulative number of scratch directories removed.",
	})
	ScratchdirRemoveFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scratchdir_remove_failures_total",
		Help: "Cumulative number of scratch directory removals which failed.",
	})
	ScratchdirFinalizedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scratchdir_finalized_total",
		Help: "Cumulative number of scratch directories removed by the finalizer safety net rather than an explicit Remove.",
	})
)

// ScratchdirCollectors lists collectors used by the scratchdir package.
func ScratchdirCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		ScratchdirCreatedTotal,
		ScratchdirRemovedTotal,
		ScratchdirRemoveFailuresTotal,
		ScratchdirFinalizedTotal,
	}
}
