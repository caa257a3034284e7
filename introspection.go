package fieldpath

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Internal metrics for descriptor caching and buffer pooling.
var (
	descriptorLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldpath_descriptor_cache_lookups_total",
			Help: "Number of descriptor cache lookups, partitioned by hit or miss.",
		},
		[]string{"result"},
	)
	invalidPaths = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldpath_invalid_paths_total",
			Help: "Number of rejected path declarations, partitioned by declaration source.",
		},
		[]string{"source"},
	)
	blocksAcquired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fieldpath_buffer_blocks_acquired_total",
			Help: "Number of overflow blocks taken from the shared pool by name builders.",
		},
	)
	blocksReleased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fieldpath_buffer_blocks_released_total",
			Help: "Number of overflow blocks returned to the shared pool.",
		},
	)
)

func descriptorLookupInc(hit bool) {
	if hit {
		descriptorLookups.WithLabelValues("hit").Inc()
		return
	}
	descriptorLookups.WithLabelValues("miss").Inc()
}

func invalidPathInc(source string) {
	invalidPaths.WithLabelValues(source).Inc()
}
