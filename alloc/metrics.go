package alloc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	allocationsTotal = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "uvec_allocations_total",
		Help: "The total number of fresh storage buffers allocated",
	})

	reallocationsTotal = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "uvec_reallocations_total",
		Help: "The total number of storage buffers grown or shrunk in place",
	})

	freesTotal = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "uvec_frees_total",
		Help: "The total number of storage buffers released",
	})
)
