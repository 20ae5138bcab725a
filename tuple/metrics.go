package tuple

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var sortInconsistent = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "tuple_sort_inconsistent_total",
	Help: "The total number of sorts whose comparator did not describe a consistent order",
})
