package builtins

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var builtinCalls = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "tuple_builtin_calls_total",
	Help: "The total number of Tuple builtin invocations, by outcome",
}, []string{"builtin", "outcome"})
