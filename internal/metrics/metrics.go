package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls counts handler invocations by outcome
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fine_tool_calls_total",
			Help: "Handler invocations by tool and status",
		},
		[]string{"tool_name", "status"},
	)

	// Simulations counts successful simulations per loan type
	Simulations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fine_simulations_total",
			Help: "Simulations computed by loan type",
		},
		[]string{"loan_type"},
	)

	// CalculationErrors counts rejected inputs and engine failures
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fine_calculation_errors_total",
			Help: "Validation and calculation errors",
		},
		[]string{"tool_name", "error_type"},
	)

	// HistorySize tracks the number of simulations kept in the session
	HistorySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fine_history_size",
			Help: "Simulations currently kept in the session history",
		},
	)
)
