package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/iotaledger/balancedternary/plugins/metrics"
	"github.com/iotaledger/balancedternary/plugins/webapi/ternary"
)

var (
	executedOperations   *prometheus.GaugeVec
	failedOperations     *prometheus.GaugeVec
	averageOperationTime *prometheus.GaugeVec
	operationsPerSecond  prometheus.Gauge
)

func registerOperationMetrics(registry *prometheus.Registry) {
	executedOperations = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ternary_operations_executed_total",
		Help: "Number of successfully executed operations per kind.",
	}, []string{"operation"})

	failedOperations = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ternary_operations_failed_total",
		Help: "Number of failed operations per kind.",
	}, []string{"operation"})

	averageOperationTime = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ternary_operations_average_duration_seconds",
		Help: "Average duration of a successful operation per kind.",
	}, []string{"operation"})

	operationsPerSecond = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ternary_operations_per_second",
		Help: "Number of operations executed during the last second.",
	})

	registry.MustRegister(executedOperations)
	registry.MustRegister(failedOperations)
	registry.MustRegister(averageOperationTime)
	registry.MustRegister(operationsPerSecond)

	addCollect(collectOperationMetrics)
}

func collectOperationMetrics() {
	for _, operation := range ternary.Operations {
		counter := metrics.Operation(operation)

		executedOperations.WithLabelValues(string(operation)).Set(float64(counter.Executed()))
		failedOperations.WithLabelValues(string(operation)).Set(float64(counter.Failed()))
		averageOperationTime.WithLabelValues(string(operation)).Set(counter.AverageDuration().Seconds())
	}

	operationsPerSecond.Set(float64(metrics.OperationsPerSecond()))
}
