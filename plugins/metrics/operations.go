package metrics

import (
	"time"

	"go.uber.org/atomic"

	"github.com/iotaledger/balancedternary/plugins/webapi/ternary"
)

// region OperationCounter /////////////////////////////////////////////////////////////////////////////////////////////

// OperationCounter counts the executions and failures of a single kind of operation.
type OperationCounter struct {
	executed      atomic.Uint64
	failed        atomic.Uint64
	totalDuration atomic.Int64
}

// Executed returns the number of successfully executed operations.
func (o *OperationCounter) Executed() uint64 {
	return o.executed.Load()
}

// Failed returns the number of failed operations.
func (o *OperationCounter) Failed() uint64 {
	return o.failed.Load()
}

// AverageDuration returns the average time it took to execute a successful operation.
func (o *OperationCounter) AverageDuration() time.Duration {
	executed := o.executed.Load()
	if executed == 0 {
		return 0
	}

	return time.Duration(o.totalDuration.Load() / int64(executed))
}

func (o *OperationCounter) onExecuted(duration time.Duration) {
	o.totalDuration.Add(int64(duration))
	o.executed.Inc()
}

func (o *OperationCounter) onFailed() {
	o.failed.Inc()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

var (
	// operationCounters is only written during package initialization, so it can be read without locking.
	operationCounters = make(map[ternary.Operation]*OperationCounter)

	// executedSinceLastMeasurement counts the operations that were executed since the last OPS measurement.
	executedSinceLastMeasurement atomic.Uint64

	// operationsPerSecond holds the result of the last OPS measurement.
	operationsPerSecond atomic.Uint64
)

func init() {
	for _, operation := range ternary.Operations {
		operationCounters[operation] = new(OperationCounter)
	}
}

// Operation returns the counter of the given operation or nil if the operation is unknown.
func Operation(operation ternary.Operation) *OperationCounter {
	return operationCounters[operation]
}

// ExecutedOperations returns the number of successfully executed operations of all kinds.
func ExecutedOperations() (total uint64) {
	for _, counter := range operationCounters {
		total += counter.Executed()
	}

	return total
}

// FailedOperations returns the number of failed operations of all kinds.
func FailedOperations() (total uint64) {
	for _, counter := range operationCounters {
		total += counter.Failed()
	}

	return total
}

// OperationsPerSecond returns the number of operations executed during the last second.
func OperationsPerSecond() uint64 {
	return operationsPerSecond.Load()
}

func onOperationExecuted(event *ternary.OperationExecutedEvent) {
	if counter, exists := operationCounters[event.Operation]; exists {
		counter.onExecuted(event.Duration)
	}
	executedSinceLastMeasurement.Inc()
}

func onOperationFailed(event *ternary.OperationFailedEvent) {
	if counter, exists := operationCounters[event.Operation]; exists {
		counter.onFailed()
	}
}

// measureOperationsPerSecond stores and publishes the operations executed since the last call.
func measureOperationsPerSecond() {
	ops := executedSinceLastMeasurement.Swap(0)
	operationsPerSecond.Store(ops)

	Events.OPSUpdated.Trigger(&OPSUpdatedEvent{OPS: ops})
}
