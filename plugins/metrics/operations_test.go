package metrics

import (
	"testing"
	"time"

	"github.com/iotaledger/hive.go/generics/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/balancedternary/plugins/webapi/ternary"
)

func TestOperationCounter(t *testing.T) {
	counter := new(OperationCounter)
	assert.Equal(t, time.Duration(0), counter.AverageDuration())

	counter.onExecuted(2 * time.Millisecond)
	counter.onExecuted(4 * time.Millisecond)
	counter.onFailed()

	assert.Equal(t, uint64(2), counter.Executed())
	assert.Equal(t, uint64(1), counter.Failed())
	assert.Equal(t, 3*time.Millisecond, counter.AverageDuration())
}

func TestOperationCounters(t *testing.T) {
	executedBefore := ExecutedOperations()
	failedBefore := FailedOperations()
	addBefore := Operation(ternary.OperationAdd).Executed()
	evaluateFailedBefore := Operation(ternary.OperationEvaluate).Failed()

	onOperationExecuted(&ternary.OperationExecutedEvent{Operation: ternary.OperationAdd, Duration: 2 * time.Millisecond})
	onOperationExecuted(&ternary.OperationExecutedEvent{Operation: ternary.OperationAdd, Duration: 4 * time.Millisecond})
	onOperationFailed(&ternary.OperationFailedEvent{Operation: ternary.OperationEvaluate})
	onOperationExecuted(&ternary.OperationExecutedEvent{Operation: "unknown"})

	assert.Equal(t, addBefore+2, Operation(ternary.OperationAdd).Executed())
	assert.Equal(t, evaluateFailedBefore+1, Operation(ternary.OperationEvaluate).Failed())
	assert.Nil(t, Operation("unknown"))

	assert.Equal(t, executedBefore+2, ExecutedOperations())
	assert.Equal(t, failedBefore+1, FailedOperations())
}

func TestAttachEvents(t *testing.T) {
	attachEvents()
	defer detachEvents()

	executedBefore := Operation(ternary.OperationConvert).Executed()
	failedBefore := Operation(ternary.OperationConvert).Failed()

	ternary.Events.OperationExecuted.Trigger(&ternary.OperationExecutedEvent{Operation: ternary.OperationConvert, Duration: time.Millisecond})
	ternary.Events.OperationFailed.Trigger(&ternary.OperationFailedEvent{Operation: ternary.OperationConvert})

	assert.Equal(t, executedBefore+1, Operation(ternary.OperationConvert).Executed())
	assert.Equal(t, failedBefore+1, Operation(ternary.OperationConvert).Failed())
}

func TestMeasureOperationsPerSecond(t *testing.T) {
	var updates []uint64
	closure := event.NewClosure(func(update *OPSUpdatedEvent) {
		updates = append(updates, update.OPS)
	})
	Events.OPSUpdated.Hook(closure)
	defer Events.OPSUpdated.Detach(closure)

	measureOperationsPerSecond()

	for i := 0; i < 3; i++ {
		onOperationExecuted(&ternary.OperationExecutedEvent{Operation: ternary.OperationParse})
	}
	measureOperationsPerSecond()
	assert.Equal(t, uint64(3), OperationsPerSecond())

	measureOperationsPerSecond()
	assert.Equal(t, uint64(0), OperationsPerSecond())

	require.Len(t, updates, 3)
	assert.Equal(t, []uint64{3, 0}, updates[1:])
}
