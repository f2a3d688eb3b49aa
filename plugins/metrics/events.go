package metrics

import (
	"github.com/iotaledger/hive.go/generics/event"
)

// Events defines the events of the plugin.
var Events *EventsStruct

// EventsStruct contains the events of the metrics plugin.
type EventsStruct struct {
	// OPSUpdated is fired when the operations per second metric is updated.
	OPSUpdated *event.Event[*OPSUpdatedEvent]
}

func newEvents() (new *EventsStruct) {
	return &EventsStruct{
		OPSUpdated: event.New[*OPSUpdatedEvent](),
	}
}

func init() {
	Events = newEvents()
}

// OPSUpdatedEvent carries the number of operations executed during the last measurement interval.
type OPSUpdatedEvent struct {
	OPS uint64
}
