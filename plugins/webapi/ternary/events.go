package ternary

import (
	"time"

	"github.com/iotaledger/hive.go/generics/event"
)

// Operation names the kind of computation an endpoint performed.
type Operation string

const (
	// OperationParse parses balanced ternary symbols.
	OperationParse Operation = "parse"
	// OperationConvert converts a decimal integer.
	OperationConvert Operation = "convert"
	// OperationAdd adds two numbers.
	OperationAdd Operation = "add"
	// OperationSubtract subtracts two numbers.
	OperationSubtract Operation = "subtract"
	// OperationCompare compares two numbers.
	OperationCompare Operation = "compare"
	// OperationEvaluate evaluates an expression.
	OperationEvaluate Operation = "evaluate"
)

// Operations contains all Operations served by the endpoints.
var Operations = []Operation{OperationParse, OperationConvert, OperationAdd, OperationSubtract, OperationCompare, OperationEvaluate}

// Events defines the events of the plugin.
var Events *EventsStruct

// EventsStruct contains the events that are triggered by the ternary endpoints.
type EventsStruct struct {
	// OperationExecuted is triggered when a request was answered successfully.
	OperationExecuted *event.Event[*OperationExecutedEvent]
	// OperationFailed is triggered when a request was answered with an error.
	OperationFailed *event.Event[*OperationFailedEvent]
}

func newEvents() (new *EventsStruct) {
	return &EventsStruct{
		OperationExecuted: event.New[*OperationExecutedEvent](),
		OperationFailed:   event.New[*OperationFailedEvent](),
	}
}

func init() {
	Events = newEvents()
}

// OperationExecutedEvent is the payload of the OperationExecuted event.
type OperationExecutedEvent struct {
	Operation Operation
	Duration  time.Duration
}

// OperationFailedEvent is the payload of the OperationFailed event.
type OperationFailedEvent struct {
	Operation  Operation
	StatusCode int
	Error      error
}
