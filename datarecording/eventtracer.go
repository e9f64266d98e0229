package datarecording

import (
	"github.com/jwallnoefer/requsim/sim"
)

// EventTraceEntry is one row of the event trace table.
type EventTraceEntry struct {
	Time       float64
	EventType  string
	Successful bool
}

// An EventTracer is a hook that records every event resolution into a
// DataRecorder table. Attach it to an EventQueue with AcceptHook.
type EventTracer struct {
	recorder  DataRecorder
	tableName string
}

// NewEventTracer creates an EventTracer writing to the given table, which
// it creates on the recorder.
func NewEventTracer(recorder DataRecorder, tableName string) *EventTracer {
	recorder.CreateTable(tableName, EventTraceEntry{})
	return &EventTracer{
		recorder:  recorder,
		tableName: tableName,
	}
}

// Func records the resolution result.
func (t *EventTracer) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosAfterEvent {
		return
	}

	result, ok := ctx.Detail.(sim.Result)
	if !ok {
		return
	}

	t.recorder.InsertData(t.tableName, EventTraceEntry{
		Time:       float64(result.Event.Time()),
		EventType:  result.EventType,
		Successful: result.Successful,
	})
}
