package model

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventLoad       EventType = "load"
	EventFieldError EventType = "field_error"
	EventBatch      EventType = "batch"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Model     string    `json:"model"`
}

// LoadEvent is emitted after a record went through Load.
type LoadEvent struct {
	EventBase
	Snapshot Snapshot    `json:"snapshot"`
	Errors   ErrorReport `json:"errors,omitempty"`
}

// FieldErrorEvent is emitted for every field that failed during Load.
type FieldErrorEvent struct {
	EventBase
	Field string `json:"field"`
	Err   error  `json:"-"`
}

// BatchEvent is emitted after a ListModel finished Dumps or Loads.
type BatchEvent struct {
	EventBase
	Mode   string `json:"mode"` // "dump" or "load"
	Size   int    `json:"size"`
	Failed int    `json:"failed"`
}

// Hooks defines callbacks for record observability.
// Callbacks run synchronously on the caller's goroutine; nil ones are skipped.
type Hooks struct {
	OnLoad       func(*LoadEvent)
	OnFieldError func(*FieldErrorEvent)
	OnBatch      func(*BatchEvent)
}

// MergeHooks returns Hooks calling each of hooks in order.
func MergeHooks(hooks ...Hooks) Hooks {
	var merged Hooks
	for _, h := range hooks {
		merged.OnLoad = chain(merged.OnLoad, h.OnLoad)
		merged.OnFieldError = chain(merged.OnFieldError, h.OnFieldError)
		merged.OnBatch = chain(merged.OnBatch, h.OnBatch)
	}
	return merged
}

func chain[E any](a, b func(E)) func(E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e E) {
		a(e)
		b(e)
	}
}

func newBase(typ EventType, model string) EventBase {
	return EventBase{Timestamp: time.Now(), Type: typ, Model: model}
}
