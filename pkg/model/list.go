package model

import (
	"iter"
	"maps"
)

// ListModel maps batches of records. Each Dumps or Loads call computes the
// whole batch up front, then exposes it through a forward-only cursor that is
// only rewound by the next Dumps or Loads.
// It is not safe for concurrent use.
type ListModel struct {
	def     *Definition
	results []Result
	pos     int
}

// Definition returns the declaration the list was created from.
func (l *ListModel) Definition() *Definition { return l.def }

// Dumps dumps every record into its own fresh Model and returns the
// snapshots in input order.
func (l *ListModel) Dumps(raws []Record) []Snapshot {
	results := make([]Result, 0, len(raws))
	snapshots := make([]Snapshot, 0, len(raws))
	for _, raw := range raws {
		snap := l.def.New().Dump(raw)
		results = append(results, Result{Snapshot: snap})
		snapshots = append(snapshots, maps.Clone(snap))
	}
	l.reset(results)
	l.emit("dump", 0)
	return snapshots
}

// Loads loads every record into its own fresh Model. One record's errors
// never stop the following records from being processed.
func (l *ListModel) Loads(raws []Record) []Result {
	results := make([]Result, 0, len(raws))
	failed := 0
	for _, raw := range raws {
		snap, report := l.def.New().Load(raw)
		if !report.Valid() {
			failed++
		}
		results = append(results, Result{Snapshot: snap, Errors: report})
	}
	l.reset(results)
	l.emit("load", failed)
	return l.Results()
}

// Len returns the number of records in the most recent batch.
func (l *ListModel) Len() int { return len(l.results) }

// Next returns the result under the cursor and advances it.
// Once every result was returned it reports false, and keeps doing so until
// the next Dumps or Loads.
func (l *ListModel) Next() (Result, bool) {
	if l.pos >= len(l.results) {
		return Result{}, false
	}
	r := l.results[l.pos]
	l.pos++
	return r, true
}

// Remaining returns how many results Next has yet to return.
func (l *ListModel) Remaining() int { return len(l.results) - l.pos }

// All iterates the remaining results with their batch index, advancing the
// same cursor as Next. Breaking out of the loop leaves the cursor after the
// last yielded result.
func (l *ListModel) All() iter.Seq2[int, Result] {
	return func(yield func(int, Result) bool) {
		for {
			i := l.pos
			r, ok := l.Next()
			if !ok || !yield(i, r) {
				return
			}
		}
	}
}

// Results returns a copy of the whole batch without moving the cursor.
// Snapshots and reports are copied as well.
func (l *ListModel) Results() []Result {
	out := make([]Result, len(l.results))
	for i, r := range l.results {
		out[i] = Result{Snapshot: maps.Clone(r.Snapshot), Errors: maps.Clone(r.Errors)}
	}
	return out
}

func (l *ListModel) reset(results []Result) {
	l.results = results
	l.pos = 0
}

func (l *ListModel) emit(mode string, failed int) {
	l.def.logger.Debug("batch mapped",
		"model", l.def.name,
		"mode", mode,
		"size", len(l.results),
		"failed", failed)

	if h := l.def.hooks.OnBatch; h != nil {
		h(&BatchEvent{
			EventBase: newBase(EventBatch, l.def.name),
			Mode:      mode,
			Size:      len(l.results),
			Failed:    failed,
		})
	}
}
