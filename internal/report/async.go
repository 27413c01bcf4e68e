// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

package report

// Async decouples sink delivery from the engine's matching loop. The
// engine runs on a worker goroutine while the consumer drains events on
// its own; status events keep their order, progress events may be
// dropped when the consumer lags. Close must be called to flush.
type Async struct {
	events chan event
	done   chan struct{}
}

type eventKind int

const (
	evAppend eventKind = iota
	evReplace
	evProgress
)

type event struct {
	kind        eventKind
	segs        []Segment
	done, total int
}

// NewAsync returns an Async sink delivering to status and progress from
// a dedicated goroutine. Either sink may be nil.
func NewAsync(status StatusSink, progress ProgressSink, buffer int) *Async {
	if status == nil {
		status = NopStatus
	}
	if progress == nil {
		progress = NopProgress
	}
	if buffer <= 0 {
		buffer = 256
	}
	a := &Async{
		events: make(chan event, buffer),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(a.done)
		for ev := range a.events {
			switch ev.kind {
			case evAppend:
				status.Append(ev.segs...)
			case evReplace:
				status.ReplaceLast(ev.segs...)
			case evProgress:
				progress.Progress(ev.done, ev.total)
			}
		}
	}()
	return a
}

// Append queues a status line.
func (a *Async) Append(segs ...Segment) {
	a.events <- event{kind: evAppend, segs: segs}
}

// ReplaceLast queues a replaceable status line.
func (a *Async) ReplaceLast(segs ...Segment) {
	a.events <- event{kind: evReplace, segs: segs}
}

// Progress queues a progress pair. Progress is coarse and replaceable,
// so it is dropped rather than blocking when the buffer is full.
func (a *Async) Progress(done, total int) {
	select {
	case a.events <- event{kind: evProgress, done: done, total: total}:
	default:
	}
}

// Close flushes queued events and waits for delivery to finish.
func (a *Async) Close() {
	close(a.events)
	<-a.done
}
