package engine

import (
	"container/heap"
	"time"
)

// Timeline is a queue of delayed task records on simulation time.
// Tasks are plain values; the owner decides at fire time whether the task still applies.
// Not safe for concurrent use, owned by the single simulation goroutine
type Timeline[T any] struct {
	now   time.Duration
	seq   uint64
	queue taskQueue[T]
}

type scheduled[T any] struct {
	at      time.Duration
	seq     uint64
	payload T
}

// NewTimeline creates an empty timeline at time zero
func NewTimeline[T any]() *Timeline[T] {
	return &Timeline[T]{}
}

// Now returns the current simulation time
func (tl *Timeline[T]) Now() time.Duration {
	return tl.now
}

// Pending returns the number of tasks not yet fired
func (tl *Timeline[T]) Pending() int {
	return len(tl.queue)
}

// Schedule queues payload to fire delay after now. Negative delays fire immediately on the next Advance
func (tl *Timeline[T]) Schedule(delay time.Duration, payload T) {
	if delay < 0 {
		delay = 0
	}
	tl.seq++
	heap.Push(&tl.queue, scheduled[T]{at: tl.now + delay, seq: tl.seq, payload: payload})
}

// Advance moves time forward by dt and fires every due task in (time, schedule order).
// Now reports each task's own fire time during fire, so tasks scheduled from fire are
// relative to their parent and fire in the same Advance when due. Returns tasks fired
func (tl *Timeline[T]) Advance(dt time.Duration, fire func(T)) int {
	target := tl.now + max(dt, 0)
	fired := 0
	for len(tl.queue) > 0 && tl.queue[0].at <= target {
		task := heap.Pop(&tl.queue).(scheduled[T])
		tl.now = task.at
		fire(task.payload)
		fired++
	}
	tl.now = target
	return fired
}

// NextAt returns the fire time of the earliest pending task
func (tl *Timeline[T]) NextAt() (time.Duration, bool) {
	if len(tl.queue) == 0 {
		return 0, false
	}
	return tl.queue[0].at, true
}

type taskQueue[T any] []scheduled[T]

func (q taskQueue[T]) Len() int { return len(q) }

func (q taskQueue[T]) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue[T]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue[T]) Push(x any) { *q = append(*q, x.(scheduled[T])) }

func (q *taskQueue[T]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	var zero scheduled[T]
	old[n-1] = zero
	*q = old[:n-1]
	return item
}
