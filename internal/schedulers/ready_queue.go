package schedulers

import (
	"container/heap"
	"sort"
	"strings"

	"cpu-scheduler/internal/core"
)

// readyQueue is a min-heap of working processes ordered by less.
type readyQueue struct {
	items []*core.WorkingProcess
	less  func(a, b *core.WorkingProcess) bool
}

func newReadyQueue(capacity int, less func(a, b *core.WorkingProcess) bool) *readyQueue {
	rq := &readyQueue{
		items: make([]*core.WorkingProcess, 0, capacity),
		less:  less,
	}
	heap.Init(rq)
	return rq
}

func (rq readyQueue) Len() int { return len(rq.items) }

func (rq readyQueue) Less(i, j int) bool { return rq.less(rq.items[i], rq.items[j]) }

func (rq readyQueue) Swap(i, j int) { rq.items[i], rq.items[j] = rq.items[j], rq.items[i] }

func (rq *readyQueue) Push(x any) {
	rq.items = append(rq.items, x.(*core.WorkingProcess))
}

func (rq *readyQueue) Pop() any {
	old := rq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	rq.items = old[:n-1]
	return item
}

func (rq *readyQueue) push(p *core.WorkingProcess) { heap.Push(rq, p) }

func (rq *readyQueue) pop() *core.WorkingProcess { return heap.Pop(rq).(*core.WorkingProcess) }

// runQueue is a FIFO over the working set. Popped slots are not reused.
type runQueue struct {
	items []*core.WorkingProcess
	head  int
}

func newRunQueue(capacity int) *runQueue {
	return &runQueue{items: make([]*core.WorkingProcess, 0, capacity)}
}

func (q *runQueue) Len() int { return len(q.items) - q.head }

func (q *runQueue) push(p *core.WorkingProcess) { q.items = append(q.items, p) }

func (q *runQueue) pop() *core.WorkingProcess {
	p := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return p
}

// arrivals hands out working processes in arrival order.
type arrivals struct {
	pending []*core.WorkingProcess
	next    int
}

// newArrivals orders the working set by arrival time; ties keep the order given by tieBreak.
func newArrivals(set []core.WorkingProcess, tieBreak func(a, b *core.WorkingProcess) bool) *arrivals {
	pending := make([]*core.WorkingProcess, len(set))
	for i := range set {
		pending[i] = &set[i]
	}
	sort.SliceStable(pending, func(i, j int) bool {
		if pending[i].ArrivalTime != pending[j].ArrivalTime {
			return pending[i].ArrivalTime < pending[j].ArrivalTime
		}
		return tieBreak(pending[i], pending[j])
	})
	return &arrivals{pending: pending}
}

func (a *arrivals) remaining() bool { return a.next < len(a.pending) }

// peek returns the next process to arrive. Only valid while remaining() is true.
func (a *arrivals) peek() *core.WorkingProcess { return a.pending[a.next] }

// admit passes every process that has arrived by now to enqueue.
func (a *arrivals) admit(now int, enqueue func(*core.WorkingProcess)) {
	for a.next < len(a.pending) && a.pending[a.next].ArrivalTime <= now {
		enqueue(a.pending[a.next])
		a.next++
	}
}

func byID(a, b *core.WorkingProcess) bool { return lessID(a.ID, b.ID) }

// lessID orders ids ignoring case, with lower case first among ids that differ only in case.
func lessID(a, b string) bool {
	foldedA, foldedB := strings.ToLower(a), strings.ToLower(b)
	if foldedA != foldedB {
		return foldedA < foldedB
	}
	return a > b
}

func byIndex(a, b *core.WorkingProcess) bool { return a.Index < b.Index }

// timeBound is the latest instant any valid schedule of set can reach.
func timeBound(set []core.WorkingProcess) int {
	var maxArrival, totalBurst int
	for i := range set {
		maxArrival = max(maxArrival, set[i].ArrivalTime)
		totalBurst += set[i].BurstTime
	}
	return maxArrival + totalBurst
}
