package domain

import (
	m "fixpass.dev/pkg/fixpass/internal/model"
)

// workQueue holds the candidates still awaiting a decision in arrival order.
type workQueue struct {
	items []m.FixCandidate
}

func newWorkQueue(candidates []m.FixCandidate) *workQueue {
	items := make([]m.FixCandidate, len(candidates))
	copy(items, candidates)

	return &workQueue{items: items}
}

func (q *workQueue) Len() int {
	return len(q.items)
}

// Front classifies the run at the head of the queue.
func (q *workQueue) Front() Run {
	return ClassifyRun(q.items)
}

// Drop removes the first n candidates.
func (q *workQueue) Drop(n int) {
	if n > len(q.items) {
		n = len(q.items)
	}

	q.items = q.items[n:]
}

// Take removes every candidate matching keep and returns them in queue order.
func (q *workQueue) Take(keep func(m.FixCandidate) bool) []m.FixCandidate {
	var taken []m.FixCandidate

	rest := make([]m.FixCandidate, 0, len(q.items))

	for _, item := range q.items {
		if keep(item) {
			taken = append(taken, item)
			continue
		}

		rest = append(rest, item)
	}

	q.items = rest

	return taken
}
