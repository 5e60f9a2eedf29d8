package search

// item is one priority-queue entry: a cell index keyed by its tentative
// distance, with the cell's creation sequence id as tie-break so
// equal-distance cells pop in a stable, reproducible order.
type item struct {
	dist int
	seq  int
	cell int
	pos  int // index in the heap, maintained by Swap
}

// queue is a min-heap of items implementing container/heap.Interface.
type queue []*item

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].seq < q[j].seq
}

func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].pos = i
	q[j].pos = j
}

func (q *queue) Push(x any) {
	it := x.(*item)
	it.pos = len(*q)
	*q = append(*q, it)
}

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return it
}
