package object

// Arrival is emitted when a score particle reaches the score display.
type Arrival struct {
	X, Y float64
}

// ArrivalQueue buffers arrivals produced during an update pass so the game can
// apply them afterwards in emission order.
type ArrivalQueue struct {
	items []Arrival
}

// Push appends an arrival.
func (q *ArrivalQueue) Push(a Arrival) {
	q.items = append(q.items, a)
}

// Len returns the number of queued arrivals.
func (q *ArrivalQueue) Len() int {
	return len(q.items)
}

// Drain calls fn for each queued arrival in FIFO order and empties the queue.
// Arrivals pushed by fn are delivered in the same drain.
func (q *ArrivalQueue) Drain(fn func(Arrival)) {
	for i := 0; i < len(q.items); i++ {
		fn(q.items[i])
	}
	q.items = q.items[:0]
}

// Clear discards every queued arrival.
func (q *ArrivalQueue) Clear() {
	q.items = q.items[:0]
}
