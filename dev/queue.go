package dev

// Queue is a deterministic device model for cycle-level tests: a
// scripted input byte list with a per-byte valid latency, and an output
// sink that holds busy for a fixed number of cycles after each consumed
// byte. Busy and Poll each count one cycle per call, so the machine must
// sample them exactly once per clock.
type Queue struct {
	InData  []uint8 // Bytes offered to the input port, in order.
	Latency int     // Cycles each byte stays invalid before Poll offers it.

	OutData    []uint8 // Bytes consumed from the output port.
	BusyCycles int     // Cycles Busy holds after each consumed byte.

	waited int
	busy   int
}

var _ Sender = (*Queue)(nil)
var _ Receiver = (*Queue)(nil)

// Busy reports and advances the post-write busy hold.
func (q *Queue) Busy() (busy bool) {
	if q.busy > 0 {
		q.busy--
		busy = true
	}
	return
}

// Write records one output byte and starts the busy hold.
func (q *Queue) Write(value uint8) {
	q.OutData = append(q.OutData, value)
	q.busy = q.BusyCycles
}

// Poll offers the head input byte once its latency has elapsed.
func (q *Queue) Poll() (value uint8, ok bool) {
	if len(q.InData) == 0 {
		return
	}
	if q.waited < q.Latency {
		q.waited++
		return
	}

	value, ok = q.InData[0], true
	return
}

// Take consumes the head input byte and restarts the latency count.
func (q *Queue) Take() {
	q.InData = q.InData[1:]
	q.waited = 0
}
