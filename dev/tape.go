package dev

import (
	"io"
)

// Tape adapts byte streams to the device handshakes: an io.Reader feeds
// the input port and an io.Writer drains the output port. A tape is
// never busy, and at end of input it never reports valid, leaving the
// machine parked in its input wait the way stalled hardware would be.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	hasInput  bool
	lastInput uint8
}

var _ Sender = (*Tape)(nil)
var _ Receiver = (*Tape)(nil)

// Busy reports false: a stream-backed tape accepts a byte every cycle.
func (tape *Tape) Busy() bool {
	return false
}

// Write passes one output byte through to the output stream. Stream
// errors are dropped; the handshake has no fault signal to carry them.
func (tape *Tape) Write(value uint8) {
	if tape.Output == nil {
		return
	}

	one := [1]byte{value}
	tape.Output.Write(one[:])
}

// Poll reads ahead one byte from the input stream and offers it until
// taken.
func (tape *Tape) Poll() (value uint8, ok bool) {
	if !tape.hasInput {
		if tape.Input == nil {
			return
		}
		var one [1]byte
		n, _ := tape.Input.Read(one[:])
		if n != 1 {
			return
		}
		tape.lastInput = one[0]
		tape.hasInput = true
	}

	value, ok = tape.lastInput, true
	return
}

// Take consumes the offered byte.
func (tape *Tape) Take() {
	tape.hasInput = false
}
