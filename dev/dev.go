// Package dev models the input and output device peers addressed through
// the machine's handshake signals. Devices are single-producer or
// single-consumer and are sampled once per clock cycle; a device that is
// busy or has nothing to offer simply holds the controller in its wait
// state for another cycle.
package dev

// Receiver consumes bytes from the machine's output port. Busy is
// sampled once per cycle; while it reports true the controller must not
// pulse write-enable. Write is the write-enable pulse carrying the byte.
type Receiver interface {
	Busy() bool
	Write(value uint8)
}

// Sender supplies bytes to the machine's input port. Poll is sampled
// once per cycle while the controller asserts its request; ok mirrors
// the data-valid signal. Take confirms the offered byte was consumed
// this cycle.
type Sender interface {
	Poll() (value uint8, ok bool)
	Take()
}
