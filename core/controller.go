package core

import (
	"log"
)

// Handshake is the per-cycle sample of the device inputs.
type Handshake struct {
	OutBusy bool  // Output device cannot accept a byte this cycle.
	InValid bool  // Input device holds a byte the controller should consume.
	InData  uint8 // The byte offered by the input device.
}

// Outputs is the complete combinational control output for one cycle,
// including the next-state wire that Tick commits on the clock edge.
type Outputs struct {
	Next State // Next controller state.

	PCInc bool // Program counter increment enable.
	PCDec bool // Program counter decrement enable.
	DPInc bool // Data pointer increment enable.
	DPDec bool // Data pointer decrement enable.

	BusEnable  bool       // A bus transaction occurs this cycle.
	BusWrite   bool       // Transaction direction: write when set, else read.
	AddrSelect AddrSelect // Register driving the bus address.
	DataSelect DataSelect // Value driving the bus write data.

	OutData        uint8 // Byte offered to the output device.
	OutWriteEnable bool  // Single-cycle pulse: OutData should be consumed.
	InRequest      bool  // Asserted while awaiting an input byte.

	Ready bool // Startup scan complete; command execution has begun.
	Done  bool // Halt reached; parked until reset.
}

// Controller is the finite-state control unit. It is the sole decision
// maker in the machine: the register file and the multiplexers only
// execute the enables and selects it emits.
//
// The controller never reports errors. A program with no separator or
// with unbalanced brackets leaves the scan states looping or wrapping
// around memory; that is the documented behavior, not a fault.
type Controller struct {
	Verbose bool // Set to log state transitions and decoded commands.

	state State
	ready bool
	done  bool
}

// State returns the current controller state.
func (ctl *Controller) State() State {
	return ctl.state
}

// Ready reports whether the startup scan has located the separator.
func (ctl *Controller) Ready() bool {
	return ctl.ready
}

// Done reports whether the halt command has been reached.
func (ctl *Controller) Done() bool {
	return ctl.done
}

// Reset asynchronously forces the controller back to the startup scan,
// clearing both status flags. It has priority over any transition.
func (ctl *Controller) Reset() {
	ctl.state = ST_INIT
	ctl.ready = false
	ctl.done = false
}

// Outputs computes the control outputs for the current cycle from the
// controller state, the latched bus read byte, and the two handshake
// inputs. It drives at most one bus transaction and has no side effects
// on machine state; commit happens in Tick.
func (ctl *Controller) Outputs(path *Datapath, hs Handshake) (outs Outputs) {
	outs.Ready = ctl.ready
	outs.Done = ctl.done

	switch ctl.state {
	case ST_INIT:
		outs.Next = ST_SCAN_FETCH

	case ST_SCAN_FETCH:
		// Read the byte at the pre-advance data pointer.
		outs.BusEnable = true
		outs.AddrSelect = ADDR_DP
		outs.Next = ST_SCAN_STEP

	case ST_SCAN_STEP:
		// Advance one cell per cycle until the separator; the pointer
		// steps once more on the cycle that sees it, leaving the first
		// usable data cell addressed.
		outs.DPInc = true
		if path.LastRead == SEPARATOR {
			outs.Next = ST_BEGIN
		} else {
			outs.Next = ST_SCAN_FETCH
		}

	case ST_BEGIN:
		outs.Next = ST_FETCH

	case ST_FETCH:
		outs.BusEnable = true
		outs.AddrSelect = ADDR_PC
		outs.Next = ST_DECODE

	case ST_DECODE:
		// The counter advance overlaps command handling: the next fetch
		// reads the byte after the one decoded here.
		outs.PCInc = true

		op := Opcode(path.LastRead)
		if ctl.Verbose {
			log.Printf("ctl: decode %v (%#02x)", op, path.LastRead)
		}

		switch op {
		case OP_RIGHT:
			outs.DPInc = true
			outs.Next = ST_FETCH
		case OP_LEFT:
			outs.DPDec = true
			outs.Next = ST_FETCH
		case OP_ADD:
			outs.BusEnable = true
			outs.AddrSelect = ADDR_DP
			outs.Next = ST_ADD_WRITE
		case OP_SUB:
			outs.BusEnable = true
			outs.AddrSelect = ADDR_DP
			outs.Next = ST_SUB_WRITE
		case OP_OUT:
			outs.BusEnable = true
			outs.AddrSelect = ADDR_DP
			outs.Next = ST_OUT_WAIT
		case OP_IN:
			outs.Next = ST_IN_WAIT
		case OP_LOOP:
			outs.BusEnable = true
			outs.AddrSelect = ADDR_DP
			outs.Next = ST_LOOP_TEST
		case OP_END:
			outs.BusEnable = true
			outs.AddrSelect = ADDR_DP
			outs.Next = ST_END_TEST
		case OP_BREAK:
			outs.Next = ST_SKIP_FETCH
		case OP_HALT:
			// Parked; the counter stays on the separator.
			outs.PCInc = false
			outs.Next = ST_HALT
		default:
			// Comment byte.
			outs.Next = ST_FETCH
		}

	case ST_ADD_WRITE:
		outs.BusEnable = true
		outs.BusWrite = true
		outs.AddrSelect = ADDR_DP
		outs.DataSelect = DATA_INC
		outs.Next = ST_FETCH

	case ST_SUB_WRITE:
		outs.BusEnable = true
		outs.BusWrite = true
		outs.AddrSelect = ADDR_DP
		outs.DataSelect = DATA_DEC
		outs.Next = ST_FETCH

	case ST_OUT_WAIT:
		// Hold, re-entering every cycle, until the device is not busy;
		// then exactly one write-enable pulse.
		if hs.OutBusy {
			outs.Next = ST_OUT_WAIT
		} else {
			outs.OutData = path.LastRead
			outs.OutWriteEnable = true
			outs.Next = ST_FETCH
		}

	case ST_IN_WAIT:
		outs.InRequest = true
		if hs.InValid {
			outs.BusEnable = true
			outs.BusWrite = true
			outs.AddrSelect = ADDR_DP
			outs.DataSelect = DATA_IN
			outs.Next = ST_FETCH
		} else {
			outs.Next = ST_IN_WAIT
		}

	case ST_LOOP_TEST:
		if path.LastRead == 0 {
			outs.Next = ST_SKIP_FETCH
		} else {
			outs.Next = ST_FETCH
		}

	case ST_SKIP_FETCH:
		outs.BusEnable = true
		outs.AddrSelect = ADDR_PC
		outs.Next = ST_SKIP_STEP

	case ST_SKIP_STEP:
		// Forward scan stops at the first loop-end byte; no nesting
		// counter is kept.
		outs.PCInc = true
		if Opcode(path.LastRead) == OP_END {
			outs.Next = ST_FETCH
		} else {
			outs.Next = ST_SKIP_FETCH
		}

	case ST_END_TEST:
		if path.LastRead == 0 {
			outs.Next = ST_FETCH
		} else {
			// The counter already advanced past the loop-end byte in
			// decode; two decrements put the scan on the byte before it.
			outs.PCDec = true
			outs.Next = ST_BACK_START
		}

	case ST_BACK_START:
		outs.PCDec = true
		outs.Next = ST_BACK_FETCH

	case ST_BACK_FETCH:
		outs.BusEnable = true
		outs.AddrSelect = ADDR_PC
		outs.Next = ST_BACK_STEP

	case ST_BACK_STEP:
		// Backward scan stops at the first loop-start byte, resuming
		// fetch immediately after it.
		if Opcode(path.LastRead) == OP_LOOP {
			outs.PCInc = true
			outs.Next = ST_FETCH
		} else {
			outs.PCDec = true
			outs.Next = ST_BACK_FETCH
		}

	case ST_HALT:
		outs.Next = ST_HALT
	}

	return
}

// Tick commits the clock edge: the next state and the latched status
// flags. Freezing the machine is the caller not ticking; Tick itself is
// unconditional.
func (ctl *Controller) Tick(outs Outputs) {
	if ctl.Verbose && outs.Next != ctl.state {
		log.Printf("ctl: %v -> %v", ctl.state, outs.Next)
	}

	if ctl.state == ST_BEGIN {
		ctl.ready = true
	}
	if outs.Next == ST_HALT {
		ctl.done = true
	}

	ctl.state = outs.Next
}
