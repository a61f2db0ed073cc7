// Package machine wires the control core to its collaborators - the
// memory array and the input and output devices - and drives them in a
// fixed order once per clock cycle, so that every register commits on the
// same edge with no read-after-write ambiguity inside a cycle.
package machine

import (
	"iter"
	"log"

	"github.com/bfmach/bfm/core"
	"github.com/bfmach/bfm/dev"
)

// Machine is the top-level cycle driver.
type Machine struct {
	Verbose bool // Set to log each clock cycle.
	Enabled bool // Deasserting freezes all state without losing it.

	Ctl  core.Controller // The control unit.
	Path core.Datapath   // Bus registers and read latch.

	Bus core.Bus     // Memory collaborator.
	Out dev.Receiver // Output device peer; may be nil.
	In  dev.Sender   // Input device peer; may be nil.

	Cycles int // Clock cycles since the last reset.
}

// New creates a machine wired to the given collaborators, enabled and in
// reset state.
func New(bus core.Bus, out dev.Receiver, in dev.Sender) (m *Machine) {
	m = &Machine{
		Enabled: true,
		Bus:     bus,
		Out:     out,
		In:      in,
	}
	m.Reset()

	return
}

// Defines returns the constants exposed to compile-time expressions in
// the image composer.
func (m *Machine) Defines() iter.Seq2[string, string] {
	return core.Defines()
}

// Reset asynchronously forces the controller and both registers to their
// initial state, regardless of Enabled. All progress is discarded.
func (m *Machine) Reset() {
	m.Ctl.Reset()
	m.Path.Reset()
	m.Cycles = 0
}

// Cycle advances the machine by one clock. Order within the cycle:
// sample the device handshakes, evaluate the controller outputs, perform
// the bus transaction and drive the device ports, then commit the edge
// for the controller and the datapath. A disabled machine does nothing.
func (m *Machine) Cycle() {
	if !m.Enabled {
		return
	}

	var hs core.Handshake
	if m.Out != nil {
		hs.OutBusy = m.Out.Busy()
	}
	if m.In != nil && m.Ctl.State() == core.ST_IN_WAIT {
		hs.InData, hs.InValid = m.In.Poll()
	}

	outs := m.Ctl.Outputs(&m.Path, hs)

	var readData uint8
	if outs.BusEnable {
		address := m.Path.BusAddress(outs.AddrSelect)
		if outs.BusWrite {
			value, driven := m.Path.WriteData(outs.DataSelect, hs.InData)
			if driven {
				m.Bus.Write(address, value)
			}
		} else {
			readData = m.Bus.Read(address)
		}
	}

	if outs.OutWriteEnable && m.Out != nil {
		m.Out.Write(outs.OutData)
	}
	if outs.InRequest && hs.InValid && m.In != nil {
		m.In.Take()
	}

	if m.Verbose {
		log.Printf("%06d: %v pc=%04x dp=%04x read=%02x",
			m.Cycles, m.Ctl.State(), m.Path.PC.Value(), m.Path.DP.Value(), m.Path.LastRead)
	}

	m.Ctl.Tick(outs)
	m.Path.Tick(outs, readData)
	m.Cycles++
}

// Run clocks the machine until the done flag latches, the machine is
// disabled, or limit cycles have elapsed since reset. A limit of zero
// runs without bound: a malformed program that never halts then runs
// forever, as the hardware would.
func (m *Machine) Run(limit int) (done bool) {
	for m.Enabled && (limit == 0 || m.Cycles < limit) {
		m.Cycle()
		if m.Ctl.Done() {
			done = true
			break
		}
	}

	return
}
