package core

// Datapath is the owned register state shared by the controller and the
// bus multiplexers: the two bus registers plus the latched result of the
// most recent bus read.
type Datapath struct {
	PC       Register // Program counter: address of the next command byte.
	DP       Register // Data pointer: address of the current cell.
	LastRead uint8    // Bus read result, latched at the end of the read cycle.
}

// Reset forces both registers and the read latch to zero, regardless of
// clock phase.
func (path *Datapath) Reset() {
	path.PC.Reset()
	path.DP.Reset()
	path.LastRead = 0
}

// Tick commits one clock edge: the register enables, and the read latch
// when this cycle's bus transaction was a read.
func (path *Datapath) Tick(outs Outputs, readData uint8) {
	path.PC.Tick(outs.PCInc, outs.PCDec)
	path.DP.Tick(outs.DPInc, outs.DPDec)

	if outs.BusEnable && !outs.BusWrite {
		path.LastRead = readData
	}
}
