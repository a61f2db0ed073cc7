package core

// AddrSelect chooses which register drives the bus address.
type AddrSelect int

//go:generate go tool stringer -linecomment -type=AddrSelect
const (
	ADDR_DP = AddrSelect(0) // dp
	ADDR_PC = AddrSelect(1) // pc
)

// DataSelect chooses the value driven onto the bus during a write.
type DataSelect int

//go:generate go tool stringer -linecomment -type=DataSelect
const (
	DATA_IN  = DataSelect(0) // in
	DATA_DEC = DataSelect(1) // dec
	DATA_INC = DataSelect(2) // inc
)

// BusAddress is the address multiplexer: a pure selection between the
// data pointer and the program counter. At most one register drives the
// bus address in any cycle.
func (path *Datapath) BusAddress(sel AddrSelect) (address uint16) {
	if sel == ADDR_PC {
		address = path.PC.Value()
	} else {
		address = path.DP.Value()
	}
	return
}

// WriteData is the write-data multiplexer: pass the external input byte
// through, or the last bus read minus or plus one. An unrecognized
// selector leaves the bus undriven (ok is false, value is a don't-care).
func (path *Datapath) WriteData(sel DataSelect, inData uint8) (value uint8, ok bool) {
	switch sel {
	case DATA_IN:
		value, ok = inData, true
	case DATA_DEC:
		value, ok = path.LastRead-1, true
	case DATA_INC:
		value, ok = path.LastRead+1, true
	}
	return
}
