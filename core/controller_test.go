package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// harness clocks a controller and datapath against an in-test memory,
// mirroring the machine package's cycle order.
type harness struct {
	ctl  Controller
	path Datapath
	mem  [MEM_SIZE]uint8
	hs   Handshake
	base uint16
}

// newHarness lays out a memory image the way the startup scan expects:
// the program text, the separator, then the initial working cells.
func newHarness(program string, cells ...uint8) (h *harness) {
	h = &harness{}

	data := append([]uint8(program), SEPARATOR)
	data = append(data, cells...)
	copy(h.mem[:], data)
	h.base = uint16(len(program) + 1)

	h.ctl.Reset()
	h.path.Reset()

	return
}

// cycle advances one clock: evaluate, bus transaction, commit edge.
func (h *harness) cycle() (outs Outputs) {
	outs = h.ctl.Outputs(&h.path, h.hs)

	var readData uint8
	if outs.BusEnable {
		address := h.path.BusAddress(outs.AddrSelect) & ADDR_MASK
		if outs.BusWrite {
			value, driven := h.path.WriteData(outs.DataSelect, h.hs.InData)
			if driven {
				h.mem[address] = value
			}
		} else {
			readData = h.mem[address]
		}
	}

	h.ctl.Tick(outs)
	h.path.Tick(outs, readData)

	return
}

// runTo clocks until the controller reaches a state, bounded by limit.
func (h *harness) runTo(state State, limit int) bool {
	for range limit {
		if h.ctl.State() == state {
			return true
		}
		h.cycle()
	}

	return h.ctl.State() == state
}

// runDone clocks until the done flag latches, bounded by limit.
func (h *harness) runDone(limit int) bool {
	for range limit {
		h.cycle()
		if h.ctl.Done() {
			return true
		}
	}

	return false
}

func TestController_StartupScan(t *testing.T) {
	assert := assert.New(t)

	h := &harness{}
	copy(h.mem[:], []uint8{0x01, 0x02, 0x40, 0x99})
	h.ctl.Reset()
	h.path.Reset()

	assert.True(h.runTo(ST_BEGIN, 100))
	assert.False(h.ctl.Ready(), "ready before the scan exits")

	h.cycle()
	assert.Equal(ST_FETCH, h.ctl.State())
	assert.True(h.ctl.Ready(), "ready once the scan finds the separator")
	assert.Equal(uint16(3), h.path.DP.Value(), "one past the separator")
	assert.Equal(uint16(0), h.path.PC.Value())
}

func TestController_Reset(t *testing.T) {
	assert := assert.New(t)

	h := newHarness("+>", 9)
	for range 9 {
		h.cycle()
	}
	assert.NotEqual(ST_INIT, h.ctl.State())

	h.ctl.Reset()
	h.path.Reset()

	assert.Equal(ST_INIT, h.ctl.State())
	assert.Equal(uint16(0), h.path.PC.Value())
	assert.Equal(uint16(0), h.path.DP.Value())
	assert.False(h.ctl.Ready())
	assert.False(h.ctl.Done())

	// Runs again from scratch after reset.
	assert.True(h.runDone(1000))
	assert.Equal(uint8(10), h.mem[h.base])
}

func TestController_AddSubRoundTrip(t *testing.T) {
	assert := assert.New(t)

	h := newHarness("+-", 5)
	assert.True(h.runDone(1000))
	assert.Equal(uint8(5), h.mem[h.base])
}

func TestController_RightLeftRoundTrip(t *testing.T) {
	assert := assert.New(t)

	h := newHarness("><")
	assert.True(h.runDone(1000))
	assert.Equal(h.base, h.path.DP.Value())
}

func TestController_CellWrap(t *testing.T) {
	assert := assert.New(t)

	h := newHarness("-", 0)
	assert.True(h.runDone(1000))
	assert.Equal(uint8(0xff), h.mem[h.base])
}

func TestController_Comment(t *testing.T) {
	assert := assert.New(t)

	h := newHarness("ab")
	assert.True(h.runDone(1000))
	assert.Equal(h.base, h.path.DP.Value())
	assert.Equal(uint8(0), h.mem[h.base])
}

func TestController_LoopSkip(t *testing.T) {
	assert := assert.New(t)

	// Zero cell: the body must be skipped entirely, then '>' executes.
	h := newHarness("[-]>", 0)
	assert.True(h.runDone(1000))
	assert.Equal(uint8(0), h.mem[h.base], "loop body executed despite zero cell")
	assert.Equal(h.base+1, h.path.DP.Value())
}

func TestController_LoopTwice(t *testing.T) {
	assert := assert.New(t)

	h := newHarness("[-]", 2)

	writes := 0
	for range 1000 {
		outs := h.cycle()
		if outs.BusWrite && outs.DataSelect == DATA_DEC {
			writes++
		}
		if h.ctl.Done() {
			break
		}
	}

	assert.True(h.ctl.Done())
	assert.Equal(2, writes, "body executes exactly twice")
	assert.Equal(uint8(0), h.mem[h.base])
}

func TestController_Break(t *testing.T) {
	assert := assert.New(t)

	// '~' skips to after the loop end regardless of the cell value.
	h := newHarness("~+]>", 0)
	assert.True(h.runDone(1000))
	assert.Equal(uint8(0), h.mem[h.base], "skipped body executed")
	assert.Equal(h.base+1, h.path.DP.Value())
}

func TestController_UnmatchedLoopScans(t *testing.T) {
	assert := assert.New(t)

	// No ']' anywhere: the forward scan wraps around memory forever.
	// That is documented behavior, not a fault.
	h := newHarness("[", 0)
	assert.False(h.runDone(3 * MEM_SIZE))
	assert.True(h.ctl.Ready())
	assert.False(h.ctl.Done())
}

func TestController_OutputHandshake(t *testing.T) {
	assert := assert.New(t)

	h := newHarness(".", 0x55)
	h.hs.OutBusy = true

	assert.True(h.runTo(ST_OUT_WAIT, 100))

	// Busy holds: same state every cycle, no write-enable pulse.
	for range 5 {
		outs := h.cycle()
		assert.False(outs.OutWriteEnable)
		assert.Equal(ST_OUT_WAIT, h.ctl.State())
	}

	// Exactly one pulse once the device is free.
	h.hs.OutBusy = false
	outs := h.cycle()
	assert.True(outs.OutWriteEnable)
	assert.Equal(uint8(0x55), outs.OutData)
	assert.Equal(ST_FETCH, h.ctl.State())

	pulses := 0
	for range 100 {
		outs = h.cycle()
		if outs.OutWriteEnable {
			pulses++
		}
		if h.ctl.Done() {
			break
		}
	}
	assert.True(h.ctl.Done())
	assert.Equal(0, pulses)
}

func TestController_InputHandshake(t *testing.T) {
	assert := assert.New(t)

	h := newHarness(",", 0)

	assert.True(h.runTo(ST_IN_WAIT, 100))

	// Request holds until the device offers a byte.
	for range 5 {
		outs := h.cycle()
		assert.True(outs.InRequest)
		assert.Equal(ST_IN_WAIT, h.ctl.State())
	}

	h.hs.InValid = true
	h.hs.InData = 0x7f
	outs := h.cycle()
	assert.True(outs.BusWrite)
	assert.Equal(DATA_IN, outs.DataSelect)
	assert.Equal(uint8(0x7f), h.mem[h.base])
	assert.Equal(ST_FETCH, h.ctl.State())

	h.hs.InValid = false
	assert.True(h.runDone(1000))
}

func TestController_HaltLatches(t *testing.T) {
	assert := assert.New(t)

	h := newHarness("")
	assert.True(h.runDone(1000))
	assert.Equal(ST_HALT, h.ctl.State())
	assert.Equal(uint16(0), h.path.PC.Value(), "counter parks on the separator")

	// Parked: state and flag hold across further cycles.
	for range 10 {
		outs := h.cycle()
		assert.True(outs.Done)
		assert.Equal(ST_HALT, h.ctl.State())
	}
	assert.True(h.ctl.Done())
}
