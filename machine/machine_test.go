package machine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bfmach/bfm/core"
	"github.com/bfmach/bfm/dev"
	"github.com/bfmach/bfm/image"
	"github.com/bfmach/bfm/mem"
)

// load lays out a memory image from program text and initial cells.
func load(ram *mem.Ram, program string, cells ...uint8) {
	data := append([]uint8(program), core.SEPARATOR)
	data = append(data, cells...)
	ram.Load(data)
}

func TestMachine_Echo(t *testing.T) {
	assert := assert.New(t)

	ram := &mem.Ram{}
	load(ram, ",.")

	q := &dev.Queue{InData: []uint8{'h'}, Latency: 3, BusyCycles: 2}
	m := New(ram, q, q)

	assert.True(m.Run(10000))
	assert.Equal([]uint8{'h'}, q.OutData)
}

func TestMachine_Add(t *testing.T) {
	assert := assert.New(t)

	// Sum two input bytes into the second cell and emit it.
	ram := &mem.Ram{}
	load(ram, ",>,<[->+<]>.")

	q := &dev.Queue{InData: []uint8{3, 4}, Latency: 1, BusyCycles: 1}
	m := New(ram, q, q)

	assert.True(m.Run(10000))
	assert.Equal([]uint8{7}, q.OutData)
}

func TestMachine_OutputBusy(t *testing.T) {
	assert := assert.New(t)

	ram := &mem.Ram{}
	load(ram, "...", 9)

	q := &dev.Queue{BusyCycles: 4}
	m := New(ram, q, q)

	assert.True(m.Run(10000))
	assert.Equal([]uint8{9, 9, 9}, q.OutData)
}

func TestMachine_RunLimit(t *testing.T) {
	assert := assert.New(t)

	// Nonzero cell with an empty loop body never terminates.
	ram := &mem.Ram{}
	load(ram, "+[]")

	m := New(ram, nil, nil)
	assert.False(m.Run(500))
	assert.Equal(500, m.Cycles)
	assert.False(m.Ctl.Done())
}

func TestMachine_EnableFreeze(t *testing.T) {
	assert := assert.New(t)

	ram := &mem.Ram{}
	load(ram, "+++")

	m := New(ram, nil, nil)
	for range 12 {
		m.Cycle()
	}

	m.Enabled = false
	state := m.Ctl.State()
	pc := m.Path.PC.Value()
	dp := m.Path.DP.Value()
	cycles := m.Cycles

	for range 10 {
		m.Cycle()
	}
	assert.Equal(state, m.Ctl.State(), "frozen state changed")
	assert.Equal(pc, m.Path.PC.Value())
	assert.Equal(dp, m.Path.DP.Value())
	assert.Equal(cycles, m.Cycles)

	// A disabled machine cannot run.
	assert.False(m.Run(0))

	// Nothing was lost; execution resumes to completion.
	m.Enabled = true
	assert.True(m.Run(10000))
	assert.Equal(uint8(3), ram.Read(m.Path.DP.Value()))
}

func TestMachine_ResetMidRun(t *testing.T) {
	assert := assert.New(t)

	ram := &mem.Ram{}
	load(ram, "++")

	m := New(ram, nil, nil)
	for range 15 {
		m.Cycle()
	}

	m.Reset()
	assert.Equal(core.ST_INIT, m.Ctl.State())
	assert.Equal(uint16(0), m.Path.PC.Value())
	assert.Equal(uint16(0), m.Path.DP.Value())
	assert.Equal(0, m.Cycles)
	assert.False(m.Ctl.Ready())
	assert.False(m.Ctl.Done())
}

func TestMachine_ComposedImage(t *testing.T) {
	assert := assert.New(t)

	source := `
; emit the seeded cell, then count it down
.equ SEED 5
[-]>.
.data
.byte $(SEED - 2)
.byte $(SEED * 2)
`

	ram := &mem.Ram{}
	q := &dev.Queue{}
	m := New(ram, q, q)

	comp := &image.Composer{}
	for key, value := range m.Defines() {
		comp.Predefine(key, value)
	}

	img, err := comp.Parse(strings.NewReader(source))
	assert.NoError(err)

	ram.Load(img.Bytes())
	m.Reset()

	assert.True(m.Run(10000))
	assert.Equal(uint8(0), ram.Read(uint16(img.Base)), "loop drains the first cell")
	assert.Equal([]uint8{10}, q.OutData)
}
