// Package mem models the memory collaborator on the far side of the bus:
// a flat array of 8192 eight-bit cells shared between program text and
// working data. The core never bounds-checks; addresses are masked to the
// bus width so register wraparound lands back inside the array.
package mem

import (
	"github.com/bfmach/bfm/core"
)

// Ram is the flat cell array behind the bus protocol.
type Ram struct {
	Cell [core.MEM_SIZE]uint8
}

var _ core.Bus = (*Ram)(nil)

// Read returns the cell at the masked address.
func (ram *Ram) Read(address uint16) (value uint8) {
	return ram.Cell[address&core.ADDR_MASK]
}

// Write stores a value into the cell at the masked address.
func (ram *Ram) Write(address uint16, value uint8) {
	ram.Cell[address&core.ADDR_MASK] = value
}

// Load zeroes the array and copies an image in starting at address zero.
// Images longer than the array are truncated.
func (ram *Ram) Load(data []uint8) {
	clear(ram.Cell[:])
	copy(ram.Cell[:], data)
}
