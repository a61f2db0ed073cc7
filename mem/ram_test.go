package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bfmach/bfm/core"
)

func TestRam_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	ram := &Ram{}
	ram.Write(5, 0xaa)
	assert.Equal(uint8(0xaa), ram.Read(5))
	assert.Equal(uint8(0), ram.Read(6))
}

func TestRam_AddressMask(t *testing.T) {
	assert := assert.New(t)

	// Addresses beyond the bus width land back inside the array.
	ram := &Ram{}
	ram.Write(core.MEM_SIZE+5, 0x42)
	assert.Equal(uint8(0x42), ram.Read(5))
	assert.Equal(uint8(0x42), ram.Read(core.MEM_SIZE+5))
}

func TestRam_Load(t *testing.T) {
	assert := assert.New(t)

	ram := &Ram{}
	ram.Write(100, 0xff)

	ram.Load([]uint8{1, 2, 3})
	assert.Equal(uint8(1), ram.Read(0))
	assert.Equal(uint8(3), ram.Read(2))
	assert.Equal(uint8(0), ram.Read(100), "load zeroes the remainder")
}
