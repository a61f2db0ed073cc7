package core

import (
	"fmt"
	"iter"
	"maps"

	"github.com/bfmach/bfm/internal"
)

// Memory geometry. One flat 13-bit address space of 8-bit cells, shared
// indivisibly between program text and working data.
const (
	ADDR_BITS = 13
	ADDR_MASK = (1 << ADDR_BITS) - 1
	MEM_SIZE  = 1 << ADDR_BITS
)

// SEPARATOR marks the boundary between the stored program text and the
// working-cell region. Fetched during normal execution, the same byte is
// the halt command.
const SEPARATOR = uint8('@')

// Opcode is a command byte fetched from memory. Any byte outside this set
// is a comment and has no effect beyond the program counter advance.
type Opcode uint8

const (
	OP_RIGHT = Opcode('>') // Increment the data pointer.
	OP_LEFT  = Opcode('<') // Decrement the data pointer.
	OP_ADD   = Opcode('+') // Increment the current cell.
	OP_SUB   = Opcode('-') // Decrement the current cell.
	OP_OUT   = Opcode('.') // Emit the current cell to the output device.
	OP_IN    = Opcode(',') // Store a byte from the input device.
	OP_LOOP  = Opcode('[') // While-loop start.
	OP_END   = Opcode(']') // While-loop end.
	OP_BREAK = Opcode('~') // Unconditional skip to after the loop end.
	OP_HALT  = Opcode(SEPARATOR) // Halt; parks the controller until reset.
)

// String returns the mnemonic for a command byte.
func (op Opcode) String() (name string) {
	switch op {
	case OP_RIGHT:
		name = "right"
	case OP_LEFT:
		name = "left"
	case OP_ADD:
		name = "add"
	case OP_SUB:
		name = "sub"
	case OP_OUT:
		name = "out"
	case OP_IN:
		name = "in"
	case OP_LOOP:
		name = "loop"
	case OP_END:
		name = "end"
	case OP_BREAK:
		name = "break"
	case OP_HALT:
		name = "halt"
	default:
		name = "comment"
	}
	return
}

var _geometry_defines = map[string]string{
	"ADDR_BITS": fmt.Sprintf("%v", ADDR_BITS),
	"ADDR_MASK": fmt.Sprintf("%v", ADDR_MASK),
	"MEM_SIZE":  fmt.Sprintf("%v", MEM_SIZE),
	"SEPARATOR": fmt.Sprintf("%v", SEPARATOR),
}

var _opcode_defines = map[string]string{
	"OP_RIGHT": fmt.Sprintf("%v", uint8(OP_RIGHT)),
	"OP_LEFT":  fmt.Sprintf("%v", uint8(OP_LEFT)),
	"OP_ADD":   fmt.Sprintf("%v", uint8(OP_ADD)),
	"OP_SUB":   fmt.Sprintf("%v", uint8(OP_SUB)),
	"OP_OUT":   fmt.Sprintf("%v", uint8(OP_OUT)),
	"OP_IN":    fmt.Sprintf("%v", uint8(OP_IN)),
	"OP_LOOP":  fmt.Sprintf("%v", uint8(OP_LOOP)),
	"OP_END":   fmt.Sprintf("%v", uint8(OP_END)),
	"OP_BREAK": fmt.Sprintf("%v", uint8(OP_BREAK)),
	"OP_HALT":  fmt.Sprintf("%v", uint8(OP_HALT)),
}

// Defines returns the core constants by name, for seeding compile-time
// expressions in the image composer.
func Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_geometry_defines), maps.All(_opcode_defines))
}
