package core

// Register is one of the two 13-bit bus registers. Arithmetic is modulo
// 2^13: overflow and underflow wrap silently, never error.
type Register struct {
	value uint16
}

// Value returns the current register value.
func (reg *Register) Value() uint16 {
	return reg.value
}

// Reset forces the register to zero. Reset overrides any other effect.
func (reg *Register) Reset() {
	reg.value = 0
}

// Tick commits one clock edge. Increment takes priority over decrement
// when both are requested; with neither, the register holds.
func (reg *Register) Tick(increment, decrement bool) {
	switch {
	case increment:
		reg.value = (reg.value + 1) & ADDR_MASK
	case decrement:
		reg.value = (reg.value - 1) & ADDR_MASK
	}
}
