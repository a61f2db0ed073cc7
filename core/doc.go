// Package core implements the control unit of the bfm processor: a
// cycle-level finite-state machine that sequences memory bus transactions,
// decodes command bytes, and drives the two 13-bit bus registers (program
// counter and data pointer) through the address and write-data multiplexers.
//
// The core owns no memory and no devices. The memory array and the input
// and output devices are external collaborators reached only through the
// bus and handshake signals in Outputs and Handshake; a top-level driver
// (see the machine package) evaluates the controller once per clock cycle
// and commits all register state on the cycle's single clock edge.
package core
