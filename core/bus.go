package core

// Bus is the memory collaborator's side of the bus protocol. The
// controller issues at most one transaction per clock cycle: the address
// and direction are controller-determined, and read data is valid at the
// end of the read cycle. Implementations must mask addresses to the
// 13-bit bus width.
type Bus interface {
	Read(address uint16) (value uint8)
	Write(address uint16, value uint8)
}
