// Package image composes memory images for the machine: the stored
// program text, the separator byte, and the initial contents of the
// working-cell region, laid out from address zero the way the startup
// scan expects to find them.
package image

import (
	"github.com/bfmach/bfm/core"
)

// Image is a composed memory image.
type Image struct {
	Data []uint8 // Image contents, starting at address zero.
	Base int     // Address of the first working cell (one past the separator).
}

// Bytes returns the image contents.
func (img *Image) Bytes() []uint8 {
	return img.Data
}

// emit appends one byte, refusing to grow past the memory size.
func (img *Image) emit(value uint8) (err error) {
	if len(img.Data) >= core.MEM_SIZE {
		err = ErrImageOverflow
		return
	}

	img.Data = append(img.Data, value)
	return
}
