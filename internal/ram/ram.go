// Package ram provides a basic RAM implementation.
package ram

// RAM represents a fixed size block of RAM. Addresses are offsets
// from the start of the block, callers are expected to translate
// bus addresses before reading or writing.
type RAM struct {
	data []uint8
}

// NewRAM returns a new zeroed RAM of the given size.
func NewRAM(size uint32) *RAM {
	return &RAM{
		data: make([]uint8, size),
	}
}

// Read returns the value at the given offset.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given offset.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address] = value
}

// Size returns the number of bytes held by the RAM.
func (r *RAM) Size() int {
	return len(r.data)
}
