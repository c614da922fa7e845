package mmu

// WRAM is the 8kB of internal working RAM, mapped to 0xC000 - 0xDFFF
// and echoed at 0xE000 - 0xFDFF. Any address in either window maps
// to the same byte of the single underlying block.
type WRAM struct {
	raw [0x2000]uint8
}

// NewWRAM returns a zeroed WRAM.
func NewWRAM() *WRAM {
	return &WRAM{}
}

func (w *WRAM) Read(addr uint16) uint8 {
	return w.raw[addr%0x2000]
}

func (w *WRAM) Write(addr uint16, v uint8) {
	w.raw[addr%0x2000] = v
}
