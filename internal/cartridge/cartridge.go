// Package cartridge provides the game cartridge image for the DMG.
// The cartridge owns a private copy of the image, and hands out
// read-only bank views of it to the MMU.
package cartridge

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
)

const (
	// MinimumSize is the smallest image accepted, enough to hold
	// the interrupt vectors, entry point and header (0x0000 - 0x014F).
	MinimumSize = 0x0150
	// BankSize is the size of a single ROM bank.
	BankSize = 0x4000
)

// ErrTooSmall is reported when an image is shorter than MinimumSize.
var ErrTooSmall = errors.New("cartridge too small")

// LoadError records why a cartridge image could not be loaded.
type LoadError struct {
	Size int
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cartridge: %v: %d bytes, need at least %d", e.Err, e.Size, MinimumSize)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Cartridge represents a basic game cartridge, with no memory bank
// controller: bank 0 is fixed at 0x0000 - 0x3FFF and bank 1 at
// 0x4000 - 0x7FFF.
type Cartridge struct {
	rom         []byte
	header      Header
	fingerprint uint64
}

// NewCartridge validates the given image and returns a cartridge
// holding its own copy of it, so later changes to rom by the caller
// are never observed.
func NewCartridge(rom []byte) (*Cartridge, error) {
	if len(rom) < MinimumSize {
		return nil, &LoadError{Size: len(rom), Err: ErrTooSmall}
	}

	c := &Cartridge{
		rom: append([]byte(nil), rom...),
	}
	// parse the cartridge header (0x0100 - 0x014F)
	c.header = parseHeader(c.rom[0x100:0x150])
	c.fingerprint = xxhash.Sum64(c.rom)

	return c, nil
}

// Bank returns a read-only view of the given ROM bank, which may be
// shorter than BankSize for a truncated image. A bank that lies
// entirely beyond the end of the image returns nil.
func (c *Cartridge) Bank(n int) []byte {
	start := n * BankSize
	if start >= len(c.rom) {
		return nil
	}
	end := start + BankSize
	if end > len(c.rom) {
		end = len(c.rom)
	}
	return c.rom[start:end:end]
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the cartridge title.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// Size returns the length of the image in bytes.
func (c *Cartridge) Size() int {
	return len(c.rom)
}

// Fingerprint returns the xxhash of the whole image, used to identify
// the cartridge in logs and to spot a reload of the same image.
func (c *Cartridge) Fingerprint() uint64 {
	return c.fingerprint
}
