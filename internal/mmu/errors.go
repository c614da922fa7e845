package mmu

import (
	"errors"
	"fmt"
)

var (
	// ErrReadOnly is reported when a write targets the boot ROM or
	// either of the cartridge ROM banks.
	ErrReadOnly = errors.New("region is read-only")
	// ErrUnmapped is reported for any access to 0xFEA0 - 0xFEFF.
	ErrUnmapped = errors.New("address is not mapped")
	// ErrBootOverlayDisabled is returned when attempting to map the
	// boot ROM back in once it has been disabled.
	ErrBootOverlayDisabled = errors.New("mmu: boot overlay has been disabled for this session")
)

// AccessError records a failed memory access and the region that
// rejected it.
type AccessError struct {
	Op      string // "read" or "write"
	Address uint16
	Region  string
	Err     error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("mmu: %s 0x%04X (%s): %v", e.Op, e.Address, e.Region, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}
