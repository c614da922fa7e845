// Package mmu provides the memory management unit for the Game Boy. The
// MMU owns every backing region of the 16-bit address space and routes
// each address to exactly one of them. It is unaware of the CPU, which
// reaches memory only through Read and Write.
package mmu

import (
	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/internal/ram"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
	"github.com/thelolagemann/dmgcore/pkg/utils"
)

// Region names, as reported by AccessError and Region.
const (
	RegionBootROM  = "boot ROM"
	RegionROM0     = "ROM bank 0"
	RegionROMN     = "ROM bank N"
	RegionVRAM     = "video RAM"
	RegionERAM     = "external RAM"
	RegionWRAM     = "work RAM"
	RegionOAM      = "sprite attribute table"
	RegionUnusable = "unusable"
	RegionIO       = "I/O registers"
	RegionHRAM     = "high RAM"
)

// Address represents a memory region of the Game Boy's memory,
// which can be read from or written to. Every address of the
// 64kB address space points at exactly one Address.
type Address struct {
	// Name returns the name of the region currently backing the
	// address.
	Name func(address uint16) string
	// Read is a function that is called when the CPU reads from
	// the address.
	Read func(address uint16) (uint8, error)
	// Write is a function that is called when the CPU writes to
	// the address.
	Write func(address uint16, value uint8) error
}

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory.
type MMU struct {
	// 64kB address space
	raw [0x10000]*Address

	// 0x0000 - 0x00FF - BOOT ROM (256B), while bootActive
	bootROM    *boot.ROM
	bootActive bool

	// 0x0000 - 0x3FFF - ROM bank 0 (16kB)
	// 0x4000 - 0x7FFF - ROM bank N (16kB)
	// both are views into the cartridge image, never written to
	bank0 []byte
	bankN []byte

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	vRAM *ram.RAM
	// 0xA000 - 0xBFFF - External RAM (8kB)
	eRAM *ram.RAM
	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM *WRAM
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	oam *ram.RAM
	// 0xFF00 - 0xFF7F - I/O Registers
	io *ram.RAM
	// 0xFF80 - 0xFFFF - High RAM (127B) + interrupt enable register
	hRAM *ram.RAM

	Log log.Logger
}

// NewMMU returns a new MMU with the given boot ROM mapped over
// 0x0000 - 0x00FF. A nil boot ROM maps 256 zero bytes. No cartridge
// is installed, so both ROM banks read 0xFF until InstallCartridge
// is called.
func NewMMU(bootROM *boot.ROM) *MMU {
	if bootROM == nil {
		bootROM = boot.Empty()
	}
	m := &MMU{
		bootROM:    bootROM,
		bootActive: true,

		vRAM: ram.NewRAM(0x2000),
		eRAM: ram.NewRAM(0x2000),
		wRAM: NewWRAM(),
		oam:  ram.NewRAM(0xA0),
		io:   ram.NewRAM(0x80),
		hRAM: ram.NewRAM(0x80),

		Log: log.NewNullLogger(),
	}
	m.init()

	return m
}

func (m *MMU) init() {
	addresses := []Address{
		{Name: m.cartName, Read: m.readCart, Write: readOnly(m.cartName)},
		{Name: named(RegionROM0), Read: m.readBank0, Write: readOnly(named(RegionROM0))},
		{Name: named(RegionROMN), Read: readBank(&m.bankN, types.ROMBankNStart), Write: readOnly(named(RegionROMN))},
		{Name: named(RegionVRAM), Read: readOffset(m.vRAM.Read, types.VRAMStart), Write: writeOffset(m.vRAM.Write, types.VRAMStart)},
		{Name: named(RegionERAM), Read: readOffset(m.eRAM.Read, types.ERAMStart), Write: writeOffset(m.eRAM.Write, types.ERAMStart)},
		{Name: named(RegionWRAM), Read: readOffset(m.wRAM.Read, 0), Write: writeOffset(m.wRAM.Write, 0)},
		{Name: named(RegionOAM), Read: readOffset(m.oam.Read, types.OAMStart), Write: writeOffset(m.oam.Write, types.OAMStart)},
		{Name: named(RegionUnusable), Read: unmappedRead, Write: unmappedWrite},
		{Name: named(RegionIO), Read: readOffset(m.io.Read, types.IOStart), Write: m.writeIO},
		{Name: named(RegionHRAM), Read: readOffset(m.hRAM.Read, types.HRAMStart), Write: writeOffset(m.hRAM.Write, types.HRAMStart)},
	}

	// 0x0000 - 0x00FF - BOOT ROM / ROM bank 0
	fill(&m.raw, 0x0000, 0x0100, &addresses[0])
	// 0x0100 - 0x3FFF - ROM bank 0
	fill(&m.raw, 0x0100, 0x4000, &addresses[1])
	// 0x4000 - 0x7FFF - ROM bank N
	fill(&m.raw, 0x4000, 0x8000, &addresses[2])
	// 0x8000 - 0x9FFF - VRAM (8kB)
	fill(&m.raw, 0x8000, 0xA000, &addresses[3])
	// 0xA000 - 0xBFFF - external RAM (8kB)
	fill(&m.raw, 0xA000, 0xC000, &addresses[4])
	// 0xC000 - 0xFDFF - internal RAM (8kB) + echo
	fill(&m.raw, 0xC000, 0xFE00, &addresses[5])
	// 0xFE00 - 0xFE9F - sprite attribute table (160B)
	fill(&m.raw, 0xFE00, 0xFEA0, &addresses[6])
	// 0xFEA0 - 0xFEFF - unusable memory (96B)
	fill(&m.raw, 0xFEA0, 0xFF00, &addresses[7])
	// 0xFF00 - 0xFF7F - I/O (128B)
	fill(&m.raw, 0xFF00, 0xFF80, &addresses[8])
	// 0xFF80 - 0xFFFF - high RAM (128B)
	fill(&m.raw, 0xFF80, 0x10000, &addresses[9])
}

func fill(raw *[0x10000]*Address, from, to int, address *Address) {
	for i := from; i < to; i++ {
		raw[i] = address
	}
}

func named(name string) func(uint16) string {
	return func(uint16) string {
		return name
	}
}

func readOffset(read func(uint16) uint8, offset uint16) func(uint16) (uint8, error) {
	return func(addr uint16) (uint8, error) {
		return read(addr - offset), nil
	}
}

func writeOffset(write func(uint16, uint8), offset uint16) func(uint16, uint8) error {
	return func(addr uint16, v uint8) error {
		write(addr-offset, v)
		return nil
	}
}

// readBank reads from a (possibly short) cartridge view. Bytes past
// the end of the view read as 0xFF, as an unconnected bus would.
func readBank(bank *[]byte, offset uint16) func(uint16) (uint8, error) {
	return func(addr uint16) (uint8, error) {
		i := int(addr - offset)
		if i >= len(*bank) {
			return 0xFF, nil
		}
		return (*bank)[i], nil
	}
}

func readOnly(name func(uint16) string) func(uint16, uint8) error {
	return func(addr uint16, _ uint8) error {
		return &AccessError{Op: "write", Address: addr, Region: name(addr), Err: ErrReadOnly}
	}
}

func unmappedRead(addr uint16) (uint8, error) {
	return 0, &AccessError{Op: "read", Address: addr, Region: RegionUnusable, Err: ErrUnmapped}
}

func unmappedWrite(addr uint16, _ uint8) error {
	return &AccessError{Op: "write", Address: addr, Region: RegionUnusable, Err: ErrUnmapped}
}

func (m *MMU) cartName(uint16) string {
	if m.bootActive {
		return RegionBootROM
	}
	return RegionROM0
}

// readCart handles 0x0000 - 0x00FF, where the boot ROM overlays
// the cartridge until it is disabled.
func (m *MMU) readCart(address uint16) (uint8, error) {
	if m.bootActive {
		return m.bootROM.Read(address), nil
	}
	return m.readBank0(address)
}

func (m *MMU) readBank0(address uint16) (uint8, error) {
	if int(address) >= len(m.bank0) {
		return 0xFF, nil
	}
	return m.bank0[address], nil
}

func (m *MMU) writeIO(address uint16, value uint8) error {
	m.io.Write(address-types.IOStart, value)

	// it's assumed any write to this register will disable the boot rom
	if address == types.BDIS && m.bootActive {
		m.bootActive = false
		m.Log.Debugf("boot ROM disabled by write of 0x%02X to 0x%04X", value, address)
	}
	return nil
}

// InstallCartridge maps the given views of a cartridge image as
// ROM bank 0 and the switchable ROM bank. The MMU keeps the slices
// as they are, the owner of the image must not modify them while
// they are installed. Only a single fixed switchable bank is
// supported, a memory bank controller would replace bankN here.
func (m *MMU) InstallCartridge(bank0, bankN []byte) {
	m.bank0 = bank0
	m.bankN = bankN
}

// SetBootActive maps (true) or unmaps (false) the boot ROM over
// 0x0000 - 0x00FF. Unmapping is permanent for the lifetime of the
// MMU, attempting to map the boot ROM back in returns
// ErrBootOverlayDisabled.
func (m *MMU) SetBootActive(active bool) error {
	if active == m.bootActive {
		return nil
	}
	if active {
		return ErrBootOverlayDisabled
	}
	m.bootActive = false
	m.Log.Debugf("boot ROM disabled")
	return nil
}

// BootActive reports whether the boot ROM is currently mapped.
func (m *MMU) BootActive() bool {
	return m.bootActive
}

// Region returns the name of the region currently backing the
// given address.
func (m *MMU) Region(address uint16) string {
	return m.raw[address].Name(address)
}

// Read returns the value at the given address. It handles the boot
// overlay, the echo of work RAM and the unusable region.
func (m *MMU) Read(address uint16) (uint8, error) {
	return m.raw[address].Read(address)
}

// Write writes the value to the given address. Writes to either
// ROM bank, the boot ROM or the unusable region are rejected.
func (m *MMU) Write(address uint16, value uint8) error {
	return m.raw[address].Write(address, value)
}

// Read16 returns the big-endian composition of the bytes at address
// and address+1, wrapping from 0xFFFF to 0x0000.
func (m *MMU) Read16(address uint16) (uint16, error) {
	high, err := m.Read(address)
	if err != nil {
		return 0, err
	}
	low, err := m.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return utils.BytesToUint16(high, low), nil
}
