package cartridge

import (
	"fmt"
	"strings"
)

type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

var (
	ramMAP = map[uint8]uint{
		0x00: 0,
		0x02: 8 * 1024,
		0x03: 32 * 1024,
		0x04: 128 * 1024,
		0x05: 64 * 1024,
	}
)

type Type uint8

const (
	ROM          Type = 0x00
	MBC1         Type = 0x01
	MBC1RAM      Type = 0x02
	MBC1RAMBATT  Type = 0x03
	MBC2         Type = 0x05
	MBC2BATT     Type = 0x06
	ROMRAM       Type = 0x08
	ROMRAMBATT   Type = 0x09
	MBC3         Type = 0x11
	MBC3RAM      Type = 0x12
	MBC3RAMBATT  Type = 0x13
	MBC5         Type = 0x19
	MBC5RAM      Type = 0x1A
	MBC5RAMBATT  Type = 0x1B
	POCKETCAMERA Type = 0x1F
	BANDAITAMA5  Type = 0xFD
	HUDSONHUC3   Type = 0xFE
	HUDSONHUC1   Type = 0xFF
)

var typeNames = map[Type]string{
	ROM:          "ROM ONLY",
	MBC1:         "MBC1",
	MBC1RAM:      "MBC1+RAM",
	MBC1RAMBATT:  "MBC1+RAM+BATTERY",
	MBC2:         "MBC2",
	MBC2BATT:     "MBC2+BATTERY",
	ROMRAM:       "ROM+RAM",
	ROMRAMBATT:   "ROM+RAM+BATTERY",
	MBC3:         "MBC3",
	MBC3RAM:      "MBC3+RAM",
	MBC3RAMBATT:  "MBC3+RAM+BATTERY",
	MBC5:         "MBC5",
	MBC5RAM:      "MBC5+RAM",
	MBC5RAMBATT:  "MBC5+RAM+BATTERY",
	POCKETCAMERA: "POCKET CAMERA",
	BANDAITAMA5:  "BANDAI TAMA5",
	HUDSONHUC3:   "HuC3",
	HUDSONHUC1:   "HuC1+RAM+BATTERY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown (0x%02X)", uint8(t))
}

// Header represents the header of a cartridge, each cartridge has a header and is
// located at the address space 0x0100-0x014F. The header contains information about
// the cartridge itself, and the hardware it expects to run on. Nothing in the header
// affects how the cartridge is mapped into memory.
type Header struct {
	// 0x0134-0x0143 - Title of the game
	Title string

	// 0x0143 - CartridgeGBMode of the game. In older cartridges this byte was part
	// of the title, but the Colour Game Boy and later models interpret this byte
	// to determine if the cartridge is compatible with the Colour Game Boy.
	CartridgeGBMode Flag

	SGBFlag        bool
	CartridgeType  Type
	ROMSize        uint
	RAMSize        uint
	MaskROMVersion uint8
	HeaderChecksum uint8
	GlobalChecksum uint16

	raw [0x50]byte
}

// parseHeader parses the 0x50 bytes at 0x0100 - 0x014F.
func parseHeader(header []byte) Header {
	h := Header{}
	copy(h.raw[:], header)

	// parse the mode of the cartridge and parse the header accordingly
	switch header[0x43] {
	case 0x80:
		h.CartridgeGBMode = FlagSupportsCGB
	case 0xC0:
		h.CartridgeGBMode = FlagOnlyCGB
	default:
		h.CartridgeGBMode = FlagOnlyDMG
	}

	// parse the title
	if h.CartridgeGBMode == FlagOnlyDMG {
		h.Title = string(header[0x34:0x44])
	} else {
		h.Title = string(header[0x34:0x43])
	}
	h.Title = strings.TrimRight(h.Title, "\x00 ")

	h.SGBFlag = header[0x46] == 0x03
	h.CartridgeType = Type(header[0x47])

	// parse the ROM size (calculated by 32kB x (1 << n))
	h.ROMSize = (32 * 1024) * (1 << (header[0x48] & 0x0F))
	h.RAMSize = ramMAP[header[0x49]]

	h.MaskROMVersion = header[0x4C]
	h.HeaderChecksum = header[0x4D]
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	return h
}

// ComputeChecksum computes the header checksum over 0x0134 - 0x014C,
// as the boot ROM does before handing over to the cartridge.
func (h *Header) ComputeChecksum() uint8 {
	var x uint8
	for _, b := range h.raw[0x34:0x4D] {
		x = x - b - 1
	}
	return x
}

// ChecksumValid reports whether the stored header checksum matches
// the computed one. A real DMG locks up when it does not.
func (h *Header) ChecksumValid() bool {
	return h.ComputeChecksum() == h.HeaderChecksum
}

func (h *Header) Hardware() string {
	switch h.CartridgeGBMode {
	case FlagOnlyDMG:
		return "DMG"
	case FlagSupportsCGB, FlagOnlyCGB:
		return "CGB"
	default:
		return "Unknown"
	}
}

func (h *Header) String() string {
	return fmt.Sprintf("%s Mode: %s | Type: %s | ROM Size: %dkB | RAM Size: %dkB", h.Title, h.Hardware(), h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
