package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware registers are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// IF is the address of the IF hardware register. The IF
	// hardware register is used to request interrupts. Writing a 1
	// to a bit in IF requests an interrupt, and writing a 0 clears
	// the request.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// BDIS is the address of the BDIS hardware register. The BDIS
	// hardware register is written to by the boot firmware as its
	// final act, which unmaps the boot overlay and exposes the
	// cartridge at 0x0000 - 0x00FF for the rest of the session.
	BDIS HardwareAddress = 0xFF50
	// IE is the address of the IE hardware register. The IE
	// hardware register is used to enable interrupts. Writing a 1
	// to a bit in IE enables the corresponding interrupt, and writing
	// a 0 disables it. It lives in the last byte of high RAM.
	IE HardwareAddress = 0xFFFF
)

// InterruptMask covers the five interrupt sources shared by IE and IF.
const InterruptMask = 0x1F

// The boundaries of each region of the 16-bit address space. Each
// constant names the first address of the region.
const (
	BootROMStart  uint16 = 0x0000
	BootROMEnd    uint16 = 0x0100
	ROMBank0Start uint16 = 0x0000
	ROMBankNStart uint16 = 0x4000
	VRAMStart     uint16 = 0x8000
	ERAMStart     uint16 = 0xA000
	WRAMStart     uint16 = 0xC000
	EchoStart     uint16 = 0xE000
	OAMStart      uint16 = 0xFE00
	UnusableStart uint16 = 0xFEA0
	IOStart       uint16 = 0xFF00
	HRAMStart     uint16 = 0xFF80
)
