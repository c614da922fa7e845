package cpu

// loadRegister16 loads the 16-bit immediate operand into the given
// RegisterPair, low byte into the low register.
//
//	LD nn, d16
//	nn = BC, DE, HL
//	d16 = 16-bit immediate value
func (c *CPU) loadRegister16(reg *RegisterPair) {
	reg.SetUint16(c.d16())
}

// loadMemoryToRegister loads the value at the given memory address into the
// given Register.
//
//	LD A, (nn)
//	nn = BC, DE, HL+, HL-
func (c *CPU) loadMemoryToRegister(reg *Register, address uint16) {
	*reg = c.readByte(address)
}

// loadRegisterToMemory loads the value of the given Register into the given
// memory address.
//
//	LD (nn), A
//	nn = BC, DE, HL+, HL-
func (c *CPU) loadRegisterToMemory(reg Register, address uint16) {
	c.writeByte(address, reg)
}

// loadRegisterToHardware loads the value of the given Register into the given
// hardware address. (e.g. LD (0xFF00 + n), A)
//
//	LD (0xFF00 + n), A
//	n = C, 8 bit immediate value
func (c *CPU) loadRegisterToHardware(reg Register, address uint8) {
	c.writeByte(0xFF00+uint16(address), reg)
}

// push pushes a 16-bit value onto the stack, high byte first.
func (c *CPU) push(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// pop pops a 16-bit value off the stack.
func (c *CPU) pop() uint16 {
	low := c.readByte(c.SP)
	c.SP++
	high := c.readByte(c.SP)
	c.SP++
	return uint16(high)<<8 | uint16(low)
}

// addSPSigned adds the signed 8-bit immediate operand to SP, and
// returns the result, setting the flags from the unsigned addition
// of the low byte.
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	value := c.d8()
	result := uint16(int32(c.SP) + int32(int8(value)))
	c.setFlags(false, false, (c.SP&0xF)+uint16(value&0xF) > 0xF, (c.SP&0xFF)+uint16(value) > 0xFF)
	return result
}

func init() {
	DefineInstruction(0x01, "LD BC, d16", 3, 3, func(c *CPU) { c.loadRegister16(c.BC) })
	DefineInstruction(0x11, "LD DE, d16", 3, 3, func(c *CPU) { c.loadRegister16(c.DE) })
	DefineInstruction(0x21, "LD HL, d16", 3, 3, func(c *CPU) { c.loadRegister16(c.HL) })
	DefineInstruction(0x31, "LD SP, d16", 3, 3, func(c *CPU) { c.SP = c.d16() })

	DefineInstruction(0x02, "LD (BC), A", 1, 2, func(c *CPU) { c.loadRegisterToMemory(c.A, c.BC.Uint16()) })
	DefineInstruction(0x12, "LD (DE), A", 1, 2, func(c *CPU) { c.loadRegisterToMemory(c.A, c.DE.Uint16()) })
	DefineInstruction(0x22, "LD (HL+), A", 1, 2, func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x32, "LD (HL-), A", 1, 2, func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})
	DefineInstruction(0x0A, "LD A, (BC)", 1, 2, func(c *CPU) { c.loadMemoryToRegister(&c.A, c.BC.Uint16()) })
	DefineInstruction(0x1A, "LD A, (DE)", 1, 2, func(c *CPU) { c.loadMemoryToRegister(&c.A, c.DE.Uint16()) })
	DefineInstruction(0x2A, "LD A, (HL+)", 1, 2, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x3A, "LD A, (HL-)", 1, 2, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})

	DefineInstruction(0x08, "LD (a16), SP", 3, 5, func(c *CPU) {
		address := c.d16()
		c.writeByte(address, uint8(c.SP&0xFF))
		c.writeByte(address+1, uint8(c.SP>>8))
	})

	// LD r, d8 - 0x06, 0x0E, ... 0x3E
	for i := uint8(0); i < 8; i++ {
		dst := i
		cycles := uint8(2)
		if dst == 6 {
			cycles = 3
		}
		DefineInstruction(0x06|dst<<3, "LD "+registerNames[dst]+", d8", 2, cycles, func(c *CPU) {
			c.set(dst, c.d8())
		})
	}

	// LD r, r' - 0x40 - 0x7F, with 0x76 being HALT
	for i := uint8(0x40); i < 0x80; i++ {
		if i == 0x76 {
			continue
		}
		dst, src := i>>3&0x7, i&0x7
		cycles := uint8(1)
		if dst == 6 || src == 6 {
			cycles = 2
		}
		DefineInstruction(i, "LD "+registerNames[dst]+", "+registerNames[src], 1, cycles, func(c *CPU) {
			c.set(dst, c.get(src))
		})
	}

	DefineInstruction(0xE0, "LDH (a8), A", 2, 3, func(c *CPU) { c.loadRegisterToHardware(c.A, c.d8()) })
	DefineInstruction(0xF0, "LDH A, (a8)", 2, 3, func(c *CPU) { c.loadMemoryToRegister(&c.A, 0xFF00+uint16(c.d8())) })
	DefineInstruction(0xE2, "LD (C), A", 1, 2, func(c *CPU) { c.loadRegisterToHardware(c.A, c.C) })
	DefineInstruction(0xF2, "LD A, (C)", 1, 2, func(c *CPU) { c.loadMemoryToRegister(&c.A, 0xFF00+uint16(c.C)) })
	DefineInstruction(0xEA, "LD (a16), A", 3, 4, func(c *CPU) { c.loadRegisterToMemory(c.A, c.d16()) })
	DefineInstruction(0xFA, "LD A, (a16)", 3, 4, func(c *CPU) { c.loadMemoryToRegister(&c.A, c.d16()) })

	DefineInstruction(0xF8, "LD HL, SP+r8", 2, 3, func(c *CPU) { c.HL.SetUint16(c.addSPSigned()) })
	DefineInstruction(0xF9, "LD SP, HL", 1, 2, func(c *CPU) { c.SP = c.HL.Uint16() })

	DefineInstruction(0xC1, "POP BC", 1, 3, func(c *CPU) { c.BC.SetUint16(c.pop()) })
	DefineInstruction(0xD1, "POP DE", 1, 3, func(c *CPU) { c.DE.SetUint16(c.pop()) })
	DefineInstruction(0xE1, "POP HL", 1, 3, func(c *CPU) { c.HL.SetUint16(c.pop()) })
	DefineInstruction(0xF1, "POP AF", 1, 3, func(c *CPU) {
		// the low nibble of F is not writable
		c.AF.SetUint16(c.pop() & 0xFFF0)
	})
	DefineInstruction(0xC5, "PUSH BC", 1, 4, func(c *CPU) { c.push(c.BC.Uint16()) })
	DefineInstruction(0xD5, "PUSH DE", 1, 4, func(c *CPU) { c.push(c.DE.Uint16()) })
	DefineInstruction(0xE5, "PUSH HL", 1, 4, func(c *CPU) { c.push(c.HL.Uint16()) })
	DefineInstruction(0xF5, "PUSH AF", 1, 4, func(c *CPU) { c.push(c.AF.Uint16()) })
}
