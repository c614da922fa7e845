package cpu

// increment the given value and set the flags accordingly.
//
//	INC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	incremented := value + 0x01
	c.setFlags(incremented == 0, false, value&0xF == 0xF, c.isFlagSet(FlagCarry))
	return incremented
}

// decrement the given value and set the flags accordingly.
//
//	DEC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	decremented := value - 0x01
	c.setFlags(decremented == 0, true, value&0xF == 0x0, c.isFlagSet(FlagCarry))
	return decremented
}

// add is a helper function for adding two bytes together and
// setting the flags accordingly.
//
// Used by:
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(a, b uint8, shouldCarry bool) uint8 {
	newCarry := c.isFlagSet(FlagCarry) && shouldCarry
	sum := int16(a) + int16(b)
	sumHalf := int16(a&0xF) + int16(b&0xF)
	if newCarry {
		sum++
		sumHalf++
	}
	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	return uint8(sum)
}

// addUint16 is a helper function for adding two uint16 values together and
// setting the flags accordingly.
//
// Used by:
//
//	ADD HL, nn
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addUint16(a, b uint16) uint16 {
	sum := int32(a) + int32(b)
	c.setFlags(c.isFlagSet(FlagZero), false, (a&0xFFF)+(b&0xFFF) > 0xFFF, sum > 0xFFFF)
	return uint16(sum)
}

// sub is a helper function for subtracting two bytes together and
// setting the flags accordingly.
//
// Used by:
//
//	SUB A, n
//	SBC A, n
//	CP A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(a, b uint8, shouldCarry bool) uint8 {
	newCarry := c.isFlagSet(FlagCarry) && shouldCarry
	sub := int16(a) - int16(b)
	subHalf := int16(a&0xF) - int16(b&0xF)
	if newCarry {
		sub--
		subHalf--
	}

	c.setFlags(uint8(sub) == 0, true, subHalf < 0, sub < 0)
	return uint8(sub)
}

// daa adjusts A to hold the binary coded decimal result of the last
// addition or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the adjustment produced a carry.
func (c *CPU) daa() {
	a := c.A
	carry := c.isFlagSet(FlagCarry)
	if !c.isFlagSet(FlagSubtract) {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if c.isFlagSet(FlagHalfCarry) || a&0xF > 0x9 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			a -= 0x06
		}
	}
	c.A = a
	c.setFlags(a == 0, c.isFlagSet(FlagSubtract), false, carry)
}

// alu holds the 8 accumulator operations in encoding order, as
// selected by bits 3-5 of opcodes 0x80 - 0xBF and 0xC6 - 0xFE.
var alu = [8]struct {
	name string
	fn   func(c *CPU, value uint8)
}{
	{"ADD A, ", func(c *CPU, v uint8) { c.A = c.add(c.A, v, false) }},
	{"ADC A, ", func(c *CPU, v uint8) { c.A = c.add(c.A, v, true) }},
	{"SUB ", func(c *CPU, v uint8) { c.A = c.sub(c.A, v, false) }},
	{"SBC A, ", func(c *CPU, v uint8) { c.A = c.sub(c.A, v, true) }},
	{"AND ", func(c *CPU, v uint8) { c.and(v) }},
	{"XOR ", func(c *CPU, v uint8) { c.xor(v) }},
	{"OR ", func(c *CPU, v uint8) { c.or(v) }},
	{"CP ", func(c *CPU, v uint8) { c.compare(v) }},
}

func init() {
	// INC r, DEC r - 0x04, 0x05, 0x0C, 0x0D, ... 0x3C, 0x3D
	for i := uint8(0); i < 8; i++ {
		reg := i
		cycles := uint8(1)
		if reg == 6 {
			cycles = 3
		}
		DefineInstruction(0x04|reg<<3, "INC "+registerNames[reg], 1, cycles, func(c *CPU) {
			c.set(reg, c.increment(c.get(reg)))
		})
		DefineInstruction(0x05|reg<<3, "DEC "+registerNames[reg], 1, cycles, func(c *CPU) {
			c.set(reg, c.decrement(c.get(reg)))
		})
	}

	// ALU A, r - 0x80 - 0xBF
	for i := uint8(0x80); i < 0xC0; i++ {
		op, src := alu[i>>3&0x7], i&0x7
		cycles := uint8(1)
		if src == 6 {
			cycles = 2
		}
		DefineInstruction(i, op.name+registerNames[src], 1, cycles, func(c *CPU) {
			op.fn(c, c.get(src))
		})
	}

	// ALU A, d8 - 0xC6, 0xCE, ... 0xFE
	for i := uint8(0); i < 8; i++ {
		op := alu[i]
		DefineInstruction(0xC6|i<<3, op.name+"d8", 2, 2, func(c *CPU) {
			op.fn(c, c.d8())
		})
	}

	DefineInstruction(0x03, "INC BC", 1, 2, func(c *CPU) { c.BC.SetUint16(c.BC.Uint16() + 1) })
	DefineInstruction(0x13, "INC DE", 1, 2, func(c *CPU) { c.DE.SetUint16(c.DE.Uint16() + 1) })
	DefineInstruction(0x23, "INC HL", 1, 2, func(c *CPU) { c.HL.SetUint16(c.HL.Uint16() + 1) })
	DefineInstruction(0x33, "INC SP", 1, 2, func(c *CPU) { c.SP++ })
	DefineInstruction(0x0B, "DEC BC", 1, 2, func(c *CPU) { c.BC.SetUint16(c.BC.Uint16() - 1) })
	DefineInstruction(0x1B, "DEC DE", 1, 2, func(c *CPU) { c.DE.SetUint16(c.DE.Uint16() - 1) })
	DefineInstruction(0x2B, "DEC HL", 1, 2, func(c *CPU) { c.HL.SetUint16(c.HL.Uint16() - 1) })
	DefineInstruction(0x3B, "DEC SP", 1, 2, func(c *CPU) { c.SP-- })

	DefineInstruction(0x09, "ADD HL, BC", 1, 2, func(c *CPU) { c.HL.SetUint16(c.addUint16(c.HL.Uint16(), c.BC.Uint16())) })
	DefineInstruction(0x19, "ADD HL, DE", 1, 2, func(c *CPU) { c.HL.SetUint16(c.addUint16(c.HL.Uint16(), c.DE.Uint16())) })
	DefineInstruction(0x29, "ADD HL, HL", 1, 2, func(c *CPU) { c.HL.SetUint16(c.addUint16(c.HL.Uint16(), c.HL.Uint16())) })
	DefineInstruction(0x39, "ADD HL, SP", 1, 2, func(c *CPU) { c.HL.SetUint16(c.addUint16(c.HL.Uint16(), c.SP)) })
	DefineInstruction(0xE8, "ADD SP, r8", 2, 4, func(c *CPU) { c.SP = c.addSPSigned() })

	DefineInstruction(0x27, "DAA", 1, 1, func(c *CPU) { c.daa() })
}
