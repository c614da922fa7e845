package cpu

// and performs a bitwise AND operation on A and the given value.
//
//	AND n
//	n = A, B, C, D, E, H, L, (HL), d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(value uint8) {
	c.A &= value
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on A and the given value.
//
//	OR n
//	n = A, B, C, D, E, H, L, (HL), d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(value uint8) {
	c.A |= value
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on A and the given value.
//
//	XOR n
//	n = A, B, C, D, E, H, L, (HL), d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(value uint8) {
	c.A ^= value
	c.setFlags(c.A == 0, false, false, false)
}

// compare compares A with the given value, as a subtraction whose
// result is discarded.
//
//	CP n
//	n = A, B, C, D, E, H, L, (HL), d8
func (c *CPU) compare(value uint8) {
	c.sub(c.A, value, false)
}

func init() {
	DefineInstruction(0x2F, "CPL", 1, 1, func(c *CPU) {
		c.A = 0xFF ^ c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})
	DefineInstruction(0x37, "SCF", 1, 1, func(c *CPU) {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
	DefineInstruction(0x3F, "CCF", 1, 1, func(c *CPU) {
		if c.isFlagSet(FlagCarry) {
			c.clearFlag(FlagCarry)
		} else {
			c.setFlag(FlagCarry)
		}
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
}
