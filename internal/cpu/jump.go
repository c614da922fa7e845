package cpu

import "fmt"

// call pushes the address of the next instruction onto the stack and jumps to
// the given address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(address uint16) {
	c.push(c.PC)
	c.PC = address
}

// jumpRelative jumps to the address relative to the current PC.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
}

// ret pops the return address off the stack into PC.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.pop()
}

func init() {
	DefineInstruction(0x18, "JR r8", 2, 3, func(c *CPU) { c.jumpRelative(c.d8()) })
	DefineInstruction(0xC3, "JP a16", 3, 4, func(c *CPU) { c.PC = c.d16() })
	DefineInstruction(0xE9, "JP HL", 1, 1, func(c *CPU) { c.PC = c.HL.Uint16() })
	DefineInstruction(0xCD, "CALL a16", 3, 6, func(c *CPU) { c.call(c.d16()) })
	DefineInstruction(0xC9, "RET", 1, 4, func(c *CPU) { c.ret() })
	DefineInstruction(0xD9, "RETI", 1, 4, func(c *CPU) {
		c.ret()
		c.IME = true
	})

	// conditional control flow - NZ, Z, NC, C
	for i := uint8(0); i < 4; i++ {
		cc := i
		name := conditionNames[cc]

		DefineBranch(0x20|cc<<3, "JR "+name+", r8", 2, 2, 3, func(c *CPU) {
			if c.condition(cc) {
				c.jumpRelative(c.d8())
				c.branched = true
			}
		})
		DefineBranch(0xC2|cc<<3, "JP "+name+", a16", 3, 3, 4, func(c *CPU) {
			if c.condition(cc) {
				c.PC = c.d16()
				c.branched = true
			}
		})
		DefineBranch(0xC4|cc<<3, "CALL "+name+", a16", 3, 3, 6, func(c *CPU) {
			if c.condition(cc) {
				c.call(c.d16())
				c.branched = true
			}
		})
		DefineBranch(0xC0|cc<<3, "RET "+name, 1, 2, 5, func(c *CPU) {
			if c.condition(cc) {
				c.ret()
				c.branched = true
			}
		})
	}

	// RST n - 0xC7, 0xCF, ... 0xFF
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) << 3
		DefineInstruction(0xC7|i<<3, fmt.Sprintf("RST %02XH", vector), 1, 4, func(c *CPU) {
			c.call(vector)
		})
	}
}
