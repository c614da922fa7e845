package cpu

import "fmt"

// testBit tests the bit at the given position in the given value.
//
//	BIT n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit n of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, position uint8) {
	c.shouldZeroFlag((value >> position) & 0x01)
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

func init() {
	// CB 0x40 - 0xFF
	for i := uint8(0); i < 8; i++ {
		for j := uint8(0); j < 8; j++ {
			bit, reg := i, j
			name := fmt.Sprintf("%d, %s", bit, registerNames[reg])

			testCycles, cycles := uint8(2), uint8(2)
			if reg == 6 {
				testCycles, cycles = 3, 4
			}

			DefineInstructionCB(0x40|bit<<3|reg, "BIT "+name, testCycles, func(c *CPU) {
				c.testBit(c.get(reg), bit)
			})
			DefineInstructionCB(0x80|bit<<3|reg, "RES "+name, cycles, func(c *CPU) {
				value := c.get(reg)
				if c.fault == nil {
					c.set(reg, value&^(1<<bit))
				}
			})
			DefineInstructionCB(0xC0|bit<<3|reg, "SET "+name, cycles, func(c *CPU) {
				value := c.get(reg)
				if c.fault == nil {
					c.set(reg, value|1<<bit)
				}
			})
		}
	}
}
