package cpu

func init() {
	DefineInstruction(0x00, "NOP", 1, 1, func(c *CPU) {})
	DefineInstruction(0x10, "STOP", 2, 1, func(c *CPU) {
		c.mode = ModeStop
	})
	DefineInstruction(0x76, "HALT", 1, 1, func(c *CPU) {
		pending, err := c.interruptPending()
		if err != nil {
			c.raise(err)
			return
		}
		if !pending {
			c.mode = ModeHalt
		}
	})
	DefineInstruction(0xF3, "DI", 1, 1, func(c *CPU) {
		c.IME = false
		c.eiPending = false
	})
	DefineInstruction(0xFB, "EI", 1, 1, func(c *CPU) {
		c.eiPending = true
	})
}
