package cpu

import "testing"

func TestInstruction_Calls(t *testing.T) {
	t.Run("CALL a16", func(t *testing.T) {
		c, b := newTestCPU(0xCD, 0x34, 0x12)
		m, tc := step(t, c)
		if m != 6 || tc != 24 {
			t.Errorf("expected (6, 24) cycles, got (%d, %d)", m, tc)
		}
		if c.PC != 0x1234 {
			t.Errorf("expected PC to be 0x1234, got 0x%04X", c.PC)
		}
		if c.SP != 0xFFFC {
			t.Errorf("expected SP to be 0xFFFC, got 0x%04X", c.SP)
		}
		// return address is the instruction following the call
		if b.memory[0xFFFD] != 0x01 || b.memory[0xFFFC] != 0x03 {
			t.Errorf("expected 0x0103 on the stack, got 0x%02X%02X", b.memory[0xFFFD], b.memory[0xFFFC])
		}
	})
	t.Run("CALL and RET", func(t *testing.T) {
		c, b := newTestCPU(0xCD, 0x00, 0x02, 0x00)
		b.memory[0x0200] = 0xC9
		step(t, c)
		if m, _ := step(t, c); m != 4 {
			t.Errorf("expected 4 cycles, got %d", m)
		}
		if c.PC != 0x0103 || c.SP != 0xFFFE {
			t.Errorf("expected PC=0x0103 SP=0xFFFE, got PC=0x%04X SP=0x%04X", c.PC, c.SP)
		}
	})
	t.Run("CALL NZ not taken", func(t *testing.T) {
		c, _ := newTestCPU(0xC4, 0x34, 0x12)
		c.setFlag(FlagZero)
		if m, _ := step(t, c); m != 3 {
			t.Errorf("expected 3 cycles, got %d", m)
		}
		if c.PC != 0x0103 || c.SP != 0xFFFE {
			t.Errorf("expected PC=0x0103 SP=0xFFFE, got PC=0x%04X SP=0x%04X", c.PC, c.SP)
		}
	})
	t.Run("CALL C taken", func(t *testing.T) {
		c, _ := newTestCPU(0xDC, 0x34, 0x12)
		c.setFlag(FlagCarry)
		if m, _ := step(t, c); m != 6 {
			t.Errorf("expected 6 cycles, got %d", m)
		}
		if c.PC != 0x1234 {
			t.Errorf("expected PC to be 0x1234, got 0x%04X", c.PC)
		}
	})
	t.Run("RET Z", func(t *testing.T) {
		c, b := newTestCPU(0xC8, 0xC8)
		c.SP = 0xFFFC
		b.memory[0xFFFC], b.memory[0xFFFD] = 0x34, 0x12
		if m, _ := step(t, c); m != 2 {
			t.Errorf("expected 2 cycles, got %d", m)
		}
		c.setFlag(FlagZero)
		if m, _ := step(t, c); m != 5 {
			t.Errorf("expected 5 cycles, got %d", m)
		}
		if c.PC != 0x1234 || c.SP != 0xFFFE {
			t.Errorf("expected PC=0x1234 SP=0xFFFE, got PC=0x%04X SP=0x%04X", c.PC, c.SP)
		}
	})
	t.Run("RST 38H", func(t *testing.T) {
		c, b := newTestCPU(0xFF)
		step(t, c)
		if c.PC != 0x0038 {
			t.Errorf("expected PC to be 0x0038, got 0x%04X", c.PC)
		}
		if b.memory[0xFFFD] != 0x01 || b.memory[0xFFFC] != 0x01 {
			t.Errorf("expected 0x0101 on the stack, got 0x%02X%02X", b.memory[0xFFFD], b.memory[0xFFFC])
		}
	})
}

func TestInstruction_Jumps(t *testing.T) {
	t.Run("JR r8", func(t *testing.T) {
		c, _ := newTestCPU(0x18, 0x03)
		if m, _ := step(t, c); m != 3 {
			t.Errorf("expected 3 cycles, got %d", m)
		}
		if c.PC != 0x0105 {
			t.Errorf("expected PC to be 0x0105, got 0x%04X", c.PC)
		}
	})
	t.Run("JR r8 backwards", func(t *testing.T) {
		c, _ := newTestCPU(0x18, 0xFE)
		step(t, c)
		if c.PC != 0x0100 {
			t.Errorf("expected PC to be 0x0100, got 0x%04X", c.PC)
		}
	})
	t.Run("JR NZ", func(t *testing.T) {
		c, _ := newTestCPU(0x20, 0x05)
		if m, _ := step(t, c); m != 3 {
			t.Errorf("expected 3 cycles, got %d", m)
		}
		if c.PC != 0x0107 {
			t.Errorf("expected PC to be 0x0107, got 0x%04X", c.PC)
		}

		c, _ = newTestCPU(0x20, 0x05)
		c.setFlag(FlagZero)
		if m, _ := step(t, c); m != 2 {
			t.Errorf("expected 2 cycles, got %d", m)
		}
		if c.PC != 0x0102 {
			t.Errorf("expected PC to be 0x0102, got 0x%04X", c.PC)
		}
	})
	t.Run("JP a16", func(t *testing.T) {
		c, _ := newTestCPU(0xC3, 0x50, 0x01)
		if m, _ := step(t, c); m != 4 {
			t.Errorf("expected 4 cycles, got %d", m)
		}
		if c.PC != 0x0150 {
			t.Errorf("expected PC to be 0x0150, got 0x%04X", c.PC)
		}
	})
	t.Run("JP NC", func(t *testing.T) {
		c, _ := newTestCPU(0xD2, 0x50, 0x01)
		c.setFlag(FlagCarry)
		if m, _ := step(t, c); m != 3 {
			t.Errorf("expected 3 cycles, got %d", m)
		}
		if c.PC != 0x0103 {
			t.Errorf("expected PC to be 0x0103, got 0x%04X", c.PC)
		}
	})
	t.Run("JP HL", func(t *testing.T) {
		c, _ := newTestCPU(0xE9)
		c.HL.SetUint16(0xC000)
		if m, _ := step(t, c); m != 1 {
			t.Errorf("expected 1 cycle, got %d", m)
		}
		if c.PC != 0xC000 {
			t.Errorf("expected PC to be 0xC000, got 0x%04X", c.PC)
		}
	})
}
