package cpu

import "testing"

func TestInstruction_Load(t *testing.T) {
	// 0x40 - 0x7F LD r, r'
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x40 | dst<<3 | src
			if opcode == 0x76 {
				continue
			}
			t.Run(InstructionSet[opcode].Name(), func(t *testing.T) {
				c, b := newTestCPU(opcode)
				c.HL.SetUint16(0xC000)
				if src == 6 {
					b.memory[0xC000] = 0x42
				} else {
					*c.registerIndex(src) = 0x42
				}
				step(t, c)

				var got uint8
				if dst == 6 {
					got = b.memory[c.HL.Uint16()]
				} else {
					got = *c.registerIndex(dst)
				}
				if got != 0x42 {
					t.Errorf("expected 0x42, got 0x%02X", got)
				}
			})
		}
	}
}

func TestInstruction_LoadImmediate(t *testing.T) {
	t.Run("LD SP, d16", func(t *testing.T) {
		c, _ := newTestCPU(0x31, 0xFE, 0xFF)
		step(t, c)
		if c.SP != 0xFFFE || c.PC != 0x0103 {
			t.Errorf("expected SP=0xFFFE PC=0x0103, got SP=0x%04X PC=0x%04X", c.SP, c.PC)
		}
	})
	t.Run("LD (HL), d8", func(t *testing.T) {
		c, b := newTestCPU(0x36, 0x99)
		c.HL.SetUint16(0xC123)
		if m, _ := step(t, c); m != 3 {
			t.Errorf("expected 3 cycles, got %d", m)
		}
		if b.memory[0xC123] != 0x99 {
			t.Errorf("expected 0x99 at 0xC123, got 0x%02X", b.memory[0xC123])
		}
	})
	t.Run("LD (a16), SP", func(t *testing.T) {
		c, b := newTestCPU(0x08, 0x00, 0xC1)
		c.SP = 0xBEEF
		if m, _ := step(t, c); m != 5 {
			t.Errorf("expected 5 cycles, got %d", m)
		}
		if b.memory[0xC100] != 0xEF || b.memory[0xC101] != 0xBE {
			t.Errorf("expected SP stored low byte first, got 0x%02X 0x%02X", b.memory[0xC100], b.memory[0xC101])
		}
	})
}

func TestInstruction_LoadIndirect(t *testing.T) {
	t.Run("LD (HL+), A", func(t *testing.T) {
		c, b := newTestCPU(0x22)
		c.A = 0x56
		c.HL.SetUint16(0xC0FF)
		step(t, c)
		if b.memory[0xC0FF] != 0x56 || c.HL.Uint16() != 0xC100 {
			t.Errorf("expected (0xC0FF)=0x56 HL=0xC100, got 0x%02X HL=0x%04X", b.memory[0xC0FF], c.HL.Uint16())
		}
	})
	t.Run("LD A, (HL-)", func(t *testing.T) {
		c, b := newTestCPU(0x3A)
		c.HL.SetUint16(0xC000)
		b.memory[0xC000] = 0x77
		step(t, c)
		if c.A != 0x77 || c.HL.Uint16() != 0xBFFF {
			t.Errorf("expected A=0x77 HL=0xBFFF, got A=0x%02X HL=0x%04X", c.A, c.HL.Uint16())
		}
	})
	t.Run("LDH (a8), A", func(t *testing.T) {
		c, b := newTestCPU(0xE0, 0x50)
		c.A = 0x01
		if m, _ := step(t, c); m != 3 {
			t.Errorf("expected 3 cycles, got %d", m)
		}
		if b.memory[0xFF50] != 0x01 {
			t.Errorf("expected 0x01 at 0xFF50, got 0x%02X", b.memory[0xFF50])
		}
	})
	t.Run("LD A, (C)", func(t *testing.T) {
		c, b := newTestCPU(0xF2)
		c.C = 0x80
		b.memory[0xFF80] = 0x3C
		step(t, c)
		if c.A != 0x3C {
			t.Errorf("expected A to be 0x3C, got 0x%02X", c.A)
		}
	})
	t.Run("LD A, (a16)", func(t *testing.T) {
		c, b := newTestCPU(0xFA, 0x00, 0xC0)
		b.memory[0xC000] = 0x24
		if m, _ := step(t, c); m != 4 {
			t.Errorf("expected 4 cycles, got %d", m)
		}
		if c.A != 0x24 {
			t.Errorf("expected A to be 0x24, got 0x%02X", c.A)
		}
	})
}

func TestInstruction_Stack(t *testing.T) {
	c, b := newTestCPU(0xC5, 0xD1)
	c.BC.SetUint16(0x1234)
	if m, _ := step(t, c); m != 4 {
		t.Errorf("expected 4 cycles, got %d", m)
	}
	if b.memory[0xFFFD] != 0x12 || b.memory[0xFFFC] != 0x34 || c.SP != 0xFFFC {
		t.Errorf("expected 0x1234 pushed, got 0x%02X%02X SP=0x%04X", b.memory[0xFFFD], b.memory[0xFFFC], c.SP)
	}
	if m, _ := step(t, c); m != 3 {
		t.Errorf("expected 3 cycles, got %d", m)
	}
	if c.DE.Uint16() != 0x1234 || c.SP != 0xFFFE {
		t.Errorf("expected DE=0x1234 SP=0xFFFE, got DE=0x%04X SP=0x%04X", c.DE.Uint16(), c.SP)
	}

	t.Run("LD HL, SP+r8", func(t *testing.T) {
		c, _ := newTestCPU(0xF8, 0xFF)
		c.SP = 0x0001
		if m, _ := step(t, c); m != 3 {
			t.Errorf("expected 3 cycles, got %d", m)
		}
		if c.HL.Uint16() != 0x0000 || c.F != 0x30 {
			t.Errorf("expected HL=0x0000 F=0x30, got HL=0x%04X F=0x%02X", c.HL.Uint16(), c.F)
		}
	})
	t.Run("LD SP, HL", func(t *testing.T) {
		c, _ := newTestCPU(0xF9)
		c.HL.SetUint16(0xDFFF)
		step(t, c)
		if c.SP != 0xDFFF {
			t.Errorf("expected SP to be 0xDFFF, got 0x%04X", c.SP)
		}
	})
}
