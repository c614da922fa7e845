package cpu

import (
	"errors"
	"testing"

	"github.com/thelolagemann/dmgcore/internal/types"
)

var errTestBus = errors.New("test bus fault")

// testBus is a flat 64 KiB memory, with optional faulting addresses.
type testBus struct {
	memory [0x10000]uint8
	faults map[uint16]error
}

func (b *testBus) Read(address uint16) (uint8, error) {
	if err, ok := b.faults[address]; ok {
		return 0, err
	}
	return b.memory[address], nil
}

func (b *testBus) Write(address uint16, value uint8) error {
	if err, ok := b.faults[address]; ok {
		return err
	}
	b.memory[address] = value
	return nil
}

// newTestCPU returns a CPU with the given program loaded at 0x0100,
// where execution starts.
func newTestCPU(program ...uint8) (*CPU, *testBus) {
	b := &testBus{faults: map[uint16]error{}}
	copy(b.memory[0x0100:], program)

	c := NewCPU(b)
	c.PC = 0x0100
	c.SP = 0xFFFE
	return c, b
}

// step executes a single instruction, failing the test on error.
func step(t *testing.T, c *CPU) (uint8, uint8) {
	t.Helper()
	m, tc, err := c.Step()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return m, tc
}

func TestCPU_NOP(t *testing.T) {
	c, _ := newTestCPU(0x00)
	m, tc := step(t, c)
	if m != 1 || tc != 4 {
		t.Errorf("expected (1, 4) cycles, got (%d, %d)", m, tc)
	}
	if c.PC != 0x0101 {
		t.Errorf("expected PC to be 0x0101, got 0x%04X", c.PC)
	}
	if c.M != 1 || c.T != 4 {
		t.Errorf("expected last instruction cycles (1, 4), got (%d, %d)", c.M, c.T)
	}
}

func TestCPU_LoadRegisterPair(t *testing.T) {
	c, _ := newTestCPU(0x01, 0x34, 0x12)
	m, tc := step(t, c)
	if c.B != 0x12 || c.C != 0x34 {
		t.Errorf("expected B=0x12 C=0x34, got B=0x%02X C=0x%02X", c.B, c.C)
	}
	if c.BC.Uint16() != 0x1234 {
		t.Errorf("expected BC to be 0x1234, got 0x%04X", c.BC.Uint16())
	}
	if c.PC != 0x0103 {
		t.Errorf("expected PC to be 0x0103, got 0x%04X", c.PC)
	}
	if m != 3 || tc != 12 {
		t.Errorf("expected (3, 12) cycles, got (%d, %d)", m, tc)
	}
}

func TestCPU_UnimplementedOpcode(t *testing.T) {
	for _, opcode := range []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		c, b := newTestCPU(opcode)
		c.A, c.B, c.C, c.D, c.E, c.F, c.H, c.L = 1, 2, 3, 4, 5, 0x50, 7, 8
		c.SP = 0xD000
		c.M, c.T = 2, 8
		before := *b

		_, _, err := c.Step()
		var opErr *UnimplementedOpcodeError
		if !errors.As(err, &opErr) {
			t.Fatalf("0x%02X: expected *UnimplementedOpcodeError, got %v", opcode, err)
		}
		if !errors.Is(err, ErrUnimplementedOpcode) {
			t.Errorf("0x%02X: expected error to match ErrUnimplementedOpcode", opcode)
		}
		if opErr.Opcode != opcode || opErr.PC != 0x0100 || opErr.Prefixed {
			t.Errorf("0x%02X: unexpected error fields %+v", opcode, opErr)
		}
		if c.PC != 0x0100 || c.SP != 0xD000 {
			t.Errorf("0x%02X: expected PC and SP unchanged, got PC=0x%04X SP=0x%04X", opcode, c.PC, c.SP)
		}
		if c.A != 1 || c.B != 2 || c.C != 3 || c.D != 4 || c.E != 5 || c.F != 0x50 || c.H != 7 || c.L != 8 {
			t.Errorf("0x%02X: expected registers unchanged, got %+v", opcode, c.Registers)
		}
		if c.M != 2 || c.T != 8 {
			t.Errorf("0x%02X: expected cycle counts unchanged, got (%d, %d)", opcode, c.M, c.T)
		}
		if b.memory != before.memory {
			t.Errorf("0x%02X: expected memory unchanged", opcode)
		}
	}
}

func TestCPU_Faults(t *testing.T) {
	t.Run("fetch", func(t *testing.T) {
		c, b := newTestCPU(0x00)
		b.faults[0x0100] = errTestBus
		if _, _, err := c.Step(); !errors.Is(err, errTestBus) {
			t.Errorf("expected %v, got %v", errTestBus, err)
		}
		if c.PC != 0x0100 {
			t.Errorf("expected PC to be 0x0100, got 0x%04X", c.PC)
		}
	})
	t.Run("operand", func(t *testing.T) {
		c, b := newTestCPU(0x01, 0x34, 0x12)
		b.faults[0x0102] = errTestBus
		if _, _, err := c.Step(); !errors.Is(err, errTestBus) {
			t.Errorf("expected %v, got %v", errTestBus, err)
		}
		if c.BC.Uint16() != 0 || c.PC != 0x0100 {
			t.Errorf("expected no effect, got BC=0x%04X PC=0x%04X", c.BC.Uint16(), c.PC)
		}
	})
	t.Run("write", func(t *testing.T) {
		c, b := newTestCPU(0x77) // LD (HL), A
		c.HL.SetUint16(0x4000)
		b.faults[0x4000] = errTestBus
		if _, _, err := c.Step(); !errors.Is(err, errTestBus) {
			t.Errorf("expected %v, got %v", errTestBus, err)
		}
	})
	t.Run("first fault wins", func(t *testing.T) {
		errSecond := errors.New("second")
		c, b := newTestCPU(0xC5) // PUSH BC
		c.BC.SetUint16(0x1234)
		b.faults[0xFFFD] = errTestBus
		b.faults[0xFFFC] = errSecond
		if _, _, err := c.Step(); !errors.Is(err, errTestBus) {
			t.Errorf("expected %v, got %v", errTestBus, err)
		}
	})
}

func TestCPU_Halt(t *testing.T) {
	t.Run("wakes on interrupt", func(t *testing.T) {
		c, b := newTestCPU(0x76, 0x00)
		step(t, c)
		if !c.Halted() {
			t.Fatalf("expected CPU to be halted")
		}
		if c.PC != 0x0101 {
			t.Errorf("expected PC to be 0x0101, got 0x%04X", c.PC)
		}

		// idles without fetching
		for i := 0; i < 3; i++ {
			if m, tc := step(t, c); m != 1 || tc != 4 {
				t.Errorf("expected (1, 4) cycles, got (%d, %d)", m, tc)
			}
		}
		if c.PC != 0x0101 {
			t.Errorf("expected PC to stay 0x0101, got 0x%04X", c.PC)
		}

		b.memory[types.IE] = types.Bit2
		b.memory[types.IF] = types.Bit2
		step(t, c)
		if c.Halted() {
			t.Errorf("expected CPU to resume")
		}
		step(t, c)
		if c.PC != 0x0102 {
			t.Errorf("expected PC to be 0x0102, got 0x%04X", c.PC)
		}
	})
	t.Run("interrupt pending", func(t *testing.T) {
		c, b := newTestCPU(0x76)
		b.memory[types.IE] = types.Bit0
		b.memory[types.IF] = types.Bit0
		step(t, c)
		if c.Halted() {
			t.Errorf("expected HALT to be skipped with an interrupt pending")
		}
	})
	t.Run("stop", func(t *testing.T) {
		c, _ := newTestCPU(0x10, 0x00)
		if m, _ := step(t, c); m != 1 {
			t.Errorf("expected 1 cycle, got %d", m)
		}
		if !c.Halted() || c.PC != 0x0102 {
			t.Errorf("expected stopped CPU at 0x0102, got halted=%v PC=0x%04X", c.Halted(), c.PC)
		}
	})
}

func TestCPU_InterruptMasterEnable(t *testing.T) {
	t.Run("EI is delayed", func(t *testing.T) {
		c, _ := newTestCPU(0xFB, 0x00, 0x00)
		step(t, c)
		if c.IME {
			t.Errorf("expected IME to be disabled directly after EI")
		}
		step(t, c)
		if !c.IME {
			t.Errorf("expected IME to be enabled after the following instruction")
		}
	})
	t.Run("DI cancels EI", func(t *testing.T) {
		c, _ := newTestCPU(0xFB, 0xF3, 0x00)
		step(t, c)
		step(t, c)
		step(t, c)
		if c.IME {
			t.Errorf("expected IME to be disabled")
		}
	})
	t.Run("RETI", func(t *testing.T) {
		c, b := newTestCPU(0xD9)
		c.SP = 0xFFFC
		b.memory[0xFFFC], b.memory[0xFFFD] = 0x34, 0x12
		step(t, c)
		if !c.IME || c.PC != 0x1234 {
			t.Errorf("expected IME and PC 0x1234, got IME=%v PC=0x%04X", c.IME, c.PC)
		}
	})
}

func TestCPU_LastOpcode(t *testing.T) {
	c, _ := newTestCPU(0x00, 0xCB, 0x37)
	step(t, c)
	if op, prefixed := c.LastOpcode(); op != 0x00 || prefixed {
		t.Errorf("expected (0x00, false), got (0x%02X, %v)", op, prefixed)
	}
	step(t, c)
	if op, prefixed := c.LastOpcode(); op != 0x37 || !prefixed {
		t.Errorf("expected (0x37, true), got (0x%02X, %v)", op, prefixed)
	}
}
