// Package cpu provides the Sharp LR35902 CPU of the Game Boy. The CPU
// owns the register file and executes one instruction per Step,
// reaching memory exclusively through a Bus.
package cpu

import (
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/utils"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
	// ClocksPerCycle is the number of clock cycles in a machine cycle.
	ClocksPerCycle = 4
)

type (
	Register     = types.Register
	RegisterPair = types.RegisterPair
	Registers    = types.Registers
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is the halt CPU mode, entered by HALT.
	ModeHalt
	// ModeStop is the stop CPU mode, entered by STOP.
	ModeStop
)

// Bus is the view of memory the CPU executes against. Any error
// returned by the bus aborts the instruction being executed.
type Bus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	// M and T hold the machine and clock cycles taken by the
	// last instruction executed.
	M uint8
	T uint8

	// IME is the interrupt master enable flag.
	IME       bool
	eiPending bool

	bus  Bus
	mode mode

	// per instruction scratch state
	operands [2]uint8
	branched bool
	fault    error

	lastOpcode   uint8
	lastPrefixed bool
}

// NewCPU creates a new CPU instance with the given Bus. All registers
// start at zero, as they are at power on.
func NewCPU(bus Bus) *CPU {
	c := &CPU{
		Registers: Registers{},
		bus:       bus,
	}
	// create register pairs
	c.BC = &RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &RegisterPair{High: &c.H, Low: &c.L}
	c.AF = &RegisterPair{High: &c.A, Low: &c.F}

	return c
}

// Step executes a single instruction and returns the number of
// machine and clock cycles it took. If the instruction could not be
// executed, the error describes why and the cycle counts are zero.
//
// An opcode without an entry in the instruction set is reported as
// an *UnimplementedOpcodeError, in which case the CPU state is left
// exactly as it was before the fetch.
func (c *CPU) Step() (uint8, uint8, error) {
	if c.mode != ModeNormal {
		return c.stepHalted()
	}

	pc := c.PC
	opcode, err := c.bus.Read(pc)
	if err != nil {
		return 0, 0, err
	}

	instruction := InstructionSet[opcode]
	prefixed := opcode == 0xCB
	operandStart := uint16(1)
	if prefixed {
		if opcode, err = c.bus.Read(pc + 1); err != nil {
			return 0, 0, err
		}
		instruction = InstructionSetCB[opcode]
		operandStart = 2
	}
	if instruction.fn == nil {
		return 0, 0, &UnimplementedOpcodeError{Opcode: opcode, PC: pc, Prefixed: prefixed}
	}

	// fetch any immediate operands
	for i := operandStart; i < uint16(instruction.length); i++ {
		if c.operands[i-operandStart], err = c.bus.Read(pc + i); err != nil {
			return 0, 0, err
		}
	}

	// EI takes effect once the following instruction has been fetched
	if c.eiPending {
		c.IME = true
		c.eiPending = false
	}

	// the PC points at the next instruction whilst executing
	c.PC = pc + uint16(instruction.length)
	c.branched = false
	c.fault = nil
	instruction.fn(c)
	if c.fault != nil {
		return 0, 0, c.fault
	}

	cycles := instruction.cycles
	if c.branched {
		cycles = instruction.branchCycles
	}
	c.M, c.T = cycles, cycles*ClocksPerCycle
	c.lastOpcode, c.lastPrefixed = opcode, prefixed

	return c.M, c.T, nil
}

// stepHalted idles for a single machine cycle, leaving HALT or STOP
// once an enabled interrupt is requested.
func (c *CPU) stepHalted() (uint8, uint8, error) {
	pending, err := c.interruptPending()
	if err != nil {
		return 0, 0, err
	}
	if pending {
		c.mode = ModeNormal
	}

	c.M, c.T = 1, ClocksPerCycle
	return c.M, c.T, nil
}

// interruptPending reports whether any enabled interrupt has been
// requested.
func (c *CPU) interruptPending() (bool, error) {
	enable, err := c.bus.Read(types.IE)
	if err != nil {
		return false, err
	}
	flag, err := c.bus.Read(types.IF)
	if err != nil {
		return false, err
	}
	return enable&flag&types.InterruptMask != 0, nil
}

// Halted reports whether the CPU is in HALT or STOP mode.
func (c *CPU) Halted() bool {
	return c.mode != ModeNormal
}

// LastOpcode returns the opcode of the last instruction executed, and
// whether it came from the CB prefixed instruction set.
func (c *CPU) LastOpcode() (uint8, bool) {
	return c.lastOpcode, c.lastPrefixed
}

// d8 returns the 8-bit immediate operand of the current instruction.
func (c *CPU) d8() uint8 {
	return c.operands[0]
}

// d16 returns the 16-bit immediate operand of the current instruction,
// which is stored low byte first.
func (c *CPU) d16() uint16 {
	return utils.BytesToUint16(c.operands[1], c.operands[0])
}

// readByte reads a byte from memory. A failed read is recorded as the
// fault of the current instruction and reads as 0xFF.
func (c *CPU) readByte(addr uint16) uint8 {
	value, err := c.bus.Read(addr)
	if err != nil {
		c.raise(err)
		return 0xFF
	}
	return value
}

// writeByte writes the given value to the given address. Once the
// current instruction has faulted, further writes are dropped.
func (c *CPU) writeByte(addr uint16, val uint8) {
	if c.fault != nil {
		return
	}
	if err := c.bus.Write(addr, val); err != nil {
		c.raise(err)
	}
}

// raise records err as the fault of the current instruction, the
// first fault wins.
func (c *CPU) raise(err error) {
	if c.fault == nil {
		c.fault = err
	}
}

// registerIndex returns a Register pointer for the given operand
// index, as encoded in the low 3 bits of most 8-bit opcodes. Index 6
// encodes (HL) and has no register.
func (c *CPU) registerIndex(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	return nil
}

// registerNames holds the operand names in encoding order.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// get returns the value of the operand at the given index, reading
// memory at HL for (HL).
func (c *CPU) get(index uint8) uint8 {
	if index == 6 {
		return c.readByte(c.HL.Uint16())
	}
	return *c.registerIndex(index)
}

// set sets the operand at the given index, writing memory at HL for
// (HL).
func (c *CPU) set(index uint8, value uint8) {
	if index == 6 {
		c.writeByte(c.HL.Uint16(), value)
		return
	}
	*c.registerIndex(index) = value
}
