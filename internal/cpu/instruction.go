package cpu

// Instruction represents a single instruction of the CPU: its effect,
// its encoded length and its cost in machine cycles.
type Instruction struct {
	name         string     // name of the instruction
	length       uint8      // encoded length, including the opcode
	cycles       uint8      // machine cycles taken
	branchCycles uint8      // machine cycles taken when a conditional branch is taken
	fn           func(*CPU) // fn called when executing the instruction
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Length returns the number of bytes the instruction occupies,
// including the opcode.
func (i Instruction) Length() uint8 {
	return i.length
}

// Cycles returns the number of machine cycles the instruction takes.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// BranchCycles returns the number of machine cycles the instruction
// takes when its branch is taken. For unconditional instructions it
// is the same as Cycles.
func (i Instruction) BranchCycles() uint8 {
	return i.branchCycles
}

// Defined reports whether the instruction has an implementation.
func (i Instruction) Defined() bool {
	return i.fn != nil
}

// InstructionSet holds the first 256 instructions, indexed by opcode.
var InstructionSet [256]Instruction

// InstructionSetCB holds the instructions following the 0xCB prefix.
var InstructionSetCB [256]Instruction

// DefineInstruction defines the instruction in the InstructionSet,
// with the provided opcode.
func DefineInstruction(opcode uint8, name string, length, cycles uint8, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{
		name:         name,
		length:       length,
		cycles:       cycles,
		branchCycles: cycles,
		fn:           fn,
	}
}

// DefineBranch is similar to DefineInstruction, but for conditional
// control flow, which takes branchCycles when the condition holds.
func DefineBranch(opcode uint8, name string, length, cycles, branchCycles uint8, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{
		name:         name,
		length:       length,
		cycles:       cycles,
		branchCycles: branchCycles,
		fn:           fn,
	}
}

// DefineInstructionCB defines the instruction in the InstructionSetCB.
// All CB instructions are 2 bytes long, the prefix and the opcode.
func DefineInstructionCB(opcode uint8, name string, cycles uint8, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{
		name:         name,
		length:       2,
		cycles:       cycles,
		branchCycles: cycles,
		fn:           fn,
	}
}

func init() {
	// the prefix itself is decoded by Step, the entry only marks the
	// opcode as defined
	DefineInstruction(0xCB, "PREFIX CB", 2, 2, func(c *CPU) {})
}
