package cpu

import (
	"errors"
	"fmt"
)

// ErrUnimplementedOpcode matches every *UnimplementedOpcodeError.
var ErrUnimplementedOpcode = errors.New("unimplemented opcode")

// UnimplementedOpcodeError is returned when the fetched opcode has
// no entry in the instruction set.
type UnimplementedOpcodeError struct {
	Opcode   uint8
	PC       uint16
	Prefixed bool
}

func (e *UnimplementedOpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: unimplemented opcode 0xCB 0x%02X at 0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("cpu: unimplemented opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

func (e *UnimplementedOpcodeError) Is(target error) bool {
	return target == ErrUnimplementedOpcode
}
