// This file is part of m6502.
//
// m6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// m6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with m6502.  If not, see <https://www.gnu.org/licenses/>.

package execution

import "fmt"

// OperandKind says how an Operand should be interpreted.
type OperandKind int

// List of valid OperandKind values.
const (
	// the instruction has no operand (implied addressing)
	NoOperand OperandKind = iota

	// the operand is the Value field (immediate and accumulator addressing)
	ValueOperand

	// the operand is in memory at the Address field. for relative
	// addressing, Address is the branch target
	AddressOperand
)

func (k OperandKind) String() string {
	switch k {
	case NoOperand:
		return "none"
	case ValueOperand:
		return "value"
	case AddressOperand:
		return "address"
	}
	return fmt.Sprintf("unknown kind (%d)", int(k))
}

// Operand is the result of resolving the addressing mode of an instruction.
type Operand struct {
	Kind OperandKind

	// the operand value for the ValueOperand kind
	Value uint8

	// the effective address for the AddressOperand kind
	Address uint16

	// the address before indexing was applied. for indirect modes this is
	// the address of the pointer. for relative addressing it is the address
	// of the following instruction
	Base uint16

	// the bytes following the opcode, little-endian. one byte instructions
	// leave this as zero
	Data uint16

	// whether indexing moved the effective address onto a different page to
	// Base
	CrossedPage bool

	// a quirk of the CPU affected the effective address
	Bug Bug
}

func (op Operand) String() string {
	var s string
	switch op.Kind {
	case NoOperand:
		return "none"
	case ValueOperand:
		s = fmt.Sprintf("value %#02x", op.Value)
	case AddressOperand:
		s = fmt.Sprintf("address %#04x", op.Address)
	default:
		return op.Kind.String()
	}
	if op.CrossedPage {
		s = fmt.Sprintf("%s (page crossed)", s)
	}
	if op.Bug != NoBug {
		s = fmt.Sprintf("%s * %s *", s, op.Bug)
	}
	return s
}
