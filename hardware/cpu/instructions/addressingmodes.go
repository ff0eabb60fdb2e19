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

package instructions

import (
	"fmt"
	"strings"
)

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind), Y

	AbsoluteX // abs,X
	AbsoluteY // abs,Y

	ZeroPageX // zpg,X
	ZeroPageY // zpg,Y

	// the number of addressing modes. not a valid mode
	numAddressingModes
)

var modeNames = [numAddressingModes]string{
	Implied:         "Implied",
	Accumulator:     "Accumulator",
	Immediate:       "Immediate",
	Relative:        "Relative",
	Absolute:        "Absolute",
	ZeroPage:        "ZeroPage",
	Indirect:        "Indirect",
	IndexedIndirect: "IndexedIndirect",
	IndirectIndexed: "IndirectIndexed",
	AbsoluteX:       "AbsoluteX",
	AbsoluteY:       "AbsoluteY",
	ZeroPageX:       "ZeroPageX",
	ZeroPageY:       "ZeroPageY",
}

func (m AddressingMode) String() string {
	if m < 0 || m >= numAddressingModes {
		return "unknown addressing mode"
	}
	return modeNames[m]
}

// Valid returns true if the value is one of the defined addressing modes.
func (m AddressingMode) Valid() bool {
	return m >= 0 && m < numAddressingModes
}

// OperandBytes returns the number of bytes that follow the opcode byte for
// the addressing mode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Implied, Accumulator:
		return 0
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	}
	return 1
}

// Notation returns the operand as it would appear in assembly source. The
// operand argument is the value of the operand bytes.
func (m AddressingMode) Notation(operand uint16) string {
	switch m {
	case Implied:
		return ""
	case Accumulator:
		return "A"
	case Immediate:
		return fmt.Sprintf("#$%02x", operand)
	case Relative, ZeroPage:
		return fmt.Sprintf("$%02x", operand)
	case ZeroPageX:
		return fmt.Sprintf("$%02x,X", operand)
	case ZeroPageY:
		return fmt.Sprintf("$%02x,Y", operand)
	case Absolute:
		return fmt.Sprintf("$%04x", operand)
	case AbsoluteX:
		return fmt.Sprintf("$%04x,X", operand)
	case AbsoluteY:
		return fmt.Sprintf("$%04x,Y", operand)
	case Indirect:
		return fmt.Sprintf("($%04x)", operand)
	case IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", operand)
	case IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", operand)
	}
	return "?"
}

// ParseAddressingMode converts the name of an addressing mode to an
// AddressingMode value. Names are matched without regard to case, spaces,
// underscores, commas or parentheses. This means that the canonical names
// (eg. "ZeroPageX") and the names used by the common 6502 references (eg.
// "Zero Page,X" or "(Indirect),Y") are all accepted.
func ParseAddressingMode(name string) (AddressingMode, bool) {
	n := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', ',', '(', ')', '\t':
			return -1
		}
		return r
	}, strings.ToUpper(name))

	switch n {
	case "INDIRECTX":
		return IndexedIndirect, true
	case "INDIRECTY":
		return IndirectIndexed, true
	}

	for m, s := range modeNames {
		if n == strings.ToUpper(s) {
			return AddressingMode(m), true
		}
	}

	return Implied, false
}
