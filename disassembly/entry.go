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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/m6502/hardware/cpu/execution"
	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502/hardware/cpu/timing"
)

// EntryType describes how an Entry was decoded.
type EntryType int

// List of valid EntryType values.
const (
	// the byte at the address is not an implemented opcode
	EntryTypeData EntryType = iota

	// the instruction extends past the end of the image
	EntryTypeTruncated

	// a complete instruction
	EntryTypeInstruction
)

// Entry is a single disassembled instruction. The string fields are
// representations of the information in the Result field.
type Entry struct {
	Type EntryType

	// the decoding of the instruction. for EntryTypeData entries only the
	// Address field is meaningful
	Result execution.Result

	Address  string
	Bytecode string
	Operator string
	Operand  string
	Cycles   string

	// the addresses that execution can continue from after this entry, if
	// they are known
	Next []uint16
}

func (e Entry) String() string {
	s := fmt.Sprintf("%s %s", e.Address, e.Operator)
	if e.Operand != "" {
		s = fmt.Sprintf("%s %s", s, e.Operand)
	}
	return s
}

// newEntry forms the fields of an Entry from the decoded result and the bytes
// that make up the instruction.
func newEntry(r execution.Result, bytecode []uint8) Entry {
	e := Entry{
		Type:    EntryTypeInstruction,
		Result:  r,
		Address: fmt.Sprintf("$%04x", r.Address),
	}

	b := make([]string, len(bytecode))
	for i := range bytecode {
		b[i] = fmt.Sprintf("%02x", bytecode[i])
	}
	e.Bytecode = strings.Join(b, " ")

	if r.Defn == nil {
		e.Type = EntryTypeData
		e.Operator = ".byte"
		e.Operand = fmt.Sprintf("$%02x", bytecode[0])
		return e
	}

	e.Operator = r.Defn.Mnemonic

	if r.Defn.AddressingMode == instructions.Relative {
		e.Operand = fmt.Sprintf("$%04x", r.Operand.Address)
	} else {
		e.Operand = r.Defn.AddressingMode.Notation(r.Operand.Data)
	}

	lo, hi := timing.Range(r.Defn)
	if lo == hi {
		e.Cycles = fmt.Sprintf("%d", lo)
	} else {
		e.Cycles = fmt.Sprintf("%d/%d", lo, hi)
	}

	e.Next = next(r)

	return e
}

// next returns the addresses that flow can continue from after the result.
// targets that depend on the contents of memory at run time (RTS, RTI, BRK
// and indirect JMP) are not included.
func next(r execution.Result) []uint16 {
	switch r.Defn.Effect {
	case instructions.Flow:
		if r.Defn.IsBranch() {
			return []uint16{r.Following(), r.Operand.Address}
		}
		if r.Defn.AddressingMode == instructions.Absolute {
			return []uint16{r.Operand.Address}
		}
		return nil
	case instructions.Subroutine:
		if r.Defn.Mnemonic == "JSR" {
			return []uint16{r.Operand.Address, r.Following()}
		}
		return nil
	case instructions.Interrupt:
		return nil
	}
	return []uint16{r.Following()}
}
