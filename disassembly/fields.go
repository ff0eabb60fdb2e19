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

import "fmt"

type widths struct {
	address  int
	bytecode int
	operator int
	operand  int
	cycles   int
}

type format struct {
	address  string
	bytecode string
	operator string
	operand  string
	cycles   string
}

// fields records the widest value of each field so that the disassembly can
// be columnated.
type fields struct {
	widths widths
	fmt    format
}

// update width and formatting information for entry fields.
func (fld *fields) update(e Entry) {
	if len(e.Address) > fld.widths.address {
		fld.widths.address = len(e.Address)
	}
	if len(e.Bytecode) > fld.widths.bytecode {
		fld.widths.bytecode = len(e.Bytecode)
	}
	if len(e.Operator) > fld.widths.operator {
		fld.widths.operator = len(e.Operator)
	}
	if len(e.Operand) > fld.widths.operand {
		fld.widths.operand = len(e.Operand)
	}
	if len(e.Cycles) > fld.widths.cycles {
		fld.widths.cycles = len(e.Cycles)
	}

	fld.fmt.address = fmt.Sprintf("%%-%ds", fld.widths.address)
	fld.fmt.bytecode = fmt.Sprintf("%%-%ds", fld.widths.bytecode)
	fld.fmt.operator = fmt.Sprintf("%%-%ds", fld.widths.operator)
	fld.fmt.operand = fmt.Sprintf("%%-%ds", fld.widths.operand)
	fld.fmt.cycles = fmt.Sprintf("%%-%ds", fld.widths.cycles)
}

// Field identifies a column in the disassembly.
type Field int

// List of valid Field values.
const (
	FldAddress Field = iota
	FldBytecode
	FldOperator
	FldOperand
	FldCycles
)

// GetField returns the formatted field from the entry, padded to the width of
// the widest value of that field in the disassembly.
func (dsm *Disassembly) GetField(field Field, e Entry) string {
	switch field {
	case FldAddress:
		return fmt.Sprintf(dsm.fields.fmt.address, e.Address)
	case FldBytecode:
		return fmt.Sprintf(dsm.fields.fmt.bytecode, e.Bytecode)
	case FldOperator:
		return fmt.Sprintf(dsm.fields.fmt.operator, e.Operator)
	case FldOperand:
		return fmt.Sprintf(dsm.fields.fmt.operand, e.Operand)
	case FldCycles:
		return fmt.Sprintf(dsm.fields.fmt.cycles, e.Cycles)
	}
	return ""
}
