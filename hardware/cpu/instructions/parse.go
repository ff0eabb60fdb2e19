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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/m6502/curated"
)

// the fields of each record in the metadata
const (
	fieldMnemonic = iota
	fieldAddressingMode
	fieldOpcode
	fieldOperandBytes
	fieldCycleSpec
	numFields
)

// Parse reads instruction metadata from the io.Reader and returns a new
// table. The metadata is CSV with one record per opcode. Each record has the
// following fields:
//
//	mnemonic, addressing mode, opcode, operand byte count, cycle specification
//
// The opcode is in hex and may be prefixed with '$' or '0x'. The format of
// the cycle specification is described by ParseCycleSpec(). Lines beginning
// with '#' are ignored.
//
// Parse fails with a MalformedMetadata error if the addressing mode is not
// recognised, if an opcode appears more than once, or if any field of the
// record is inconsistent with the addressing mode.
func Parse(r io.Reader) (*Table, error) {
	csvr := csv.NewReader(r)
	csvr.Comment = '#'
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = numFields

	tab := &Table{}

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, curated.Errorf(MalformedMetadata, perr.Err, perr.Line)
			}
			return nil, curated.Errorf(MalformedMetadata, err, 0)
		}

		line, _ := csvr.FieldPos(0)

		defn, err := parseRecord(rec)
		if err != nil {
			return nil, curated.Errorf(MalformedMetadata, err, line)
		}

		if tab.defns[defn.OpCode] != nil {
			return nil, curated.Errorf(MalformedMetadata,
				fmt.Errorf("duplicate opcode (%#02x)", defn.OpCode), line)
		}

		tab.defns[defn.OpCode] = defn
		tab.count++
	}

	return tab, nil
}

func parseRecord(rec []string) (*Definition, error) {
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}

	defn := &Definition{}

	// field: mnemonic
	defn.Mnemonic = strings.ToUpper(rec[fieldMnemonic])
	if len(defn.Mnemonic) != 3 {
		return nil, fmt.Errorf("invalid mnemonic (%s)", rec[fieldMnemonic])
	}

	// field: addressing mode
	var ok bool
	defn.AddressingMode, ok = ParseAddressingMode(rec[fieldAddressingMode])
	if !ok {
		return nil, fmt.Errorf("unrecognised addressing mode (%s)", rec[fieldAddressingMode])
	}

	// field: opcode
	opcode := rec[fieldOpcode]
	opcode = strings.TrimPrefix(opcode, "$")
	opcode = strings.TrimPrefix(strings.ToLower(opcode), "0x")
	n, err := strconv.ParseUint(opcode, 16, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid opcode (%s)", rec[fieldOpcode])
	}
	defn.OpCode = uint8(n)

	// field: operand bytes. must agree with the addressing mode
	operandBytes, err := strconv.Atoi(rec[fieldOperandBytes])
	if err != nil {
		return nil, fmt.Errorf("invalid operand byte count for %#02x (%s)", defn.OpCode, rec[fieldOperandBytes])
	}
	if operandBytes != defn.AddressingMode.OperandBytes() {
		return nil, fmt.Errorf("operand byte count for %#02x (%d) does not match addressing mode (%s)",
			defn.OpCode, operandBytes, defn.AddressingMode)
	}
	defn.Bytes = operandBytes + 1

	// field: cycle specification
	defn.Cycles, defn.Timing, err = ParseCycleSpec(rec[fieldCycleSpec])
	if err != nil {
		return nil, fmt.Errorf("%#02x: %w", defn.OpCode, err)
	}

	// the timing class must be possible for the addressing mode
	switch defn.Timing {
	case PageCrossPenalty:
		switch defn.AddressingMode {
		case AbsoluteX, AbsoluteY, IndirectIndexed:
		default:
			return nil, fmt.Errorf("page crossing penalty for %#02x is not possible with addressing mode (%s)",
				defn.OpCode, defn.AddressingMode)
		}
	case BranchPenalty:
		if defn.AddressingMode != Relative {
			return nil, fmt.Errorf("branch penalty for %#02x is not possible with addressing mode (%s)",
				defn.OpCode, defn.AddressingMode)
		}
	default:
		if defn.AddressingMode == Relative {
			return nil, fmt.Errorf("relative addressing for %#02x requires a branch penalty", defn.OpCode)
		}
	}

	defn.Effect = effectOf(defn.Mnemonic, defn.AddressingMode)

	return defn, nil
}
