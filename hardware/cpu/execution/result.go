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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
)

// Result records the decoding of a single instruction.
type Result struct {
	// the address of the opcode byte
	Address uint16

	// a nil Defn indicates an unimplemented opcode
	Defn *instructions.Definition

	// number of bytes read during decoding, including the opcode
	ByteCount int

	Operand Operand

	// the number of cycles consumed by the instruction. only meaningful once
	// the result has been finalised
	Cycles int

	// whether an extra cycle was required because of indexing crossing a
	// page boundary
	PageFault bool

	// whether a branch instruction took the branch
	BranchSuccess bool

	// whether a buggy CPU code path was triggered
	CPUBug Bug

	// whether the number of cycles has been decided
	Final bool
}

// Following returns the address of the instruction after this one.
func (r Result) Following() uint16 {
	return r.Address + uint16(r.ByteCount)
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%#04x\t???", r.Address)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#04x\t%s", r.Address, r.Defn.Mnemonic))

	if r.Defn.AddressingMode == instructions.Relative {
		s.WriteString(fmt.Sprintf("\t$%04x", r.Operand.Address))
	} else if n := r.Defn.AddressingMode.Notation(r.Operand.Data); n != "" {
		s.WriteString(fmt.Sprintf("\t%s", n))
	}

	if r.Final {
		s.WriteString(fmt.Sprintf("\t[%d]", r.Cycles))
	} else {
		s.WriteString("\t[v]")
	}

	if r.PageFault {
		s.WriteString(" page-fault")
	}

	if r.Defn.IsBranch() && r.Final {
		if r.BranchSuccess {
			s.WriteString(" branch taken")
		} else {
			s.WriteString(" branch not taken")
		}
	}

	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}

	return s.String()
}
