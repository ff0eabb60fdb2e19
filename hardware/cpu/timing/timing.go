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

// Package timing calculates the number of cycles consumed by an instruction.
//
// Most instructions take a fixed number of cycles. Read instructions using
// the AbsoluteX, AbsoluteY or IndirectIndexed addressing modes take an
// additional cycle if indexing crossed a page boundary. Branch instructions
// take an additional cycle if the branch is taken and a further cycle if the
// branch target is on a different page to the instruction following the
// branch.
package timing

import (
	"github.com/jetsetilly/m6502/hardware/cpu/execution"
	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
)

// Cycles returns the number of cycles for the instruction given the resolved
// operand and whether the branch was taken. The branchTaken argument is
// ignored for non-branch instructions.
func Cycles(defn *instructions.Definition, op execution.Operand, branchTaken bool) int {
	switch defn.Timing {
	case instructions.PageCrossPenalty:
		if op.CrossedPage {
			return defn.Cycles + 1
		}
	case instructions.BranchPenalty:
		if branchTaken {
			if op.CrossedPage {
				return defn.Cycles + 2
			}
			return defn.Cycles + 1
		}
	}
	return defn.Cycles
}

// Range returns the fewest and the most cycles an instruction can take.
func Range(defn *instructions.Definition) (int, int) {
	switch defn.Timing {
	case instructions.PageCrossPenalty:
		return defn.Cycles, defn.Cycles + 1
	case instructions.BranchPenalty:
		return defn.Cycles, defn.Cycles + 2
	}
	return defn.Cycles, defn.Cycles
}

// Finalise decides the number of cycles for a Result. Results without a
// definition are left untouched.
func Finalise(r *execution.Result, branchTaken bool) {
	if r.Defn == nil {
		return
	}

	r.BranchSuccess = branchTaken && r.Defn.IsBranch()
	r.PageFault = r.Defn.PageSensitive() && r.Operand.CrossedPage
	r.Cycles = Cycles(r.Defn, r.Operand, r.BranchSuccess)
	r.Final = true
}
