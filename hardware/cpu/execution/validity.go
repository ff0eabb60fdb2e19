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
	"github.com/jetsetilly/m6502/curated"
	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
)

// Sentinel error returned by IsValid().
const InvalidResult = "cpu: invalid result: %v"

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if r.Defn == nil {
		return curated.Errorf(InvalidResult, "no definition (unimplemented opcode?)")
	}

	if !r.Final {
		return curated.Errorf(InvalidResult, "execution not finalised")
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive() && r.PageFault {
		return curated.Errorf(InvalidResult, "unexpected page fault")
	}

	if r.BranchSuccess && !r.Defn.IsBranch() {
		return curated.Errorf(InvalidResult, "branch success for non-branch instruction")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf(InvalidResult, curated.Errorf("unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes))
	}

	min, max := r.Defn.Cycles, r.Defn.Cycles
	switch r.Defn.Timing {
	case instructions.BranchPenalty:
		if r.BranchSuccess {
			min++
			max += 2
		}
	case instructions.PageCrossPenalty:
		if r.PageFault {
			min++
			max++
		}
	}

	if r.Cycles < min || r.Cycles > max {
		if min == max {
			return curated.Errorf(InvalidResult, curated.Errorf("number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, min))
		}
		return curated.Errorf(InvalidResult, curated.Errorf("number of cycles wrong for opcode %#02x [%s] (%d instead of %d or %d)",
			r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, min, max))
	}

	return nil
}
