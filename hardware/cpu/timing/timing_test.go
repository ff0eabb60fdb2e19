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

package timing_test

import (
	"testing"

	"github.com/jetsetilly/m6502/hardware/cpu/execution"
	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502/hardware/cpu/timing"
	"github.com/jetsetilly/m6502/test"
)

func lookup(t *testing.T, opcode uint8) *instructions.Definition {
	t.Helper()
	defn, err := instructions.Definitions().Lookup(opcode)
	test.DemandSuccess(t, err)
	return defn
}

func TestFixed(t *testing.T) {
	// NOP
	defn := lookup(t, 0xea)
	test.ExpectEquality(t, timing.Cycles(defn, execution.Operand{}, false), 2)
	test.ExpectEquality(t, timing.Cycles(defn, execution.Operand{}, true), 2)

	// STA abs,X never takes the page cross penalty
	defn = lookup(t, 0x9d)
	test.ExpectEquality(t, timing.Cycles(defn, execution.Operand{CrossedPage: true}, false), 5)
	test.ExpectEquality(t, timing.Cycles(defn, execution.Operand{CrossedPage: false}, false), 5)

	// STA (ind),Y
	defn = lookup(t, 0x91)
	test.ExpectEquality(t, timing.Cycles(defn, execution.Operand{CrossedPage: true}, false), 6)
}

func TestPageCrossPenalty(t *testing.T) {
	// LDA abs,X
	defn := lookup(t, 0xbd)
	test.ExpectEquality(t, timing.Cycles(defn, execution.Operand{CrossedPage: false}, false), 4)
	test.ExpectEquality(t, timing.Cycles(defn, execution.Operand{CrossedPage: true}, false), 5)

	// LDA (ind),Y
	defn = lookup(t, 0xb1)
	test.ExpectEquality(t, timing.Cycles(defn, execution.Operand{CrossedPage: false}, false), 5)
	test.ExpectEquality(t, timing.Cycles(defn, execution.Operand{CrossedPage: true}, false), 6)
}

func TestBranchPenalty(t *testing.T) {
	// BNE
	defn := lookup(t, 0xd0)
	test.ExpectEquality(t, timing.Cycles(defn, execution.Operand{}, false), 2)
	test.ExpectEquality(t, timing.Cycles(defn, execution.Operand{CrossedPage: true}, false), 2)
	test.ExpectEquality(t, timing.Cycles(defn, execution.Operand{}, true), 3)
	test.ExpectEquality(t, timing.Cycles(defn, execution.Operand{CrossedPage: true}, true), 4)
}

func TestRange(t *testing.T) {
	min, max := timing.Range(lookup(t, 0xea))
	test.ExpectEquality(t, min, 2)
	test.ExpectEquality(t, max, 2)

	min, max = timing.Range(lookup(t, 0xbd))
	test.ExpectEquality(t, min, 4)
	test.ExpectEquality(t, max, 5)

	min, max = timing.Range(lookup(t, 0xd0))
	test.ExpectEquality(t, min, 2)
	test.ExpectEquality(t, max, 4)
}

func TestRangeContainsCycles(t *testing.T) {
	ops := []execution.Operand{{}, {CrossedPage: true}}
	instructions.Definitions().Each(func(defn *instructions.Definition) {
		min, max := timing.Range(defn)
		for _, op := range ops {
			for _, taken := range []bool{false, true} {
				c := timing.Cycles(defn, op, taken)
				if c < min || c > max {
					t.Errorf("%s: %d cycles outside of range %d to %d", defn, c, min, max)
				}
			}
		}
	})
}

func TestFinalise(t *testing.T) {
	r := execution.Result{
		Defn:      lookup(t, 0xd0),
		ByteCount: 2,
		Operand:   execution.Operand{Kind: execution.AddressOperand, CrossedPage: true},
	}
	timing.Finalise(&r, true)
	test.ExpectEquality(t, r.Final, true)
	test.ExpectEquality(t, r.BranchSuccess, true)
	test.ExpectEquality(t, r.PageFault, false)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectSuccess(t, r.IsValid())

	// branch taken flag is ignored for non-branch instructions
	r = execution.Result{
		Defn:      lookup(t, 0xbd),
		ByteCount: 3,
		Operand:   execution.Operand{Kind: execution.AddressOperand, CrossedPage: true},
	}
	timing.Finalise(&r, true)
	test.ExpectEquality(t, r.BranchSuccess, false)
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectSuccess(t, r.IsValid())

	r = execution.Result{}
	timing.Finalise(&r, false)
	test.ExpectEquality(t, r.Final, false)
}
