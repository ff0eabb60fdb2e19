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

package execution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jetsetilly/m6502/curated"
	"github.com/jetsetilly/m6502/hardware/cpu/execution"
	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502/test"
)

func lookup(t *testing.T, opcode uint8) *instructions.Definition {
	t.Helper()
	defn, err := instructions.Definitions().Lookup(opcode)
	test.DemandSuccess(t, err)
	return defn
}

func TestValidity(t *testing.T) {
	// LDA abs,X
	r := execution.Result{
		Address:   0x0600,
		Defn:      lookup(t, 0xbd),
		ByteCount: 3,
		Cycles:    4,
		Final:     true,
	}
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 5
	test.ExpectFailure(t, r.IsValid())

	r.PageFault = true
	test.ExpectSuccess(t, r.IsValid())

	r.ByteCount = 2
	err := r.IsValid()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, execution.InvalidResult))

	// STA abs,X is not page sensitive
	r = execution.Result{
		Defn:      lookup(t, 0x9d),
		ByteCount: 3,
		Cycles:    5,
		PageFault: true,
		Final:     true,
	}
	test.ExpectFailure(t, r.IsValid())

	r.Final = false
	r.PageFault = false
	test.ExpectFailure(t, r.IsValid())

	test.ExpectFailure(t, execution.Result{Final: true}.IsValid())
}

func TestBranchValidity(t *testing.T) {
	// BNE
	r := execution.Result{
		Defn:      lookup(t, 0xd0),
		ByteCount: 2,
		Cycles:    2,
		Final:     true,
	}
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 3
	test.ExpectFailure(t, r.IsValid())

	r.BranchSuccess = true
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 4
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 5
	test.ExpectFailure(t, r.IsValid())

	// LDA immediate
	r = execution.Result{
		Defn:          lookup(t, 0xa9),
		ByteCount:     2,
		Cycles:        2,
		BranchSuccess: true,
		Final:         true,
	}
	test.ExpectFailure(t, r.IsValid())
}

func TestResultString(t *testing.T) {
	assert := assert.New(t)

	r := execution.Result{
		Address:   0x0600,
		Defn:      lookup(t, 0xbd),
		ByteCount: 3,
		Operand: execution.Operand{
			Kind:        execution.AddressOperand,
			Data:        0x20ff,
			Address:     0x2100,
			Base:        0x20ff,
			CrossedPage: true,
		},
		Cycles:    5,
		PageFault: true,
		Final:     true,
	}
	assert.Equal("0x0600\tLDA\t$20ff,X\t[5] page-fault", r.String())

	r.Final = false
	assert.Equal("0x0600\tLDA\t$20ff,X\t[v] page-fault", r.String())

	r = execution.Result{
		Address:       0x0600,
		Defn:          lookup(t, 0xd0),
		ByteCount:     2,
		Operand:       execution.Operand{Kind: execution.AddressOperand, Data: 0x0e, Address: 0x0610},
		Cycles:        3,
		BranchSuccess: true,
		Final:         true,
	}
	assert.Equal("0x0600\tBNE\t$0610\t[3] branch taken", r.String())

	r = execution.Result{
		Address:   0x0600,
		Defn:      lookup(t, 0xea),
		ByteCount: 1,
		Cycles:    2,
		Final:     true,
	}
	assert.Equal("0x0600\tNOP\t[2]", r.String())

	r = execution.Result{
		Address:   0x0600,
		Defn:      lookup(t, 0x6c),
		ByteCount: 3,
		Operand:   execution.Operand{Kind: execution.AddressOperand, Data: 0x02ff, Bug: execution.JmpIndirectAddressingBug},
		CPUBug:    execution.JmpIndirectAddressingBug,
		Cycles:    5,
		Final:     true,
	}
	assert.Equal("0x0600\tJMP\t($02ff)\t[5] * indirect addressing bug *", r.String())

	assert.Equal("0x0600\t???", execution.Result{Address: 0x0600}.String())
	assert.Equal(uint16(0x0603), execution.Result{Address: 0x0600, ByteCount: 3}.Following())
}

func TestOperandString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("none", execution.Operand{}.String())
	assert.Equal("value 0x10", execution.Operand{Kind: execution.ValueOperand, Value: 0x10}.String())
	assert.Equal("address 0x2100 (page crossed)", execution.Operand{Kind: execution.AddressOperand, Address: 0x2100, CrossedPage: true}.String())
}
