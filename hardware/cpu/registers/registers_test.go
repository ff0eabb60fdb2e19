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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/m6502/curated"
	"github.com/jetsetilly/m6502/hardware/cpu/registers"
	"github.com/jetsetilly/m6502/test"
)

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister(0x00)
	test.ExpectEquality(t, sr.String(), "sv-bdizc")
	test.ExpectEquality(t, sr.Value(), uint8(0x20))

	sr = registers.NewStatusRegister(0xff)
	test.ExpectEquality(t, sr.String(), "SV-BDIZC")
	test.ExpectEquality(t, sr.Value(), uint8(0xff))

	sr = registers.NewStatusRegister(0x81)
	test.ExpectEquality(t, sr.Sign, true)
	test.ExpectEquality(t, sr.Carry, true)
	test.ExpectEquality(t, sr.Zero, false)
	test.ExpectEquality(t, sr.String(), "Sv-bdizC")
}

func TestSnapshotString(t *testing.T) {
	s := registers.NewSnapshot()
	s.PC = 0x0600
	s.X = 0x01
	test.ExpectEquality(t, s.String(), "PC=0600 A=00 X=01 Y=00 SP=fd SR=sv-bdIzc")
}

func TestAdvance(t *testing.T) {
	s := registers.Snapshot{PC: 0xfffe}
	test.ExpectEquality(t, s.Following(3), uint16(0x0001))
	test.ExpectEquality(t, s.Advance(3).PC, uint16(0x0001))
	test.ExpectEquality(t, s.PC, uint16(0xfffe))
	test.ExpectEquality(t, s.Page(), uint16(0xff00))
}

func TestParseSnapshot(t *testing.T) {
	s, err := registers.ParseSnapshot("pc=0x0600 a=$10 x=1 y=x+1 sp=0xf0 p=0x81")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, registers.Snapshot{PC: 0x0600, A: 0x10, X: 0x01, Y: 0x02, SP: 0xf0, Status: 0x81})

	// spaces around assignment and within expressions
	s, err = registers.ParseSnapshot("PC = $20ff + 1, X = 3")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.PC, uint16(0x2100))
	test.ExpectEquality(t, s.X, uint8(3))
	test.ExpectEquality(t, s.SP, uint8(0xfd))

	// equality operator is not an assignment
	s, err = registers.ParseSnapshot("x=1 a=int(x==1)")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.A, uint8(1))

	s, err = registers.ParseSnapshot("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, registers.NewSnapshot())
}

func TestParseSnapshotErrors(t *testing.T) {
	for _, desc := range []string{
		"pc",
		"pc=",
		"q=1",
		"x=256",
		"pc=0x10000",
		"junk pc=1",
		"y=x+1",
	} {
		_, err := registers.ParseSnapshot(desc)
		if test.ExpectFailure(t, err, desc) {
			test.ExpectSuccess(t, curated.Is(err, registers.SnapshotError), desc)
		}
	}
}
