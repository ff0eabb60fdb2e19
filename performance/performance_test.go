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

package performance_test

import (
	"testing"

	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502/performance"
	"github.com/jetsetilly/m6502/test"
	"github.com/jetsetilly/m6502/translate"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu,mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "CPU,MEM,TRACE")

	_, err = performance.ParseProfile("cpu,wibble")
	test.ExpectFailure(t, err)
}

func TestCalcRate(t *testing.T) {
	ips, speed := performance.CalcRate(2_000_000, 5_000_000, 2.0)
	test.ExpectApproximate(t, ips, 1_000_000, 0.001)
	test.ExpectApproximate(t, speed, 2.5, 0.001)

	ips, speed = performance.CalcRate(100, 100, 0)
	test.ExpectEquality(t, ips, 0.0)
	test.ExpectEquality(t, speed, 0.0)
}

func TestProgram(t *testing.T) {
	table := instructions.Definitions()
	program := performance.Program(table)

	var n int
	table.Each(func(defn *instructions.Definition) {
		n += defn.Bytes
	})
	test.ExpectEquality(t, len(program), n)
	test.ExpectEquality(t, program[0], uint8(0x00))
}

func TestCheck(t *testing.T) {
	test.DemandSuccess(t, translate.SetLanguage("en-US"))

	tw := &test.Writer{}
	tally, err := performance.Check(tw, performance.ProfileNone, instructions.Definitions(), nil, 2, "50ms")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, tally.Workers, 2)
	test.ExpectSuccess(t, tally.Instructions > 0)
	test.ExpectSuccess(t, tally.Cycles >= tally.Instructions*2)
	test.ExpectInequality(t, tw.String(), "")
}

func TestCheckArguments(t *testing.T) {
	_, err := performance.Check(nil, performance.ProfileNone, instructions.Definitions(), nil, 1, "not a duration")
	test.ExpectFailure(t, err)

	_, err = performance.Check(nil, performance.ProfileNone, instructions.Definitions(), nil, 0, "10ms")
	test.ExpectFailure(t, err)

	_, err = performance.Check(nil, performance.ProfileNone, instructions.Definitions(), nil, 1, "-1s")
	test.ExpectFailure(t, err)
}
