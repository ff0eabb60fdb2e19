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

package instructions_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/m6502/curated"
	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502/test"
)

func TestDefinitionsCount(t *testing.T) {
	tab := instructions.Definitions()

	var found, missing int
	for i := 0; i <= 255; i++ {
		defn, err := tab.Lookup(uint8(i))
		if err != nil {
			test.ExpectSuccess(t, curated.Is(err, instructions.UnimplementedOpcode), i)
			test.ExpectSuccess(t, defn == nil, i)
			missing++
			continue
		}
		test.ExpectEquality(t, defn.OpCode, uint8(i))
		found++
	}

	test.ExpectEquality(t, found, 151)
	test.ExpectEquality(t, missing, 105)
	test.ExpectEquality(t, tab.Count(), 151)
	test.ExpectEquality(t, len(tab.Missing()), 105)
}

func TestDefinitionsConsistency(t *testing.T) {
	tab := instructions.Definitions()

	tab.Each(func(defn *instructions.Definition) {
		assert.Equal(t, defn.AddressingMode.OperandBytes()+1, defn.Bytes, defn.String())
		assert.True(t, defn.Cycles >= 2 && defn.Cycles <= 7, defn.String())

		switch defn.Timing {
		case instructions.PageCrossPenalty:
			assert.Contains(t, []instructions.AddressingMode{
				instructions.AbsoluteX, instructions.AbsoluteY, instructions.IndirectIndexed,
			}, defn.AddressingMode, defn.String())
			assert.Equal(t, instructions.Read, defn.Effect, defn.String())
		case instructions.BranchPenalty:
			assert.True(t, defn.IsBranch(), defn.String())
			assert.Equal(t, 2, defn.Cycles, defn.String())
		}

		// the cycle specification survives the round trip
		cycles, timing, err := instructions.ParseCycleSpec(defn.CycleSpec())
		require.NoError(t, err)
		assert.Equal(t, defn.Cycles, cycles)
		assert.Equal(t, defn.Timing, timing)
	})
}

func TestSpotDefinitions(t *testing.T) {
	tab := instructions.Definitions()

	spot := []struct {
		opcode   uint8
		mnemonic string
		mode     instructions.AddressingMode
		cycles   int
		timing   instructions.TimingClass
		effect   instructions.EffectCategory
	}{
		{0x00, "BRK", instructions.Implied, 7, instructions.Fixed, instructions.Interrupt},
		{0x0a, "ASL", instructions.Accumulator, 2, instructions.Fixed, instructions.Read},
		{0x1e, "ASL", instructions.AbsoluteX, 7, instructions.Fixed, instructions.RMW},
		{0x6c, "JMP", instructions.Indirect, 5, instructions.Fixed, instructions.Flow},
		{0x91, "STA", instructions.IndirectIndexed, 6, instructions.Fixed, instructions.Write},
		{0x9d, "STA", instructions.AbsoluteX, 5, instructions.Fixed, instructions.Write},
		{0xa1, "LDA", instructions.IndexedIndirect, 6, instructions.Fixed, instructions.Read},
		{0xb1, "LDA", instructions.IndirectIndexed, 5, instructions.PageCrossPenalty, instructions.Read},
		{0xb6, "LDX", instructions.ZeroPageY, 4, instructions.Fixed, instructions.Read},
		{0xbd, "LDA", instructions.AbsoluteX, 4, instructions.PageCrossPenalty, instructions.Read},
		{0xbe, "LDX", instructions.AbsoluteY, 4, instructions.PageCrossPenalty, instructions.Read},
		{0xd0, "BNE", instructions.Relative, 2, instructions.BranchPenalty, instructions.Flow},
		{0x20, "JSR", instructions.Absolute, 6, instructions.Fixed, instructions.Subroutine},
	}

	for _, s := range spot {
		defn, err := tab.Lookup(s.opcode)
		require.NoError(t, err)
		assert.Equal(t, s.mnemonic, defn.Mnemonic)
		assert.Equal(t, s.mode, defn.AddressingMode, s.mnemonic)
		assert.Equal(t, s.cycles, defn.Cycles, s.mnemonic)
		assert.Equal(t, s.timing, defn.Timing, s.mnemonic)
		assert.Equal(t, s.effect, defn.Effect, s.mnemonic)
	}
}

func TestUnimplementedOpcode(t *testing.T) {
	tab := instructions.Definitions()

	_, err := tab.Lookup(0x02)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, instructions.UnimplementedOpcode))
	test.ExpectEquality(t, err.Error(), "cpu: unimplemented opcode (0x02)")

	_, err = tab.Lookup(0xff)
	test.ExpectSuccess(t, curated.Is(err, instructions.UnimplementedOpcode))
}

func TestParse(t *testing.T) {
	const good = `# comment
LDA, "Immediate", $A9, 1, 2
lda, "Absolute,X", 0xBD, 2, 4 (+1 if page crossed)
BNE, Relative, d0, 1, 2 (+1 if branch succeeds +2 if to a new page)
`
	tab, err := instructions.Parse(strings.NewReader(good))
	require.NoError(t, err)
	assert.Equal(t, 3, tab.Count())

	defn, err := tab.Lookup(0xbd)
	require.NoError(t, err)
	assert.Equal(t, "LDA", defn.Mnemonic)
	assert.Equal(t, instructions.AbsoluteX, defn.AddressingMode)
	assert.Equal(t, 3, defn.Bytes)

	defn, err = tab.Lookup(0xd0)
	require.NoError(t, err)
	assert.True(t, defn.IsBranch())
}

func TestParseMalformed(t *testing.T) {
	malformed := map[string]string{
		"unknown mode":      `LDA, "Zero Pg", $A5, 1, 3`,
		"duplicate opcode":  "LDA, Immediate, $A9, 1, 2\nLDX, Immediate, $A9, 1, 2",
		"bad opcode":        `LDA, Immediate, $1A9, 1, 2`,
		"bad cycle spec":    `LDA, Immediate, $A9, 1, 2 (+1 if it feels like it)`,
		"bad cycle count":   `LDA, Immediate, $A9, 1, two`,
		"wrong bytes":       `LDA, Absolute, $AD, 1, 4`,
		"wrong page cross":  `LDA, "Zero Page,X", $B5, 1, 4 (+1 if page crossed)`,
		"wrong branch":      `JMP, Absolute, $4C, 2, 3 (+1 if branch succeeds +2 if to a new page)`,
		"fixed relative":    `BNE, Relative, $D0, 1, 2`,
		"too few fields":    `LDA, Immediate, $A9, 1`,
		"mnemonic too long": `LDAX, Immediate, $A9, 1, 2`,
	}

	for name, data := range malformed {
		_, err := instructions.Parse(strings.NewReader(data))
		test.ExpectFailure(t, err, name)
		test.ExpectSuccess(t, curated.Is(err, instructions.MalformedMetadata), name)
	}
}

func TestParseMalformedLine(t *testing.T) {
	const data = "# first line is a comment\nLDA, Immediate, $A9, 1, 2\nLDA, Immediate, $A9, 1, 2\n"
	_, err := instructions.Parse(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate opcode (0xa9)")
	assert.Contains(t, err.Error(), "[line 3]")
}

func TestParseAddressingMode(t *testing.T) {
	names := map[string]instructions.AddressingMode{
		"Implied":         instructions.Implied,
		"accumulator":     instructions.Accumulator,
		"Zero Page":       instructions.ZeroPage,
		"Zero Page,X":     instructions.ZeroPageX,
		"ZERO_PAGE_Y":     instructions.ZeroPageY,
		"Absolute,Y":      instructions.AbsoluteY,
		"(Indirect,X)":    instructions.IndexedIndirect,
		"(Indirect),Y":    instructions.IndirectIndexed,
		"IndexedIndirect": instructions.IndexedIndirect,
		"IndirectIndexed": instructions.IndirectIndexed,
		"Indirect":        instructions.Indirect,
		"Relative":        instructions.Relative,
	}

	for name, mode := range names {
		m, ok := instructions.ParseAddressingMode(name)
		test.ExpectSuccess(t, ok, name)
		test.ExpectEquality(t, m, mode, name)

		// the canonical name is always accepted
		m, ok = instructions.ParseAddressingMode(mode.String())
		test.ExpectSuccess(t, ok, mode.String())
		test.ExpectEquality(t, m, mode)
	}

	_, ok := instructions.ParseAddressingMode("Indexed")
	test.ExpectFailure(t, ok)
}

func TestNotation(t *testing.T) {
	test.ExpectEquality(t, instructions.Immediate.Notation(0x10), "#$10")
	test.ExpectEquality(t, instructions.ZeroPageX.Notation(0xff), "$ff,X")
	test.ExpectEquality(t, instructions.AbsoluteY.Notation(0x20ff), "$20ff,Y")
	test.ExpectEquality(t, instructions.Indirect.Notation(0x02ff), "($02ff)")
	test.ExpectEquality(t, instructions.IndexedIndirect.Notation(0x80), "($80,X)")
	test.ExpectEquality(t, instructions.IndirectIndexed.Notation(0x80), "($80),Y")
	test.ExpectEquality(t, instructions.Accumulator.Notation(0), "A")
	test.ExpectEquality(t, instructions.Implied.Notation(0), "")
}

func TestCycleSpec(t *testing.T) {
	cycles, timing, err := instructions.ParseCycleSpec("5  (+1 if  page crossed)")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 5)
	test.ExpectEquality(t, timing, instructions.PageCrossPenalty)

	cycles, timing, err = instructions.ParseCycleSpec("3 cycles")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 3)
	test.ExpectEquality(t, timing, instructions.Fixed)

	_, _, err = instructions.ParseCycleSpec("")
	test.ExpectFailure(t, err)
	_, _, err = instructions.ParseCycleSpec("12")
	test.ExpectFailure(t, err)
	_, _, err = instructions.ParseCycleSpec("9")
	test.ExpectFailure(t, err)
}
