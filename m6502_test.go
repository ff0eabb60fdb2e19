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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/m6502/test"
	"github.com/jetsetilly/m6502/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run launches with the arguments and a preferences file in a temporary
// directory.
func run(t *testing.T, args ...string) (int, string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	test.DemandSuccess(t, translate.SetLanguage("en-US"))

	tw := &test.Writer{}
	rc := launch(args, tw)
	return rc, tw.String()
}

func TestHelp(t *testing.T) {
	rc, out := run(t, "-help")
	test.ExpectEquality(t, rc, 0)
	assert.Contains(t, out, "available sub-modes: TABLE, DECODE, DISASM, STEP, BENCH, SKELETON, VERSION")
	assert.Contains(t, out, "default: TABLE")
}

func TestBadFlag(t *testing.T) {
	rc, out := run(t, "-wibble")
	test.ExpectEquality(t, rc, 10)
	assert.Contains(t, out, "* error:")
}

func TestVersion(t *testing.T) {
	rc, out := run(t, "version")
	test.ExpectEquality(t, rc, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out, "m6502 "))
}

func TestTable(t *testing.T) {
	rc, out := run(t, "table")
	test.ExpectEquality(t, rc, 0)
	assert.Contains(t, out, "151 opcodes defined\n")

	rc, out = run(t, "table", "-missing")
	test.ExpectEquality(t, rc, 0)
	assert.Contains(t, out, "105 opcodes missing\n")
	test.ExpectSuccess(t, strings.HasPrefix(out, "0x02\n"))
}

func TestTableMemviz(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "table.dot")

	rc, _ := run(t, "table", "-memviz", pth)
	test.ExpectEquality(t, rc, 0)

	data, err := os.ReadFile(pth)
	require.NoError(t, err)
	assert.Contains(t, string(data), "digraph")
}

func TestDecode(t *testing.T) {
	rc, out := run(t, "decode", "-regs", "pc=0x0600 x=1", "-mem", "0x0600=0xbd,0xff,0x20")
	test.ExpectEquality(t, rc, 0)
	assert.Contains(t, out, "0x0600\tLDA\t$20ff,X\t[5] page-fault\n")
	assert.Contains(t, out, "address 0x2100 (page crossed)\n")
}

func TestDecodeUnimplemented(t *testing.T) {
	rc, out := run(t, "decode", "-mem", "0x0600=0x02")
	test.ExpectEquality(t, rc, 20)
	assert.Contains(t, out, "unimplemented opcode (0x02)")
}

func TestDecodeIndirectJMPPreference(t *testing.T) {
	mem := "0x0600=0x6c,0xff,0x02; 0x02ff=0x00; 0x0300=0x04; 0x0200=0x05"

	rc, out := run(t, "decode", "-mem", mem)
	test.ExpectEquality(t, rc, 0)
	assert.Contains(t, out, "address 0x0500 * indirect addressing bug *")

	rc, out = run(t, "-prefs", "cpu.indirectjmpbug::false", "decode", "-mem", mem)
	test.ExpectEquality(t, rc, 0)
	assert.Contains(t, out, "address 0x0400\n")
}

func TestDisasm(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "program.bin")
	require.NoError(t, os.WriteFile(pth, []uint8{0xa9, 0x01, 0xd0, 0xfc}, 0o644))

	rc, out := run(t, "disasm", "-origin", "$0600", pth)
	test.ExpectEquality(t, rc, 0)
	test.ExpectEquality(t, out, "$0600 LDA #$01  2\n$0602 BNE $0600 2/4\n")

	rc, out = run(t, "disasm")
	test.ExpectEquality(t, rc, 20)
	assert.Contains(t, out, "program image required")
}

func TestSkeleton(t *testing.T) {
	rc, out := run(t, "skeleton", "-package", "nmos", "-type", "CPU")
	test.ExpectEquality(t, rc, 0)
	assert.Contains(t, out, "package nmos\n")
	assert.Contains(t, out, "func (ex *CPU) Execute(r execution.Result) error {")
}
