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

package skeleton_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502/skeleton"
	"github.com/jetsetilly/m6502/test"
	"github.com/stretchr/testify/require"
)

// the number of distinct mnemonics in the legal instruction set
const numMnemonics = 56

func TestGenerate(t *testing.T) {
	tw := &test.Writer{}
	err := skeleton.Generate(tw, instructions.Definitions(), skeleton.DefaultOptions)
	require.NoError(t, err)

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "executor.go", tw.String(), parser.ParseComments)
	require.NoError(t, err)

	test.ExpectEquality(t, f.Name.Name, "executor")

	var methods []string
	for _, d := range f.Decls {
		if fn, ok := d.(*ast.FuncDecl); ok {
			methods = append(methods, fn.Name.Name)
		}
	}

	// one method per mnemonic plus the Execute() method
	test.ExpectEquality(t, len(methods), numMnemonics+1)
	test.ExpectEquality(t, methods[0], "Execute")
	require.Contains(t, methods, "lda")
	require.Contains(t, methods, "jmp")
}

func TestGenerateComments(t *testing.T) {
	tw := &test.Writer{}
	err := skeleton.Generate(tw, instructions.Definitions(), skeleton.Options{Package: "nmos", Type: "CPU"})
	require.NoError(t, err)

	src := tw.String()
	test.ExpectSuccess(t, strings.HasPrefix(src, "// generated by m6502"))
	test.ExpectSuccess(t, strings.Contains(src, "package nmos\n"))
	test.ExpectSuccess(t, strings.Contains(src, "func (ex *CPU) adc(r execution.Result) error {"))
	test.ExpectSuccess(t, strings.Contains(src, "// 0xbd AbsoluteX 4 (+1 if page crossed)\n"))
	test.ExpectSuccess(t, strings.Contains(src, "// 0xd0 Relative 2 (+1 if branch succeeds +2 if to a new page)\n"))
}

func TestGenerateBadOptions(t *testing.T) {
	tw := &test.Writer{}

	err := skeleton.Generate(tw, instructions.Definitions(), skeleton.Options{Package: "not valid", Type: "CPU"})
	test.ExpectFailure(t, err)

	err = skeleton.Generate(tw, instructions.Definitions(), skeleton.Options{Package: "nmos", Type: "cpu"})
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, tw.String(), "")
}
