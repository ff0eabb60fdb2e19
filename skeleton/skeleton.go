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

package skeleton

import (
	"fmt"
	"go/format"
	"go/token"
	"io"
	"slices"
	"strings"

	"github.com/jetsetilly/m6502/curated"
	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502/version"
)

// Sentinel error returned by Generate().
const SkeletonError = "skeleton: %v"

// Options for the Generate() function.
type Options struct {
	// the package name of the generated file
	Package string

	// the name of the executor type
	Type string
}

// DefaultOptions are the options used by the SKELETON mode when none are
// given on the command line.
var DefaultOptions = Options{
	Package: "executor",
	Type:    "Executor",
}

const leadingBoilerPlate = "// generated by %s %s\n\n" +
	"package %s\n\n" +
	"import (\n" +
	"\"fmt\"\n\n" +
	"\"github.com/jetsetilly/m6502/hardware/cpu/execution\"\n" +
	")\n\n" +
	"// %s executes instructions that have been decoded and timed.\n" +
	"type %s struct {\n" +
	"}\n\n"

// Generate writes the source of an executor for every instruction in the
// table to io.Writer.
func Generate(output io.Writer, table *instructions.Table, opts Options) error {
	if !token.IsIdentifier(opts.Package) {
		return curated.Errorf(SkeletonError, fmt.Sprintf("invalid package name (%s)", opts.Package))
	}
	if !token.IsIdentifier(opts.Type) || !token.IsExported(opts.Type) {
		return curated.Errorf(SkeletonError, fmt.Sprintf("invalid type name (%s)", opts.Type))
	}

	// group definitions by mnemonic. definitions are visited in opcode order
	// so the opcodes in each group are also in opcode order
	groups := make(map[string][]*instructions.Definition)
	table.Each(func(defn *instructions.Definition) {
		groups[defn.Mnemonic] = append(groups[defn.Mnemonic], defn)
	})

	mnemonics := make([]string, 0, len(groups))
	for m := range groups {
		mnemonics = append(mnemonics, m)
	}
	slices.Sort(mnemonics)

	ver, _, _ := version.Version()

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf(leadingBoilerPlate, version.ApplicationName, ver,
		opts.Package, opts.Type, opts.Type))

	s.WriteString(fmt.Sprintf("// Execute the instruction in the result.\n"+
		"func (ex *%s) Execute(r execution.Result) error {\n", opts.Type))
	s.WriteString("if r.Defn == nil {\n" +
		"return fmt.Errorf(\"executor: no instruction at %#04x\", r.Address)\n" +
		"}\n\n")
	s.WriteString("switch r.Defn.Mnemonic {\n")
	for _, m := range mnemonics {
		s.WriteString(fmt.Sprintf("case %q:\nreturn ex.%s(r)\n", m, strings.ToLower(m)))
	}
	s.WriteString("}\n\n")
	s.WriteString("return fmt.Errorf(\"executor: unknown mnemonic (%s)\", r.Defn.Mnemonic)\n")
	s.WriteString("}\n")

	for _, m := range mnemonics {
		s.WriteString("\n")
		for _, defn := range groups[m] {
			s.WriteString(fmt.Sprintf("// %#02x %s %s\n", defn.OpCode, defn.AddressingMode, defn.CycleSpec()))
		}
		s.WriteString(fmt.Sprintf("func (ex *%s) %s(r execution.Result) error {\n"+
			"return nil\n"+
			"}\n", opts.Type, strings.ToLower(m)))
	}

	src, err := format.Source([]byte(s.String()))
	if err != nil {
		return curated.Errorf(SkeletonError, err)
	}

	_, err = output.Write(src)
	if err != nil {
		return curated.Errorf(SkeletonError, err)
	}

	return nil
}
