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

package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/m6502/terminal/easyterm/ansi"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
	FlowInfo bool

	// use ANSI pens to colour the output
	Colour bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		_, err := io.WriteString(output, dsm.line(attr, e))
		if err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
	}
	return nil
}

// WriteEntry writes a single entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e Entry) {
	io.WriteString(output, dsm.line(attr, e))
}

func (dsm *Disassembly) line(attr WriteAttr, e Entry) string {
	s := strings.Builder{}

	pen := func(p string, f string) {
		if attr.Colour {
			s.WriteString(p)
			s.WriteString(f)
			s.WriteString(ansi.NormalPen)
		} else {
			s.WriteString(f)
		}
		s.WriteString(" ")
	}

	pen(ansi.Pens["blue"], dsm.GetField(FldAddress, e))
	if attr.ByteCode {
		pen(ansi.DimPens["white"], dsm.GetField(FldBytecode, e))
	}

	switch e.Type {
	case EntryTypeInstruction:
		pen(ansi.Pens["yellow"], dsm.GetField(FldOperator, e))
	default:
		pen(ansi.Pens["red"], dsm.GetField(FldOperator, e))
	}

	pen(ansi.Pens["white"], dsm.GetField(FldOperand, e))

	if attr.Cycles {
		pen(ansi.DimPens["cyan"], dsm.GetField(FldCycles, e))
	}

	if attr.FlowInfo && len(e.Next) > 0 {
		s.WriteString("->")
		for _, a := range e.Next {
			s.WriteString(fmt.Sprintf(" $%04x", a))
		}
	}

	return fmt.Sprintf("%s\n", strings.TrimRight(s.String(), " "))
}
