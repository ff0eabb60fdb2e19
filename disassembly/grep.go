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
	"io"
	"strings"
)

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepOperator GrepScope = iota
	GrepOperand
	GrepAll
)

// Grep searches the disassembly for the specified search string and writes
// every matching entry to io.Writer. Returns the number of matches.
func (dsm *Disassembly) Grep(output io.Writer, attr WriteAttr, scope GrepScope, search string, caseSensitive bool) int {
	var s string

	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	matches := 0

	for _, e := range dsm.Entries {
		// line representation of the entry. we'll print this in case of a
		// match
		line := dsm.line(attr, e)

		// limit scope of grep to the correct entry field
		switch scope {
		case GrepOperator:
			s = e.Operator
		case GrepOperand:
			s = e.Operand
		case GrepAll:
			s = e.String()
		}

		if !caseSensitive {
			s = strings.ToUpper(s)
		}

		if strings.Contains(s, search) {
			io.WriteString(output, line)
			matches++
		}
	}

	return matches
}
