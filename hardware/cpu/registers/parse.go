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

package registers

import (
	"regexp"
	"strings"

	"github.com/jetsetilly/m6502/curated"
	"github.com/jetsetilly/m6502/expression"
)

// Sentinel error returned by ParseSnapshot().
const SnapshotError = "registers: %v"

// matches the start of an assignment. the character following the equals
// sign is checked separately to exclude the equality operator
var assignment = regexp.MustCompile(`(?i)\b([a-z]+)\s*=`)

// ParseSnapshot creates a Snapshot from a description of the form:
//
//	pc=0x0600 a=$10 x=1 y=x+1 sp=0xfd p=0x24
//
// Registers that are not mentioned in the description take the value they
// have in NewSnapshot(). The status register can be named as either p or sr.
func ParseSnapshot(desc string) (Snapshot, error) {
	s := NewSnapshot()

	symbols := make(map[string]int64)

	matches := assignment.FindAllStringSubmatchIndex(desc, -1)

	// remove matches that are really the equality operator
	n := 0
	for _, m := range matches {
		if m[1] < len(desc) && desc[m[1]] == '=' {
			continue
		}
		matches[n] = m
		n++
	}
	matches = matches[:n]

	if len(matches) == 0 {
		if strings.TrimSpace(desc) == "" {
			return s, nil
		}
		return s, curated.Errorf(SnapshotError, "no register assignments in description")
	}

	if lead := strings.TrimSpace(desc[:matches[0][0]]); lead != "" {
		return s, curated.Errorf(SnapshotError, "unexpected text: "+lead)
	}

	for i, m := range matches {
		name := strings.ToLower(desc[m[2]:m[3]])

		end := len(desc)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		expr := strings.Trim(strings.TrimSpace(desc[m[1]:end]), ",;")
		if expr == "" {
			return s, curated.Errorf(SnapshotError, "no value for "+name)
		}

		if name == "pc" {
			v, err := expression.EvaluateUint16(expr, symbols)
			if err != nil {
				return s, curated.Errorf(SnapshotError, err)
			}
			s.PC = v
			symbols[name] = int64(v)
			continue
		}

		v, err := expression.EvaluateUint8(expr, symbols)
		if err != nil {
			return s, curated.Errorf(SnapshotError, err)
		}

		switch name {
		case "a":
			s.A = v
		case "x":
			s.X = v
		case "y":
			s.Y = v
		case "sp":
			s.SP = v
		case "p", "sr":
			s.Status = v
		default:
			return s, curated.Errorf(SnapshotError, "unknown register: "+name)
		}

		symbols[name] = int64(v)
	}

	return s, nil
}
