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

package instructions

// Sentinel error patterns for use with the curated package.
const (
	// returned when an opcode has no entry in the table. the single value is
	// the opcode
	UnimplementedOpcode = "cpu: unimplemented opcode (%#02x)"

	// returned by Parse() when the metadata cannot be used to build a table.
	// values are the reason and the line number of the offending record
	MalformedMetadata = "instructions: malformed metadata: %v [line %d]"
)
