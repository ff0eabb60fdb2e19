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

// Package expression evaluates simple integer expressions, such as those used
// on the command line to describe register values and memory contents.
//
// Expressions are evaluated by the Starlark interpreter and so follow Python
// syntax for integer arithmetic. In addition, hexadecimal numbers may be
// written in the 6502 assembler style with a leading '$'. For example:
//
//	$20ff + 1
//	0x2000 | (3 << 8)
//	base + 0x10
//
// Named values can be supplied to the expression by the caller.
package expression
