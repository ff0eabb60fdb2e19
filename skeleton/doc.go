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

// Package skeleton generates the source code of an instruction executor.
//
// The generated code is a Go type with an Execute() method that takes an
// execution.Result, as returned by the cpu.Dispatcher, and calls one method
// per mnemonic. The method for each mnemonic is empty apart from a comment
// listing the opcodes, addressing modes and cycle specifications it should
// handle. The output is formatted with the standard Go formatter.
package skeleton
