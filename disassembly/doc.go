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

// Package disassembly produces a linear disassembly of a 6502 program image.
//
// Every instruction is decoded with the same cpu.Dispatcher that an executor
// would use, so the listing shows exactly what the instruction table and
// address resolver make of the program. Cycle counts are shown as a range
// where the actual number depends on the outcome of indexing or branching.
//
// Linear disassembly starts at an address and decodes one instruction after
// another. Bytes that do not decode to an instruction are listed as data and
// disassembly resumes at the next byte. This means that data embedded in the
// program may be shown as instructions.
package disassembly
