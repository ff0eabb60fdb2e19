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

// Package addressing resolves the operand of an instruction according to its
// addressing mode. Resolution reads the bytes following the opcode and any
// pointers they refer to but never writes to memory or alters the registers.
//
// The zero page indexed modes and the zero page pointer of the indirect
// indexed modes wrap within the zero page. The absolute indexed modes and the
// Y index of the IndirectIndexed mode use a full sixteen bit addition and
// report whether the high byte of the address changed.
//
// The Indirect mode (used only by JMP) reproduces the 6502 bug whereby a
// pointer at the end of a page takes the high byte of the address from the
// start of the same page. The bug can be turned off with the IndirectJMPBug
// field of the Resolver type.
package addressing
