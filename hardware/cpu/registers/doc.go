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

// Package registers holds a snapshot of the 6502 register file. The
// snapshot is the input to operand resolution and is never altered by the
// decoding process.
//
// A snapshot can be created from a short textual description. For example:
//
//	pc=0x0600 a=$10 x=1 sp=0xfd p=0x24
//
// The value of each register is an expression and may refer to a register
// that has already been assigned:
//
//	x=0x10 y=x+1
//
// The StatusRegister type breaks the status byte into its named flags.
package registers
