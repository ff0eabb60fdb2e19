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

// Package cpu decodes instructions for the 6502 microprocessor. Like all 8-bit
// processors of the era, the 6502 executes instructions according to the
// single byte value read from the address pointed to by the program counter.
// This single byte is the opcode and is looked up in the instruction table.
// The instruction definition for that opcode is then used to resolve the
// operand and to count the number of cycles the instruction takes.
//
// The Dispatcher type does not execute instructions. It is intended to be
// used by an executor that implements the instruction semantics. The
// executor supplies a snapshot of the registers and a view of memory and
// receives an execution.Result describing the instruction:
//
//	d := cpu.NewDispatcher(instructions.Definitions(), prefs)
//
//	result, err := d.Decode(&regs, mem)
//	if err != nil {
//		return err
//	}
//
//	taken := execute(result)
//	timing.Finalise(&result, taken)
//
// The number of cycles consumed by a branch instruction depends on whether
// the branch was taken, which only the executor knows. If the outcome is
// known in advance, the DecodeAndTime() function can be used instead.
//
// Opcodes that have no instruction definition result in an error with the
// instructions.UnimplementedOpcode pattern. The error is also logged.
package cpu
