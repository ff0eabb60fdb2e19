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

// Package stepper steps through a program one instruction at a time, showing
// the decoding and timing of each instruction.
//
// The stepper does not execute instructions. Registers other than the PC are
// never changed and so the outcome of branch instructions must be supplied by
// the user. The PC is moved to the branch target, the jump target or the
// following instruction as appropriate. Subroutine calls and interrupts are
// tracked with a return stack that is separate from the 6502 stack.
package stepper
