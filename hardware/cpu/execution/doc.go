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

// Package execution records the outcome of decoding an instruction on the
// CPU. The Result type stores the instruction definition, the resolved
// operand and the number of cycles consumed. A Result can then be used to
// produce output for disassemblers and debuggers.
//
// The Result.IsValid() function can be used to check whether results are
// consistent with the instruction definition. The dispatcher doesn't call
// this function because it would introduce unwanted performance penalties,
// but it's fine to use in a debugging or testing context.
package execution
