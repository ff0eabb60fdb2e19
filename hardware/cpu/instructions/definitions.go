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

import (
	"fmt"
)

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	AddressingMode AddressingMode

	// number of bytes in the instruction, including the opcode
	Bytes int

	// base number of cycles and how that number may vary
	Cycles int
	Timing TimingClass

	Effect EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s timing=%s effect=%s]",
		defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles,
		defn.AddressingMode, defn.Timing, defn.Effect)
}

// OperandBytes returns the number of bytes following the opcode.
func (defn Definition) OperandBytes() int {
	return defn.Bytes - 1
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// PageSensitive returns true if the number of cycles can be affected by the
// indexed address crossing a page boundary.
func (defn Definition) PageSensitive() bool {
	return defn.Timing == PageCrossPenalty
}

// CycleSpec returns the cycle specification of the definition in the same
// form as the metadata it was parsed from.
func (defn Definition) CycleSpec() string {
	return FormatCycleSpec(defn.Cycles, defn.Timing)
}
