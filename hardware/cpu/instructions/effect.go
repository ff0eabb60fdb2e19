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

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following three effects have a variable effect on the program
	// counter, depending on the instruction's precise operand.

	// flow consists of the Branch and JMP instructions. Branch instructions
	// specifically can be distinguished by the AddressingMode.
	Flow

	Subroutine
	Interrupt
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}

// effectOf returns the effect category for a mnemonic in the given
// addressing mode. shift and increment instructions only modify memory when
// they are not operating on the accumulator.
func effectOf(mnemonic string, mode AddressingMode) EffectCategory {
	switch mnemonic {
	case "STA", "STX", "STY":
		return Write
	case "ASL", "LSR", "ROL", "ROR", "INC", "DEC":
		if mode == Accumulator {
			return Read
		}
		return RMW
	case "JMP", "BCC", "BCS", "BEQ", "BMI", "BNE", "BPL", "BVC", "BVS":
		return Flow
	case "JSR", "RTS":
		return Subroutine
	case "BRK", "RTI":
		return Interrupt
	}
	return Read
}
