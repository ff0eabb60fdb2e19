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

package registers

import (
	"fmt"
)

// Snapshot is the state of the 6502 registers at the point an instruction
// is fetched. PC is the address of the opcode byte.
type Snapshot struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status uint8
}

// NewSnapshot returns a Snapshot with the stack pointer and status register
// set to the values they have after a reset. All other registers are zero.
func NewSnapshot() Snapshot {
	return Snapshot{
		SP:     0xfd,
		Status: 0x24,
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x SP=%02x SR=%s", s.PC, s.A, s.X, s.Y, s.SP, s.Flags())
}

// Flags returns the Status field as a StatusRegister.
func (s Snapshot) Flags() StatusRegister {
	return NewStatusRegister(s.Status)
}

// Advance returns a copy of the snapshot with the PC moved past an
// instruction of the specified length. The address wraps at the top of
// memory.
func (s Snapshot) Advance(bytes int) Snapshot {
	s.PC += uint16(bytes)
	return s
}

// Following returns the address of the instruction that follows the
// instruction at PC, given the length of that instruction.
func (s Snapshot) Following(bytes int) uint16 {
	return s.PC + uint16(bytes)
}

// Page returns the page of the PC.
func (s Snapshot) Page() uint16 {
	return s.PC & 0xff00
}
