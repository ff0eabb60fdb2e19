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
	"strings"
	"unicode"
)

// StatusRegister is the special purpose register that stores the flags of the CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister creates a StatusRegister from the status byte.
func NewStatusRegister(v uint8) StatusRegister {
	var sr StatusRegister
	sr.FromValue(v)
	return sr
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags of the status register. Upper case letters
// indicate a set flag and lower case letters indicate a clear flag. The
// unused bit is always shown as a dash.
func (sr StatusRegister) String() string {
	flags := [...]struct {
		set   bool
		label rune
	}{
		{sr.Sign, 's'},
		{sr.Overflow, 'v'},
		{false, '-'},
		{sr.Break, 'b'},
		{sr.DecimalMode, 'd'},
		{sr.InterruptDisable, 'i'},
		{sr.Zero, 'z'},
		{sr.Carry, 'c'},
	}

	s := strings.Builder{}
	for _, f := range flags {
		if f.set {
			s.WriteRune(unicode.ToUpper(f.label))
		} else {
			s.WriteRune(f.label)
		}
	}

	return s.String()
}

// Value converts the StatusRegister struct into the status byte.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.Break {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	// unused bit in the status register is always 1
	v |= 0x20

	return v
}

// FromValue converts the status byte to the StatusRegister struct receiver.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.Break = v&0x10 == 0x10
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}
