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

// Package cpubus defines how the CPU sees memory. For the purposes of operand
// resolution memory is read-only and is accessed with the Peek() function.
//
// The vector addresses at the top of memory are also defined here.
package cpubus

// Memory defines the view of memory used when resolving operands. Peek()
// must not have side effects. Implementations that cannot service an address
// should return an error created with the AddressError pattern.
type Memory interface {
	Peek(address uint16) (uint8, error)
}

// Sentinel error returned by memory implementations.
const AddressError = "memory: cannot read address (%#04x)"

// NMI is the address where the non-maskable interrupt address is stored.
const NMI = uint16(0xfffa)

// Reset is the address where the reset address is stored.
const Reset = uint16(0xfffc)

// IRQ is the address where the interrupt address is stored.
const IRQ = uint16(0xfffe)

// ReadVector returns the little-endian address stored at the vector address.
func ReadVector(mem Memory, vector uint16) (uint16, error) {
	lo, err := mem.Peek(vector)
	if err != nil {
		return 0, err
	}
	hi, err := mem.Peek(vector + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
