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

package addressing

import (
	"github.com/jetsetilly/m6502/curated"
	"github.com/jetsetilly/m6502/hardware/cpu/execution"
	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502/hardware/cpu/registers"
	"github.com/jetsetilly/m6502/hardware/memory/cpubus"
)

// Sentinel errors returned by Resolve().
const (
	ResolveError = "addressing: %v: %v"
	UnknownMode  = "addressing: unknown addressing mode (%d)"
)

const (
	pageMask    = 0xff00
	zeroPageEnd = 0xff
)

// Operand is the result of resolving an addressing mode.
type Operand = execution.Operand

// Resolver computes the effective operand of an instruction.
type Resolver struct {
	// emulate the page wrap bug of indirect JMP instructions
	IndirectJMPBug bool
}

// NewResolver returns a Resolver with the behaviour of the NMOS 6502.
func NewResolver() *Resolver {
	return &Resolver{
		IndirectJMPBug: true,
	}
}

var defaultResolver = NewResolver()

// Resolve the operand using the default Resolver.
func Resolve(mode instructions.AddressingMode, regs *registers.Snapshot, mem cpubus.Memory) (Operand, error) {
	return defaultResolver.Resolve(mode, regs, mem)
}

// SamePage returns true if both addresses are in the same page.
func SamePage(a uint16, b uint16) bool {
	return a&pageMask == b&pageMask
}

// peek a byte and wrap any error so that it shows the addressing mode
func peek(mode instructions.AddressingMode, mem cpubus.Memory, address uint16) (uint8, error) {
	v, err := mem.Peek(address)
	if err != nil {
		return 0, curated.Errorf(ResolveError, mode, err)
	}
	return v, nil
}

// read a little-endian word. the high byte is read from the address after
// the low byte
func peek16(mode instructions.AddressingMode, mem cpubus.Memory, address uint16) (uint16, error) {
	lo, err := peek(mode, mem, address)
	if err != nil {
		return 0, err
	}
	hi, err := peek(mode, mem, address+1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// read a little-endian word from the zero page. the high byte of a pointer
// at the end of the zero page is read from the start of the zero page
func peekZeroPage16(mode instructions.AddressingMode, mem cpubus.Memory, pointer uint8) (uint16, error) {
	lo, err := peek(mode, mem, uint16(pointer))
	if err != nil {
		return 0, err
	}
	hi, err := peek(mode, mem, uint16(pointer+1))
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Resolve the operand of the instruction at regs.PC for the addressing mode.
// The PC points to the opcode byte and the operand bytes follow it.
func (res *Resolver) Resolve(mode instructions.AddressingMode, regs *registers.Snapshot, mem cpubus.Memory) (Operand, error) {
	var op Operand

	// read operand bytes
	switch mode.OperandBytes() {
	case 1:
		lo, err := peek(mode, mem, regs.PC+1)
		if err != nil {
			return op, err
		}
		op.Data = uint16(lo)
	case 2:
		data, err := peek16(mode, mem, regs.PC+1)
		if err != nil {
			return op, err
		}
		op.Data = data
	}

	switch mode {
	case instructions.Implied:
		op.Kind = execution.NoOperand

	case instructions.Accumulator:
		op.Kind = execution.ValueOperand
		op.Value = regs.A

	case instructions.Immediate:
		op.Kind = execution.ValueOperand
		op.Value = uint8(op.Data)

	case instructions.Relative:
		// the offset is relative to the instruction following the branch
		op.Kind = execution.AddressOperand
		op.Base = regs.PC + 2
		op.Address = op.Base + uint16(int8(op.Data))
		op.CrossedPage = !SamePage(op.Base, op.Address)

	case instructions.Absolute:
		op.Kind = execution.AddressOperand
		op.Base = op.Data
		op.Address = op.Data

	case instructions.ZeroPage:
		op.Kind = execution.AddressOperand
		op.Base = op.Data
		op.Address = op.Data

	case instructions.ZeroPageX:
		op.Kind = execution.AddressOperand
		op.Base = op.Data
		op.Address = uint16(uint8(op.Data) + regs.X)
		if op.Data+uint16(regs.X) > zeroPageEnd {
			op.Bug = execution.ZeroPageIndexBug
		}

	case instructions.ZeroPageY:
		op.Kind = execution.AddressOperand
		op.Base = op.Data
		op.Address = uint16(uint8(op.Data) + regs.Y)
		if op.Data+uint16(regs.Y) > zeroPageEnd {
			op.Bug = execution.ZeroPageIndexBug
		}

	case instructions.AbsoluteX:
		op.Kind = execution.AddressOperand
		op.Base = op.Data
		op.Address = op.Data + uint16(regs.X)
		op.CrossedPage = !SamePage(op.Base, op.Address)

	case instructions.AbsoluteY:
		op.Kind = execution.AddressOperand
		op.Base = op.Data
		op.Address = op.Data + uint16(regs.Y)
		op.CrossedPage = !SamePage(op.Base, op.Address)

	case instructions.Indirect:
		op.Kind = execution.AddressOperand
		op.Base = op.Data

		if res.IndirectJMPBug && op.Data&0x00ff == 0x00ff {
			// high byte is read from the start of the same page
			lo, err := peek(mode, mem, op.Data)
			if err != nil {
				return op, err
			}
			hi, err := peek(mode, mem, op.Data&pageMask)
			if err != nil {
				return op, err
			}
			op.Address = uint16(hi)<<8 | uint16(lo)
			op.Bug = execution.JmpIndirectAddressingBug
		} else {
			address, err := peek16(mode, mem, op.Data)
			if err != nil {
				return op, err
			}
			op.Address = address
		}

	case instructions.IndexedIndirect:
		pointer := uint8(op.Data) + regs.X
		address, err := peekZeroPage16(mode, mem, pointer)
		if err != nil {
			return op, err
		}
		op.Kind = execution.AddressOperand
		op.Base = uint16(pointer)
		op.Address = address
		if op.Data+uint16(regs.X) > zeroPageEnd || pointer == zeroPageEnd {
			op.Bug = execution.IndexedIndirectAddressingBug
		}

	case instructions.IndirectIndexed:
		base, err := peekZeroPage16(mode, mem, uint8(op.Data))
		if err != nil {
			return op, err
		}
		op.Kind = execution.AddressOperand
		op.Base = base
		op.Address = base + uint16(regs.Y)
		op.CrossedPage = !SamePage(op.Base, op.Address)
		if op.Data == zeroPageEnd {
			op.Bug = execution.ZeroPagePointerBug
		}

	default:
		return Operand{}, curated.Errorf(UnknownMode, int(mode))
	}

	return op, nil
}
