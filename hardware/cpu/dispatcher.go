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

package cpu

import (
	"github.com/jetsetilly/m6502/curated"
	"github.com/jetsetilly/m6502/hardware/cpu/addressing"
	"github.com/jetsetilly/m6502/hardware/cpu/execution"
	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502/hardware/cpu/registers"
	"github.com/jetsetilly/m6502/hardware/cpu/timing"
	"github.com/jetsetilly/m6502/hardware/memory/cpubus"
	"github.com/jetsetilly/m6502/hardware/preferences"
	"github.com/jetsetilly/m6502/logger"
)

// Sentinel error returned when the opcode cannot be read from memory.
const FetchError = "cpu: cannot fetch opcode: %v"

// Dispatcher decodes and times instructions. A single instruction table can
// be shared by many Dispatcher instances.
type Dispatcher struct {
	table *instructions.Table
	prefs *preferences.Preferences

	resolver addressing.Resolver

	// the number of instructions decoded successfully
	Decoded int

	// the result of the most recent call to one of the decode functions
	LastResult execution.Result
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type. The prefs argument can be nil, in which case the default behaviour of
// the NMOS 6502 is used.
func NewDispatcher(table *instructions.Table, prefs *preferences.Preferences) *Dispatcher {
	d := &Dispatcher{
		table:    table,
		prefs:    prefs,
		resolver: *addressing.NewResolver(),
	}
	return d
}

// Table returns the instruction table used by the dispatcher.
func (d *Dispatcher) Table() *instructions.Table {
	return d.table
}

// Decode the instruction at the PC without deciding the number of cycles. The
// Result should be finalised with timing.Finalise() once the outcome of any
// branch is known.
func (d *Dispatcher) Decode(regs *registers.Snapshot, mem cpubus.Memory) (execution.Result, error) {
	opcode, err := mem.Peek(regs.PC)
	if err != nil {
		d.LastResult = execution.Result{Address: regs.PC}
		return d.LastResult, curated.Errorf(FetchError, err)
	}
	return d.DecodeOpcode(opcode, regs, mem)
}

// DecodeAndTime decodes the instruction at the PC and decides the number of
// cycles. The branchTaken argument is ignored for instructions that are not
// branches.
func (d *Dispatcher) DecodeAndTime(regs *registers.Snapshot, mem cpubus.Memory, branchTaken bool) (execution.Result, error) {
	opcode, err := mem.Peek(regs.PC)
	if err != nil {
		d.LastResult = execution.Result{Address: regs.PC}
		return d.LastResult, curated.Errorf(FetchError, err)
	}
	return d.DecodeOpcodeAndTime(opcode, regs, mem, branchTaken)
}

// DecodeOpcode is the same as Decode() except that the opcode has already
// been fetched by the caller. The memory at the PC is not read.
func (d *Dispatcher) DecodeOpcode(opcode uint8, regs *registers.Snapshot, mem cpubus.Memory) (execution.Result, error) {
	d.LastResult = execution.Result{
		Address:   regs.PC,
		ByteCount: 1,
	}

	defn, err := d.table.Lookup(opcode)
	if err != nil {
		logger.Logf(logger.Allow, "cpu", "%v at %#04x", err, regs.PC)
		return d.LastResult, err
	}

	if d.prefs != nil {
		d.resolver.IndirectJMPBug = d.prefs.IndirectJMPBug.Get().(bool)
	}

	op, err := d.resolver.Resolve(defn.AddressingMode, regs, mem)
	if err != nil {
		return d.LastResult, err
	}

	d.LastResult.Defn = defn
	d.LastResult.ByteCount = defn.Bytes
	d.LastResult.Operand = op
	d.LastResult.CPUBug = op.Bug
	d.LastResult.PageFault = defn.PageSensitive() && op.CrossedPage
	d.Decoded++

	return d.LastResult, nil
}

// DecodeOpcodeAndTime is the same as DecodeAndTime() except that the opcode
// has already been fetched by the caller.
func (d *Dispatcher) DecodeOpcodeAndTime(opcode uint8, regs *registers.Snapshot, mem cpubus.Memory, branchTaken bool) (execution.Result, error) {
	r, err := d.DecodeOpcode(opcode, regs, mem)
	if err != nil {
		return r, err
	}
	timing.Finalise(&r, branchTaken)
	d.LastResult = r
	return r, nil
}
