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

package disassembly

import (
	"github.com/jetsetilly/m6502/curated"
	"github.com/jetsetilly/m6502/hardware/cpu"
	"github.com/jetsetilly/m6502/hardware/cpu/execution"
	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502/hardware/cpu/registers"
)

// imageMemory presents the image as a full address space. addresses outside
// the image read as zero so that indirect addressing modes can always be
// resolved. the effective addresses of those modes are not shown in the
// disassembly so the value read does not matter.
type imageMemory struct {
	dsm *Disassembly
}

func (mem imageMemory) Peek(address uint16) (uint8, error) {
	if !mem.dsm.img.Contains(address) {
		return 0, nil
	}
	return mem.dsm.img.Peek(address)
}

// linear disassembly decodes each instruction from the start address and
// continues from the byte following the instruction. the instruction at the
// end address is the last instruction to be decoded, even if it extends past
// the end address.
func (dsm *Disassembly) linearDisassembly(dispatcher *cpu.Dispatcher, start uint16, end uint16) error {
	mem := imageMemory{dsm: dsm}
	regs := registers.NewSnapshot()

	address := uint32(start)
	for address <= uint32(end) {
		regs.PC = uint16(address)

		r, err := dispatcher.Decode(&regs, mem)
		if err != nil && !curated.Is(err, instructions.UnimplementedOpcode) {
			return err
		}

		// the bytes in the instruction that are inside the image
		var bytecode []uint8
		for i := 0; i < r.ByteCount; i++ {
			a := uint32(regs.PC) + uint32(i)
			if a > uint32(dsm.img.Memtop()) {
				break
			}
			b, _ := dsm.img.Peek(uint16(a))
			bytecode = append(bytecode, b)
		}

		e := newEntry(r, bytecode)
		if r.Defn != nil && len(bytecode) < r.ByteCount {
			e = newEntry(execution.Result{Address: regs.PC, ByteCount: 1}, bytecode[:1])
			e.Type = EntryTypeTruncated
		}

		dsm.Entries = append(dsm.Entries, e)
		dsm.fields.update(e)

		address += uint32(e.Result.ByteCount)
	}

	return nil
}
