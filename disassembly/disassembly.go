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
	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502/hardware/memory/flat"
)

// Sentinel error returned when the disassembly cannot be created.
const DisasmError = "disassembly: %v"

// Disassembly is a linear disassembly of a program image.
type Disassembly struct {
	img *flat.Image

	// the entries in address order
	Entries []Entry

	fields fields
}

// FromImage disassembles the program image from the start address to the end
// address inclusive. Both addresses must be inside the image. A nil
// dispatcher means that a Dispatcher with the default instruction table and
// default preferences is used.
func FromImage(img *flat.Image, dispatcher *cpu.Dispatcher, start uint16, end uint16) (*Disassembly, error) {
	if img.Len() == 0 {
		return nil, curated.Errorf(DisasmError, "image is empty")
	}
	if !img.Contains(start) {
		return nil, curated.Errorf(DisasmError, curated.Errorf("start address (%#04x) is outside the image", start))
	}
	if !img.Contains(end) {
		return nil, curated.Errorf(DisasmError, curated.Errorf("end address (%#04x) is outside the image", end))
	}
	if end < start {
		return nil, curated.Errorf(DisasmError, "end address is before start address")
	}

	if dispatcher == nil {
		dispatcher = cpu.NewDispatcher(instructions.Definitions(), nil)
	}

	dsm := &Disassembly{img: img}

	err := dsm.linearDisassembly(dispatcher, start, end)
	if err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}

	return dsm, nil
}

// Image returns the program image that was disassembled.
func (dsm *Disassembly) Image() *flat.Image {
	return dsm.img
}

// Search returns the entry for the instruction at the address. Returns false
// if the address is not the start of an entry.
func (dsm *Disassembly) Search(address uint16) (Entry, bool) {
	lo := 0
	hi := len(dsm.Entries) - 1
	for lo <= hi {
		mid := (lo + hi) / 2
		a := dsm.Entries[mid].Result.Address
		switch {
		case a == address:
			return dsm.Entries[mid], true
		case a < address:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return Entry{}, false
}
