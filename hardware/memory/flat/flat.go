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

package flat

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/m6502/curated"
	"github.com/jetsetilly/m6502/expression"
	"github.com/jetsetilly/m6502/hardware/memory/cpubus"
)

// Size of the address space.
const Size = 0x10000

// Memory is a 64KiB block of RAM.
type Memory struct {
	memory [Size]uint8
}

// NewMemory is the preferred method of initialisation for Memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Peek implements the cpubus.Memory interface.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	return mem.memory[address], nil
}

// Poke writes a single byte to memory.
func (mem *Memory) Poke(address uint16, value uint8) {
	mem.memory[address] = value
}

// PokeWord writes a little-endian sixteen bit value to memory.
func (mem *Memory) PokeWord(address uint16, value uint16) {
	mem.memory[address] = uint8(value)
	mem.memory[address+1] = uint8(value >> 8)
}

// Load copies the data to memory starting at the origin address. Data that
// extends past the top of memory wraps around to address zero.
func (mem *Memory) Load(origin uint16, data []uint8) {
	for i, d := range data {
		mem.memory[origin+uint16(i)] = d
	}
}

// LoadImage copies the contents of the Image to memory at the image's origin.
func (mem *Memory) LoadImage(img *Image) {
	mem.Load(img.origin, img.data)
}

// LoadFrom reads all data from the io.Reader and copies it to memory at the
// origin address. Returns the number of bytes loaded.
func (mem *Memory) LoadFrom(origin uint16, r io.Reader) (int, error) {
	data, err := io.ReadAll(io.LimitReader(r, Size+1))
	if err != nil {
		return 0, curated.Errorf("memory: %v", err)
	}
	if len(data) > Size {
		return 0, curated.Errorf("memory: data is larger than the address space")
	}
	mem.Load(origin, data)
	return len(data), nil
}

// Assign values to memory from a description of the form:
//
//	0x0600=0xbd,0xff,0x20; 0x20ff=$10
//
// Each assignment writes a sequence of bytes starting at the address. The
// address and the values are expressions and so can be written as
// arithmetic. Returns the number of bytes written.
func (mem *Memory) Assign(desc string) (int, error) {
	var n int

	for _, a := range strings.Split(desc, ";") {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}

		address, values, ok := strings.Cut(a, "=")
		if !ok {
			return n, curated.Errorf("memory: assignment has no value (%s)", a)
		}

		addr, err := expression.EvaluateUint16(address, nil)
		if err != nil {
			return n, curated.Errorf("memory: %v", err)
		}

		for _, v := range strings.Split(values, ",") {
			b, err := expression.EvaluateUint8(v, nil)
			if err != nil {
				return n, curated.Errorf("memory: %v", err)
			}
			mem.memory[addr] = b
			addr++
			n++
		}
	}

	return n, nil
}

// Page returns a hex dump of a single page of memory.
func (mem *Memory) Page(page uint8) string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	base := uint16(page) << 8
	for y := uint16(0); y < 16; y++ {
		s.WriteString(fmt.Sprintf("%03X- | ", (base>>4)+y))
		for x := uint16(0); x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.memory[base+y*16+x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

// Image is a block of data at an origin address. Addresses outside the block
// cannot be read.
type Image struct {
	origin uint16
	data   []uint8
}

// NewImage creates a new Image. The data must fit between the origin and the
// top of memory.
func NewImage(origin uint16, data []uint8) (*Image, error) {
	if int(origin)+len(data) > Size {
		return nil, curated.Errorf("memory: image of %d bytes does not fit at origin %#04x", len(data), origin)
	}
	return &Image{origin: origin, data: data}, nil
}

// Origin returns the address of the first byte of the image.
func (img *Image) Origin() uint16 {
	return img.origin
}

// Memtop returns the address of the last byte of the image. An empty image
// returns the origin.
func (img *Image) Memtop() uint16 {
	if len(img.data) == 0 {
		return img.origin
	}
	return img.origin + uint16(len(img.data)-1)
}

// Len returns the number of bytes in the image.
func (img *Image) Len() int {
	return len(img.data)
}

// Contains returns true if the address is within the image.
func (img *Image) Contains(address uint16) bool {
	return address >= img.origin && int(address-img.origin) < len(img.data)
}

// Peek implements the cpubus.Memory interface.
func (img *Image) Peek(address uint16) (uint8, error) {
	if !img.Contains(address) {
		return 0, curated.Errorf(cpubus.AddressError, address)
	}
	return img.data[address-img.origin], nil
}
