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
	"bytes"
	_ "embed"
	"sync"

	"github.com/jetsetilly/m6502/curated"
)

// Table of instruction definitions indexed by opcode. Opcodes without a legal
// instruction have no entry.
//
// A table is never modified once it has been returned by Parse() and is safe
// for concurrent use.
type Table struct {
	defns [256]*Definition
	count int
}

// Lookup returns the definition for the opcode. Returns an
// UnimplementedOpcode error if there is no definition.
//
// The returned definition is shared and must not be modified.
func (tab *Table) Lookup(opcode uint8) (*Definition, error) {
	defn := tab.defns[opcode]
	if defn == nil {
		return nil, curated.Errorf(UnimplementedOpcode, opcode)
	}
	return defn, nil
}

// Count returns the number of opcodes with a definition.
func (tab *Table) Count() int {
	return tab.count
}

// Missing returns the list of opcodes that have no definition, in ascending
// order.
func (tab *Table) Missing() []uint8 {
	m := make([]uint8, 0, len(tab.defns)-tab.count)
	for i, defn := range tab.defns {
		if defn == nil {
			m = append(m, uint8(i))
		}
	}
	return m
}

// Each calls the function for every definition in the table, in ascending
// opcode order.
func (tab *Table) Each(f func(defn *Definition)) {
	for _, defn := range tab.defns {
		if defn != nil {
			f(defn)
		}
	}
}

//go:embed definitions.csv
var definitionsCSV []byte

var definitions struct {
	once sync.Once
	tab  *Table
}

// Definitions returns the table of documented 6502 instructions. The table is
// built from the embedded metadata on first use. An error in the embedded
// metadata is a programming error and causes a panic.
func Definitions() *Table {
	definitions.once.Do(func() {
		tab, err := Parse(bytes.NewReader(definitionsCSV))
		if err != nil {
			panic(err)
		}
		definitions.tab = tab
	})
	return definitions.tab
}
