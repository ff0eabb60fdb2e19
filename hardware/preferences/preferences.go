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

// Package preferences collates the preference values that affect the
// emulation of the CPU.
package preferences

import (
	"github.com/jetsetilly/m6502/curated"
	"github.com/jetsetilly/m6502/paths"
	"github.com/jetsetilly/m6502/prefs"
)

// Preferences defines and collates all the preference values used by the CPU.
type Preferences struct {
	dsk *prefs.Disk

	// the high byte of an indirect JMP address is read from the start of the
	// page when the pointer is at the end of a page
	IndirectJMPBug prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the default preferences file, which is created
// if it doesn't exist.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth, true)
}

// NewPreferencesFromFile creates preferences using the named file rather than
// the default preferences file. A missing file is not an error and is not
// created.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	return newPreferences(pth, false)
}

func newPreferences(pth string, saveOnFirstUse bool) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.indirectjmpbug", &p.IndirectJMPBug)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(saveOnFirstUse)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	// no error possible when setting a bool value
	_ = p.IndirectJMPBug.Set(true)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
