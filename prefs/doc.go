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

// Package prefs facilitates the storage of preference values. Preference
// values are typed (Bool, Int and String) and are added to a Disk instance
// with a key. The Disk type takes care of loading and saving the values to a
// file on disk in the form:
//
//	key :: value
//
// For example:
//
//	var jmpbug prefs.Bool
//	dsk, _ := prefs.NewDisk(pth)
//	_ = dsk.Add("cpu.indirectjmpbug", &jmpbug)
//	_ = dsk.Load(true)
//
// Values can also be supplied on the command line, in which case they take
// precedence over the values on disk for the duration of the program. See
// PushCommandLineStack() for details.
//
// Many Disk instances can share the same file. Keys that are not part of a
// Disk instance are preserved when that instance is saved.
package prefs
