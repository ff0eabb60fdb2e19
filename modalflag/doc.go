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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are supplied with NewArgs() and then parsed, one layer at a time,
// with Parse(). For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("TABLE", "DECODE", "DISASM")
//	prefs := md.AddString("prefs", "", "preferences for this run")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After the call to Parse() the Mode() function says which of the sub-modes
// was selected. The first sub-mode in the list is the default and is selected
// if the first argument after the flags is not the name of a sub-mode. Sub-mode
// names are not case sensitive.
//
// Flags for the selected mode are added after a call to NewMode() and the
// remaining arguments are then parsed with another call to Parse():
//
//	md.NewMode()
//	missing := md.AddBool("missing", false, "list unimplemented opcodes")
//	_, _ = md.Parse()
//
// Arguments that are neither flags nor sub-modes are available with the
// RemainingArgs() and GetArg() functions.
//
// The -help flag is handled automatically and prints the flags and sub-modes
// for the current layer to the Output writer.
package modalflag
