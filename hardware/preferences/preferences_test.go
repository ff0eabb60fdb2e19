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

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/m6502/hardware/preferences"
	"github.com/jetsetilly/m6502/prefs"
	"github.com/jetsetilly/m6502/test"
)

func TestDefaults(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.IndirectJMPBug.Get().(bool), true)

	// file is not created
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.IndirectJMPBug.Set(false))
	test.DemandSuccess(t, p.Save())

	p, err = preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.IndirectJMPBug.Get().(bool), false)
	test.ExpectEquality(t, p.String(), "cpu.indirectjmpbug :: false\n")

	p.SetDefaults()
	test.ExpectEquality(t, p.IndirectJMPBug.Get().(bool), true)
	test.DemandSuccess(t, p.Load())
	test.ExpectEquality(t, p.IndirectJMPBug.Get().(bool), false)
}

func TestCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	prefs.PushCommandLineStack("cpu.indirectjmpbug::false")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.IndirectJMPBug.Get().(bool), false)
}
