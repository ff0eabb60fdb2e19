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

package easyterm_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/m6502/terminal/easyterm"
	"github.com/jetsetilly/m6502/test"
)

func TestPipes(t *testing.T) {
	inR, inW, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer inR.Close()
	defer inW.Close()

	outR, outW, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer outR.Close()
	defer outW.Close()

	var pt easyterm.Terminal
	test.DemandSuccess(t, pt.Initialise(inR, outW))
	defer pt.CleanUp()

	test.ExpectFailure(t, pt.IsRealTerminal())
	test.ExpectFailure(t, pt.UpdateGeometry())
	test.ExpectEquality(t, pt.Geometry(), easyterm.TermGeometry{})

	// mode changes have no effect on pipes
	pt.CBreakMode()
	pt.CanonicalMode()
	test.ExpectSuccess(t, pt.Flush())

	_, err = inW.Write([]byte{'t', easyterm.KeyEsc})
	test.DemandSuccess(t, err)

	k, err := pt.ReadKey()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, byte('t'))

	k, err = pt.ReadKey()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, byte(easyterm.KeyEsc))

	pt.Print("%s %d", "foo", 10)
	b := make([]byte, 6)
	n, err := outR.Read(b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b[:n]), "foo 10")
}

func TestInitialiseErrors(t *testing.T) {
	var pt easyterm.Terminal
	test.ExpectFailure(t, pt.Initialise(nil, os.Stdout))
	test.ExpectFailure(t, pt.Initialise(os.Stdin, nil))
}
