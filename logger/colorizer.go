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

package logger

import (
	"io"
	"strings"

	"github.com/jetsetilly/m6502/terminal/easyterm/ansi"
)

// Colorizer applies basic coloring rules to logging output. The first line
// of each write is printed normally; subsequent lines are dimmed.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	l := strings.Split(strings.TrimSpace(string(p)), "\n")

	// the entry tag is highlighted
	first := l[0]
	if i := strings.Index(first, ": "); i > 0 {
		first = ansi.Pens["yellow"] + first[:i] + ansi.NormalPen + first[i:]
	}

	if _, err := io.WriteString(c.out, first+"\n"); err != nil {
		return 0, err
	}
	if len(l) == 1 {
		return len(p), nil
	}

	if _, err := io.WriteString(c.out, ansi.DimPens["red"]); err != nil {
		return 0, err
	}
	defer func() {
		_, _ = io.WriteString(c.out, ansi.NormalPen)
	}()

	for _, s := range l[1:] {
		if _, err := io.WriteString(c.out, s+"\n"); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}
