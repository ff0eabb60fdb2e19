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

package paths

import (
	"testing"
	"time"

	"github.com/jetsetilly/m6502/test"
)

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("cpu", "bench", n), "cpu_bench_20240305_140709")
	test.ExpectEquality(t, uniqueFilename("cpu", "  ", n), "cpu_20240305_140709")
}
