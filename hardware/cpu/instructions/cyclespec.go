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
	"fmt"
	"strconv"
	"strings"
)

// TimingClass describes how the cycle cost of an instruction may vary from
// the base number of cycles.
type TimingClass int

// List of timing classes.
const (
	// the cycle count is always the base number of cycles
	Fixed TimingClass = iota

	// one extra cycle if the indexed address is on a different page to the
	// unindexed base address
	PageCrossPenalty

	// one extra cycle if the branch is taken and another if the branch
	// target is on a different page to the instruction following the branch
	BranchPenalty
)

func (c TimingClass) String() string {
	switch c {
	case Fixed:
		return "Fixed"
	case PageCrossPenalty:
		return "PageCrossPenalty"
	case BranchPenalty:
		return "BranchPenalty"
	}
	return "unknown timing class"
}

// the suffixes of a cycle specification that indicate the timing class
const (
	pageCrossSuffix = "(+1 if page crossed)"
	branchSuffix    = "(+1 if branch succeeds +2 if to a new page)"
)

// ParseCycleSpec parses a cycle specification in the form used by the
// opcode reference:
//
//	<digit>
//	<digit> (+1 if page crossed)
//	<digit> (+1 if branch succeeds +2 if to a new page)
//
// Runs of whitespace are treated as a single space. The word "cycles"
// following the digit is accepted and ignored.
func ParseCycleSpec(spec string) (int, TimingClass, error) {
	s := strings.Join(strings.Fields(spec), " ")
	if s == "" {
		return 0, Fixed, fmt.Errorf("empty cycle specification")
	}

	// the base cycle count is the first field
	f, rest, _ := strings.Cut(s, " ")
	if len(f) != 1 {
		return 0, Fixed, fmt.Errorf("cycle count must be a single digit (%s)", spec)
	}
	base, err := strconv.Atoi(f)
	if err != nil {
		return 0, Fixed, fmt.Errorf("cycle count must be a single digit (%s)", spec)
	}
	if base < 2 || base > 7 {
		return 0, Fixed, fmt.Errorf("cycle count out of range (%d)", base)
	}

	rest = strings.TrimPrefix(rest, "cycles")
	rest = strings.TrimSpace(rest)

	switch rest {
	case "":
		return base, Fixed, nil
	case pageCrossSuffix:
		return base, PageCrossPenalty, nil
	case branchSuffix:
		return base, BranchPenalty, nil
	}

	return 0, Fixed, fmt.Errorf("unrecognised cycle specification (%s)", spec)
}

// FormatCycleSpec is the inverse of ParseCycleSpec().
func FormatCycleSpec(cycles int, timing TimingClass) string {
	switch timing {
	case PageCrossPenalty:
		return fmt.Sprintf("%d %s", cycles, pageCrossSuffix)
	case BranchPenalty:
		return fmt.Sprintf("%d %s", cycles, branchSuffix)
	}
	return fmt.Sprintf("%d", cycles)
}
