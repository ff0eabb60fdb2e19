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

package performance

// ClockSpeed is the clock speed of the reference 6502 in cycles per second.
const ClockSpeed = 1_000_000

// CalcRate takes the number of instructions, the number of cycles those
// instructions took and the duration (in seconds) and returns the
// instructions-per-second and the speed of the dispatcher relative to a
// 6502 running at ClockSpeed.
func CalcRate(numInstructions int, numCycles int, duration float64) (ips float64, speed float64) {
	if duration <= 0 {
		return 0, 0
	}
	ips = float64(numInstructions) / duration
	speed = float64(numCycles) / (duration * ClockSpeed)
	return ips, speed
}
