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

// Package performance measures the throughput of the instruction dispatcher.
//
// Check() runs one or more dispatchers for a fixed duration over a program
// containing every instruction in the table and reports the number of
// instructions decoded and timed. It will optionally generate profiling
// information.
//
// RunProfiler() can be used to generate the various profile types. On its own
// it does not limit the amount of time the profiled function runs for.
//
// CalcRate() calculates the instructions-per-second and the speed relative to
// a 1MHz 6502.
package performance
