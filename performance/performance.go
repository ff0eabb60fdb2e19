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

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/m6502/hardware/cpu"
	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502/hardware/cpu/registers"
	"github.com/jetsetilly/m6502/hardware/memory/flat"
	"github.com/jetsetilly/m6502/hardware/preferences"
	"github.com/jetsetilly/m6502/translate"
)

// the number of instructions decoded between checks of the stop channel.
// checking the channel is relatively expensive
const performanceBrake = 1000

// the address at which the benchmark program is loaded.
const programOrigin = 0x0200

// Program returns a sequence of every instruction in the table, in opcode
// order. Each operand byte has the value 0xf0 so that indexed addressing
// with the index registers used by Check() crosses page boundaries and
// branches are backwards.
func Program(table *instructions.Table) []uint8 {
	var program []uint8
	table.Each(func(defn *instructions.Definition) {
		program = append(program, defn.OpCode)
		for i := 0; i < defn.OperandBytes(); i++ {
			program = append(program, 0xf0)
		}
	})
	return program
}

// Tally is the outcome of a call to Check().
type Tally struct {
	Workers      int
	Instructions int
	Cycles       int
	Duration     time.Duration
}

func (t Tally) String() string {
	ips, speed := CalcRate(t.Instructions, t.Cycles, t.Duration.Seconds())
	return translate.From("%d instructions (%d cycles) in %.2f seconds with %d workers: %.0f instructions per second, %.1fx a 1MHz 6502",
		t.Instructions, t.Cycles, t.Duration.Seconds(), t.Workers, ips, speed)
}

// Check the performance of the dispatcher. Each worker has its own
// Dispatcher sharing the instruction table. Decoding continues for the
// specified duration.
//
// The duration is in the format accepted by time.ParseDuration().
func Check(output io.Writer, profile Profile, table *instructions.Table, prefs *preferences.Preferences, workers int, duration string) (Tally, error) {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return Tally{}, fmt.Errorf("performance: %w", err)
	}
	if dur <= 0 {
		return Tally{}, fmt.Errorf("performance: duration must be positive")
	}
	if workers < 1 {
		return Tally{}, fmt.Errorf("performance: at least one worker is required")
	}

	program := Program(table)
	mem := flat.NewMemory()
	mem.Load(programOrigin, program)
	end := uint16(programOrigin + len(program))

	var numInstructions atomic.Int64
	var numCycles atomic.Int64

	runner := func() error {
		// closed when duration has elapsed
		stop := make(chan bool)
		time.AfterFunc(dur, func() {
			close(stop)
		})

		errs := make([]error, workers)

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()

				d := cpu.NewDispatcher(table, prefs)
				regs := registers.NewSnapshot()
				regs.X = 0x80
				regs.Y = 0x80
				regs.PC = programOrigin

				var n, c int
				defer func() {
					numInstructions.Add(int64(n))
					numCycles.Add(int64(c))
				}()

				brake := 0
				taken := false

				for {
					brake++
					if brake >= performanceBrake {
						brake = 0
						select {
						case <-stop:
							return
						default:
						}
					}

					r, err := d.DecodeAndTime(&regs, mem, taken)
					if err != nil {
						errs[w] = err
						return
					}

					n++
					c += r.Cycles
					taken = !taken

					regs.PC = r.Following()
					if regs.PC >= end {
						regs.PC = programOrigin
					}
				}
			}(w)
		}
		wg.Wait()

		for _, err := range errs {
			if err != nil {
				return err
			}
		}

		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return Tally{}, fmt.Errorf("performance: %w", err)
	}

	tally := Tally{
		Workers:      workers,
		Instructions: int(numInstructions.Load()),
		Cycles:       int(numCycles.Load()),
		Duration:     dur,
	}

	if output != nil {
		fmt.Fprintln(output, tally)
	}

	return tally, nil
}
