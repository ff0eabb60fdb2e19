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

package stepper

import (
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/m6502/curated"
	"github.com/jetsetilly/m6502/hardware/cpu"
	"github.com/jetsetilly/m6502/hardware/cpu/execution"
	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502/hardware/cpu/registers"
	"github.com/jetsetilly/m6502/hardware/cpu/timing"
	"github.com/jetsetilly/m6502/hardware/memory/cpubus"
	"github.com/jetsetilly/m6502/logger"
	"github.com/jetsetilly/m6502/terminal/easyterm"
)

// Sentinel errors returned by the stepper.
const (
	StepError        = "stepper: %v"
	EmptyReturnStack = "stepper: %s with an empty return stack"
)

// Input is the source of key presses. The easyterm.Terminal type satisfies
// this interface.
type Input interface {
	ReadKey() (byte, error)
}

// Stepper steps through the program in memory.
type Stepper struct {
	dispatcher *cpu.Dispatcher
	mem        cpubus.Memory

	Regs registers.Snapshot

	// return addresses pushed by JSR and BRK
	returns []uint16

	// the number of instructions stepped and the number of cycles they took
	Steps  int
	Cycles int
}

// NewStepper is the preferred method of initialisation for the Stepper type.
func NewStepper(dispatcher *cpu.Dispatcher, mem cpubus.Memory, regs registers.Snapshot) *Stepper {
	return &Stepper{
		dispatcher: dispatcher,
		mem:        mem,
		Regs:       regs,
	}
}

// Peek decodes the instruction at the PC without timing it or moving the PC.
func (stp *Stepper) Peek() (execution.Result, error) {
	r, err := stp.dispatcher.Decode(&stp.Regs, stp.mem)
	if err != nil {
		return r, curated.Errorf(StepError, err)
	}
	return r, nil
}

// Step decodes and times the instruction at the PC and moves the PC to the
// next instruction. The branchTaken argument is ignored for instructions
// that are not branches.
func (stp *Stepper) Step(branchTaken bool) (execution.Result, error) {
	r, err := stp.Peek()
	if err != nil {
		return r, err
	}

	timing.Finalise(&r, branchTaken)

	pc, err := stp.next(r)
	if err != nil {
		return r, curated.Errorf(StepError, err)
	}

	stp.Regs.PC = pc
	stp.Steps++
	stp.Cycles += r.Cycles

	return r, nil
}

// next returns the address of the next instruction to be stepped.
func (stp *Stepper) next(r execution.Result) (uint16, error) {
	switch r.Defn.Effect {
	case instructions.Flow:
		if r.Defn.IsBranch() && !r.BranchSuccess {
			return r.Following(), nil
		}
		return r.Operand.Address, nil

	case instructions.Subroutine:
		if r.Defn.Mnemonic == "JSR" {
			stp.returns = append(stp.returns, r.Following())
			return r.Operand.Address, nil
		}
		return stp.pop(r.Defn.Mnemonic)

	case instructions.Interrupt:
		if r.Defn.Mnemonic == "BRK" {
			// BRK is a single byte instruction but the return address skips
			// the byte following the opcode
			v, err := cpubus.ReadVector(stp.mem, cpubus.IRQ)
			if err != nil {
				return 0, err
			}
			stp.returns = append(stp.returns, r.Address+2)
			return v, nil
		}
		return stp.pop(r.Defn.Mnemonic)
	}

	return r.Following(), nil
}

func (stp *Stepper) pop(mnemonic string) (uint16, error) {
	if len(stp.returns) == 0 {
		return 0, curated.Errorf(EmptyReturnStack, mnemonic)
	}
	pc := stp.returns[len(stp.returns)-1]
	stp.returns = stp.returns[:len(stp.returns)-1]
	return pc, nil
}

// Depth returns the number of entries on the return stack.
func (stp *Stepper) Depth() int {
	return len(stp.returns)
}

// the help message printed when an unrecognised key is pressed.
const help = "keys: [t] branch taken, [n] branch not taken, [space] step, [q] quit\n"

// Run steps through the program under the control of key presses from
// Input. For branch instructions the user is asked whether the branch is
// taken. Run returns when the user quits, when the input is exhausted or when
// an instruction cannot be stepped.
func (stp *Stepper) Run(input Input, output io.Writer) error {
	for {
		r, err := stp.Peek()
		if err != nil {
			return err
		}

		if r.Defn.IsBranch() {
			fmt.Fprintf(output, "%s [t/n] ", r)
		} else {
			fmt.Fprintf(output, "%s ", r)
		}

		var branchTaken bool

	keyLoop:
		for {
			k, err := input.ReadKey()
			if err != nil {
				io.WriteString(output, "\n")
				if errors.Is(err, io.EOF) {
					return nil
				}
				return curated.Errorf(StepError, err)
			}

			switch k {
			case 'q', 'Q', easyterm.KeyCtrlC, easyterm.KeyCtrlD, easyterm.KeyEsc:
				io.WriteString(output, "\n")
				return nil
			case 't', 'T':
				branchTaken = true
				break keyLoop
			case 'n', 'N', easyterm.KeySpace, easyterm.KeyLineFeed, easyterm.KeyCarriageReturn:
				branchTaken = false
				break keyLoop
			default:
				io.WriteString(output, "\n")
				io.WriteString(output, help)
			}
		}

		r, err = stp.Step(branchTaken)
		if err != nil {
			io.WriteString(output, "\n")
			return err
		}

		fmt.Fprintf(output, "\r%s\n", r)
		logger.Logf(logger.Allow, "stepper", "%s", stp.Regs)
	}
}
