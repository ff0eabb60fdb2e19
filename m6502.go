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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/jetsetilly/m6502/disassembly"
	"github.com/jetsetilly/m6502/expression"
	"github.com/jetsetilly/m6502/hardware/cpu"
	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502/hardware/cpu/registers"
	"github.com/jetsetilly/m6502/hardware/memory/cpubus"
	"github.com/jetsetilly/m6502/hardware/memory/flat"
	"github.com/jetsetilly/m6502/hardware/preferences"
	"github.com/jetsetilly/m6502/logger"
	"github.com/jetsetilly/m6502/modalflag"
	"github.com/jetsetilly/m6502/performance"
	"github.com/jetsetilly/m6502/prefs"
	"github.com/jetsetilly/m6502/skeleton"
	"github.com/jetsetilly/m6502/statsview"
	"github.com/jetsetilly/m6502/stepper"
	"github.com/jetsetilly/m6502/terminal/easyterm"
	"github.com/jetsetilly/m6502/translate"
	"github.com/jetsetilly/m6502/version"
)

// the default origin for program images.
const defaultOrigin = "0x0600"

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. Returns the value
// to be used with os.Exit().
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("TABLE", "DECODE", "DISASM", "STEP", "BENCH", "SKELETON", "VERSION")

	cmdPrefs := md.AddString("prefs", "", "preferences for this run (eg. \"cpu.indirectjmpbug::false\")")
	log := md.AddBool("log", false, "echo log to stderr")
	lang := md.AddString("lang", "", "language tag used to format numbers (eg. \"en-GB\")")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stderr), false)
	}

	if *lang != "" {
		if err := translate.SetLanguage(*lang); err != nil {
			fmt.Fprintf(output, "* error: %v\n", err)
			return 10
		}
	}

	if *cmdPrefs != "" {
		prefs.PushCommandLineStack(*cmdPrefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "m6502", "unused command line preferences: %s", unused)
			}
		}()
	}

	switch md.Mode() {
	case "TABLE":
		err = table(md)

	case "DECODE":
		err = decode(md)

	case "DISASM":
		err = disasm(md)

	case "STEP":
		err = step(md)

	case "BENCH":
		err = bench(md)

	case "SKELETON":
		err = generate(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// the dispatcher used by all modes. preferences are loaded from disk with any
// preferences given on the command line applied.
func newDispatcher() (*cpu.Dispatcher, *preferences.Preferences, error) {
	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, nil, err
	}
	return cpu.NewDispatcher(instructions.Definitions(), p), p, nil
}

// the program image named by the first remaining argument.
func loadImage(md *modalflag.Modes, origin string) (*flat.Image, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("program image required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	org, err := expression.EvaluateUint16(origin, nil)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return nil, err
	}

	return flat.NewImage(org, data)
}

func table(md *modalflag.Modes) error {
	md.NewMode()

	missing := md.AddBool("missing", false, "list the opcodes that are not in the table")
	viz := md.AddString("memviz", "", "write the structure of the table to file as a graphviz graph")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	tab := instructions.Definitions()

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		memviz.Map(f, tab)
		return f.Close()
	}

	if *missing {
		for _, opcode := range tab.Missing() {
			fmt.Fprintf(md.Output, "%#02x\n", opcode)
		}
		fmt.Fprintln(md.Output, translate.From("%d opcodes missing", len(tab.Missing())))
		return nil
	}

	tab.Each(func(defn *instructions.Definition) {
		fmt.Fprintln(md.Output, defn)
	})
	fmt.Fprintln(md.Output, translate.From("%d opcodes defined", tab.Count()))

	return nil
}

func decode(md *modalflag.Modes) error {
	md.NewMode()

	regsDesc := md.AddString("regs", "pc=0x0600", "register values (eg. \"pc=0x0600 x=1\")")
	memDesc := md.AddString("mem", "", "memory values (eg. \"0x0600=0xbd,0xff,0x20\")")
	taken := md.AddBool("taken", false, "whether a branch instruction takes the branch")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	regs, err := registers.ParseSnapshot(*regsDesc)
	if err != nil {
		return err
	}

	mem := flat.NewMemory()
	_, err = mem.Assign(*memDesc)
	if err != nil {
		return err
	}

	dispatcher, _, err := newDispatcher()
	if err != nil {
		return err
	}

	r, err := dispatcher.DecodeAndTime(&regs, mem, *taken)
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output, regs)
	fmt.Fprintln(md.Output, r)
	fmt.Fprintln(md.Output, r.Operand)

	return r.IsValid()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddString("origin", defaultOrigin, "the address at which the program image is loaded")
	start := md.AddString("start", "", "address to start disassembly (default is the origin)")
	end := md.AddString("end", "", "address to end disassembly (default is the end of the image)")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	cycles := md.AddBool("cycles", true, "include cycles in disassembly")
	flow := md.AddBool("flow", false, "include flow information in disassembly")
	grep := md.AddString("grep", "", "only show entries that contain the string")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	img, err := loadImage(md, *origin)
	if err != nil {
		return err
	}

	s := img.Origin()
	if *start != "" {
		s, err = expression.EvaluateUint16(*start, nil)
		if err != nil {
			return err
		}
	}

	e := img.Memtop()
	if *end != "" {
		e, err = expression.EvaluateUint16(*end, nil)
		if err != nil {
			return err
		}
	}

	dispatcher, _, err := newDispatcher()
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromImage(img, dispatcher, s, e)
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
		Cycles:   *cycles,
		FlowInfo: *flow,
	}

	if f, ok := md.Output.(*os.File); ok {
		attr.Colour = term.IsTerminal(int(f.Fd()))
	}

	if *grep != "" {
		dsm.Grep(md.Output, attr, disassembly.GrepAll, *grep, false)
		return nil
	}

	return dsm.Write(md.Output, attr)
}

func step(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddString("origin", defaultOrigin, "the address at which the program image is loaded")
	regsDesc := md.AddString("regs", "", "register values (default is the PC at the origin)")
	reset := md.AddBool("reset", false, "start at the address in the reset vector")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	img, err := loadImage(md, *origin)
	if err != nil {
		return err
	}

	mem := flat.NewMemory()
	mem.LoadImage(img)

	regs := registers.NewSnapshot()
	regs.PC = img.Origin()
	if *regsDesc != "" {
		regs, err = registers.ParseSnapshot(*regsDesc)
		if err != nil {
			return err
		}
	}

	if *reset {
		regs.PC, err = cpubus.ReadVector(mem, cpubus.Reset)
		if err != nil {
			return err
		}
	}

	dispatcher, _, err := newDispatcher()
	if err != nil {
		return err
	}

	var trm easyterm.Terminal
	err = trm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer trm.CleanUp()

	trm.CBreakMode()
	_ = trm.Flush()

	stp := stepper.NewStepper(dispatcher, mem, regs)
	err = stp.Run(&trm, md.Output)

	fmt.Fprintln(md.Output, translate.From("%d instructions in %d cycles", stp.Steps, stp.Cycles))

	return err
}

func bench(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	workers := md.AddInt("workers", runtime.NumCPU(), "number of dispatchers to run concurrently")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM, TRACE, ALL (comma sep)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	if *stats {
		stop := statsview.Launch(md.Output)
		defer stop()
	}

	_, cpuPrefs, err := newDispatcher()
	if err != nil {
		return err
	}

	_, err = performance.Check(md.Output, prf, instructions.Definitions(), cpuPrefs, *workers, *duration)
	return err
}

func generate(md *modalflag.Modes) error {
	md.NewMode()

	pkg := md.AddString("package", skeleton.DefaultOptions.Package, "package name of the generated source")
	typ := md.AddString("type", skeleton.DefaultOptions.Type, "name of the executor type")
	out := md.AddString("out", "", "file to write the source to (default is stdout)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	opts := skeleton.Options{
		Package: *pkg,
		Type:    *typ,
	}

	if *out == "" {
		return skeleton.Generate(md.Output, instructions.Definitions(), opts)
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}

	err = skeleton.Generate(f, instructions.Definitions(), opts)
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, ver)
	if *revision {
		if rev == "" {
			rev = "no revision information"
		}
		fmt.Fprintln(md.Output, rev)
	}

	return nil
}
