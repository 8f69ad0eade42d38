// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/chip8emu/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	if err := validateOptions(opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8emu [options] <ROM file to run>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions checks option values for usable ranges
func validateOptions(opts options.Program) error {
	if opts.CyclesPerFrame < 1 {
		return fmt.Errorf("cycles per frame must be at least 1, got %d", opts.CyclesPerFrame)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("window scale must be at least 1, got %d", opts.Scale)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the listing output file, printed on console if no name given")
	flags.BoolVar(&opts.List, "list", false, "write a disassembly listing of the ROM instead of running it")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction (implies -debug)")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.IntVar(&opts.CyclesPerFrame, "cycles", 11, "instructions to execute per 60 Hz frame")
	flags.IntVar(&opts.Scale, "scale", 10, "window scale factor for the 64x32 display")
	flags.Int64Var(&opts.Seed, "seed", 0, "random number seed, 0 uses a time-based seed")

	flags.BoolVar(&opts.QuirkShift, "quirk-shift", false, "shift instructions read Vy instead of Vx")
	flags.BoolVar(&opts.QuirkJump, "quirk-jump", false, "jp V0 uses Vx selected by the address high nibble")
	flags.BoolVar(&opts.QuirkIndex, "quirk-index", false, "register block copies leave I past the last byte")
	flags.BoolVar(&opts.QuirkWrap, "quirk-wrap", false, "sprite pixels wrap around the display edges")
}
