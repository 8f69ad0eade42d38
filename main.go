// Package main implements the main entry point for a Chip-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/cli"
	"github.com/retroenv/chip8emu/internal/disasm"
	"github.com/retroenv/chip8emu/internal/frontend"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/chip8emu/internal/rom"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := createLogger(opts)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := createLogger(opts)
	printBanner(logger, opts)

	if err := run(ctx, logger, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

// createLogger creates a logger with the log level based on the given options.
func createLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case opts.Debug || opts.Trace:
		cfg.Level = log.DebugLevel
	case opts.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// printBanner prints application version information.
func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("chip8emu",
		log.String("version", buildinfo.Version(version, commit, date)))
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	image, err := rom.LoadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	logger.Debug("ROM loaded",
		log.String("file", opts.Input),
		log.Int("bytes", len(image)))

	if opts.List {
		return writeListing(opts, image)
	}

	vm := chip8.New(chip8.Config{
		Quirks: chip8.Quirks{
			ShiftSourceVY:     opts.QuirkShift,
			JumpAddsVX:        opts.QuirkJump,
			IncrementIOnStore: opts.QuirkIndex,
			WrapSpritePixels:  opts.QuirkWrap,
		},
		Rand: createRand(opts.Seed),
	})
	if err := vm.LoadROM(image); err != nil {
		return fmt.Errorf("loading ROM into memory: %w", err)
	}

	front, err := frontend.New(frontend.Config{
		VM:             vm,
		Logger:         logger,
		CyclesPerFrame: opts.CyclesPerFrame,
		Scale:          opts.Scale,
		Trace:          opts.Trace,
	})
	if err != nil {
		return fmt.Errorf("initializing frontend: %w", err)
	}

	return front.Run(ctx)
}

// createRand returns the randomness source for the rnd instruction. A
// nonzero seed gives reproducible runs.
func createRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// writeListing writes a disassembly listing of the ROM image to the output
// file, or to the console if no name was given.
func writeListing(opts options.Program, image []byte) error {
	var output io.WriteCloser = os.Stdout
	if opts.Output != "" {
		file, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("creating file %s: %w", opts.Output, err)
		}
		output = file
	}

	if err := disasm.Listing(output, image); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}

	if output != os.Stdout {
		if err := output.Close(); err != nil {
			return fmt.Errorf("closing file: %w", err)
		}
	}
	return nil
}
