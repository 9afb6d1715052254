// Package main implements the main entry point for a CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/frontend/beeper"
	"github.com/retroenv/retrochip8/internal/frontend/gl"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func init() {
	// the OpenGL frontend requires all window calls on the main thread
	runtime.LockOSThread()
}

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(logger, opts)

	if err := run(ctx, logger, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation stopped")
			return
		}
		logger.Fatal("Emulation failed", log.Err(err))
	}
}

// printBanner prints application version information
func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))
}

// run loads the ROM, assembles machine, frontend and audio and executes
// the emulation loop until it stops.
func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	program, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	cfg := chip8.Config{
		Quirks: chip8.Quirks{
			ShiftInPlace: opts.ShiftInPlace,
			KeepIndex:    opts.KeepIndex,
		},
	}
	if opts.Debug {
		cfg.Logger = logger
	}

	machine := chip8.New(cfg)
	if err := machine.LoadProgram(program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	logger.Info("Loaded ROM",
		log.String("file", opts.Input),
		log.Int("size", len(program)),
	)

	front, err := createFrontend(opts)
	if err != nil {
		return fmt.Errorf("creating frontend: %w", err)
	}
	defer func() { _ = front.Close() }()

	var audio emulator.Beeper
	if !opts.NoSound {
		b, err := beeper.New()
		if err != nil {
			logger.Warn("Audio unavailable, continuing without sound", log.Err(err))
		} else {
			defer func() { _ = b.Close() }()
			audio = b
		}
	}

	emu := emulator.New(logger, machine, front, audio, opts.InstructionRate)
	return emu.Run(ctx)
}

// createFrontend creates the renderer backend selected on the command line.
func createFrontend(opts options.Program) (frontend.Frontend, error) {
	switch opts.Frontend {
	case options.FrontendGL:
		return gl.New()
	default:
		return terminal.New()
	}
}
