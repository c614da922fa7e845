package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/internal/gameboy"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
	"github.com/thelolagemann/dmgcore/pkg/report"
	"github.com/thelolagemann/dmgcore/pkg/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	romFile := flag.String("rom", "", "The rom file to load (.gb, optionally .gz, .zip or .7z)")
	bootROM := flag.String("boot", "", "The boot rom file to load")
	skipBoot := flag.Bool("skip-boot", false, "Start at 0x0100 with the boot rom disabled")
	asModel := flag.String("model", "dmg", "The model whose post boot state -skip-boot emulates. Can be dmg0, dmg, mgb, sgb or sgb2")
	cycles := flag.Uint64("cycles", 0, "The number of machine cycles to run for, 0 runs until interrupted")
	logLevel := flag.String("log-level", "info", "The log level. Can be debug, info, warn or error")
	histogram := flag.String("histogram", "", "Write a PNG histogram of the executed opcodes to this file")
	top := flag.Int("top", 32, "The number of opcodes to include in the histogram")
	pprof := flag.String("pprof", "", "Serve pprof on this address, e.g. localhost:6060")
	stats := flag.String("statsview", "", "Serve live runtime statistics on this address, e.g. localhost:12600")
	flag.Parse()

	logger, err := log.NewWithLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if *romFile == "" {
		flag.Usage()
		return 2
	}

	if *pprof != "" {
		go func() {
			if err := http.ListenAndServe(*pprof, nil); err != nil {
				logger.Warnf("pprof: %v", err)
			}
		}()
	}

	if *stats != "" {
		launchStatsview(*stats, logger)
	}

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("loading rom: %v", err)
		return 1
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if *bootROM != "" {
		boot, err := utils.LoadFile(*bootROM)
		if err != nil {
			logger.Errorf("loading boot rom: %v", err)
			return 1
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}
	if *skipBoot {
		model := types.StringToModel(*asModel)
		if model == types.Unset {
			logger.Warnf("unknown model %q, using %s", *asModel, types.DMGABC)
			model = types.DMGABC
		}
		opts = append(opts, gameboy.SkipBoot(), gameboy.AsModel(model))
	}
	if *histogram != "" {
		opts = append(opts, gameboy.WithProfiling())
	}

	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		logger.Errorf("%v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	runErr := gb.Run(ctx, *cycles)
	machine, clock := gb.Cycles()
	elapsed := time.Since(start)
	logger.Infof("ran %d machine cycles (%d clock cycles) in %s, %.2fx speed, status %s",
		machine, clock, elapsed.Round(time.Millisecond), speed(clock, elapsed), gb.Status())

	if *histogram != "" {
		if err := writeHistograms(*histogram, gb.Profile(), utils.Clamp(1, *top, 256)); err != nil {
			logger.Errorf("writing histogram: %v", err)
		}
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		// the session has already logged the fault
		return 1
	}
	return 0
}

// speed returns the emulated time over the elapsed wall time.
func speed(clock uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(clock) / cpu.ClockSpeed / elapsed.Seconds()
}

// writeHistograms writes the base opcode histogram to path, and the
// CB prefixed one next to it when any were executed.
func writeHistograms(path string, p *gameboy.Profile, top int) error {
	if err := writeHistogram(path, "opcodes", p.Base, func(op uint8) string {
		return cpu.InstructionSet[op].Name()
	}, top); err != nil {
		return err
	}

	ext := filepath.Ext(path)
	cbPath := strings.TrimSuffix(path, ext) + "_cb" + ext
	err := writeHistogram(cbPath, "CB opcodes", p.CB, func(op uint8) string {
		return cpu.InstructionSetCB[op].Name()
	}, top)
	if errors.Is(err, report.ErrNoData) {
		return nil
	}
	return err
}

func writeHistogram(path, title string, counts [256]uint64, name func(uint8) string, top int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = report.WriteOpcodeHistogram(f, title, counts, name, top)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if errors.Is(err, report.ErrNoData) {
		os.Remove(path)
	}
	return err
}
