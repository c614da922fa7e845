// Package gameboy provides an emulation session of a Nintendo Game Boy
// core: a CPU and an MMU wired to a single cartridge, driven one
// instruction at a time.
package gameboy

import (
	"context"
	"errors"

	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// ErrNotLoaded is returned when driving a GameBoy that was not
// created by NewGameBoy.
var ErrNotLoaded = errors.New("gameboy: no cartridge loaded")

// contextCheckInterval is the number of instructions Run executes
// between checks of its context.
const contextCheckInterval = 4096

// GameBoy represents a single emulation session. It owns its CPU,
// MMU and cartridge, none of which are shared with another session,
// so independent sessions may run on separate goroutines. A single
// session is not safe for concurrent use.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU

	log.Logger

	cart *cartridge.Cartridge

	bootImage []byte
	skipBoot  bool
	model     types.Model
	profile   *Profile

	status Status
	fault  error

	machineCycles uint64
	clockCycles   uint64
}

// NewGameBoy returns a new GameBoy with the given cartridge image
// installed. The image is copied, so the caller may reuse rom. An
// image shorter than cartridge.MinimumSize is reported as a
// *cartridge.LoadError, and no session is created.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	cart, err := cartridge.NewCartridge(rom)
	if err != nil {
		return nil, err
	}

	bootROM := boot.Empty()
	if g.bootImage != nil {
		if bootROM, err = boot.LoadBootROM(g.bootImage); err != nil {
			return nil, err
		}
		g.Infof("boot ROM: %s (%s)", bootROM.Model(), bootROM.Checksum())
	}

	g.MMU = mmu.NewMMU(bootROM)
	g.MMU.Log = g.Logger
	g.CPU = cpu.NewCPU(g.MMU)
	g.install(cart)

	if g.skipBoot {
		if err := g.MMU.SetBootActive(false); err != nil {
			return nil, err
		}
		regs := types.ModelRegisters[g.model]
		g.CPU.A, g.CPU.F = regs[0], regs[1]
		g.CPU.B, g.CPU.C = regs[2], regs[3]
		g.CPU.D, g.CPU.E = regs[4], regs[5]
		g.CPU.H, g.CPU.L = regs[6], regs[7]
		g.CPU.SP = 0xFFFE
		g.CPU.PC = 0x0100
	}

	g.status = Loaded
	return g, nil
}

// install maps the banks of cart into the MMU, replacing any
// previously installed cartridge.
func (g *GameBoy) install(cart *cartridge.Cartridge) {
	g.MMU.InstallCartridge(cart.Bank(0), cart.Bank(1))
	g.cart = cart

	header := cart.Header()
	g.Infof("loaded cartridge %q (%016x, %d bytes, %s, header checksum valid: %v)",
		cart.Title(), cart.Fingerprint(), cart.Size(), header.CartridgeType, header.ChecksumValid())
}

// Reload replaces the installed cartridge with the given image. CPU
// state and cycle totals are kept. If the image cannot be loaded,
// the installed cartridge is left in place.
func (g *GameBoy) Reload(rom []byte) error {
	if g.MMU == nil {
		return ErrNotLoaded
	}

	cart, err := cartridge.NewCartridge(rom)
	if err != nil {
		return err
	}
	if cart.Fingerprint() == g.cart.Fingerprint() {
		g.Debugf("reloading identical cartridge %016x", cart.Fingerprint())
	}
	g.install(cart)

	return nil
}

// RunCycle executes a single instruction and adds its cost to the
// running totals. The first error halts the session: it is logged,
// the session becomes Errored and every later call returns the same
// error without executing anything.
func (g *GameBoy) RunCycle() error {
	if g.fault != nil {
		return g.fault
	}
	if g.status == Unloaded {
		return ErrNotLoaded
	}

	halted := g.CPU.Halted()
	m, t, err := g.CPU.Step()
	if err != nil {
		g.fault = err
		g.status = Errored
		g.Errorf("session halted at PC 0x%04X: %v", g.CPU.PC, err)
		return err
	}

	g.status = Running
	g.machineCycles += uint64(m)
	g.clockCycles += uint64(t)
	if g.profile != nil && !halted {
		g.profile.record(g.CPU.LastOpcode())
	}

	return nil
}

// Run calls RunCycle until at least limit machine cycles have
// elapsed in total (0 runs without limit), ctx is done, or the
// session faults.
func (g *GameBoy) Run(ctx context.Context, limit uint64) error {
	for i := 0; ; i++ {
		if i%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if limit != 0 && g.machineCycles >= limit {
			return nil
		}
		if err := g.RunCycle(); err != nil {
			return err
		}
	}
}

// Cycles returns the machine and clock cycles elapsed in total.
func (g *GameBoy) Cycles() (machine, clock uint64) {
	return g.machineCycles, g.clockCycles
}

// Status returns the status of the session.
func (g *GameBoy) Status() Status {
	return g.status
}

// Fault returns the error that halted the session, if any.
func (g *GameBoy) Fault() error {
	return g.fault
}

// BootActive reports whether the boot ROM is still mapped.
func (g *GameBoy) BootActive() bool {
	return g.MMU != nil && g.MMU.BootActive()
}

// Cartridge returns the installed cartridge.
func (g *GameBoy) Cartridge() *cartridge.Cartridge {
	return g.cart
}

// Profile returns the instruction counts collected so far, or nil
// when profiling was not enabled with WithProfiling.
func (g *GameBoy) Profile() *Profile {
	return g.profile
}
