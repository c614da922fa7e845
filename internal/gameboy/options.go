package gameboy

import (
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Opt is a function that configures a GameBoy instance before its
// cartridge is loaded.
type Opt func(gb *GameBoy)

// WithBootROM sets the boot ROM mapped over 0x0000 - 0x00FF until it
// is disabled. The image must be exactly 256 bytes, NewGameBoy
// reports any other length. Without a boot ROM, 256 zero bytes are
// mapped instead.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		gb.bootImage = rom
	}
}

// SkipBoot disables the boot ROM before the first instruction, and
// starts execution at the cartridge entry point 0x0100 with the
// registers set to the values upon completion of the boot ROM.
func SkipBoot() Opt {
	return func(gb *GameBoy) {
		gb.skipBoot = true
	}
}

// AsModel sets the model whose boot ROM completion state SkipBoot
// emulates.
func AsModel(m types.Model) Opt {
	return func(gb *GameBoy) {
		gb.model = m
	}
}

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithProfiling counts every executed instruction by opcode, see
// GameBoy.Profile.
func WithProfiling() Opt {
	return func(gb *GameBoy) {
		gb.profile = &Profile{}
	}
}
