// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package dmgcore

import (
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"dmgcore/hardware/cartridge"
	"dmgcore/hardware/cpu"
	"dmgcore/hardware/memory"
	"dmgcore/internal/dmglog"
)

const bootROMSize = 0x100

// Console is the main container for the emulated DMG: the CPU, the address
// bus and everything it dispatches to, and the selected system mode.
type Console struct {
	Mode SystemMode
	CPU  *cpu.CPU
	Bus  *memory.Bus

	log *logrus.Entry

	// Hash of the cartridge ROM currently attached, for diagnostics only.
	CartHash string
}

// New constructs a Console for the given system mode with an empty
// cartridge attached, so every cartridge read returns 0xFF until
// AttachCartridge loads a ROM image.
func New(mode SystemMode, log *logrus.Logger) (*Console, error) {
	init, fault := initialRegisters(mode)
	if fault != nil {
		return nil, fault
	}

	if log == nil {
		log = dmglog.New()
	}

	c := cpu.New(cpu.InitialState{
		A: init.A, F: init.F, B: init.B, C: init.C,
		D: init.D, E: init.E, H: init.H, L: init.L,
		SP: init.SP, PC: init.PC,
	})

	cons := &Console{
		Mode: mode,
		CPU:  c,
		log:  dmglog.Component(log, "console"),
	}
	cons.Bus = memory.New(c, cartridge.New(nil), mode.isColorGBC())

	return cons, nil
}

// AttachCartridge loads the ROM image at filename and wires it onto a newly
// built bus. The previous bus is discarded with everything on it: the old
// cartridge, any attached boot ROM, and all WRAM, HRAM, PPU and APU state.
func (cons *Console) AttachCartridge(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading cartridge: %w", err)
	}

	hash := sha1.Sum(data)
	cons.CartHash = fmt.Sprintf("%x", hash)
	cons.log.WithFields(logrus.Fields{
		"filename": filename,
		"size":     len(data),
		"sha1":     cons.CartHash,
	}).Info("attached cartridge")

	cons.Bus = memory.New(cons.CPU, cartridge.New(data), cons.Mode.isColorGBC())
	return nil
}

// AttachBootROM loads a 256-byte boot ROM image to overlay the cartridge's
// first page until the ROM disables it via a write to 0xFF50.
func (cons *Console) AttachBootROM(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading boot ROM: %w", err)
	}
	if len(data) < bootROMSize {
		return fmt.Errorf("boot ROM %q is %d bytes, want at least %d", filename, len(data), bootROMSize)
	}
	cons.Bus.SetBootROM(data)
	cons.log.WithField("filename", filename).Info("attached boot ROM")
	return nil
}

// Reset restores the CPU to its power-on state for the console's system
// mode, discarding any in-flight instruction. The bus's RAM and register
// state (WRAM, PPU, APU) are left as-is, matching real hardware: only the
// CPU and its IO registers react to a reset line.
func (cons *Console) Reset() error {
	init, fault := initialRegisters(cons.Mode)
	if fault != nil {
		return fault
	}
	cons.CPU.Reset(cpu.InitialState{
		A: init.A, F: init.F, B: init.B, C: init.C,
		D: init.D, E: init.E, H: init.H, L: init.L,
		SP: init.SP, PC: init.PC,
	})
	cons.log.Info("reset")
	return nil
}
