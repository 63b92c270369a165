// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package hardware

import (
	"github.com/hexworth/gopher8/hardware/cpu"
	"github.com/hexworth/gopher8/hardware/keypad"
	"github.com/hexworth/gopher8/hardware/memory"
	"github.com/hexworth/gopher8/hardware/video"
	"github.com/hexworth/gopher8/logger"
	"github.com/hexworth/gopher8/romloader"
)

// Chip8 is the main container for the emulated components of the machine.
type Chip8 struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Video  *video.Video
	Keypad *keypad.Keypad
}

// NewChip8 creates a new machine and everything associated with it. It is
// used for all aspects of emulation: play mode, performance measurement and
// tests.
func NewChip8() *Chip8 {
	ch8 := &Chip8{
		Mem:    memory.NewMemory(),
		Video:  video.NewVideo(),
		Keypad: keypad.NewKeypad(),
	}
	ch8.CPU = cpu.NewCPU(ch8.Mem, ch8.Video, ch8.Keypad)
	return ch8
}

// AttachROM loads a program into the machine's memory and resets the
// machine, ready for the first call to Step().
func (ch8 *Chip8) AttachROM(ld romloader.Loader) error {
	if err := ld.Load(); err != nil {
		return err
	}

	ch8.Reset()

	if err := ch8.Mem.Load(ld.Data); err != nil {
		return err
	}

	logger.Logf("chip8", "%s (%d bytes) attached", ld.ShortName(), len(ld.Data))

	return nil
}

// Reset the machine. Memory is returned to its pristine state (font in the
// reserved area, program space zeroed), so a ROM must be attached again
// before stepping.
func (ch8 *Chip8) Reset() {
	ch8.Mem.Reset()
	ch8.Video.Reset()
	ch8.Keypad.Reset()
	ch8.CPU.Reset()
}

// Step the emulation one instruction.
func (ch8 *Chip8) Step() error {
	return ch8.CPU.ExecuteInstruction()
}

// TickTimers advances the delay and sound timers. Must be called once per
// frame, at the fixed frame rate, regardless of how many instructions have
// been stepped in that frame.
func (ch8 *Chip8) TickTimers() {
	ch8.CPU.TickTimers()
}

// SetKeys replaces the keypad state with a new snapshot. Called once per
// frame before that frame's instructions are stepped.
func (ch8 *Chip8) SetKeys(state [keypad.NumKeys]bool) {
	ch8.Keypad.SetKeys(state)
}

// Display returns the display buffer, row by row from the top left. The
// returned slice must be treated as read-only.
func (ch8 *Chip8) Display() []bool {
	return ch8.Video.Pixels()
}

// SoundActive returns true while the sound timer is running. The audio
// collaborator should play a tone for as long as this is true.
func (ch8 *Chip8) SoundActive() bool {
	return ch8.CPU.SoundTimer > 0
}
