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

// Package gui defines the interfaces between the emulated machine and the
// collaborators that present it to the user. Implementations live in the
// sub-packages: sdlplay is the normal windowed frontend and termplay draws
// to a POSIX terminal.
//
// The machine core knows nothing of these interfaces. It exposes its display
// buffer and sound state for polling, and accepts key state; the playmode
// package is what connects the two sides, once per frame.
package gui

import (
	"github.com/hexworth/gopher8/hardware/keypad"
)

// GUI implementations present the display buffer to the user and gather
// input for the machine's keypad.
type GUI interface {
	// Service pending user-input events. Must be called every frame, from
	// the main thread, whether or not the emulation is advancing. Returns
	// false when the user has asked to quit.
	Service() bool

	// Render the display buffer. The pixels argument is row by row from
	// the top left, as returned by the machine's Display() function.
	Render(pixels []bool) error

	// Keys returns the current keypad snapshot, mapped from whatever
	// physical input the frontend has.
	Keys() [keypad.NumKeys]bool

	// Destroy releases any resources held by the frontend.
	Destroy()
}

// AudioMixer implementations receive the state of the machine's buzzer once
// per frame. The machine has no waveform of its own - a tone plays while the
// sound timer is running and that is the extent of it.
type AudioMixer interface {
	SetBuzzer(on bool) error

	// EndMixing is called once, when the emulation has finished.
	EndMixing() error
}
