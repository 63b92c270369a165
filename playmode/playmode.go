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

// Package playmode is the glue between a Chip8 machine and a frontend. It
// drives the machine at the fixed 60Hz frame rate, feeding the frontend's
// keypad state in and the display and buzzer state out.
package playmode

import (
	"github.com/hexworth/gopher8/gui"
	"github.com/hexworth/gopher8/hardware"
	"github.com/hexworth/gopher8/logger"
	"github.com/hexworth/gopher8/performance/limiter"
	"github.com/hexworth/gopher8/romloader"
)

// Play sets up and runs the emulation until the frontend requests a quit.
//
// If fpsCap is false the emulation runs as fast as the host allows, which
// is only really useful when checking performance.
//
// A machine error (a runaway program, say) does not end the session. The
// error is logged, the machine stops stepping and the frontend keeps
// showing the final frame until the user quits.
func Play(scr gui.GUI, mixer gui.AudioMixer, cartload romloader.Loader, instructionsPerFrame int, fpsCap bool) error {
	ch8 := hardware.NewChip8()

	if err := ch8.AttachROM(cartload); err != nil {
		return err
	}

	lmtr := limiter.NewFPSLimiter(60)

	// errors from the frontend are kept separate from machine errors. a
	// frontend error ends the session, a machine error only halts stepping
	var scrErr error

	frame := func() (bool, error) {
		if mixer != nil {
			if scrErr = mixer.SetBuzzer(ch8.SoundActive()); scrErr != nil {
				return false, nil
			}
		}

		if scrErr = scr.Render(ch8.Display()); scrErr != nil {
			return false, nil
		}

		if !scr.Service() {
			return false, nil
		}

		ch8.SetKeys(scr.Keys())

		if fpsCap {
			lmtr.Wait()
		}

		return true, nil
	}

	err := ch8.Run(instructionsPerFrame, frame)
	if err == nil || scrErr != nil {
		return endMixing(mixer, scrErr)
	}

	// the machine has stopped but the frontend lives on. keep servicing it
	// so the window remains responsive and the final frame visible
	logger.Logf("playmode", "machine halted: %v", err)

	for {
		cont, _ := frame()
		if !cont {
			return endMixing(mixer, scrErr)
		}
	}
}

func endMixing(mixer gui.AudioMixer, err error) error {
	if mixer == nil {
		return err
	}
	if merr := mixer.EndMixing(); merr != nil && err == nil {
		return merr
	}
	return err
}
