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

// Package termplay is a frontend that draws the display buffer onto a POSIX
// terminal. It exists for machines without a graphical environment - a
// CHIP-8 display is only 64x32 so any reasonable terminal window can show
// it, one character cell pair per pixel.
//
// The terminal is placed into cbreak mode so keys reach the emulation
// without line buffering. Terminals report key presses but not key
// releases, so a pressed key is held down for a small number of frames and
// then released - crude, but enough for the games of the period.
package termplay

import (
	"fmt"
	"os"
	"strings"

	"github.com/hexworth/gopher8/curated"
	"github.com/hexworth/gopher8/hardware/keypad"
	"github.com/hexworth/gopher8/hardware/video"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// sentinal errors returned by the termplay package.
const TermError = "termplay: %v"

// number of frames a key is considered held after its press is seen.
const keyHoldFrames = 6

// TermPlay is the terminal implementation of the gui.GUI interface.
type TermPlay struct {
	input  *os.File
	output *os.File

	// terminal attributes for restoration on Destroy()
	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// frames remaining before each key is considered released
	hold [keypad.NumKeys]int

	readBuffer []byte

	quit bool
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type.
func NewTermPlay() (*TermPlay, error) {
	scr := &TermPlay{
		input:      os.Stdin,
		output:     os.Stdout,
		readBuffer: make([]byte, 64),
	}

	if err := termios.Tcgetattr(scr.input.Fd(), &scr.canAttr); err != nil {
		return nil, curated.Errorf(TermError, err)
	}

	scr.cbreakAttr = scr.canAttr
	termios.Cfmakecbreak(&scr.cbreakAttr)

	// a zero VMIN/VTIME makes reads return immediately when no input is
	// pending. the Service() function polls rather than blocks
	scr.cbreakAttr.Cc[unix.VMIN] = 0
	scr.cbreakAttr.Cc[unix.VTIME] = 0

	if err := termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &scr.cbreakAttr); err != nil {
		return nil, curated.Errorf(TermError, err)
	}

	// clear screen and hide cursor
	scr.output.WriteString("\x1b[2J\x1b[?25l")

	return scr, nil
}

// Destroy implements the gui.GUI interface. The terminal is returned to
// canonical mode.
func (scr *TermPlay) Destroy() {
	scr.output.WriteString("\x1b[?25h\x1b[2J\x1b[H")
	_ = termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &scr.canAttr)
}

// Service implements the gui.GUI interface.
func (scr *TermPlay) Service() bool {
	for k := range scr.hold {
		if scr.hold[k] > 0 {
			scr.hold[k]--
		}
	}

	n, err := scr.input.Read(scr.readBuffer)
	if err != nil {
		// a read error in cbreak polling mode means the terminal has gone
		// away. treat it as a quit request
		scr.quit = true
		return false
	}

	for _, b := range scr.readBuffer[:n] {
		if b == 0x1b {
			scr.quit = true
			break
		}
		if k, ok := mapKey(b); ok {
			scr.hold[k] = keyHoldFrames
		}
	}

	return !scr.quit
}

// Keys implements the gui.GUI interface.
func (scr *TermPlay) Keys() [keypad.NumKeys]bool {
	var keys [keypad.NumKeys]bool
	for k := range scr.hold {
		keys[k] = scr.hold[k] > 0
	}
	return keys
}

// Render implements the gui.GUI interface. Each display pixel is drawn as a
// pair of character cells, which is roughly square in most terminal fonts.
func (scr *TermPlay) Render(pixels []bool) error {
	s := strings.Builder{}
	s.WriteString("\x1b[H")

	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			if pixels[y*video.Width+x] {
				s.WriteString("██")
			} else {
				s.WriteString("  ")
			}
		}
		s.WriteString("\n")
	}

	if _, err := scr.output.WriteString(s.String()); err != nil {
		return curated.Errorf(TermError, err)
	}

	return nil
}

// mapKey translates a terminal input byte to a keypad key. Same layout as
// the sdlplay frontend: 1234/qwer/asdf/zxcv.
func mapKey(b byte) (uint8, bool) {
	const keyOrder = "x123qweasdzc4rfv"

	i := strings.IndexByte(keyOrder, b)
	if i == -1 {
		return 0, false
	}
	return uint8(i), true
}

// String returns a description of the frontend, useful for log entries.
func (scr *TermPlay) String() string {
	return fmt.Sprintf("termplay: %s", scr.output.Name())
}
