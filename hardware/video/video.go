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

// Package video implements the display buffer of the CHIP-8 machine. The
// display is a monochrome grid of 64x32 pixels. It is mutated by exactly two
// opcodes, clear-screen and draw-sprite, and read by whatever frontend is
// presenting the emulation.
package video

// dimensions of the display in pixels.
const (
	Width  = 64
	Height = 32
)

// Video implements the display buffer of the machine.
type Video struct {
	pixels [Width * Height]bool
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Reset the display buffer. Equivalent to Clear() but reads better at the
// machine level.
func (vid *Video) Reset() {
	vid.Clear()
}

// Clear switches every pixel off.
func (vid *Video) Clear() {
	for i := range vid.pixels {
		vid.pixels[i] = false
	}
}

// Pixels returns the display buffer as a flat slice, row by row from the top
// left. The slice aliases the real buffer so callers must treat it as
// read-only and must not retain it across calls to Step().
func (vid *Video) Pixels() []bool {
	return vid.pixels[:]
}

// Pixel returns the state of the pixel at the specified coordinates.
func (vid *Video) Pixel(x, y int) bool {
	return vid.pixels[(y%Height)*Width+(x%Width)]
}

// DrawSprite XORs a sprite onto the display at coordinates (x, y). Sprites
// are eight pixels wide and one byte per row, most significant bit leftmost.
// Coordinates wrap around both axes.
//
// Returns true if any pixel was flipped from on to off. The caller is
// expected to record this in the collision flag.
func (vid *Video) DrawSprite(x, y uint8, sprite []uint8) bool {
	collision := false

	for row, bits := range sprite {
		py := (int(y) + row) % Height
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			px := (int(x) + col) % Width

			idx := py*Width + px
			if vid.pixels[idx] {
				collision = true
			}
			vid.pixels[idx] = !vid.pixels[idx]
		}
	}

	return collision
}
