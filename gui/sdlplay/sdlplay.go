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

// Package sdlplay is the windowed SDL frontend. Each display pixel is drawn
// as a filled rectangle, scaled up by a user-selectable factor.
package sdlplay

import (
	"github.com/hexworth/gopher8/curated"
	"github.com/hexworth/gopher8/hardware/keypad"
	"github.com/hexworth/gopher8/hardware/video"

	"github.com/veandco/go-sdl2/sdl"
)

// sentinal errors returned by the sdlplay package.
const SDLError = "sdlplay: %v"

// SdlPlay is the playmode implementation of the gui.GUI interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// the amount of scaling applied to each pixel
	scale int32

	// current keypad state, updated by Service()
	keys [keypad.NumKeys]bool

	quit bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay(title string, scale int) (*SdlPlay, error) {
	scr := &SdlPlay{scale: int32(scale)}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(video.Width)*scr.scale, int32(video.Height)*scr.scale,
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	return scr, nil
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy() {
	if scr.renderer != nil {
		scr.renderer.Destroy()
	}
	if scr.window != nil {
		scr.window.Destroy()
	}
	sdl.Quit()
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() bool {
	// loop until there are no more events to retrieve. we don't want queued
	// key events taking more than one frame to resolve
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.quit = true

		case *sdl.KeyboardEvent:
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				scr.quit = true
				break
			}
			if k, ok := mapKey(ev.Keysym.Sym); ok {
				scr.keys[k] = ev.Type == sdl.KEYDOWN
			}
		}
	}

	return !scr.quit
}

// Keys implements the gui.GUI interface.
func (scr *SdlPlay) Keys() [keypad.NumKeys]bool {
	return scr.keys
}

// Render implements the gui.GUI interface.
func (scr *SdlPlay) Render(pixels []bool) error {
	if err := scr.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf(SDLError, err)
	}

	if err := scr.renderer.SetDrawColor(255, 255, 255, 255); err != nil {
		return curated.Errorf(SDLError, err)
	}

	for i, p := range pixels {
		if !p {
			continue
		}
		x := int32(i%video.Width) * scr.scale
		y := int32(i/video.Width) * scr.scale
		if err := scr.renderer.FillRect(&sdl.Rect{X: x, Y: y, W: scr.scale, H: scr.scale}); err != nil {
			return curated.Errorf(SDLError, err)
		}
	}

	scr.renderer.Present()

	return nil
}

// mapKey translates an SDL keycode to a keypad key. The 4x4 hexadecimal
// keypad maps onto the left-hand side of a QWERTY keyboard:
//
//	1 2 3 C		1 2 3 4
//	4 5 6 D	 ->	Q W E R
//	7 8 9 E		A S D F
//	A 0 B F		Z X C V
func mapKey(kc sdl.Keycode) (uint8, bool) {
	switch kc {
	case sdl.K_1:
		return 0x1, true
	case sdl.K_2:
		return 0x2, true
	case sdl.K_3:
		return 0x3, true
	case sdl.K_4:
		return 0xc, true
	case sdl.K_q:
		return 0x4, true
	case sdl.K_w:
		return 0x5, true
	case sdl.K_e:
		return 0x6, true
	case sdl.K_r:
		return 0xd, true
	case sdl.K_a:
		return 0x7, true
	case sdl.K_s:
		return 0x8, true
	case sdl.K_d:
		return 0x9, true
	case sdl.K_f:
		return 0xe, true
	case sdl.K_z:
		return 0xa, true
	case sdl.K_x:
		return 0x0, true
	case sdl.K_c:
		return 0xb, true
	case sdl.K_v:
		return 0xf, true
	}
	return 0, false
}
