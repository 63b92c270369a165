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

package main

import (
	"fmt"
	"os"

	"github.com/hexworth/gopher8/gui"
	"github.com/hexworth/gopher8/gui/sdlaudio"
	"github.com/hexworth/gopher8/gui/sdlplay"
	"github.com/hexworth/gopher8/gui/termplay"
	"github.com/hexworth/gopher8/hardware"
	"github.com/hexworth/gopher8/logger"
	"github.com/hexworth/gopher8/modalflag"
	"github.com/hexworth/gopher8/performance"
	"github.com/hexworth/gopher8/playmode"
	"github.com/hexworth/gopher8/romloader"
	"github.com/hexworth/gopher8/statsview"
	"github.com/hexworth/gopher8/version"
	"github.com/hexworth/gopher8/wavwriter"
)

// exit values. 10 for a command line error and 20 for an error during one
// of the sub-modes.
const (
	exitParse = 10
	exitMode  = 20
)

// SDL requires everything from window creation to event polling to happen
// on the main thread. nothing in this program leaves it.
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "TERM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(exitParse)
	}

	switch md.Mode() {
	case "RUN":
		err = play(md)

	case "TERM":
		err = term(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		vers, rev := version.Version()
		fmt.Printf("%s (%s)\n", version.ApplicationName, vers)
		if rev != "" {
			fmt.Printf("  %s\n", rev)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(exitMode)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddInt("scale", 10, "display scaling (pixels per display cell)")
	ips := md.AddInt("ips", hardware.InstructionsPerFrame, "instructions per frame")
	fpsCap := md.AddBool("fpscap", true, "cap frame rate to 60fps")
	wav := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		cartload := romloader.NewLoader(md.GetArg(0))

		scr, err := sdlplay.NewSdlPlay(version.ApplicationName, *scale)
		if err != nil {
			return err
		}
		defer scr.Destroy()

		// the wav flag swaps the live buzzer for a recording of it
		var mixer gui.AudioMixer
		if *wav != "" {
			mixer, err = wavwriter.NewWavWriter(*wav)
		} else {
			mixer, err = sdlaudio.NewAudio()
		}
		if err != nil {
			return err
		}

		return playmode.Play(scr, mixer, cartload, *ips, *fpsCap)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func term(md *modalflag.Modes) error {
	md.NewMode()

	ips := md.AddInt("ips", hardware.InstructionsPerFrame, "instructions per frame")
	wav := md.AddString("wav", "", "record audio to wav file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// log echo would fight the display for the terminal
	logger.SetEcho(nil)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		cartload := romloader.NewLoader(md.GetArg(0))

		scr, err := termplay.NewTermPlay()
		if err != nil {
			return err
		}
		defer scr.Destroy()

		// no live audio in a terminal. a wav recording is the only mixer
		var mixer gui.AudioMixer
		if *wav != "" {
			mixer, err = wavwriter.NewWavWriter(*wav)
			if err != nil {
				return err
			}
		}

		return playmode.Play(scr, mixer, cartload, *ips, true)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	ips := md.AddInt("ips", hardware.InstructionsPerFrame, "instructions per frame")
	duration := md.AddString("duration", "5s", "run duration")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		cartload := romloader.NewLoader(md.GetArg(0))
		return performance.Check(os.Stdout, cartload, *ips, *duration)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}
