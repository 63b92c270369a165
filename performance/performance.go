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

// Package performance measures how quickly the emulation runs on the host
// machine. The interpreted nature of CHIP-8 means raw speed is never in
// doubt on modern hardware, but the measurement is a useful canary for
// regressions in the step path, and the final video digest doubles as a
// behaviour fingerprint.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/hexworth/gopher8/curated"
	"github.com/hexworth/gopher8/digest"
	"github.com/hexworth/gopher8/hardware"
	"github.com/hexworth/gopher8/romloader"
)

// Check the performance of the emulation using the supplied ROM. The
// emulation runs flat out, without a frame limiter, for the specified
// duration. Results are written to output.
func Check(output io.Writer, cartload romloader.Loader, instructionsPerFrame int, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	ch8 := hardware.NewChip8()
	if err := ch8.AttachROM(cartload); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dig := digest.NewVideo()

	// expires once the measurement period has elapsed
	timerChan := make(chan bool)
	time.AfterFunc(dur, func() {
		timerChan <- true
	})

	startTime := time.Now()

	err = ch8.Run(instructionsPerFrame, func() (bool, error) {
		dig.NewFrame(ch8.Display())

		select {
		case <-timerChan:
			return false, nil
		default:
		}

		return true, nil
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	elapsed := time.Since(startTime).Seconds()
	frames := dig.Frames()

	fps := float64(frames) / elapsed
	ips := fps * float64(instructionsPerFrame)

	output.Write([]byte(fmt.Sprintf("%d frames in %.2fs\n", frames, elapsed)))
	output.Write([]byte(fmt.Sprintf("%.2f fps (%.0f instructions/sec)\n", fps, ips)))
	output.Write([]byte(fmt.Sprintf("video digest: %s\n", dig.Hash())))

	return nil
}
