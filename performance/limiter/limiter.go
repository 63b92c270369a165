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

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate. Gopher8 uses it to hold the emulation to the machine's 60Hz
// frame rate.
//
// A new FpsLimiter is created with NewFPSLimiter(). Operations are then
// stalled with the Wait() function. For example:
//
//	lmtr := limiter.NewFPSLimiter(60)
//	for {
//		lmtr.Wait()
//		renderFrame()
//	}
package limiter

import (
	"time"
)

// FpsLimiter will trigger at the specified frames per second.
type FpsLimiter struct {
	secondsPerFrame time.Duration
	tick            chan bool
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{
		secondsPerFrame: time.Duration(float64(time.Second) / float64(framesPerSecond)),
		tick:            make(chan bool),
	}

	// run ticker concurrently, adjusting the sleep period by the error in
	// the previous period. only any good if base performance of the machine
	// is well above the required rate
	go func() {
		adjustedPerFrame := lim.secondsPerFrame
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjustedPerFrame)
			nt := time.Now()
			adjustedPerFrame -= nt.Sub(t) - lim.secondsPerFrame
			t = nt
		}
	}()

	return lim
}

// Wait will block until the next frame is due.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}
