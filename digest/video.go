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

// Package digest is used to create mathematical hashes of the emulated
// display output. The hash is chained from frame to frame, so a single value
// fingerprints an entire run of a ROM. Useful for regression tests, where a
// change in emulation behaviour shows up as a change in the final hash.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/hexworth/gopher8/hardware/video"
)

// Video is a fingerprint of everything sent to the display. The SHA-1
// checksum is a robust way of fingerprinting but it is not used in a
// cryptographic context.
type Video struct {
	digest [sha1.Size]byte
	frame  []byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		// room at the head of the frame data for the previous digest,
		// chaining the fingerprints
		frame: make([]byte, sha1.Size+video.Width*video.Height),
	}
}

// NewFrame folds a frame of display pixels into the digest.
func (dig *Video) NewFrame(pixels []bool) {
	copy(dig.frame, dig.digest[:])
	for i, p := range pixels {
		if p {
			dig.frame[sha1.Size+i] = 1
		} else {
			dig.frame[sha1.Size+i] = 0
		}
	}
	dig.digest = sha1.Sum(dig.frame)
	dig.frames++
}

// Hash returns the current digest value.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Frames returns the number of frames folded into the digest so far.
func (dig *Video) Frames() int {
	return dig.frames
}

// ResetDigest resets the fingerprint chain.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}
