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

// Package sdlaudio plays the machine's buzzer through SDL. The buzzer only
// has two states so the package synthesises a square wave while the sound
// timer is running and queues silence otherwise.
package sdlaudio

import (
	"github.com/hexworth/gopher8/curated"

	"github.com/veandco/go-sdl2/sdl"
)

// sentinal errors returned by the sdlaudio package.
const SDLError = "sdlaudio: %v"

// SampleFreq is the number of samples generated per second.
const SampleFreq = 44100

// pitch of the buzzer in Hz. the original machines had no defined pitch,
// anything in this region sounds right.
const toneFreq = 440

// number of samples queued per call to SetBuzzer(). one frame's worth at
// 60fps.
const samplesPerFrame = SampleFreq / 60

// don't requeue if this many samples are already waiting. keeps latency to
// a couple of frames when the emulation runs ahead of the audio device.
const queueLimit = samplesPerFrame * 3

// Audio is an implementation of the gui.AudioMixer interface that outputs
// sound through SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buffer []uint8

	// phase of the square wave, carried between frames so the tone is
	// continuous
	phase int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() (*Audio, error) {
	aud := &Audio{
		buffer: make([]uint8, samplesPerFrame),
	}

	spec := &sdl.AudioSpec{
		Freq:     SampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  samplesPerFrame,
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}
	aud.spec = actualSpec

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetBuzzer implements the gui.AudioMixer interface.
func (aud *Audio) SetBuzzer(on bool) error {
	if sdl.GetQueuedAudioSize(aud.id) > queueLimit {
		return nil
	}

	// a queued-audio device plays silence when starved so there is nothing
	// to do for the off state. the wave phase is reset so the next tone
	// starts cleanly
	if !on {
		aud.phase = 0
		return nil
	}

	const halfPeriod = SampleFreq / toneFreq / 2

	for i := range aud.buffer {
		if (aud.phase/halfPeriod)%2 == 0 {
			aud.buffer[i] = aud.spec.Silence + 24
		} else {
			aud.buffer[i] = aud.spec.Silence - 24
		}
		aud.phase++
	}

	if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
		return curated.Errorf(SDLError, err)
	}

	return nil
}

// EndMixing implements the gui.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	sdl.CloseAudioDevice(aud.id)
	return nil
}
