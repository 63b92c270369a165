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

// Package wavwriter records the machine's buzzer to a WAV file. It
// implements the gui.AudioMixer interface and can be attached in place of,
// or alongside, a real audio device.
package wavwriter

import (
	"os"

	"github.com/hexworth/gopher8/curated"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// sentinal errors returned by the wavwriter package.
const WavError = "wavwriter: %v"

// sample rate and tone of the recorded buzzer. the same values as the
// sdlaudio package so a recording sounds like the live machine.
const (
	sampleFreq      = 44100
	toneFreq        = 440
	samplesPerFrame = sampleFreq / 60
)

// WavWriter implements the gui.AudioMixer interface.
type WavWriter struct {
	f   *os.File
	enc *wav.Encoder

	buffer *audio.IntBuffer

	// phase of the square wave, carried across frames so the tone is
	// continuous when the buzzer stays on
	phase int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(filename string) (*WavWriter, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf(WavError, err)
	}

	aw := &WavWriter{
		f:   f,
		enc: wav.NewEncoder(f, sampleFreq, 8, 1, 1),
		buffer: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: 1,
				SampleRate:  sampleFreq,
			},
			Data:           make([]int, samplesPerFrame),
			SourceBitDepth: 8,
		},
	}

	return aw, nil
}

// SetBuzzer implements the gui.AudioMixer interface. One frame's worth of
// samples is written on every call, silent or sounding, so the recording
// stays in step with the emulation.
func (aw *WavWriter) SetBuzzer(on bool) error {
	const halfPeriod = sampleFreq / toneFreq / 2

	for i := range aw.buffer.Data {
		if !on {
			aw.buffer.Data[i] = 128
			continue
		}

		if (aw.phase/halfPeriod)%2 == 0 {
			aw.buffer.Data[i] = 128 + 24
		} else {
			aw.buffer.Data[i] = 128 - 24
		}
		aw.phase++
	}

	if err := aw.enc.Write(aw.buffer); err != nil {
		return curated.Errorf(WavError, err)
	}

	return nil
}

// EndMixing implements the gui.AudioMixer interface.
func (aw *WavWriter) EndMixing() error {
	if err := aw.enc.Close(); err != nil {
		_ = aw.f.Close()
		return curated.Errorf(WavError, err)
	}

	if err := aw.f.Close(); err != nil {
		return curated.Errorf(WavError, err)
	}

	return nil
}
