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

package hardware_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hexworth/gopher8/curated"
	"github.com/hexworth/gopher8/hardware"
	"github.com/hexworth/gopher8/hardware/memory"
	"github.com/hexworth/gopher8/romloader"
	"github.com/hexworth/gopher8/test"
)

// writeROM writes a ROM file to a temporary directory and returns a loader
// for it.
func writeROM(t *testing.T, data []byte) romloader.Loader {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(fn, data, 0644); err != nil {
		t.Fatalf("unexpected error writing test ROM: %v", err)
	}

	return romloader.NewLoader(fn)
}

func TestAttachROM(t *testing.T) {
	ch8 := hardware.NewChip8()

	// CLS / JMP self
	ld := writeROM(t, []byte{0x00, 0xe0, 0x12, 0x02})
	test.ExpectedSuccess(t, ch8.AttachROM(ld))

	// the program is in memory at the program origin
	v, err := ch8.Mem.Read8(memory.OriginProgram)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x00)
	v, _ = ch8.Mem.Read8(memory.OriginProgram + 1)
	test.Equate(t, v, 0xe0)

	test.Equate(t, ch8.CPU.PC, memory.OriginProgram)
}

func TestAttachROMTooLarge(t *testing.T) {
	ch8 := hardware.NewChip8()

	// a ROM that fills program space exactly is fine
	ld := writeROM(t, make([]byte, memory.RAMSize-memory.OriginProgram))
	test.ExpectedSuccess(t, ch8.AttachROM(ld))

	// one byte more is not
	ld = writeROM(t, make([]byte, memory.RAMSize-memory.OriginProgram+1))
	err := ch8.AttachROM(ld)
	test.ExpectedFailure(t, err)
	if !curated.Is(err, memory.ProgramTooLarge) {
		t.Errorf("expected ProgramTooLarge error (got: %v)", err)
	}
}

func TestAttachROMMissingFile(t *testing.T) {
	ch8 := hardware.NewChip8()

	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "no-such-file.ch8"))
	err := ch8.AttachROM(ld)
	test.ExpectedFailure(t, err)
	if !curated.Is(err, romloader.LoadError) {
		t.Errorf("expected romloader error (got: %v)", err)
	}
}

func TestRunFrames(t *testing.T) {
	ch8 := hardware.NewChip8()

	// set sound timer to 120 then spin. two seconds of beep at 60Hz
	ld := writeROM(t, []byte{0x60, 0x78, 0xf0, 0x18, 0x12, 0x04})
	test.ExpectedSuccess(t, ch8.AttachROM(ld))

	frames := 0
	err := ch8.Run(hardware.InstructionsPerFrame, func() (bool, error) {
		frames++
		return frames < 60, nil
	})
	test.ExpectedSuccess(t, err)

	// sixty timer ticks later the sound timer is half way down and sound
	// is still active
	test.Equate(t, ch8.CPU.SoundTimer, 60)
	test.Equate(t, ch8.SoundActive(), true)
}

func TestRunHaltsOnError(t *testing.T) {
	ch8 := hardware.NewChip8()

	// return with an empty call stack. a malformed program
	ld := writeROM(t, []byte{0x00, 0xee})
	test.ExpectedSuccess(t, ch8.AttachROM(ld))

	err := ch8.Run(hardware.InstructionsPerFrame, nil)
	test.ExpectedFailure(t, err)
}
