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

package cpu_test

import (
	"testing"

	"github.com/hexworth/gopher8/curated"
	"github.com/hexworth/gopher8/hardware/cpu"
	"github.com/hexworth/gopher8/hardware/keypad"
	"github.com/hexworth/gopher8/hardware/memory"
	"github.com/hexworth/gopher8/hardware/video"
	"github.com/hexworth/gopher8/test"
)

type testMachine struct {
	mem *memory.Memory
	vid *video.Video
	key *keypad.Keypad
	mc  *cpu.CPU
}

// newTestMachine assembles the opcodes into a program, loads it at the
// program origin and returns a machine ready to step.
func newTestMachine(t *testing.T, opcodes ...uint16) *testMachine {
	t.Helper()

	tm := &testMachine{
		mem: memory.NewMemory(),
		vid: video.NewVideo(),
		key: keypad.NewKeypad(),
	}
	tm.mc = cpu.NewCPU(tm.mem, tm.vid, tm.key)
	tm.mc.Random.ZeroSeed = true

	program := make([]byte, 0, len(opcodes)*2)
	for _, op := range opcodes {
		program = append(program, uint8(op>>8), uint8(op))
	}
	if err := tm.mem.Load(program); err != nil {
		t.Fatalf("unexpected error loading test program: %v", err)
	}

	return tm
}

func (tm *testMachine) step(t *testing.T) {
	t.Helper()
	if err := tm.mc.ExecuteInstruction(); err != nil {
		t.Fatalf("unexpected error during step: %v", err)
	}
}

func TestIdleLoop(t *testing.T) {
	// CLS followed by a jump-to-self. the canonical do-nothing program
	tm := newTestMachine(t, 0x00e0, 0x1202)

	for i := 0; i < 100; i++ {
		tm.step(t)
	}

	test.Equate(t, tm.mc.PC, 0x0202)
	for _, p := range tm.vid.Pixels() {
		if p {
			t.Fatalf("expected display to be blank")
		}
	}
}

func TestAddCarry(t *testing.T) {
	// ADD V0, V1 for every 8-bit pair. VX=(a+b) mod 256 and VF=1 iff the
	// sum does not fit in 8 bits
	tm := newTestMachine(t, 0x8014)

	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			tm.mc.PC = memory.OriginProgram
			tm.mc.V[0] = uint8(a)
			tm.mc.V[1] = uint8(b)
			tm.step(t)

			test.Equate(t, tm.mc.V[0], uint8(a+b))
			if a+b >= 256 {
				test.Equate(t, tm.mc.V[0xf], 1)
			} else {
				test.Equate(t, tm.mc.V[0xf], 0)
			}
		}
	}
}

// the borrow flag polarity on subtraction is the single most common source
// of incompatibility between interpreters. VF=1 means no borrow.
func TestSubtractBorrowPolarity(t *testing.T) {
	tm := newTestMachine(t, 0x8015)

	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			tm.mc.PC = memory.OriginProgram
			tm.mc.V[0] = uint8(a)
			tm.mc.V[1] = uint8(b)
			tm.step(t)

			test.Equate(t, tm.mc.V[0], uint8(a-b))
			if a >= b {
				test.Equate(t, tm.mc.V[0xf], 1)
			} else {
				test.Equate(t, tm.mc.V[0xf], 0)
			}
		}
	}
}

func TestSubtractReversed(t *testing.T) {
	// SUBN: VX = VY - VX, same flag polarity
	tm := newTestMachine(t, 0x8017)

	tm.mc.V[0] = 10
	tm.mc.V[1] = 25
	tm.step(t)
	test.Equate(t, tm.mc.V[0], 15)
	test.Equate(t, tm.mc.V[0xf], 1)

	tm.mc.PC = memory.OriginProgram
	tm.mc.V[0] = 25
	tm.mc.V[1] = 10
	tm.step(t)
	test.Equate(t, tm.mc.V[0], 241)
	test.Equate(t, tm.mc.V[0xf], 0)
}

func TestShiftsIgnoreVY(t *testing.T) {
	// SHR shifts VX in place. VY takes no part, whatever it holds
	tm := newTestMachine(t, 0x8016, 0x801e)

	tm.mc.V[0] = 0x05
	tm.mc.V[1] = 0xff
	tm.step(t)
	test.Equate(t, tm.mc.V[0], 0x02)
	test.Equate(t, tm.mc.V[0xf], 1)

	// SHL
	tm.mc.V[0] = 0x81
	tm.step(t)
	test.Equate(t, tm.mc.V[0], 0x02)
	test.Equate(t, tm.mc.V[0xf], 1)
}

func TestStackRoundTrip(t *testing.T) {
	// CALL 0x300 ... at 0x300: RET
	tm := newTestMachine(t, 0x2300)
	test.ExpectedSuccess(t, tm.mem.Write8(0x300, 0x00))
	test.ExpectedSuccess(t, tm.mem.Write8(0x301, 0xee))

	tm.step(t)
	test.Equate(t, tm.mc.PC, 0x0300)

	tm.step(t)

	// the return address is the instruction after the call
	test.Equate(t, tm.mc.PC, 0x0202)

	// and a subsequent return underflows, proving the stack depth is back
	// to zero
	tm.mc.PC = 0x300
	err := tm.mc.ExecuteInstruction()
	test.ExpectedFailure(t, err)
	if !curated.Is(err, cpu.StackUnderflow) {
		t.Errorf("expected StackUnderflow error (got: %v)", err)
	}
}

func TestStackOverflow(t *testing.T) {
	// a call-to-self recurses until the stack bound is hit
	tm := newTestMachine(t, 0x2200)

	for i := 0; i < cpu.StackSize; i++ {
		tm.step(t)
	}

	err := tm.mc.ExecuteInstruction()
	test.ExpectedFailure(t, err)
	if !curated.Is(err, cpu.StackOverflow) {
		t.Errorf("expected StackOverflow error (got: %v)", err)
	}
}

func TestSkipSemantics(t *testing.T) {
	// SE V0, 0x42 advances PC by 4 on equality and 2 otherwise
	tm := newTestMachine(t, 0x3042)

	tm.mc.V[0] = 0x42
	tm.step(t)
	test.Equate(t, tm.mc.PC, 0x0204)

	tm.mc.PC = memory.OriginProgram
	tm.mc.V[0] = 0x41
	tm.step(t)
	test.Equate(t, tm.mc.PC, 0x0202)
}

func TestSkipRegisterForms(t *testing.T) {
	// SNE immediate, SE register-register, SNE register-register
	tm := newTestMachine(t, 0x4042)
	tm.mc.V[0] = 0x42
	tm.step(t)
	test.Equate(t, tm.mc.PC, 0x0202)

	tm = newTestMachine(t, 0x5010)
	tm.mc.V[0] = 7
	tm.mc.V[1] = 7
	tm.step(t)
	test.Equate(t, tm.mc.PC, 0x0204)

	tm = newTestMachine(t, 0x9010)
	tm.mc.V[0] = 7
	tm.mc.V[1] = 7
	tm.step(t)
	test.Equate(t, tm.mc.PC, 0x0202)
}

func TestJumpV0(t *testing.T) {
	tm := newTestMachine(t, 0xb210)
	tm.mc.V[0] = 0x04
	tm.step(t)
	test.Equate(t, tm.mc.PC, 0x0214)
}

func TestTimers(t *testing.T) {
	// set delay timer from V0, sound timer from V1, read delay timer back
	// into V2
	tm := newTestMachine(t, 0xf015, 0xf118, 0xf207)

	tm.mc.V[0] = 2
	tm.mc.V[1] = 1
	tm.step(t)
	tm.step(t)

	test.Equate(t, tm.mc.DelayTimer, 2)
	test.Equate(t, tm.mc.SoundTimer, 1)

	tm.mc.TickTimers()
	test.Equate(t, tm.mc.DelayTimer, 1)
	test.Equate(t, tm.mc.SoundTimer, 0)

	// clamped at zero, no underflow
	tm.mc.TickTimers()
	tm.mc.TickTimers()
	test.Equate(t, tm.mc.DelayTimer, 0)
	test.Equate(t, tm.mc.SoundTimer, 0)

	tm.step(t)
	test.Equate(t, tm.mc.V[2], 0)
}

func TestKeyWait(t *testing.T) {
	// FX0A freezes the program counter until a key transitions into the
	// pressed state on a later SetKeys()
	tm := newTestMachine(t, 0xf30a, 0x6001)

	// key 5 held down before the wait begins. must not satisfy it
	held := [keypad.NumKeys]bool{}
	held[5] = true
	tm.key.SetKeys(held)

	tm.step(t)
	test.Equate(t, tm.mc.PC, 0x0202)
	test.Equate(t, tm.mc.Waiting(), true)

	// stepping with unchanged key state leaves the CPU waiting
	tm.step(t)
	tm.step(t)
	test.Equate(t, tm.mc.PC, 0x0202)
	test.Equate(t, tm.mc.Waiting(), true)

	// the same snapshot pushed again is not a new press
	tm.key.SetKeys(held)
	tm.step(t)
	test.Equate(t, tm.mc.Waiting(), true)

	// a fresh press is captured into the target register ...
	held[0xa] = true
	tm.key.SetKeys(held)
	tm.step(t)
	test.Equate(t, tm.mc.Waiting(), false)
	test.Equate(t, tm.mc.V[3], 0x0a)

	// ... and the program counter was frozen throughout. normal stepping
	// resumes on the next call
	test.Equate(t, tm.mc.PC, 0x0202)
	tm.step(t)
	test.Equate(t, tm.mc.PC, 0x0204)
	test.Equate(t, tm.mc.V[0], 1)
}

func TestUnknownOpcodeSkips(t *testing.T) {
	// 0xffff matches no operation class. default policy is log-and-skip
	tm := newTestMachine(t, 0xffff, 0x6001)

	tm.step(t)
	test.Equate(t, tm.mc.PC, 0x0202)

	tm.step(t)
	test.Equate(t, tm.mc.V[0], 1)
}

func TestUnknownOpcodeHaltPolicy(t *testing.T) {
	tm := newTestMachine(t, 0xffff)
	tm.mc.HaltOnUnknown = true

	err := tm.mc.ExecuteInstruction()
	test.ExpectedFailure(t, err)
	if !curated.Is(err, cpu.UnknownOpcode) {
		t.Errorf("expected UnknownOpcode error (got: %v)", err)
	}
}

func TestRunawayProgram(t *testing.T) {
	// a program counter that reaches the end of memory without a halt
	// instruction is a fault
	tm := newTestMachine(t)

	tm.mc.PC = memory.RAMSize - 2
	tm.step(t)

	err := tm.mc.ExecuteInstruction()
	test.ExpectedFailure(t, err)
	if !curated.Is(err, memory.OutOfBounds) {
		t.Errorf("expected OutOfBounds error (got: %v)", err)
	}
}

func TestIndexOpcodes(t *testing.T) {
	// LD I, ADD I, font address
	tm := newTestMachine(t, 0xa123, 0xf01e, 0xf129)

	tm.step(t)
	test.Equate(t, tm.mc.I, 0x0123)

	tm.mc.V[0] = 0x10
	tm.step(t)
	test.Equate(t, tm.mc.I, 0x0133)

	tm.mc.V[1] = 0x0b
	tm.step(t)
	test.Equate(t, tm.mc.I, memory.FontAddress(0x0b))
}

func TestBCD(t *testing.T) {
	tm := newTestMachine(t, 0xf033)

	tm.mc.V[0] = 159
	tm.mc.I = 0x300
	tm.step(t)

	v, _ := tm.mem.Read8(0x300)
	test.Equate(t, v, 1)
	v, _ = tm.mem.Read8(0x301)
	test.Equate(t, v, 5)
	v, _ = tm.mem.Read8(0x302)
	test.Equate(t, v, 9)
}

func TestBulkStoreLoad(t *testing.T) {
	// store V0..V2, reload into V0..V2 after clobbering. I is unchanged
	// throughout
	tm := newTestMachine(t, 0xf255, 0xf265)

	tm.mc.V[0] = 0x11
	tm.mc.V[1] = 0x22
	tm.mc.V[2] = 0x33
	tm.mc.I = 0x400
	tm.step(t)
	test.Equate(t, tm.mc.I, 0x0400)

	tm.mc.V[0] = 0
	tm.mc.V[1] = 0
	tm.mc.V[2] = 0
	tm.step(t)
	test.Equate(t, tm.mc.I, 0x0400)
	test.Equate(t, tm.mc.V[0], 0x11)
	test.Equate(t, tm.mc.V[1], 0x22)
	test.Equate(t, tm.mc.V[2], 0x33)
}

func TestRandomMask(t *testing.T) {
	// the random value is ANDed with the immediate. a zero mask must give
	// zero whatever the random number was
	tm := newTestMachine(t, 0xc000, 0xc10f)

	tm.mc.V[0] = 0xff
	tm.step(t)
	test.Equate(t, tm.mc.V[0], 0)

	tm.step(t)
	if tm.mc.V[1] > 0x0f {
		t.Errorf("random value escaped its mask (%#02x)", tm.mc.V[1])
	}
}

func TestDrawOpcode(t *testing.T) {
	// draw the font glyph for 0 at (VA, VB), twice. the second draw
	// reports a collision and restores a blank display
	tm := newTestMachine(t, 0xf029, 0xdab5, 0xdab5)

	tm.mc.V[0] = 0
	tm.mc.V[0xa] = 8
	tm.mc.V[0xb] = 4
	tm.step(t)
	tm.step(t)
	test.Equate(t, tm.mc.V[0xf], 0)
	test.Equate(t, tm.vid.Pixel(8, 4), true)

	tm.step(t)
	test.Equate(t, tm.mc.V[0xf], 1)
	for _, p := range tm.vid.Pixels() {
		if p {
			t.Fatalf("expected display to be blank after second draw")
		}
	}
}

func TestKeySkips(t *testing.T) {
	// SKP and SKNP
	tm := newTestMachine(t, 0xe09e, 0xe0a1)

	keys := [keypad.NumKeys]bool{}
	keys[7] = true
	tm.key.SetKeys(keys)

	tm.mc.V[0] = 7
	tm.step(t)
	test.Equate(t, tm.mc.PC, 0x0204)

	// key 7 is pressed so SKNP does not skip
	tm.mc.PC = 0x0202
	tm.step(t)
	test.Equate(t, tm.mc.PC, 0x0204)
}
