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

package cpu

import (
	"fmt"
	"strings"

	"github.com/hexworth/gopher8/curated"
	"github.com/hexworth/gopher8/hardware/keypad"
	"github.com/hexworth/gopher8/hardware/memory"
	"github.com/hexworth/gopher8/hardware/video"
	"github.com/hexworth/gopher8/logger"
	"github.com/hexworth/gopher8/random"
)

// sentinal errors returned by ExecuteInstruction(). any of these mean the
// running program is malformed and the caller should stop stepping. note
// that UnknownOpcode is only returned when the HaltOnUnknown field is true.
const (
	UnknownOpcode  = "cpu: unknown opcode (%#04x) at %#04x"
	StackOverflow  = "cpu: stack overflow (call depth %d) at %#04x"
	StackUnderflow = "cpu: stack underflow at %#04x"
)

// NumRegisters is the number of general purpose registers. The last
// register, VF, doubles as the carry/borrow/collision flag.
const NumRegisters = 16

// StackSize is the maximum call depth.
const StackSize = 16

// the wait-for-key instruction spans multiple calls to ExecuteInstruction().
// waiting is the small state machine that expresses that.
type waiting int

const (
	waitNone waiting = iota
	waitKey
)

// CPU implements the fetch-decode-execute cycle of the CHIP-8 machine.
type CPU struct {
	mem    *memory.Memory
	vid    *video.Video
	key    *keypad.Keypad
	Random *random.Random

	V  [NumRegisters]uint8
	I  uint16
	PC uint16

	stack [StackSize]uint16
	sp    int

	DelayTimer uint8
	SoundTimer uint8

	// wait-for-key state. waitReg is the register the key index is stored
	// in and waitMark is the keypad push count when the wait began
	wait     waiting
	waitReg  uint8
	waitMark int

	// HaltOnUnknown controls the policy for unrecognised bit patterns. The
	// default (false) logs the opcode and treats it as a no-op, which is
	// the least surprising choice for programs that embed data inline. When
	// true, ExecuteInstruction() returns an UnknownOpcode error instead.
	HaltOnUnknown bool
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem *memory.Memory, vid *video.Video, key *keypad.Keypad) *CPU {
	mc := &CPU{
		mem:    mem,
		vid:    vid,
		key:    key,
		Random: random.NewRandom(),
	}
	mc.Reset()
	return mc
}

// Reset the CPU. All registers zeroed and the program counter set to the
// program origin.
func (mc *CPU) Reset() {
	mc.V = [NumRegisters]uint8{}
	mc.I = 0
	mc.PC = memory.OriginProgram
	mc.stack = [StackSize]uint16{}
	mc.sp = 0
	mc.DelayTimer = 0
	mc.SoundTimer = 0
	mc.wait = waitNone
	mc.waitReg = 0
	mc.waitMark = 0
	mc.Random.Reset()
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%#04x I=%#04x SP=%d DT=%#02x ST=%#02x\n",
		mc.PC, mc.I, mc.sp, mc.DelayTimer, mc.SoundTimer))
	for i := range mc.V {
		s.WriteString(fmt.Sprintf("V%X=%#02x ", i, mc.V[i]))
	}
	return strings.TrimSpace(s.String())
}

// Waiting returns true if the CPU is paused on a wait-for-key instruction.
func (mc *CPU) Waiting() bool {
	return mc.wait != waitNone
}

// TickTimers decrements the delay and sound timers, each clamped at zero.
// Must be called at a fixed rate (60Hz in the canonical machine) regardless
// of how many instructions have executed.
func (mc *CPU) TickTimers() {
	if mc.DelayTimer > 0 {
		mc.DelayTimer--
	}
	if mc.SoundTimer > 0 {
		mc.SoundTimer--
	}
}

// ExecuteInstruction performs one fetch-decode-execute cycle.
//
// Errors matching the memory.OutOfBounds, StackOverflow and StackUnderflow
// patterns mean the program has run off the rails and the caller should stop
// stepping. UnknownOpcode is returned only when HaltOnUnknown is set.
func (mc *CPU) ExecuteInstruction() error {
	// the wait-for-key state is resolved before anything else. while it is
	// active no instructions are fetched and the program counter is frozen
	if mc.wait == waitKey {
		if mc.key.Pushes() > mc.waitMark {
			if k, ok := mc.key.NewlyPressed(); ok {
				mc.V[mc.waitReg] = k
				mc.wait = waitNone
			}
		}
		return nil
	}

	// fetch. the address of the current instruction is kept for error and
	// log messages
	addr := mc.PC
	opcode, err := mc.mem.Read16(addr)
	if err != nil {
		return err
	}

	// decode into nibble fields. which fields are meaningful depends on the
	// operation class
	x := uint8(opcode>>8) & 0x0f
	y := uint8(opcode>>4) & 0x0f
	n := uint8(opcode) & 0x0f
	nn := uint8(opcode)
	nnn := opcode & 0x0fff

	// the default program counter advance happens before dispatch. jumps,
	// calls and skips override or extend it by direct assignment
	mc.PC += 2

	// execute
	switch opcode & 0xf000 {
	case 0x0000:
		switch opcode {
		case 0x0000:
			// SYS with a zero operand. treated as a no-op
		case 0x00e0:
			mc.vid.Clear()
		case 0x00ee:
			return mc.ret(addr)
		default:
			return mc.unknownOpcode(opcode, addr)
		}

	case 0x1000:
		mc.PC = nnn

	case 0x2000:
		return mc.call(nnn, addr)

	case 0x3000:
		mc.skipIf(mc.V[x] == nn)

	case 0x4000:
		mc.skipIf(mc.V[x] != nn)

	case 0x5000:
		if n != 0 {
			return mc.unknownOpcode(opcode, addr)
		}
		mc.skipIf(mc.V[x] == mc.V[y])

	case 0x6000:
		mc.V[x] = nn

	case 0x7000:
		// no carry flag for the immediate form of add
		mc.V[x] += nn

	case 0x8000:
		if err := mc.alu(x, y, n, opcode, addr); err != nil {
			return err
		}

	case 0x9000:
		if n != 0 {
			return mc.unknownOpcode(opcode, addr)
		}
		mc.skipIf(mc.V[x] != mc.V[y])

	case 0xa000:
		mc.I = nnn

	case 0xb000:
		mc.PC = nnn + uint16(mc.V[0])

	case 0xc000:
		mc.V[x] = uint8(mc.Random.Intn(256)) & nn

	case 0xd000:
		return mc.drawSprite(x, y, n)

	case 0xe000:
		switch nn {
		case 0x9e:
			mc.skipIf(mc.key.IsPressed(mc.V[x]))
		case 0xa1:
			mc.skipIf(!mc.key.IsPressed(mc.V[x]))
		default:
			return mc.unknownOpcode(opcode, addr)
		}

	case 0xf000:
		return mc.misc(x, nn, opcode, addr)
	}

	return nil
}

// unknownOpcode implements the policy for unrecognised bit patterns.
func (mc *CPU) unknownOpcode(opcode, addr uint16) error {
	if mc.HaltOnUnknown {
		return curated.Errorf(UnknownOpcode, opcode, addr)
	}
	logger.Logf("cpu", "unknown opcode (%#04x) at %#04x; skipping", opcode, addr)
	return nil
}
