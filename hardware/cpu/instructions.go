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
	"github.com/hexworth/gopher8/curated"
	"github.com/hexworth/gopher8/hardware/memory"
)

// flag register. several instructions write their carry/borrow/collision
// result here, clobbering any general purpose use.
const flag = 0x0f

// ret implements 00EE, popping the return address into the program counter.
func (mc *CPU) ret(addr uint16) error {
	if mc.sp == 0 {
		return curated.Errorf(StackUnderflow, addr)
	}
	mc.sp--
	mc.PC = mc.stack[mc.sp]
	return nil
}

// call implements 2NNN. the pushed value is the address of the instruction
// after the call - the program counter has already been advanced.
func (mc *CPU) call(nnn uint16, addr uint16) error {
	if mc.sp >= StackSize {
		return curated.Errorf(StackOverflow, mc.sp, addr)
	}
	mc.stack[mc.sp] = mc.PC
	mc.sp++
	mc.PC = nnn
	return nil
}

// skipIf extends the default program counter advance by one instruction when
// the condition holds. used by the conditional skip family.
func (mc *CPU) skipIf(cond bool) {
	if cond {
		mc.PC += 2
	}
}

// alu implements the 8XYN register load/arithmetic family.
//
// The result is written before the flag, so an instruction naming VF as its
// destination ends up with the flag and not the result. Programs exist that
// rely on this ordering.
func (mc *CPU) alu(x, y, n uint8, opcode, addr uint16) error {
	switch n {
	case 0x0:
		mc.V[x] = mc.V[y]

	case 0x1:
		mc.V[x] |= mc.V[y]

	case 0x2:
		mc.V[x] &= mc.V[y]

	case 0x3:
		mc.V[x] ^= mc.V[y]

	case 0x4:
		r := uint16(mc.V[x]) + uint16(mc.V[y])
		mc.V[x] = uint8(r)
		if r > 0xff {
			mc.V[flag] = 1
		} else {
			mc.V[flag] = 0
		}

	case 0x5:
		// VF=1 means no borrow
		noBorrow := mc.V[x] >= mc.V[y]
		mc.V[x] -= mc.V[y]
		if noBorrow {
			mc.V[flag] = 1
		} else {
			mc.V[flag] = 0
		}

	case 0x6:
		// VX is shifted in place. VY takes no part
		lsb := mc.V[x] & 0x01
		mc.V[x] >>= 1
		mc.V[flag] = lsb

	case 0x7:
		noBorrow := mc.V[y] >= mc.V[x]
		mc.V[x] = mc.V[y] - mc.V[x]
		if noBorrow {
			mc.V[flag] = 1
		} else {
			mc.V[flag] = 0
		}

	case 0xe:
		msb := (mc.V[x] >> 7) & 0x01
		mc.V[x] <<= 1
		mc.V[flag] = msb

	default:
		return mc.unknownOpcode(opcode, addr)
	}

	return nil
}

// drawSprite implements DXYN. an N byte tall sprite is read from memory at
// the index register and XORed onto the display at (VX, VY). VF records
// whether any pixel was flipped from on to off.
func (mc *CPU) drawSprite(x, y, n uint8) error {
	sprite := make([]uint8, n)
	for i := range sprite {
		var err error
		sprite[i], err = mc.mem.Read8(mc.I + uint16(i))
		if err != nil {
			return err
		}
	}

	if mc.vid.DrawSprite(mc.V[x], mc.V[y], sprite) {
		mc.V[flag] = 1
	} else {
		mc.V[flag] = 0
	}

	return nil
}

// misc implements the FXNN family: timers, key wait, index arithmetic, font
// lookup, BCD, and the bulk register store/load.
func (mc *CPU) misc(x, nn uint8, opcode, addr uint16) error {
	switch nn {
	case 0x07:
		mc.V[x] = mc.DelayTimer

	case 0x0a:
		// freeze until a future SetKeys() reports a fresh press. note that
		// Pushes() is recorded so that a key already held down when the
		// wait begins does not satisfy it
		mc.wait = waitKey
		mc.waitReg = x
		mc.waitMark = mc.key.Pushes()

	case 0x15:
		mc.DelayTimer = mc.V[x]

	case 0x18:
		mc.SoundTimer = mc.V[x]

	case 0x1e:
		// wrapping add, no flag
		mc.I += uint16(mc.V[x])

	case 0x29:
		mc.I = memory.FontAddress(mc.V[x])

	case 0x33:
		v := mc.V[x]
		if err := mc.mem.Write8(mc.I, v/100); err != nil {
			return err
		}
		if err := mc.mem.Write8(mc.I+1, (v/10)%10); err != nil {
			return err
		}
		if err := mc.mem.Write8(mc.I+2, v%10); err != nil {
			return err
		}

	case 0x55:
		// I is left unchanged by the bulk store/load
		for i := uint16(0); i <= uint16(x); i++ {
			if err := mc.mem.Write8(mc.I+i, mc.V[i]); err != nil {
				return err
			}
		}

	case 0x65:
		for i := uint16(0); i <= uint16(x); i++ {
			var err error
			mc.V[i], err = mc.mem.Read8(mc.I + i)
			if err != nil {
				return err
			}
		}

	default:
		return mc.unknownOpcode(opcode, addr)
	}

	return nil
}
