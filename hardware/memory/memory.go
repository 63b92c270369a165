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

// Package memory implements the RAM of the CHIP-8 machine. The canonical
// machine has 4096 bytes of memory with the layout:
//
//	0x000 to 0x1ff	reserved for the interpreter. the only thing the
//			emulation keeps here is the font
//	0x200 to 0xfff	program space. loaded programs start at 0x200
//
// The reservation of low memory is a convention rather than a hardware
// restriction. Programs can and do read the font data through the reserved
// area, and nothing stops a store opcode pointing the index register below
// 0x200. The Load() function however, will never place a program there.
package memory

import (
	"github.com/hexworth/gopher8/curated"
)

// total amount of memory in the machine.
const RAMSize = 4096

// OriginFont is where the font is copied on reset.
const OriginFont = 0x000

// OriginProgram is the address at which program execution begins and the
// address at which loaded programs are placed.
const OriginProgram = 0x200

// sentinal error returned by memory package functions.
const (
	ProgramTooLarge = "memory: program too large (%d bytes, %d bytes available)"
	OutOfBounds     = "memory: out of bounds access (%#04x)"
)

// Memory implements the RAM of the machine.
type Memory struct {
	ram [RAMSize]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset contents of memory. All addresses are zeroed except the reserved
// area, which receives a fresh copy of the font.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
	copy(mem.ram[OriginFont:], fontData)
}

// Load copies the program into memory starting at OriginProgram. The
// contents of the reserved area are not disturbed.
//
// Returns an error matching the ProgramTooLarge pattern if the program does
// not fit.
func (mem *Memory) Load(data []byte) error {
	if len(data) > RAMSize-OriginProgram {
		return curated.Errorf(ProgramTooLarge, len(data), RAMSize-OriginProgram)
	}
	copy(mem.ram[OriginProgram:], data)
	return nil
}

// Read8 returns the byte at the specified address.
func (mem *Memory) Read8(address uint16) (uint8, error) {
	if address >= RAMSize {
		return 0, curated.Errorf(OutOfBounds, address)
	}
	return mem.ram[address], nil
}

// Write8 writes a byte to the specified address.
func (mem *Memory) Write8(address uint16, data uint8) error {
	if address >= RAMSize {
		return curated.Errorf(OutOfBounds, address)
	}
	mem.ram[address] = data
	return nil
}

// Read16 returns the big-endian 16-bit value at the specified address. Used
// by the CPU during the fetch phase - instructions are two bytes wide with
// the high byte first.
func (mem *Memory) Read16(address uint16) (uint16, error) {
	if address >= RAMSize-1 {
		return 0, curated.Errorf(OutOfBounds, address)
	}
	return uint16(mem.ram[address])<<8 | uint16(mem.ram[address+1]), nil
}
