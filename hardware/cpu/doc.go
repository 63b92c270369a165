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

// Package cpu implements the instruction cycle of the CHIP-8 machine. Unlike
// a real CPU the CHIP-8 "CPU" was only ever an interpreter loop, so there is
// no microarchitecture to speak of: every instruction is fetched, decoded and
// executed in a single call to ExecuteInstruction().
//
// Instructions are two bytes wide, big-endian. The top nibble selects the
// operation class and the remaining nibbles are register selectors and
// immediate values, depending on the class. The program counter is advanced
// by two before the instruction executes, so jump and call instructions can
// simply assign to it and skip instructions can add another two.
//
// Several instructions have historically ambiguous semantics, known as
// quirks. This package pins the following choices and the test suite guards
// them:
//
//	8XY6/8XYE	shift VX in place. VY takes no part
//	8XY5/8XY7	VF=1 means no borrow occurred
//	BNNN		jumps to NNN plus V0
//	FX1E		wrapping add, VF untouched
//	FX55/FX65	I is not advanced
//
// The wait-for-key instruction (FX0A) is the only instruction that spans
// more than one call to ExecuteInstruction(). It is implemented as a state
// flag checked at the top of the function, keeping the package free of any
// blocking behaviour.
package cpu
