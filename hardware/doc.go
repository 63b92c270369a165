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

// Package hardware is the gateway through which all parts of the emulated
// CHIP-8 machine are accessed. The Chip8 type is the collection of
// sub-systems - CPU, memory, display buffer and keypad - and every instance
// is independent of every other, so emulations can run in parallel.
//
// The package exposes no loop of its own. It is driven externally: the host
// calls Step() as many times per frame as its target instruction rate
// demands, then TickTimers() exactly once, then reads the display and sound
// state and pushes the key state for the next frame. The Run() function is a
// convenience that performs that contract for hosts without their own loop.
package hardware
