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

// Package keypad implements the input state of the CHIP-8 machine. The
// machine has a 4x4 hexadecimal keypad, keys 0 to F. The frontend is
// responsible for mapping whatever physical input it has onto those sixteen
// keys and for pushing a complete snapshot once per frame with SetKeys().
//
// The keypad keeps the previous snapshot alongside the current one so that
// the CPU's wait-for-key opcode can see a key transitioning into the pressed
// state, as opposed to a key that is merely held down.
package keypad

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad implements the input state of the machine.
type Keypad struct {
	keys [NumKeys]bool
	prev [NumKeys]bool

	// number of times SetKeys() has been called since reset. used to decide
	// whether a snapshot is "new" with respect to some earlier point in time
	pushes int
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Reset the keypad. All keys released and the push counter rewound.
func (key *Keypad) Reset() {
	key.keys = [NumKeys]bool{}
	key.prev = [NumKeys]bool{}
	key.pushes = 0
}

// SetKeys replaces the entire key state with a new snapshot. Must be called
// once per frame, before any key-sensitive opcode executes in that frame.
func (key *Keypad) SetKeys(state [NumKeys]bool) {
	key.prev = key.keys
	key.keys = state
	key.pushes++
}

// IsPressed returns the state of key k. Only the least significant nibble of
// k takes part.
func (key *Keypad) IsPressed(k uint8) bool {
	return key.keys[k&0x0f]
}

// Pushes returns the number of SetKeys() calls since reset.
func (key *Keypad) Pushes() int {
	return key.pushes
}

// NewlyPressed returns the lowest-numbered key that is pressed in the
// current snapshot but was not pressed in the previous one. The second
// return value is false if there is no such key.
func (key *Keypad) NewlyPressed() (uint8, bool) {
	for k := 0; k < NumKeys; k++ {
		if key.keys[k] && !key.prev[k] {
			return uint8(k), true
		}
	}
	return 0, false
}
