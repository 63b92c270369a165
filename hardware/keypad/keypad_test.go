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

package keypad_test

import (
	"testing"

	"github.com/hexworth/gopher8/hardware/keypad"
	"github.com/hexworth/gopher8/test"
)

func TestSnapshots(t *testing.T) {
	key := keypad.NewKeypad()

	test.Equate(t, key.Pushes(), 0)
	test.Equate(t, key.IsPressed(0x0a), false)

	var state [keypad.NumKeys]bool
	state[0x0a] = true
	key.SetKeys(state)

	test.Equate(t, key.Pushes(), 1)
	test.Equate(t, key.IsPressed(0x0a), true)
	test.Equate(t, key.IsPressed(0x0b), false)

	// only the lower nibble of the key number takes part
	test.Equate(t, key.IsPressed(0xfa), true)
}

func TestNewlyPressed(t *testing.T) {
	key := keypad.NewKeypad()

	// no snapshots yet so nothing is newly pressed
	_, ok := key.NewlyPressed()
	test.Equate(t, ok, false)

	var state [keypad.NumKeys]bool
	state[0x05] = true
	key.SetKeys(state)

	k, ok := key.NewlyPressed()
	test.Equate(t, ok, true)
	test.Equate(t, k, 0x05)

	// the same key held across a second snapshot is no longer new
	key.SetKeys(state)
	_, ok = key.NewlyPressed()
	test.Equate(t, ok, false)

	// a second key joining the first is new. the held key is ignored
	state[0x02] = true
	key.SetKeys(state)
	k, ok = key.NewlyPressed()
	test.Equate(t, ok, true)
	test.Equate(t, k, 0x02)
}

func TestReset(t *testing.T) {
	key := keypad.NewKeypad()

	var state [keypad.NumKeys]bool
	state[0x00] = true
	key.SetKeys(state)
	test.Equate(t, key.Pushes(), 1)

	key.Reset()
	test.Equate(t, key.Pushes(), 0)
	test.Equate(t, key.IsPressed(0x00), false)
}
