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

package hardware

// InstructionsPerFrame is the default number of instructions stepped for
// every timer tick. With a 60Hz frame rate this approximates the instruction
// rate of interpreters of the period. Hosts are free to choose another
// value.
const InstructionsPerFrame = 10

// Run drives the machine according to the host driving contract: for every
// frame, step the given number of instructions and then tick the timers
// once.
//
// The continueCheck() function is called at the end of every frame. Return
// false to end the emulation. A nil continueCheck runs the emulation
// forever, or until a machine error.
func (ch8 *Chip8) Run(instructionsPerFrame int, continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	if instructionsPerFrame <= 0 {
		instructionsPerFrame = InstructionsPerFrame
	}

	for {
		for i := 0; i < instructionsPerFrame; i++ {
			if err := ch8.Step(); err != nil {
				return err
			}
		}

		ch8.TickTimers()

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
