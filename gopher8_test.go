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

package main_test

import (
	"testing"

	"github.com/hexworth/gopher8/hardware"
)

func BenchmarkCPU(b *testing.B) {
	ch8 := hardware.NewChip8()

	// a busy little program. draw a glyph, bump a register, jump back
	prog := []byte{
		0x60, 0x00, // 6000  LD V0, 0
		0xf0, 0x29, // f029  LD F, V0
		0xd1, 0x25, // d125  DRW V1, V2, 5
		0x70, 0x01, // 7001  ADD V0, 1
		0x12, 0x02, // 1202  JP 0x202
	}

	if err := ch8.Mem.Load(prog); err != nil {
		b.Fatalf("error preparing machine: %s", err)
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if err := ch8.Step(); err != nil {
			b.Fatalf("error stepping machine: %s", err)
		}
	}
}
