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

// Package modalflag layers sub-modes on top of the flag package from the
// standard library. A program using it can accept command lines of the
// form:
//
//	program [flags] [mode [flags]] arguments
//
// Each layer of the command line is parsed in turn. Flags are declared for
// the current layer, Parse() is called, and the Mode() function then says
// which sub-mode (if any) was selected. The caller declares the next
// layer's flags and calls Parse() again, until only plain arguments
// remain.
//
// Sub-mode matching is case insensitive and the first sub-mode in the list
// given to AddSubModes() acts as the default when the user names no mode
// at all.
package modalflag
