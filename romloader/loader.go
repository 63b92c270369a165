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

// Package romloader is used to specify the ROM to load into the emulated
// machine. CHIP-8 ROMs are raw binary files - a big-endian instruction
// stream with no header - so there is no fingerprinting to be done, but the
// loader knows the common file extensions and logs a note when it sees
// something unfamiliar.
package romloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hexworth/gopher8/curated"
	"github.com/hexworth/gopher8/logger"
)

// sentinal errors returned by the romloader package.
const (
	LoadError = "romloader: %v"
)

// file extensions in common use for CHIP-8 programs.
var fileExtensions = []string{".ch8", ".c8", ".rom", ".bin"}

// Loader is used to specify the ROM to attach to the machine.
type Loader struct {
	// filename of the ROM to load
	Filename string

	// sha1 of the loaded data. valid after a call to Load()
	Hash string

	// copy of the loaded data. valid after a call to Load()
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns a shortened version of the ROM filename, suitable for
// window titles and log entries.
func (ld Loader) ShortName() string {
	sn := filepath.Base(ld.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(sn))
}

// Load the ROM data from disk. The data is not validated against the size of
// the machine's program space here - that happens when the data is copied
// into memory.
func (ld *Loader) Load() error {
	ext := strings.ToLower(filepath.Ext(ld.Filename))
	recognised := false
	for _, e := range fileExtensions {
		if ext == e {
			recognised = true
			break
		}
	}
	if !recognised {
		logger.Logf("romloader", "unusual file extension (%s); loading anyway", ext)
	}

	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	ld.Data = data
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	return nil
}
