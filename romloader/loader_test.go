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

package romloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hexworth/gopher8/curated"
	"github.com/hexworth/gopher8/romloader"
	"github.com/hexworth/gopher8/test"
)

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "pong.ch8")
	if err := os.WriteFile(fn, []byte{0x12, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}

	ld := romloader.NewLoader(fn)
	err := ld.Load()
	test.ExpectedSuccess(t, err)

	test.Equate(t, len(ld.Data), 2)
	test.Equate(t, ld.ShortName(), "pong")

	// sha1 of the two byte sequence above
	test.Equate(t, ld.Hash, "92a5652d382a18e89c4881ec57041fc7d885ca80")
}

func TestLoadMissingFile(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "no_such_file.ch8"))
	err := ld.Load()
	test.ExpectedFailure(t, err)

	if !curated.Is(err, romloader.LoadError) {
		t.Errorf("expected romloader error, got: %v", err)
	}
}
