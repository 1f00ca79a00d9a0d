// This file is part of Perisim.
//
// Perisim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Perisim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Perisim.  If not, see <https://www.gnu.org/licenses/>.

// Package loader populates device backing stores from on-disk binary images
// before the run starts. A missing file is a warning, not an error: the run
// proceeds with the store zero-filled.
package loader

import (
	"os"

	"github.com/apfaudio/perisim/curated"
	"github.com/apfaudio/perisim/logger"
)

// Load copies the named file into dst at the given byte offset. Returns the
// number of bytes loaded. An image that does not fit is a fatal
// configuration error.
func Load(dst []byte, filename string, offset int) (int, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		logger.Logf("loader", "warning: could not load %s, continuing zero-filled", filename)
		return 0, nil
	}

	if offset < 0 || offset+len(b) > len(dst) {
		return 0, curated.Errorf("loader: %s does not fit at offset %#x", filename, offset)
	}

	copy(dst[offset:], b)
	logger.Logf("loader", "loaded %s (%d bytes) at offset %#x", filename, len(b), offset)

	return len(b), nil
}
