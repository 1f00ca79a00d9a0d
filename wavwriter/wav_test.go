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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apfaudio/perisim/test"
	"github.com/apfaudio/perisim/wavwriter"

	"github.com/go-audio/wav"
)

func TestRoundTrip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "ch0.wav")

	samples := []int16{100, -200, 300, -400}

	aw := wavwriter.New(name, 48000)
	test.ExpectedSuccess(t, aw.Write(samples))

	f, err := os.Open(name)
	test.ExpectedSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectedSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.ExpectedSuccess(t, err)

	test.Equate(t, int(dec.SampleRate), 48000)
	test.Equate(t, buf.Data, []int{100, -200, 300, -400})
}
