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

package digest_test

import (
	"testing"

	"github.com/apfaudio/perisim/digest"
	"github.com/apfaudio/perisim/hardware/dvi"
	"github.com/apfaudio/perisim/test"
)

func TestVideoChaining(t *testing.T) {
	a := digest.NewVideo()
	b := digest.NewVideo()

	frame := &dvi.Frame{
		Spec:   dvi.Spec{Name: "2x2", ActiveWidth: 2, ActiveHeight: 2},
		Pixels: []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	}

	// same frames, same digest
	test.ExpectedSuccess(t, a.WriteFrame(frame))
	test.ExpectedSuccess(t, b.WriteFrame(frame))
	test.Equate(t, a.Hash(), b.Hash())
	test.Equate(t, a.Frames(), 1)

	// a second identical frame must still move the digest
	prev := a.Hash()
	test.ExpectedSuccess(t, a.WriteFrame(frame))
	if a.Hash() == prev {
		t.Fatalf("digest did not change after second frame")
	}

	a.ResetDigest()
	test.Equate(t, a.Frames(), 0)
	test.Equate(t, a.Hash(), digest.NewVideo().Hash())
}

func TestAudioFolding(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()

	a.Fold([]int16{100, -200, 300, -400})
	b.Fold([]int16{100, -200})
	b.Fold([]int16{300, -400})

	// folding in two parts is not the same as folding in one: the digest is
	// chained per fold
	if a.Hash() == b.Hash() {
		t.Fatalf("chained digests unexpectedly equal")
	}

	c := digest.NewAudio()
	c.Fold([]int16{100, -200, 300, -400})
	test.Equate(t, a.Hash(), c.Hash())
}
