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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/apfaudio/perisim/hardware/dvi"
)

// Video is an implementation of the dvi.FrameWriter interface. It folds
// every completed frame into a chained SHA-1 value; the digest after N
// frames therefore depends on every pixel of every one of them.
type Video struct {
	digest [sha1.Size]byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Frames returns the number of frames folded into the digest so far.
func (dig *Video) Frames() int {
	return dig.frames
}

// WriteFrame implements the dvi.FrameWriter interface.
func (dig *Video) WriteFrame(frame *dvi.Frame) error {
	b := make([]byte, 0, len(dig.digest)+len(frame.Pixels))
	b = append(b, dig.digest[:]...)
	b = append(b, frame.Pixels...)
	dig.digest = sha1.Sum(b)
	dig.frames++
	return nil
}
