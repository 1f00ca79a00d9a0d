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
)

// Digest is implemented by all digest types in this package.
type Digest interface {
	Hash() string
	ResetDigest()
}

// Audio folds captured sample streams into a chained SHA-1 value.
type Audio struct {
	digest [sha1.Size]byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{}
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// Fold a captured sample stream into the digest. Samples are folded as
// little-endian 16-bit values.
func (dig *Audio) Fold(samples []int16) {
	b := make([]byte, 0, len(dig.digest)+len(samples)*2)
	b = append(b, dig.digest[:]...)
	for _, s := range samples {
		b = append(b, byte(uint16(s)), byte(uint16(s)>>8))
	}
	dig.digest = sha1.Sum(b)
}
