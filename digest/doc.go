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

// Package digest produces regression fingerprints of a run without storing
// any image or audio data. Video digests chain over every completed frame
// and audio digests over a captured sample stream, so a single hex string
// stands in for the entire output of a simulation.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
package digest
