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

// Package i2s models the TDM serial audio bus of the audio codec. One shared
// data line carries four logical channels, each owning a 32 bit-clock slot
// within a repeating frame marked by the frame-sync (LRCK) line.
//
// The model is attached to the audio clock domain. On every toggle of the
// domain clock it compares the frame-sync and bit-clock levels against the
// levels it saw last time and acts on the transitions:
//
//   - LRCK rising: the active slot resets to the configured start slot, the
//     bit counter to zero, and transmission setup runs for that slot.
//   - BICK falling: the bit counter advances, wrapping across the four slots;
//     the next transmit bit is driven onto the data-out line. The wrap back
//     into the start slot does not run transmission setup: that setup belongs
//     to the frame-sync edge, which lands on the same or a neighbouring bit
//     period, and running both would consume two samples for one frame.
//   - BICK rising: the data-in line is sampled into the active slot's
//     receive accumulator.
//
// Samples are 16 bits within a 32-bit slot. The serial stream uses the
// codec's one-bit-delayed MSB-first alignment: on transmit the most
// significant bit is driven on the second bit period of the slot, and on
// receive the assembled value is left-shifted by one after sign-extension to
// undo the same delay. A consequence is that the least significant bit of a
// sample does not survive a loopback.
package i2s
