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

// Package spiflash models the memory-mapped flash as a combinational path:
// the design asserts a word address and expects the corresponding word on
// its data input within the same time step, before any clock edge. The
// model therefore runs as a sim.StepHandler, not an edge handler.
package spiflash

import "github.com/apfaudio/perisim/dut"

// DefaultSize of the backing store: 32MiB, matching the part on the board.
const DefaultSize = 32 * 1024 * 1024

// Signals names the DUT signals the model reads and drives.
type Signals struct {
	Addr string // word address, read
	Data string // word at the address, driven
}

// DefaultSignals returns the port names of the reference design.
func DefaultSignals() Signals {
	return Signals{
		Addr: "spiflash_addr",
		Data: "spiflash_data",
	}
}

// SPIFlash models the flash. Create with NewSPIFlash() and register with
// the scheduler as a step handler.
type SPIFlash struct {
	dev  dut.DUT
	sig  Signals
	data []byte
}

// NewSPIFlash is the preferred method of initialisation for the SPIFlash
// type. A size of zero selects DefaultSize.
func NewSPIFlash(dev dut.DUT, sig Signals, size int) *SPIFlash {
	if size == 0 {
		size = DefaultSize
	}
	return &SPIFlash{
		dev:  dev,
		sig:  sig,
		data: make([]byte, size),
	}
}

// Data exposes the backing store, for preloading firmware images before the
// run starts.
func (f *SPIFlash) Data() []byte {
	return f.data
}

// PreStep implements the sim.StepHandler interface. The address is a 32-bit
// word index, not a byte offset.
func (f *SPIFlash) PreStep() {
	o := uint32(f.dev.Peek(f.sig.Addr)) * 4
	v := uint32(f.data[o]) |
		uint32(f.data[o+1])<<8 |
		uint32(f.data[o+2])<<16 |
		uint32(f.data[o+3])<<24
	f.dev.Poke(f.sig.Data, uint64(v))
}
