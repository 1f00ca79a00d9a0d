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

// Package psram models the byte-addressable external RAM. Reads and writes
// are 4-byte little-endian words, serviced on the rising phase of the memory
// clock domain in the same time step they are requested.
//
// Addresses are assumed in bounds. The model deliberately does no bounds
// checking: an out-of-range address from the design is undefined behaviour
// of the harness and must be prevented by configuration.
package psram

import (
	"github.com/apfaudio/perisim/dut"
	"github.com/apfaudio/perisim/logger"
)

// DefaultSize of the backing store: 32MiB, matching the part on the board.
const DefaultSize = 32 * 1024 * 1024

// Signals names the DUT signals the model reads and drives.
type Signals struct {
	Clk        string // memory domain clock, read
	Addr       string // byte address, read
	ReadReady  string // read request, read
	WriteReady string // write request, read
	ReadData   string // read result, driven
	WriteData  string // write payload, read
	Idle       string // controller idle flag, read
}

// DefaultSignals returns the port names of the reference design.
func DefaultSignals() Signals {
	return Signals{
		Clk:        "clk_sync",
		Addr:       "address_ptr",
		ReadReady:  "read_ready",
		WriteReady: "write_ready",
		ReadData:   "read_data_view",
		WriteData:  "write_data",
		Idle:       "idle",
	}
}

// PSRAM models the external RAM. Create with NewPSRAM() and attach to the
// memory clock domain.
type PSRAM struct {
	dev  dut.DUT
	sig  Signals
	data []byte

	// tick counts of the controller's idle flag, for the bandwidth summary
	idleHi uint64
	idleLo uint64
}

// NewPSRAM is the preferred method of initialisation for the PSRAM type. A
// size of zero selects DefaultSize.
func NewPSRAM(dev dut.DUT, sig Signals, size int) *PSRAM {
	if size == 0 {
		size = DefaultSize
	}
	return &PSRAM{
		dev:  dev,
		sig:  sig,
		data: make([]byte, size),
	}
}

// Data exposes the backing store, for preloading firmware images before the
// run starts.
func (p *PSRAM) Data() []byte {
	return p.data
}

// PostEdge implements the sim.EdgeHandler interface. Read and write may both
// be asserted in the same step; both are serviced, read first. The design is
// re-evaluated after each so that it observes the result in the same step.
func (p *PSRAM) PostEdge() {
	if dut.PeekBit(p.dev, p.sig.Clk) {
		addr := uint32(p.dev.Peek(p.sig.Addr))

		if dut.PeekBit(p.dev, p.sig.ReadReady) {
			v := uint32(p.data[addr]) |
				uint32(p.data[addr+1])<<8 |
				uint32(p.data[addr+2])<<16 |
				uint32(p.data[addr+3])<<24
			p.dev.Poke(p.sig.ReadData, uint64(v))
			p.dev.Evaluate()
		}

		if dut.PeekBit(p.dev, p.sig.WriteReady) {
			v := uint32(p.dev.Peek(p.sig.WriteData))
			p.data[addr] = byte(v)
			p.data[addr+1] = byte(v >> 8)
			p.data[addr+2] = byte(v >> 16)
			p.data[addr+3] = byte(v >> 24)
			p.dev.Evaluate()
		}
	}

	// track controller occupancy to see how close the RAM is to saturation
	if dut.PeekBit(p.dev, p.sig.Idle) {
		p.idleHi++
	} else {
		p.idleLo++
	}
}

// Utilization returns the percentage of ticks the controller reported itself
// busy. A monitoring aid, not part of correctness.
func (p *PSRAM) Utilization() float32 {
	total := p.idleHi + p.idleLo
	if total == 0 {
		return 0
	}
	return 100 * float32(p.idleLo) / float32(total)
}

// PostRun implements the sim.RunReporter interface.
func (p *PSRAM) PostRun() {
	logger.Logf("psram", "bandwidth: idle: %d, !idle: %d, percent used: %.2f",
		p.idleHi, p.idleLo, p.Utilization())
}
