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

// Package uart captures the console output of the design: on the rising
// phase of its clock domain, a byte is consumed whenever the write strobe is
// asserted.
package uart

import (
	"io"

	"github.com/apfaudio/perisim/dut"
)

// Signals names the DUT signals the model reads.
type Signals struct {
	Clk    string // domain clock, read
	Strobe string // write strobe, read
	Data   string // byte being written, read
}

// DefaultSignals returns the port names of the reference design.
func DefaultSignals() Signals {
	return Signals{
		Clk:    "clk_sync",
		Strobe: "uart0_w_stb",
		Data:   "uart0_w_data",
	}
}

// UART models the console sink. Create with NewUART() and attach to the
// same clock domain the strobe is generated in.
type UART struct {
	dev dut.DUT
	sig Signals
	out io.Writer
}

// NewUART is the preferred method of initialisation for the UART type.
// Captured bytes are written to out as they arrive.
func NewUART(dev dut.DUT, sig Signals, out io.Writer) *UART {
	return &UART{
		dev: dev,
		sig: sig,
		out: out,
	}
}

// PostEdge implements the sim.EdgeHandler interface.
func (u *UART) PostEdge() {
	if !dut.PeekBit(u.dev, u.sig.Clk) {
		return
	}

	// the strobe is computed from this same clock edge and is only visible
	// once the design has settled. evaluate before sampling so the byte is
	// consumed in the cycle it is presented, whether or not another model
	// has already evaluated the design this step
	u.dev.Evaluate()

	if dut.PeekBit(u.dev, u.sig.Strobe) {
		u.out.Write([]byte{byte(u.dev.Peek(u.sig.Data))})
	}
}
