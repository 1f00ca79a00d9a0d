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

// Package duttest provides a programmable implementation of the dut.DUT
// interface for testing device models and the scheduler.
package duttest

// DUT is a map-backed signal source. Unset signals read as zero. The
// OnEvaluate hook, if set, runs on every Evaluate() call and can be used to
// model combinational behaviour (a loopback wire, a pattern generator).
type DUT struct {
	signals map[string]uint64

	// OnEvaluate is called at the end of every Evaluate()
	OnEvaluate func(*DUT)

	evaluations int
	finished    bool
}

// NewDUT is the preferred method of initialisation for the DUT type.
func NewDUT() *DUT {
	return &DUT{
		signals: make(map[string]uint64),
	}
}

// Peek implements the dut.DUT interface.
func (d *DUT) Peek(signal string) uint64 {
	return d.signals[signal]
}

// Poke implements the dut.DUT interface.
func (d *DUT) Poke(signal string, value uint64) {
	d.signals[signal] = value
}

// Evaluate implements the dut.DUT interface.
func (d *DUT) Evaluate() {
	d.evaluations++
	if d.OnEvaluate != nil {
		d.OnEvaluate(d)
	}
}

// Finished implements the dut.DUT interface.
func (d *DUT) Finished() bool {
	return d.finished
}

// Finish marks the design as having signalled completion.
func (d *DUT) Finish() {
	d.finished = true
}

// Evaluations returns the number of times Evaluate() has been called.
func (d *DUT) Evaluations() int {
	return d.evaluations
}
