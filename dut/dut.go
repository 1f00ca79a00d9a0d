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

// Package dut defines the boundary between the harness and the design under
// test. The design is opaque: a flat set of named signals and an evaluation
// operation that propagates input values to outputs.
//
// Device models and the scheduler depend only on the DUT interface, so any
// signal source can be substituted. The duttest sub-package provides a
// programmable implementation for tests and the demo sub-package a small
// synthetic SoC for running the harness binary standalone.
package dut

// DUT is the interface to the design under test.
type DUT interface {
	// Peek returns the current value of the named signal.
	Peek(signal string) uint64

	// Poke sets the value of the named input signal. Evaluate() must be
	// called before dependent output signals are read back.
	Poke(signal string, value uint64)

	// Evaluate propagates current input signal values to outputs.
	Evaluate()

	// Finished returns true once the design has signalled completion.
	Finished() bool
}

// PeekBit reads the named signal as a logic level.
func PeekBit(d DUT, signal string) bool {
	return d.Peek(signal)&1 == 1
}

// PokeBit drives the named signal with a logic level.
func PokeBit(d DUT, signal string, level bool) {
	if level {
		d.Poke(signal, 1)
	} else {
		d.Poke(signal, 0)
	}
}
