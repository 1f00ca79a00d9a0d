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

package demo_test

import (
	"testing"

	"github.com/apfaudio/perisim/dut/demo"
	"github.com/apfaudio/perisim/test"
)

// cycle a clock signal once: rising edge, evaluate, falling edge, evaluate.
func cycle(dev *demo.SoC, signal string) {
	dev.Poke(signal, 1)
	dev.Evaluate()
	dev.Poke(signal, 0)
	dev.Evaluate()
}

func TestEdgeDetection(t *testing.T) {
	dev := demo.NewSoC(demo.Opts{ActiveWidth: 4, ActiveHeight: 2, HBlank: 1, VBlank: 1})

	// repeated evaluation at a held clock level must not retrigger the edge
	dev.Poke("clk_audio", 1)
	dev.Evaluate()
	test.Equate(t, dev.Peek("i2s_bick"), 1)
	dev.Evaluate()
	dev.Evaluate()
	test.Equate(t, dev.Peek("i2s_bick"), 1)

	dev.Poke("clk_audio", 0)
	dev.Evaluate()
	dev.Poke("clk_audio", 1)
	dev.Evaluate()
	test.Equate(t, dev.Peek("i2s_bick"), 0)
}

func TestFrameSyncPeriod(t *testing.T) {
	dev := demo.NewSoC(demo.Opts{ActiveWidth: 4, ActiveHeight: 2, HBlank: 1, VBlank: 1})

	// two audio clock cycles per bit period. frame sync is high for the
	// first 64 bit periods of every 128
	for tick := 1; tick <= 512; tick++ {
		cycle(dev, "clk_audio")
		test.Equate(t, dev.Peek("i2s_bick") == 1, tick%2 == 1)
		test.Equate(t, dev.Peek("i2s_lrck") == 1, (tick/2)%128 < 64)
	}
}

func TestSerialEcho(t *testing.T) {
	dev := demo.NewSoC(demo.Opts{ActiveWidth: 4, ActiveHeight: 2, HBlank: 1, VBlank: 1})

	dev.Poke("i2s_sdout1", 1)
	dev.Evaluate()
	test.Equate(t, dev.Peek("i2s_sdin1"), 1)

	dev.Poke("i2s_sdout1", 0)
	dev.Evaluate()
	test.Equate(t, dev.Peek("i2s_sdin1"), 0)
}

func TestBeamSweep(t *testing.T) {
	dev := demo.NewSoC(demo.Opts{
		ActiveWidth: 4, ActiveHeight: 2,
		HBlank: 2, VBlank: 1,
		FinishAfterSweeps: 1,
	})

	syncs := 0
	enables := 0
	for i := 0; i < (4+2)*(2+1); i++ {
		if dev.Peek("dvi_de") == 1 {
			enables++
		}
		if dev.Peek("dvi_vsync") == 1 {
			syncs++
		}
		cycle(dev, "clk_dvi")
	}

	// one tick of lag between the beam position and the driven signals
	test.Equate(t, enables, 4*2)
	test.Equate(t, syncs, 1)
	test.ExpectedSuccess(t, dev.Finished())
}

func TestMemoryWalker(t *testing.T) {
	dev := demo.NewSoC(demo.Opts{ActiveWidth: 4, ActiveHeight: 2, HBlank: 1, VBlank: 1})

	// emulate the RAM model: remember writes, answer reads
	ram := make(map[uint64]uint64)
	for i := 0; i < 30; i++ {
		cycle(dev, "clk_sync")
		if dev.Peek("write_ready") == 1 {
			ram[dev.Peek("address_ptr")] = dev.Peek("write_data")
		}
		if dev.Peek("read_ready") == 1 {
			dev.Poke("read_data_view", ram[dev.Peek("address_ptr")])
		}
	}

	ok, bad := dev.MemoryChecks()
	if ok == 0 {
		t.Errorf("no memory round trips completed")
	}
	test.Equate(t, bad, 0)
}
