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

// Package demo implements the dut.DUT interface with a small synthetic SoC,
// so that the harness can run end to end without an external simulator. The
// SoC loops the serial audio line back on itself, sweeps a video beam
// producing a gradient test pattern, walks the memory bus with a
// write-then-read-back pattern, reads the flash feed and prints a banner
// over the UART.
//
// Like a real design, outputs only move when Evaluate() is called: the SoC
// detects clock edges by comparing the driven clock levels against the
// levels it saw at the previous evaluation.
package demo

import "fmt"

// Opts size the synthetic design.
type Opts struct {
	// active window and blanking margins of the video sweep
	ActiveWidth  int
	ActiveHeight int
	HBlank       int
	VBlank       int

	// stop the simulation after this many complete video sweeps. zero
	// means run until the harness horizon
	FinishAfterSweeps int
}

// SoC is the synthetic design. Create with NewSoC().
type SoC struct {
	opts Opts

	sig map[string]uint64

	lastAudio bool
	lastSync  bool
	lastDVI   bool

	// audio serialiser: a bit clock at half the audio clock rate and a
	// frame sync marking groups of 128 bit periods
	bick      bool
	bitCycles int

	// memory walker
	memPhase  int
	memAddr   uint32
	memOK     int
	memBad    int
	flashAddr uint32

	// uart banner
	banner    []byte
	bannerIdx int
	uartDiv   int

	// video beam
	x, y   int
	sweeps int
}

// NewSoC is the preferred method of initialisation for the SoC type.
func NewSoC(opts Opts) *SoC {
	return &SoC{
		opts:   opts,
		sig:    make(map[string]uint64),
		banner: []byte("perisim demo SoC\n"),
	}
}

func (s *SoC) String() string {
	return fmt.Sprintf("demo: beam: (%d, %d) sweeps: %d mem: %d/%d",
		s.x, s.y, s.sweeps, s.memOK, s.memOK+s.memBad)
}

// Peek implements the dut.DUT interface.
func (s *SoC) Peek(signal string) uint64 {
	return s.sig[signal]
}

// Poke implements the dut.DUT interface.
func (s *SoC) Poke(signal string, value uint64) {
	s.sig[signal] = value
}

// Finished implements the dut.DUT interface.
func (s *SoC) Finished() bool {
	return s.opts.FinishAfterSweeps > 0 && s.sweeps >= s.opts.FinishAfterSweeps
}

// MemoryChecks returns how many bus round trips succeeded and failed.
func (s *SoC) MemoryChecks() (ok int, bad int) {
	return s.memOK, s.memBad
}

// Evaluate implements the dut.DUT interface.
func (s *SoC) Evaluate() {
	audio := s.sig["clk_audio"]&1 == 1
	if audio && !s.lastAudio {
		s.audioTick()
	}
	s.lastAudio = audio

	sync := s.sig["clk_sync"]&1 == 1
	if sync && !s.lastSync {
		s.memTick()
		s.uartTick()
	}
	s.lastSync = sync

	dvi := s.sig["clk_dvi"]&1 == 1
	if dvi && !s.lastDVI {
		s.videoTick()
	}
	s.lastDVI = dvi

	// the serial audio line is looped straight back
	s.sig["i2s_sdin1"] = s.sig["i2s_sdout1"]
}

func (s *SoC) audioTick() {
	s.bick = !s.bick
	if !s.bick {
		s.bitCycles++
	}

	if s.bick {
		s.sig["i2s_bick"] = 1
	} else {
		s.sig["i2s_bick"] = 0
	}

	// frame sync high for the first half of every 128 bit periods
	if s.bitCycles%128 < 64 {
		s.sig["i2s_lrck"] = 1
	} else {
		s.sig["i2s_lrck"] = 0
	}
}

func pattern(addr uint32) uint32 {
	return addr*2654435761 + 1
}

// memTick walks the memory bus: write a value derived from the address,
// read it back the next cycle, verify, move on.
func (s *SoC) memTick() {
	switch s.memPhase {
	case 0:
		s.sig["address_ptr"] = uint64(s.memAddr)
		s.sig["write_data"] = uint64(pattern(s.memAddr))
		s.sig["write_ready"] = 1
		s.sig["read_ready"] = 0
		s.sig["idle"] = 0
		s.memPhase = 1

	case 1:
		s.sig["write_ready"] = 0
		s.sig["read_ready"] = 1
		s.memPhase = 2

	case 2:
		if uint32(s.sig["read_data_view"]) == pattern(s.memAddr) {
			s.memOK++
		} else {
			s.memBad++
		}
		s.sig["read_ready"] = 0
		s.sig["idle"] = 1
		s.memAddr = (s.memAddr + 4) % 4096
		s.memPhase = 0
	}

	// walk the flash feed alongside
	s.flashAddr = (s.flashAddr + 1) % 1024
	s.sig["spiflash_addr"] = uint64(s.flashAddr)
}

func (s *SoC) uartTick() {
	s.sig["uart0_w_stb"] = 0

	if s.bannerIdx >= len(s.banner) {
		return
	}

	s.uartDiv++
	if s.uartDiv%64 == 0 {
		s.sig["uart0_w_data"] = uint64(s.banner[s.bannerIdx])
		s.sig["uart0_w_stb"] = 1
		s.bannerIdx++
	}
}

// videoTick sweeps the beam over the active window plus blanking margins.
// The vertical sync pulses at the start of the vertical blanking interval.
func (s *SoC) videoTick() {
	totalW := s.opts.ActiveWidth + s.opts.HBlank
	totalH := s.opts.ActiveHeight + s.opts.VBlank

	active := s.x < s.opts.ActiveWidth && s.y < s.opts.ActiveHeight
	if active {
		s.sig["dvi_de"] = 1
	} else {
		s.sig["dvi_de"] = 0
	}

	if s.x == 0 && s.y == s.opts.ActiveHeight {
		s.sig["dvi_vsync"] = 1
	} else {
		s.sig["dvi_vsync"] = 0
	}

	s.sig["dvi_x"] = uint64(s.x)
	s.sig["dvi_y"] = uint64(s.y)
	s.sig["dvi_r"] = uint64(s.x & 0xff)
	s.sig["dvi_g"] = uint64(s.y & 0xff)
	s.sig["dvi_b"] = uint64(s.sweeps & 0xff)

	s.x++
	if s.x == totalW {
		s.x = 0
		s.y++
		if s.y == totalH {
			s.y = 0
			s.sweeps++
		}
	}
}
