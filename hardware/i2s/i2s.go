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

package i2s

import (
	"fmt"
	"strings"

	"github.com/apfaudio/perisim/dut"
)

// NumChannels is the number of TDM slots in a frame. Fixed by the codec.
const NumChannels = 4

const (
	slotBits   = 32
	sampleBits = 16
)

// Signals names the DUT signals the model reads and drives. The zero value
// is not useful; use DefaultSignals() for the port names of the reference
// design.
type Signals struct {
	LRCK  string // frame-sync, read
	BICK  string // bit clock, read
	SDIn  string // serial data out of the design, read
	SDOut string // serial data into the design, driven
}

// DefaultSignals returns the port names of the reference design.
func DefaultSignals() Signals {
	return Signals{
		LRCK:  "i2s_lrck",
		BICK:  "i2s_bick",
		SDIn:  "i2s_sdin1",
		SDOut: "i2s_sdout1",
	}
}

// Opts control the protocol variations seen across codec configurations.
type Opts struct {
	// StartSlot is the slot made active when frame-sync asserts.
	StartSlot int

	// Descend selects downward slot progression (3, 2, 1, 0) rather than
	// upward.
	Descend bool

	// FoldOverflow applies the legacy capture correction used by older
	// revisions of the reference design: captured values above 16384 are
	// folded negative by subtracting 32769 before the shift correction.
	// Off by default; it is a workaround for a quirk of one hardware
	// revision, not a general rule.
	FoldOverflow bool
}

// channel holds the per-slot state of the bus.
type channel struct {
	// pending samples are consumed oldest first, one per frame
	pending []int16

	// captured samples in the order they arrived. append only
	captured []int16

	tx       int16  // sample currently being shifted out
	rx       uint32 // accumulator for received bits
	txActive bool   // transmission in progress for this frame
}

// I2S models the four channel TDM audio bus. Create with NewI2S() and attach
// to the audio clock domain.
type I2S struct {
	dev  dut.DUT
	sig  Signals
	opts Opts

	ch [NumChannels]channel

	slot int
	bit  int

	lastLRCK bool
	lastBICK bool
}

// NewI2S is the preferred method of initialisation for the I2S type.
func NewI2S(dev dut.DUT, sig Signals, opts Opts) *I2S {
	return &I2S{
		dev:  dev,
		sig:  sig,
		opts: opts,
		slot: opts.StartSlot,
	}
}

func (b *I2S) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("slot: %d bit: %02d", b.slot, b.bit))
	for i := range b.ch {
		s.WriteString(fmt.Sprintf("  ch%d: %d/%d", i, len(b.ch[i].pending), len(b.ch[i].captured)))
	}
	return s.String()
}

// InjectSample appends a sample to the channel's pending-transmission queue.
// A no-op for out-of-range channels.
func (b *I2S) InjectSample(channel int, sample int16) {
	if channel < 0 || channel >= NumChannels {
		return
	}
	b.ch[channel].pending = append(b.ch[channel].pending, sample)
}

// CapturedSamples returns a snapshot of the samples captured so far for the
// channel. An empty slice for out-of-range channels.
func (b *I2S) CapturedSamples(channel int) []int16 {
	if channel < 0 || channel >= NumChannels {
		return []int16{}
	}
	snap := make([]int16, len(b.ch[channel].captured))
	copy(snap, b.ch[channel].captured)
	return snap
}

// PostEdge implements the sim.EdgeHandler interface.
func (b *I2S) PostEdge() {
	lrck := dut.PeekBit(b.dev, b.sig.LRCK)
	bick := dut.PeekBit(b.dev, b.sig.BICK)

	// frame-sync rising edge. the reset is unconditional: whatever slot/bit
	// state preceded it is discarded
	if lrck && !b.lastLRCK {
		b.slot = b.opts.StartSlot
		b.bit = 0
		b.setupTransmission(b.slot)
	}

	// bit-clock falling edge ends the bit period
	if b.lastBICK && !bick {
		b.bit++
		if b.bit >= slotBits {
			b.bit = 0
			b.slot = b.nextSlot(b.slot)
			if b.slot == b.opts.StartSlot {
				// transmission setup for the start slot belongs to the
				// frame-sync edge, which lands on this edge or a
				// neighbouring one. dequeueing here as well would
				// consume a sample the sync reset then clobbers. the
				// slot transmits silence until the sync arrives
				b.ch[b.slot].txActive = false
			} else {
				b.setupTransmission(b.slot)
			}
		}
		b.transmitBit()
	}

	// bit-clock rising edge samples the data line
	if bick && !b.lastBICK {
		b.receiveBit()
	}

	b.lastLRCK = lrck
	b.lastBICK = bick
}

func (b *I2S) nextSlot(slot int) int {
	if b.opts.Descend {
		if slot == 0 {
			return NumChannels - 1
		}
		return slot - 1
	}
	return (slot + 1) % NumChannels
}

// setupTransmission dequeues the next pending sample for the slot. A slot
// with nothing pending transmits silence for the whole frame.
func (b *I2S) setupTransmission(slot int) {
	cs := &b.ch[slot]
	if len(cs.pending) > 0 {
		cs.tx = cs.pending[0]
		cs.pending = cs.pending[1:]
		cs.txActive = true
	} else {
		cs.txActive = false
	}
}

// transmitBit drives the data-out line for the current bit period. The MSB
// is driven one bit period into the slot, matching the codec's alignment.
func (b *I2S) transmitBit() {
	cs := &b.ch[b.slot]
	if b.bit < sampleBits && cs.txActive {
		b.dev.Poke(b.sig.SDOut, uint64((int32(cs.tx)>>uint(sampleBits-b.bit))&1))
	} else {
		// zero padding for the rest of the slot
		b.dev.Poke(b.sig.SDOut, 0)
	}
}

// receiveBit shifts the data-in line into the active slot's accumulator.
// The 16th bit completes a sample: sign-extend, correct the bit alignment
// and append to the captured list.
func (b *I2S) receiveBit() {
	if b.bit >= sampleBits {
		return
	}

	cs := &b.ch[b.slot]
	cs.rx = (cs.rx << 1) | uint32(b.dev.Peek(b.sig.SDIn)&1)

	if b.bit == sampleBits-1 {
		sample := int16(cs.rx)
		if b.opts.FoldOverflow && sample > 16384 {
			sample = int16(int32(sample) - 32769)
		}
		cs.captured = append(cs.captured, sample<<1)
		cs.rx = 0
	}
}
