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

package dvi_test

import (
	"testing"

	"github.com/apfaudio/perisim/dut/duttest"
	"github.com/apfaudio/perisim/hardware/dvi"
	"github.com/apfaudio/perisim/test"
)

// a small mode keeps the tests fast
var testSpec = dvi.Spec{Name: "8x4", ActiveWidth: 8, ActiveHeight: 4}

type frameCollector struct {
	frames []*dvi.Frame
}

func (c *frameCollector) WriteFrame(frame *dvi.Frame) error {
	c.frames = append(c.frames, frame)
	return nil
}

type videoRig struct {
	dev *duttest.DUT
	cap *dvi.DVI
	out *frameCollector
}

func newVideoRig(opts dvi.Opts) *videoRig {
	dev := duttest.NewDUT()
	cap := dvi.NewDVI(dev, dvi.DefaultSignals(), testSpec, opts)
	out := &frameCollector{}
	cap.AddFrameWriter(out)
	return &videoRig{dev: dev, cap: cap, out: out}
}

// tick runs one full pixel clock period. only the rising phase acts.
func (r *videoRig) tick() {
	r.dev.Poke("clk_dvi", 1)
	r.cap.PostEdge()
	r.dev.Poke("clk_dvi", 0)
	r.cap.PostEdge()
}

func (r *videoRig) vsyncPulse() {
	r.dev.Poke("dvi_vsync", 1)
	r.tick()
	r.dev.Poke("dvi_vsync", 0)
}

func (r *videoRig) rgb(c byte) {
	r.dev.Poke("dvi_r", uint64(c))
	r.dev.Poke("dvi_g", uint64(c+1))
	r.dev.Poke("dvi_b", uint64(c+2))
}

func TestCursorFrameFill(t *testing.T) {
	r := newVideoRig(dvi.Opts{})

	r.vsyncPulse()
	r.rgb(10)
	r.dev.Poke("dvi_de", 1)

	n := testSpec.ActiveWidth * testSpec.ActiveHeight
	for i := 0; i < n-1; i++ {
		r.tick()
	}

	// one tick short of a full frame
	test.Equate(t, r.cap.Frames(), 0)

	r.tick()
	test.Equate(t, r.cap.Frames(), 1)
	test.Equate(t, len(r.out.frames), 1)

	// every pixel of the frame was written
	f := r.out.frames[0]
	test.Equate(t, len(f.Pixels), n*dvi.PixelDepth)
	for i := 0; i < n; i++ {
		test.Equate(t, f.Pixels[i*3], byte(10))
		test.Equate(t, f.Pixels[i*3+1], byte(11))
		test.Equate(t, f.Pixels[i*3+2], byte(12))
	}
}

func TestBlankingNeverWrites(t *testing.T) {
	r := newVideoRig(dvi.Opts{})

	r.vsyncPulse()
	r.rgb(99)

	// data-enable low: blanking interval. the cursor must not move and
	// nothing must be written
	r.dev.Poke("dvi_de", 0)
	for i := 0; i < 100; i++ {
		r.tick()
	}

	test.Equate(t, r.cap.String(), "8x4: cursor: (0, 0) frames: 0")

	// fill a frame and check no blanking colour leaked in
	r.rgb(1)
	r.dev.Poke("dvi_de", 1)
	for i := 0; i < testSpec.ActiveWidth*testSpec.ActiveHeight; i++ {
		r.tick()
	}
	for _, p := range r.out.frames[0].Pixels {
		if p == 99 || p == 100 || p == 101 {
			t.Fatalf("blanking pixel leaked into the frame buffer")
		}
	}
}

func TestNoCaptureBeforeFirstSync(t *testing.T) {
	r := newVideoRig(dvi.Opts{})

	// pixels arriving before any vertical sync belong to a partial leading
	// frame and are dropped
	r.rgb(50)
	r.dev.Poke("dvi_de", 1)
	for i := 0; i < 1000; i++ {
		r.tick()
	}
	test.Equate(t, r.cap.Frames(), 0)
	test.Equate(t, r.cap.String(), "8x4: cursor: (0, 0) frames: 0")

	// after the first sync, capture proceeds
	r.vsyncPulse()
	for i := 0; i < testSpec.ActiveWidth*testSpec.ActiveHeight; i++ {
		r.tick()
	}
	test.Equate(t, r.cap.Frames(), 1)
}

func TestTwoFramesSingleSync(t *testing.T) {
	r := newVideoRig(dvi.Opts{})

	r.vsyncPulse()
	r.rgb(1)
	r.dev.Poke("dvi_de", 1)

	// two full frames of ticks with sync asserted only once at the start:
	// accumulation restarts without waiting for another sync
	for i := 0; i < 2*testSpec.ActiveWidth*testSpec.ActiveHeight; i++ {
		r.tick()
	}

	test.Equate(t, r.cap.Frames(), 2)
	test.Equate(t, len(r.out.frames), 2)
	for _, f := range r.out.frames {
		test.Equate(t, len(f.Pixels), testSpec.ActiveWidth*testSpec.ActiveHeight*dvi.PixelDepth)
	}
	test.Equate(t, r.out.frames[0].Num, 0)
	test.Equate(t, r.out.frames[1].Num, 1)
}

func TestMidFrameSyncResetsCursor(t *testing.T) {
	r := newVideoRig(dvi.Opts{})

	r.vsyncPulse()
	r.rgb(1)
	r.dev.Poke("dvi_de", 1)

	// abandon a frame part way through
	for i := 0; i < 13; i++ {
		r.tick()
	}
	test.Equate(t, r.cap.String(), "8x4: cursor: (5, 1) frames: 0")

	r.dev.Poke("dvi_de", 0)
	r.vsyncPulse()
	test.Equate(t, r.cap.String(), "8x4: cursor: (0, 0) frames: 0")
}

func TestCoordinateRule(t *testing.T) {
	r := newVideoRig(dvi.Opts{Coordinates: true})

	// walk the beam over the active window plus a blanking margin. pixels
	// outside the window must not land and the frame completes at the last
	// in-window coordinate
	for y := 0; y < testSpec.ActiveHeight+2; y++ {
		for x := 0; x < testSpec.ActiveWidth+4; x++ {
			r.dev.Poke("dvi_x", uint64(x))
			r.dev.Poke("dvi_y", uint64(y))
			r.rgb(byte(y * 10))
			r.tick()

			if y == testSpec.ActiveHeight-1 && x == testSpec.ActiveWidth-1 {
				test.Equate(t, r.cap.Frames(), 1)
			}
		}
	}

	test.Equate(t, r.cap.Frames(), 1)

	f := r.out.frames[0]
	for y := 0; y < testSpec.ActiveHeight; y++ {
		for x := 0; x < testSpec.ActiveWidth; x++ {
			test.Equate(t, f.Pixels[(y*testSpec.ActiveWidth+x)*3], byte(y*10))
		}
	}
}
