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

// Package dvi models the pixel-streaming display interface. Pixels are
// accumulated into a frame buffer on the rising phase of the pixel clock and
// completed frames are handed to every attached FrameWriter.
//
// Two frame-completion rules exist across revisions of the reference design
// and the model supports both, selected by Opts.Coordinates:
//
//   - cursor rule (default): the model tracks its own (x, y) write cursor.
//     Vertical sync resets the cursor to the origin; a data-enable tick
//     writes at the cursor and advances it; the frame completes when the
//     cursor wraps off the bottom of the active window. No pixel is accepted
//     until the first vertical sync has been observed, so a partial leading
//     frame is never captured.
//
//   - coordinate rule: the design exposes its own beam coordinates. The
//     pixel is written at those coordinates when they are inside the active
//     window and the frame completes at the last coordinate of the window.
//
// After a completed frame the cursor returns to the origin and accumulation
// continues immediately, without waiting for another vertical sync.
package dvi

import (
	"fmt"

	"github.com/apfaudio/perisim/dut"
	"github.com/apfaudio/perisim/logger"
)

// PixelDepth is the number of bytes per pixel in the frame buffer.
const PixelDepth = 3

// Spec describes the active window of the video mode being tested.
type Spec struct {
	Name         string
	ActiveWidth  int
	ActiveHeight int
}

// Video modes used by the reference designs.
var (
	SpecVGA  = Spec{Name: "640x480", ActiveWidth: 640, ActiveHeight: 480}
	Spec720p = Spec{Name: "1280x720", ActiveWidth: 1280, ActiveHeight: 720}
)

// SpecByName returns the video mode with the given name. The boolean return
// value is false if the name is not recognised.
func SpecByName(name string) (Spec, bool) {
	for _, s := range []Spec{SpecVGA, Spec720p} {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}

// Frame is a completed image: PixelDepth bytes per pixel, row major.
type Frame struct {
	Spec   Spec
	Num    int
	Pixels []byte
}

// FrameWriter implementations persist or otherwise consume completed frames.
// For example bmpwriter.BMPWriter and digest.Video.
type FrameWriter interface {
	WriteFrame(frame *Frame) error
}

// Signals names the DUT signals the model reads.
type Signals struct {
	Clk        string // pixel clock, read
	VSync      string // vertical sync, read (cursor rule)
	DataEnable string // active video marker, read (cursor rule)
	X          string // beam x coordinate, read (coordinate rule)
	Y          string // beam y coordinate, read (coordinate rule)
	R, G, B    string // colour channels, read
}

// DefaultSignals returns the port names of the reference design.
func DefaultSignals() Signals {
	return Signals{
		Clk:        "clk_dvi",
		VSync:      "dvi_vsync",
		DataEnable: "dvi_de",
		X:          "dvi_x",
		Y:          "dvi_y",
		R:          "dvi_r",
		G:          "dvi_g",
		B:          "dvi_b",
	}
}

// Opts control the capture behaviour.
type Opts struct {
	// Coordinates selects the coordinate completion rule over the default
	// cursor rule.
	Coordinates bool
}

// DVI models the display capture. Create with NewDVI() and attach to the
// pixel clock domain.
type DVI struct {
	dev  dut.DUT
	sig  Signals
	spec Spec
	opts Opts

	pixels []byte
	x, y   int

	// no pixel is accepted until the first vertical sync (cursor rule only)
	syncSeen bool

	frameNum int

	writers []FrameWriter
}

// NewDVI is the preferred method of initialisation for the DVI type.
func NewDVI(dev dut.DUT, sig Signals, spec Spec, opts Opts) *DVI {
	return &DVI{
		dev:    dev,
		sig:    sig,
		spec:   spec,
		opts:   opts,
		pixels: make([]byte, spec.ActiveWidth*spec.ActiveHeight*PixelDepth),
	}
}

func (v *DVI) String() string {
	return fmt.Sprintf("%s: cursor: (%d, %d) frames: %d", v.spec.Name, v.x, v.y, v.frameNum)
}

// AddFrameWriter attaches an (additional) implementation of FrameWriter.
func (v *DVI) AddFrameWriter(w FrameWriter) {
	v.writers = append(v.writers, w)
}

// Frames returns the number of completed frames.
func (v *DVI) Frames() int {
	return v.frameNum
}

// PostEdge implements the sim.EdgeHandler interface. Only the rising phase
// of the pixel clock acts.
func (v *DVI) PostEdge() {
	if !dut.PeekBit(v.dev, v.sig.Clk) {
		return
	}

	if v.opts.Coordinates {
		v.coordinateTick()
	} else {
		v.cursorTick()
	}
}

func (v *DVI) cursorTick() {
	if dut.PeekBit(v.dev, v.sig.VSync) {
		v.x = 0
		v.y = 0
		v.syncSeen = true
	}

	if !v.syncSeen || !dut.PeekBit(v.dev, v.sig.DataEnable) {
		return
	}

	if v.x < v.spec.ActiveWidth && v.y < v.spec.ActiveHeight {
		v.plot(v.x, v.y)
	}

	v.x++
	if v.x == v.spec.ActiveWidth {
		v.x = 0
		v.y++
		if v.y == v.spec.ActiveHeight {
			v.y = 0
			v.completeFrame()
		}
	}
}

func (v *DVI) coordinateTick() {
	x := int(v.dev.Peek(v.sig.X))
	y := int(v.dev.Peek(v.sig.Y))

	if x < v.spec.ActiveWidth && y < v.spec.ActiveHeight {
		v.plot(x, y)
	}

	if x == v.spec.ActiveWidth-1 && y == v.spec.ActiveHeight-1 {
		v.completeFrame()
	}
}

func (v *DVI) plot(x, y int) {
	o := (y*v.spec.ActiveWidth + x) * PixelDepth
	v.pixels[o] = byte(v.dev.Peek(v.sig.R))
	v.pixels[o+1] = byte(v.dev.Peek(v.sig.G))
	v.pixels[o+2] = byte(v.dev.Peek(v.sig.B))
}

// completeFrame hands a copy of the frame buffer to every attached writer.
// Persistence is best effort: a writer error is logged, not propagated.
func (v *DVI) completeFrame() {
	frame := &Frame{
		Spec:   v.spec,
		Num:    v.frameNum,
		Pixels: make([]byte, len(v.pixels)),
	}
	copy(frame.Pixels, v.pixels)

	for _, w := range v.writers {
		if err := w.WriteFrame(frame); err != nil {
			logger.Logf("dvi", "frame %d: %v", v.frameNum, err)
		}
	}

	v.frameNum++
}
