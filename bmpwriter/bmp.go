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

// Package bmpwriter persists completed frames as BMP files, one file per
// frame, numbered in completion order.
package bmpwriter

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/apfaudio/perisim/curated"
	"github.com/apfaudio/perisim/hardware/dvi"
	"github.com/apfaudio/perisim/logger"

	"golang.org/x/image/bmp"
)

// BMPWriter implements the dvi.FrameWriter interface. Frames are written as
// they complete, to files named frame00.bmp, frame01.bmp, etc.
type BMPWriter struct {
	dir string
}

// NewBMPWriter is the preferred method of initialisation for the BMPWriter
// type. Files are created in the given directory.
func NewBMPWriter(dir string) (*BMPWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, curated.Errorf("bmpwriter: %v", err)
	}
	return &BMPWriter{dir: dir}, nil
}

// WriteFrame implements the dvi.FrameWriter interface.
func (bw *BMPWriter) WriteFrame(frame *dvi.Frame) (rerr error) {
	img := image.NewNRGBA(image.Rect(0, 0, frame.Spec.ActiveWidth, frame.Spec.ActiveHeight))
	for i := 0; i < len(frame.Pixels)/dvi.PixelDepth; i++ {
		img.Pix[i*4] = frame.Pixels[i*3]
		img.Pix[i*4+1] = frame.Pixels[i*3+1]
		img.Pix[i*4+2] = frame.Pixels[i*3+2]
		img.Pix[i*4+3] = 255
	}

	name := filepath.Join(bw.dir, fmt.Sprintf("frame%02d.bmp", frame.Num))

	f, err := os.Create(name)
	if err != nil {
		return curated.Errorf("bmpwriter: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("bmpwriter: %v", err)
		}
	}()

	if err := bmp.Encode(f, img); err != nil {
		return curated.Errorf("bmpwriter: %v", err)
	}

	logger.Logf("bmpwriter", "writing frame to %s", name)

	return nil
}
