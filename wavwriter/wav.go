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

// Package wavwriter allows writing of captured audio samples to disk as a
// WAV file. Samples are buffered in memory in their entirety by the bus
// model and written in one go at the end of the run. It is therefore
// probably only suitable for testing purposes.
package wavwriter

import (
	"os"

	"github.com/apfaudio/perisim/curated"
	"github.com/apfaudio/perisim/logger"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WavWriter writes mono 16-bit sample streams to disk.
type WavWriter struct {
	filename   string
	sampleRate int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) *WavWriter {
	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
	}
}

// Write the sample stream. The file is created, encoded and closed in one
// call.
func (aw *WavWriter) Write(samples []int16) (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	enc := wav.NewEncoder(f, aw.sampleRate, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)

	return nil
}
