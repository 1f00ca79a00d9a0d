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

// Package stimulus prepares sample streams for injection into the audio bus
// model: synthetic waves, or mono PCM decoded from a WAV or MP3 file. In the
// case of stereo source files only the left channel is used.
package stimulus

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/apfaudio/perisim/curated"
	"github.com/apfaudio/perisim/logger"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// Sine returns n samples of a sine wave. Period is expressed in samples.
func Sine(n int, amplitude float64, period float64) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = int16(amplitude * math.Sin(float64(i)/period))
	}
	return s
}

// Cosine returns n samples of a cosine wave. Period is expressed in samples.
func Cosine(n int, amplitude float64, period float64) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = int16(amplitude * math.Cos(float64(i)/period))
	}
	return s
}

// FromFile decodes a WAV or MP3 file to a mono sample stream. The format is
// chosen on file extension.
func FromFile(filename string) ([]int16, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("stimulus: %v", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		return fromWav(f)
	case ".mp3":
		return fromMp3(f)
	}

	return nil, curated.Errorf("stimulus: unsupported file type (%s)", filepath.Ext(filename))
}

func fromWav(f *os.File) ([]int16, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, curated.Errorf("stimulus: wav: not a valid wav file")
	}

	logger.Log("stimulus", "loading from wav file")

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf("stimulus: wav: %v", err)
	}

	// copy first channel only of the data stream
	stride := int(dec.NumChans)
	data := make([]int16, 0, len(buf.Data)/stride)
	for i := 0; i < len(buf.Data); i += stride {
		data = append(data, int16(buf.Data[i]))
	}

	return data, nil
}

func fromMp3(f *os.File) ([]int16, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, curated.Errorf("stimulus: mp3: %v", err)
	}

	logger.Log("stimulus", "loading from mp3 file")

	// the decoded stream is interleaved stereo, 16-bit little-endian
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, curated.Errorf("stimulus: mp3: %v", err)
	}

	data := make([]int16, 0, len(raw)/4)
	for i := 0; i+1 < len(raw); i += 4 {
		data = append(data, int16(uint16(raw[i])|uint16(raw[i+1])<<8))
	}

	return data, nil
}
