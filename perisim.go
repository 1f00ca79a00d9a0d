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

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apfaudio/perisim/bmpwriter"
	"github.com/apfaudio/perisim/config"
	"github.com/apfaudio/perisim/dut/demo"
	"github.com/apfaudio/perisim/hardware/dvi"
	"github.com/apfaudio/perisim/harness"
	"github.com/apfaudio/perisim/logger"
	"github.com/apfaudio/perisim/statsview"
	"github.com/apfaudio/perisim/stimulus"
	"github.com/apfaudio/perisim/version"
	"github.com/apfaudio/perisim/wavwriter"
)

// blanking margins of the demo design's video sweep. arbitrary but non-zero,
// so that the capture models see realistic blanking intervals.
const (
	demoHBlank = 32
	demoVBlank = 4
)

func main() {
	os.Exit(run())
}

func run() int {
	configFile := flag.String("config", "", "run configuration file (yaml)")
	horizonMS := flag.Uint64("horizon", 0, "override simulated time horizon (milliseconds)")
	stimulusFile := flag.String("stimulus", "", "override audio stimulus file (wav or mp3)")
	outputDir := flag.String("output", "", "override output directory")
	frames := flag.Bool("frames", false, "write completed frames as BMP files")
	wav := flag.Bool("wav", false, "write captured audio as WAV files")
	echoLog := flag.Bool("log", false, "echo log entries as they are made")
	stats := flag.Bool("statsview", false, "run stats server")
	showVersion := flag.Bool("version", false, "print version and quit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version)
		return 0
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("stats server not available in this build. see statsview package documentation.")
		}
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "* %v\n", err)
			return 10
		}
	}

	if *horizonMS != 0 {
		cfg.HorizonMS = *horizonMS
	}
	if *stimulusFile != "" {
		cfg.Audio.Stimulus = *stimulusFile
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := simulate(cfg, *frames, *wav); err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		return 10
	}

	return 0
}

func simulate(cfg *config.Config, frames bool, wav bool) error {
	spec, ok := dvi.SpecByName(cfg.Video.Mode)
	if !ok {
		spec = dvi.Spec720p
	}

	dev := demo.NewSoC(demo.Opts{
		ActiveWidth:  spec.ActiveWidth,
		ActiveHeight: spec.ActiveHeight,
		HBlank:       demoHBlank,
		VBlank:       demoVBlank,
	})

	h, err := harness.New(cfg, dev, os.Stdout)
	if err != nil {
		return err
	}

	if frames {
		bw, err := bmpwriter.NewBMPWriter(cfg.OutputDir)
		if err != nil {
			return err
		}
		h.Video.AddFrameWriter(bw)
	}

	// stimulus on the first two channels. a quarter of a second is injected
	// regardless of the horizon; the bus transmits silence when the queues
	// run dry
	n := cfg.Audio.SampleRateHz / 4
	if cfg.Audio.Stimulus != "" {
		samples, err := stimulus.FromFile(cfg.Audio.Stimulus)
		if err != nil {
			return err
		}
		h.Inject(samples, 0, 1)
	} else {
		h.Inject(stimulus.Sine(n, 16000, 50), 0)
		h.Inject(stimulus.Cosine(n, 16000, 50), 1)
	}

	if err := h.Run(); err != nil {
		return err
	}

	fmt.Printf("%dns simulated\n", h.Scheduler().TimeNS())
	fmt.Printf("frames: %d\n", h.Video.Frames())
	fmt.Printf("video digest: %s\n", h.VideoDigest.Hash())
	fmt.Printf("audio digest: %s\n", h.AudioDigest.Hash())

	if wav {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return err
		}
		for ch := 0; ch < 2; ch++ {
			name := filepath.Join(cfg.OutputDir, fmt.Sprintf("audio_ch%d.wav", ch))
			aw := wavwriter.New(name, cfg.Audio.SampleRateHz)
			if err := aw.Write(h.Bus.CapturedSamples(ch)); err != nil {
				return err
			}
		}
	}

	return nil
}
