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

// Package config describes a harness run: clock frequencies, the video mode
// under test, firmware preload images and output options. Configuration
// errors are caught before the simulation loop starts; there is no
// recoverable error once the run is underway.
package config

import (
	"os"

	"github.com/apfaudio/perisim/curated"

	"gopkg.in/yaml.v3"
)

// Clocks are the frequencies of the three clock domains, in Hz.
type Clocks struct {
	SyncHz  uint64 `yaml:"sync_hz"`
	DVIHz   uint64 `yaml:"dvi_hz"`
	AudioHz uint64 `yaml:"audio_hz"`
}

// Video selects the mode of the display under test.
type Video struct {
	// one of the mode names understood by the dvi package
	Mode string `yaml:"mode"`

	// use the design's beam coordinate signals rather than the cursor rule
	Coordinates bool `yaml:"coordinates"`
}

// Audio selects the TDM configuration and the stimulus.
type Audio struct {
	StartSlot    int    `yaml:"start_slot"`
	Descend      bool   `yaml:"descend"`
	FoldOverflow bool   `yaml:"fold_overflow"`
	SampleRateHz int    `yaml:"sample_rate_hz"`
	Stimulus     string `yaml:"stimulus"` // wav/mp3 file, empty for synthetic waves
}

// Signals renames the clock lines of the design, for designs whose port
// names differ from the reference. Device model port names follow the clock
// they are attached to.
type Signals struct {
	SyncClk  string `yaml:"sync_clk"`
	DVIClk   string `yaml:"dvi_clk"`
	AudioClk string `yaml:"audio_clk"`
}

// Preload names a binary image and the byte offset it loads at.
type Preload struct {
	File   string `yaml:"file"`
	Offset int    `yaml:"offset"`
}

// Config is the root of the harness configuration.
type Config struct {
	// simulated time horizon in milliseconds
	HorizonMS uint64 `yaml:"horizon_ms"`

	Clocks  Clocks  `yaml:"clocks"`
	Signals Signals `yaml:"signals"`
	Video   Video   `yaml:"video"`
	Audio   Audio   `yaml:"audio"`

	Firmware Preload `yaml:"firmware"` // into PSRAM
	Bootinfo Preload `yaml:"bootinfo"` // into PSRAM
	Flash    Preload `yaml:"flash"`    // into SPI flash

	// directory for frame and audio artefacts
	OutputDir string `yaml:"output_dir"`
}

// Default returns the configuration of the reference design: the clock
// rates and TDM slot arrangement of the SoC testbench.
func Default() *Config {
	return &Config{
		HorizonMS: 75,
		Clocks: Clocks{
			SyncHz:  60_000_000,
			DVIHz:   74_250_000,
			AudioHz: 12_288_000,
		},
		Signals: Signals{
			SyncClk:  "clk_sync",
			DVIClk:   "clk_dvi",
			AudioClk: "clk_audio",
		},
		Video: Video{
			Mode: "1280x720",
		},
		Audio: Audio{
			StartSlot:    2,
			SampleRateHz: 48_000,
		},
		OutputDir: ".",
	}
}

// Load reads and validates a configuration file. Values not present in the
// file keep their defaults.
func Load(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("config: %v", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, curated.Errorf("config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values that would make the run
// meaningless. Called by Load() but exposed for configurations built in
// code.
func (cfg *Config) Validate() error {
	if cfg.HorizonMS == 0 {
		return curated.Errorf("config: horizon is zero")
	}
	if cfg.Clocks.SyncHz == 0 || cfg.Clocks.DVIHz == 0 || cfg.Clocks.AudioHz == 0 {
		return curated.Errorf("config: all three clock domains need a frequency")
	}
	if cfg.Signals.SyncClk == "" || cfg.Signals.DVIClk == "" || cfg.Signals.AudioClk == "" {
		return curated.Errorf("config: clock signal names cannot be empty")
	}
	if cfg.Audio.StartSlot < 0 || cfg.Audio.StartSlot > 3 {
		return curated.Errorf("config: start slot %d is not a TDM slot", cfg.Audio.StartSlot)
	}
	if cfg.Audio.SampleRateHz <= 0 {
		return curated.Errorf("config: audio sample rate is zero")
	}
	return nil
}

// HorizonNS returns the simulated time horizon in nanoseconds.
func (cfg *Config) HorizonNS() uint64 {
	return cfg.HorizonMS * 1_000_000
}
