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

// Package harness assembles a complete testbench from a configuration: the
// scheduler with its three clock domains, every device model attached to the
// right domain, preloaded backing stores and the end-of-run digests.
//
// The design under test is supplied by the caller. Anything implementing the
// dut.DUT interface will do; the dut/demo package provides a synthetic one.
package harness

import (
	"io"

	"github.com/apfaudio/perisim/config"
	"github.com/apfaudio/perisim/curated"
	"github.com/apfaudio/perisim/digest"
	"github.com/apfaudio/perisim/dut"
	"github.com/apfaudio/perisim/hardware/dvi"
	"github.com/apfaudio/perisim/hardware/i2s"
	"github.com/apfaudio/perisim/hardware/psram"
	"github.com/apfaudio/perisim/hardware/spiflash"
	"github.com/apfaudio/perisim/hardware/uart"
	"github.com/apfaudio/perisim/loader"
	"github.com/apfaudio/perisim/sim"
)

// reset lines of the reference design, one per clock domain.
var resetSignals = []string{"rst_sync", "rst_dvi", "rst_audio"}

// Harness is an assembled testbench. Create with New().
type Harness struct {
	cfg *config.Config
	dev dut.DUT
	sch *sim.Scheduler

	Bus   *i2s.I2S
	RAM   *psram.PSRAM
	Flash *spiflash.SPIFlash
	Video *dvi.DVI

	VideoDigest *digest.Video
	AudioDigest *digest.Audio
}

// New is the preferred method of initialisation for the Harness type. Console
// output of the design is forwarded to the console writer as it arrives.
func New(cfg *config.Config, dev dut.DUT, console io.Writer) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	spec, ok := dvi.SpecByName(cfg.Video.Mode)
	if !ok {
		return nil, curated.Errorf("harness: unsupported video mode (%s)", cfg.Video.Mode)
	}

	h := &Harness{
		cfg: cfg,
		dev: dev,
		sch: sim.NewScheduler(dev),
	}

	syncDom, err := h.sch.AddDomain("sync", cfg.Signals.SyncClk, cfg.Clocks.SyncHz)
	if err != nil {
		return nil, err
	}
	dviDom, err := h.sch.AddDomain("dvi", cfg.Signals.DVIClk, cfg.Clocks.DVIHz)
	if err != nil {
		return nil, err
	}
	audioDom, err := h.sch.AddDomain("audio", cfg.Signals.AudioClk, cfg.Clocks.AudioHz)
	if err != nil {
		return nil, err
	}

	ramSig := psram.DefaultSignals()
	ramSig.Clk = cfg.Signals.SyncClk
	h.RAM = psram.NewPSRAM(dev, ramSig, 0)
	syncDom.Attach(h.RAM)

	uartSig := uart.DefaultSignals()
	uartSig.Clk = cfg.Signals.SyncClk
	syncDom.Attach(uart.NewUART(dev, uartSig, console))

	videoSig := dvi.DefaultSignals()
	videoSig.Clk = cfg.Signals.DVIClk
	h.Video = dvi.NewDVI(dev, videoSig, spec, dvi.Opts{
		Coordinates: cfg.Video.Coordinates,
	})
	h.VideoDigest = digest.NewVideo()
	h.Video.AddFrameWriter(h.VideoDigest)
	dviDom.Attach(h.Video)

	h.Bus = i2s.NewI2S(dev, i2s.DefaultSignals(), i2s.Opts{
		StartSlot:    cfg.Audio.StartSlot,
		Descend:      cfg.Audio.Descend,
		FoldOverflow: cfg.Audio.FoldOverflow,
	})
	audioDom.Attach(h.Bus)

	h.Flash = spiflash.NewSPIFlash(dev, spiflash.DefaultSignals(), 0)
	h.sch.AddStepHandler(h.Flash)

	h.AudioDigest = digest.NewAudio()

	for _, p := range []struct {
		dst     []byte
		preload config.Preload
	}{
		{h.RAM.Data(), cfg.Firmware},
		{h.RAM.Data(), cfg.Bootinfo},
		{h.Flash.Data(), cfg.Flash},
	} {
		if p.preload.File == "" {
			continue
		}
		if _, err := loader.Load(p.dst, p.preload.File, p.preload.Offset); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// Scheduler exposes the underlying scheduler, for attaching a tracer or
// additional handlers before the run.
func (h *Harness) Scheduler() *sim.Scheduler {
	return h.sch
}

// Inject queues the same sample stream on each of the listed channels.
func (h *Harness) Inject(samples []int16, channels ...int) {
	for _, ch := range channels {
		for _, s := range samples {
			h.Bus.InjectSample(ch, s)
		}
	}
}

// Run the testbench: pulse the reset lines, run to the configured horizon and
// fold the captured audio into the audio digest.
func (h *Harness) Run() error {
	h.sch.PulseReset(resetSignals...)

	if err := h.sch.Run(h.cfg.HorizonNS()); err != nil {
		return err
	}

	for ch := 0; ch < i2s.NumChannels; ch++ {
		h.AudioDigest.Fold(h.Bus.CapturedSamples(ch))
	}

	return nil
}
