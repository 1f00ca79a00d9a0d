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

package sim

import (
	"github.com/apfaudio/perisim/curated"
	"github.com/apfaudio/perisim/dut"
	"github.com/apfaudio/perisim/logger"
)

// EdgeHandler implementations are device models attached to a clock domain.
// PostEdge() is called immediately after every toggle of the domain clock,
// on both phases. The handler decides which phase it cares about by reading
// the clock signal it is attached to.
type EdgeHandler interface {
	PostEdge()
}

// StepHandler implementations model combinational paths into the design.
// PreStep() is called once per time step, before any clock toggles.
type StepHandler interface {
	PreStep()
}

// RunReporter is implemented by handlers that want to report at the end of
// the run. For example, the memory model's bandwidth summary.
type RunReporter interface {
	PostRun()
}

// Tracer implementations record signal state at the end of every time step.
// Entirely optional and orthogonal to model correctness.
type Tracer interface {
	Dump(timeNS uint64)
}

const nsInS = 1_000_000_000

// Domain is an independently clocked region of the design.
type Domain struct {
	name   string
	signal string
	halfNS uint64
	level  bool

	handlers []EdgeHandler
}

// Attach an edge handler to the domain. Handlers are called in the order
// they were attached.
func (d *Domain) Attach(h EdgeHandler) {
	d.handlers = append(d.handlers, h)
}

// Scheduler advances simulated time and keeps every clock domain phase
// related to the single shared time axis.
type Scheduler struct {
	dev dut.DUT

	domains []*Domain
	steps   []StepHandler
	tracer  Tracer

	// current simulated time in nanoseconds. never decreases.
	timeNS uint64
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler(dev dut.DUT) *Scheduler {
	return &Scheduler{dev: dev}
}

// AddDomain registers a clock domain. The clock signal is driven by the
// scheduler; name is used for reporting only. Domains are serviced in
// registration order. An error is returned if the frequency cannot be
// expressed as a whole number of nanoseconds per half-period.
func (s *Scheduler) AddDomain(name string, clockSignal string, hz uint64) (*Domain, error) {
	if hz == 0 {
		return nil, curated.Errorf("sim: domain %s: frequency is zero", name)
	}

	half := nsInS / hz / 2
	if half == 0 {
		return nil, curated.Errorf("sim: domain %s: %dHz is too fast for a ns time axis", name, hz)
	}

	d := &Domain{
		name:   name,
		signal: clockSignal,
		halfNS: half,
	}
	s.domains = append(s.domains, d)

	logger.Logf("sim", "%s domain is %dKHz (%dns/cycle)", name, hz/1000, half*2)

	return d, nil
}

// AddStepHandler registers a combinational handler, called every time step
// before any clock toggles.
func (s *Scheduler) AddStepHandler(h StepHandler) {
	s.steps = append(s.steps, h)
}

// SetTracer attaches a Tracer. Only one tracer can be attached.
func (s *Scheduler) SetTracer(t Tracer) {
	s.tracer = t
}

// TimeNS returns the current simulated time in nanoseconds.
func (s *Scheduler) TimeNS() uint64 {
	return s.timeNS
}

// PulseReset asserts the named reset signals for one evaluation and then
// deasserts them. Intended to be called once before Run().
func (s *Scheduler) PulseReset(signals ...string) {
	for _, sig := range signals {
		s.dev.Poke(sig, 1)
	}
	s.dev.Evaluate()
	for _, sig := range signals {
		s.dev.Poke(sig, 0)
	}
	s.dev.Evaluate()
}

// step size is the GCD of all half-periods. stepping by it guarantees that
// every exact multiple of every half-period is visited and so no domain ever
// skips a toggle deadline.
func (s *Scheduler) stepNS() uint64 {
	step := uint64(1)
	if len(s.domains) > 0 {
		step = s.domains[0].halfNS
		for _, d := range s.domains[1:] {
			step = gcd(step, d.halfNS)
		}
	}
	return step
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Run the simulation until the horizon is reached or the design signals
// completion. Reaching the horizon is a soft timeout, not a fault: the
// returned error is always nil unless the scheduler is misconfigured.
func (s *Scheduler) Run(horizonNS uint64) error {
	if len(s.domains) == 0 {
		return curated.Errorf("sim: no clock domains registered")
	}

	step := s.stepNS()

	for s.timeNS < horizonNS && !s.dev.Finished() {
		for _, h := range s.steps {
			h.PreStep()
		}

		for _, d := range s.domains {
			if s.timeNS%d.halfNS == 0 {
				d.level = !d.level
				dut.PokeBit(s.dev, d.signal, d.level)
				for _, h := range d.handlers {
					h.PostEdge()
				}
			}
		}

		s.dev.Evaluate()

		if s.tracer != nil {
			s.tracer.Dump(s.timeNS)
		}

		s.timeNS += step
	}

	if s.dev.Finished() {
		logger.Logf("sim", "design signalled completion at %dns", s.timeNS)
	} else {
		logger.Logf("sim", "horizon reached at %dns", s.timeNS)
	}

	for _, d := range s.domains {
		for _, h := range d.handlers {
			if r, ok := h.(RunReporter); ok {
				r.PostRun()
			}
		}
	}

	return nil
}
