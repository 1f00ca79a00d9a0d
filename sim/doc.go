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

// Package sim drives the simulation. The Scheduler owns the simulated time
// axis, a monotonically increasing count of nanoseconds, and toggles each
// registered clock domain at that domain's half-period. Device models attach
// to a domain and are called immediately after every toggle of the domain
// clock; the design under test is evaluated once at the end of every time
// step.
//
// All work happens on the calling goroutine. Domains are serviced in
// registration order within a step so that an edge handler never observes a
// partially applied toggle from a domain registered after its own.
package sim
