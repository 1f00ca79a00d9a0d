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

// Package hardware is the parent of the peripheral device models. Each
// sub-package models one peripheral of the board: the TDM audio bus, the
// external RAM, the display, the SPI flash and the UART console.
//
// Models hold no reference to each other. They share only the dut.DUT
// interface to the design and the sim package's handler interfaces, so each
// can be attached to a clock domain, or left out, independently.
package hardware
