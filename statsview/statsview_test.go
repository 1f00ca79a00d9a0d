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

//go:build !statsview
// +build !statsview

package statsview_test

import (
	"strings"
	"testing"

	"github.com/apfaudio/perisim/statsview"
	"github.com/apfaudio/perisim/test"
)

func TestNotAvailableInDefaultBuild(t *testing.T) {
	test.Equate(t, statsview.Available(), false)

	// Launch is safe to call and announces nothing
	out := &strings.Builder{}
	statsview.Launch(out)
	test.Equate(t, out.String(), "")
}
