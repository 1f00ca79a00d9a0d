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

package curated_test

import (
	"errors"
	"testing"

	"github.com/apfaudio/perisim/curated"
	"github.com/apfaudio/perisim/test"
)

func TestMatching(t *testing.T) {
	e := curated.Errorf("sim: bad clock: %dHz", 0)

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, "sim: bad clock: %dHz"))
	test.ExpectedFailure(t, curated.Is(e, "sim: bad clock"))

	// wrapped error matches with Has() but not Is()
	f := curated.Errorf("fatal: %v", e)
	test.ExpectedFailure(t, curated.Is(f, "sim: bad clock: %dHz"))
	test.ExpectedSuccess(t, curated.Has(f, "sim: bad clock: %dHz"))

	// uncurated errors never match
	g := errors.New("plain")
	test.ExpectedFailure(t, curated.IsAny(g))
	test.ExpectedFailure(t, curated.Has(g, "plain"))
	test.ExpectedFailure(t, curated.IsAny(nil))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("loader: %v", curated.Errorf("loader: %v", "no such file"))
	test.Equate(t, e.Error(), "loader: no such file")
}
