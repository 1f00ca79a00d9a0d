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

package test

import (
	"reflect"
	"testing"
)

// Equate is used to test equality between one value and another. Generally,
// both values must be of the same type but if a is of an integer type, b can
// be an int literal. The reason for this is that a literal number value is of
// type int and it is very convenient to write something like this, without
// having to cast the expected number value:
//
//	var r uint16
//	r = someFunction()
//	test.Equate(t, r, 10)
//
// Slices are compared with reflect.DeepEqual().
func Equate(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	switch v := value.(type) {
	default:
		if !reflect.DeepEqual(value, expectedValue) {
			t.Errorf("equation of type %T failed (%v - wanted %v)", v, value, expectedValue)
		}

	case int16:
		if ev, ok := expectedValue.(int); ok {
			expectedValue = int16(ev)
		}
		if v != expectedValue.(int16) {
			t.Errorf("equation of type %T failed (%d - wanted %d)", v, v, expectedValue)
		}

	case uint16:
		if ev, ok := expectedValue.(int); ok {
			expectedValue = uint16(ev)
		}
		if v != expectedValue.(uint16) {
			t.Errorf("equation of type %T failed (%d - wanted %d)", v, v, expectedValue)
		}

	case uint32:
		if ev, ok := expectedValue.(int); ok {
			expectedValue = uint32(ev)
		}
		if v != expectedValue.(uint32) {
			t.Errorf("equation of type %T failed (%#08x - wanted %#08x)", v, v, expectedValue)
		}

	case uint64:
		if ev, ok := expectedValue.(int); ok {
			expectedValue = uint64(ev)
		}
		if v != expectedValue.(uint64) {
			t.Errorf("equation of type %T failed (%d - wanted %d)", v, v, expectedValue)
		}

	case int:
		if v != expectedValue.(int) {
			t.Errorf("equation of type %T failed (%d - wanted %d)", v, v, expectedValue.(int))
		}

	case bool:
		if v != expectedValue.(bool) {
			t.Errorf("equation of type %T failed (%v - wanted %v)", v, v, expectedValue.(bool))
		}

	case string:
		if v != expectedValue.(string) {
			t.Errorf("equation of type %T failed (%s - wanted %s)", v, v, expectedValue.(string))
		}
	}
}
