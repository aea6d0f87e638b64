// This file is part of Gopher700.
//
// Gopher700 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher700 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher700.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"testing"
)

// Equate is used to test equality between one value and another. the test
// fails if the values are not equal. both values must be of the same type.
func Equate(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	switch v := value.(type) {
	case bool:
		if ev, ok := expectedValue.(bool); ok {
			if v != ev {
				t.Errorf("equation of bool type failed: %v  expected %v", v, ev)
			}
			return
		}

	case int:
		if ev, ok := expectedValue.(int); ok {
			if v != ev {
				t.Errorf("equation of int type failed: %d (%#x)  expected %d (%#x)", v, v, ev, ev)
			}
			return
		}

	case int16:
		if ev, ok := expectedValue.(int16); ok {
			if v != ev {
				t.Errorf("equation of int16 type failed: %d (%#x)  expected %d (%#x)", v, v, ev, ev)
			}
			return
		}

	case int32:
		if ev, ok := expectedValue.(int32); ok {
			if v != ev {
				t.Errorf("equation of int32 type failed: %d (%#x)  expected %d (%#x)", v, v, ev, ev)
			}
			return
		}

	case uint8:
		if ev, ok := expectedValue.(uint8); ok {
			if v != ev {
				t.Errorf("equation of uint8 type failed: %d (%#02x)  expected %d (%#02x)", v, v, ev, ev)
			}
			return
		}

	case uint16:
		if ev, ok := expectedValue.(uint16); ok {
			if v != ev {
				t.Errorf("equation of uint16 type failed: %d (%#04x)  expected %d (%#04x)", v, v, ev, ev)
			}
			return
		}

	case string:
		if ev, ok := expectedValue.(string); ok {
			if v != ev {
				t.Errorf("equation of string type failed: %s  expected %s", v, ev)
			}
			return
		}

	default:
		t.Fatalf("unsupported type (%T) for Equate()", v)
		return
	}

	t.Fatalf("values for Equate() are not the same type (%T and %T)", value, expectedValue)
}
