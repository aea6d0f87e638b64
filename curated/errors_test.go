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

package curated_test

import (
	"errors"
	"testing"

	"github.com/telengard/gopher700/curated"
	"github.com/telengard/gopher700/test"
)

const testPattern = "test error: %v"

func TestMessage(t *testing.T) {
	err := curated.Errorf(testPattern, "detail")
	test.Equate(t, err.Error(), "test error: detail")
}

func TestDeduplication(t *testing.T) {
	// wrapping an error in the same pattern does not repeat the message
	inner := curated.Errorf(testPattern, "detail")
	outer := curated.Errorf(testPattern, inner)
	test.Equate(t, outer.Error(), "test error: detail")
}

func TestIs(t *testing.T) {
	err := curated.Errorf(testPattern, "detail")

	test.Equate(t, curated.IsAny(err), true)
	test.Equate(t, curated.Is(err, testPattern), true)
	test.Equate(t, curated.Is(err, "some other pattern"), false)

	plain := errors.New("plain error")
	test.Equate(t, curated.IsAny(plain), false)
	test.Equate(t, curated.Is(plain, testPattern), false)

	test.Equate(t, curated.IsAny(nil), false)
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(testPattern, "detail")
	outer := curated.Errorf("outer error: %v", inner)

	test.Equate(t, curated.Has(outer, testPattern), true)
	test.Equate(t, curated.Has(outer, "outer error: %v"), true)
	test.Equate(t, curated.Has(outer, "some other pattern"), false)

	// Has does not find patterns in non-curated errors
	plain := curated.Errorf("outer error: %v", errors.New("plain error"))
	test.Equate(t, curated.Has(plain, testPattern), false)
}
