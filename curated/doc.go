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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	e := curated.Errorf("spcfile: not an SPC file")
//
//	if curated.Is(e, "spcfile: not an SPC file") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// somewhere in the error chain. Wrapping an error adds a link to the chain:
//
//	e := curated.Errorf("spcfile: not an SPC file")
//	f := curated.Errorf("play: %v", e)
//
//	curated.Is(f, "spcfile: not an SPC file") == false
//	curated.Has(f, "spcfile: not an SPC file") == true
//
// The Error() function normalises the message as it walks the chain,
// removing adjacent duplicate parts. This keeps messages presentable when an
// error percolates up through several layers that each add their own
// context.
package curated
