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

package dsp

// Snapshot creates a copy of the DSP in its current state. the copy shares
// the Memory implementation with the original until Plumb() is called.
func (d *DSP) Snapshot() *DSP {
	n := *d
	return &n
}

// Plumb a new memory implementation into the DSP. used when a snapshot is
// being brought back to life.
func (d *DSP) Plumb(mem Memory) {
	d.mem = mem
}
