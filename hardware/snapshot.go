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

package hardware

import (
	"github.com/telengard/gopher700/hardware/dsp"
	"github.com/telengard/gopher700/hardware/memory"
)

// State stores a complete snapshot of the APU at a point in time. because
// the DSP writes its echo delay buffer into RAM, a usable snapshot must
// include the RAM image as well as the DSP state.
type State struct {
	Mem *memory.RAM
	DSP *dsp.DSP
}

// Snapshot makes a copy of an existing State. used when the same state may
// be plumbed into the APU more than once.
func (s *State) Snapshot() *State {
	return &State{
		Mem: s.Mem.Snapshot(),
		DSP: s.DSP.Snapshot(),
	}
}

// Snapshot the current state of the APU.
func (apu *APU) Snapshot() *State {
	return &State{
		Mem: apu.Mem.Snapshot(),
		DSP: apu.DSP.Snapshot(),
	}
}

// Plumb a previously snapshotted state back into the APU. the state
// instance should not be used afterwards; snapshot it again if it needs to
// be preserved.
func (apu *APU) Plumb(state *State) {
	if state == nil {
		return
	}

	apu.Mem = state.Mem
	apu.DSP = state.DSP
	apu.DSP.Plumb(apu.Mem)
}
