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

// Package hardware ties the components of the SNES audio subsystem
// together: the shared audio RAM and the DSP. The normal way of using the
// package is to create an APU instance, attach an SPC file and call Step()
// in a loop, draining the DSP output buffer as it fills.
package hardware

import (
	"github.com/telengard/gopher700/hardware/dsp"
	"github.com/telengard/gopher700/hardware/memory"
	"github.com/telengard/gopher700/spcfile"
)

// APU is the audio subsystem of the SNES.
type APU struct {
	// the components of the APU. the DSP accesses Mem through the
	// dsp.Memory interface
	Mem *memory.RAM
	DSP *dsp.DSP
}

// NewAPU is the preferred method of initialisation for the APU type.
func NewAPU() *APU {
	mem := memory.NewRAM()
	return &APU{
		Mem: mem,
		DSP: dsp.NewDSP(mem),
	}
}

// Reset the APU. the contents of audio RAM survive a reset, as they do on
// real hardware.
func (apu *APU) Reset() {
	apu.DSP.Reset()
}

// AttachSPC loads the state captured in an SPC file into the APU: the RAM
// image and the DSP registers. the DSP is reset first so that no state from
// a previously attached file lingers.
func (apu *APU) AttachSPC(spc *spcfile.SPC) {
	apu.DSP.Reset()
	apu.Mem.LoadImage(spc.RAM)
	apu.DSP.LoadRegisters(spc.DSPRegisters)
}

// Step the APU forward one sample cycle.
func (apu *APU) Step() {
	apu.DSP.Step()
}
