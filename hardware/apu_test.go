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

package hardware_test

import (
	"testing"

	"github.com/telengard/gopher700/hardware"
	"github.com/telengard/gopher700/hardware/dsp"
	"github.com/telengard/gopher700/spcfile"
	"github.com/telengard/gopher700/test"
)

// an SPC image with a looping full-scale tone keyed on voice 0, as a dumper
// would have captured it mid-note.
func toneSPC() *spcfile.SPC {
	spc := &spcfile.SPC{}

	// sample directory on page 1, entry 0. start and loop at 0x1000
	spc.RAM[0x0100] = 0x00
	spc.RAM[0x0101] = 0x10
	spc.RAM[0x0102] = 0x00
	spc.RAM[0x0103] = 0x10

	// end+loop block, shift 12, filter 0
	spc.RAM[0x1000] = 0xc3
	for i := 0; i < 8; i++ {
		spc.RAM[0x1001+i] = 0x77
	}

	spc.DSPRegisters[dsp.DIR] = 0x01
	spc.DSPRegisters[dsp.VOLL] = 0x7f
	spc.DSPRegisters[dsp.VOLR] = 0x7f
	spc.DSPRegisters[dsp.PITCHH] = 0x10
	spc.DSPRegisters[dsp.GAIN] = 0x7f
	spc.DSPRegisters[dsp.MVOLL] = 0x7f
	spc.DSPRegisters[dsp.MVOLR] = 0x7f
	spc.DSPRegisters[dsp.FLG] = 0x20
	spc.DSPRegisters[dsp.KON] = 0x01

	return spc
}

func TestAttachSPC(t *testing.T) {
	apu := hardware.NewAPU()
	apu.AttachSPC(toneSPC())

	// key-on delay plus one sample for the envelope to reach full level
	for i := 0; i < 6; i++ {
		apu.Step()
	}
	apu.DSP.ResetOutput()

	for i := 0; i < 10; i++ {
		apu.Step()
	}
	samples := apu.DSP.Samples()
	test.Equate(t, len(samples), 20)
	for i := range samples {
		test.Equate(t, samples[i], int16(28016))
	}
}

func TestResetKeepsRAM(t *testing.T) {
	apu := hardware.NewAPU()
	apu.AttachSPC(toneSPC())

	for i := 0; i < 10; i++ {
		apu.Step()
	}

	apu.Reset()
	test.Equate(t, apu.Mem.Read8(0x1000), uint8(0xc3))
	test.Equate(t, apu.DSP.SampleCount(), 0)

	// registers revert to their reset values
	test.Equate(t, apu.DSP.Read(dsp.FLG), uint8(0xe0))
}
