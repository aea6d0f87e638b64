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

// per voice registers. add the voice number shifted left four times to get
// the address of the register for a specific voice.
const (
	VOLL   = 0x00 // left channel volume (signed)
	VOLR   = 0x01 // right channel volume (signed)
	PITCHL = 0x02 // low byte of the 14 bit pitch
	PITCHH = 0x03 // high byte of the 14 bit pitch
	SRCN   = 0x04 // sample source entry in the directory
	ADSR1  = 0x05 // envelope control. bit 7 selects ADSR over GAIN
	ADSR2  = 0x06 // sustain level and sustain rate
	GAIN   = 0x07 // gain envelope control, used when bit 7 of ADSR1 is clear
	ENVX   = 0x08 // current envelope value (read back by the CPU)
	OUTX   = 0x09 // current voice output (read back by the CPU)
)

// global registers.
const (
	MVOLL = 0x0c // main volume left (signed)
	MVOLR = 0x1c // main volume right (signed)
	EVOLL = 0x2c // echo volume left (signed)
	EVOLR = 0x3c // echo volume right (signed)
	KON   = 0x4c // key on bitmask, one bit per voice
	KOF   = 0x5c // key off bitmask, one bit per voice
	FLG   = 0x6c // reset, mute, echo disable and noise frequency
	ENDX  = 0x7c // voices that have reached the end of their sample

	EFB  = 0x0d // echo feedback (signed)
	PMON = 0x2d // pitch modulation enable bitmask (voices 1 to 7)
	NON  = 0x3d // noise enable bitmask
	EON  = 0x4d // echo enable bitmask
	DIR  = 0x5d // page number of the sample directory
	ESA  = 0x6d // page number of the echo delay buffer
	EDL  = 0x7d // echo delay length (low four bits)

	// eight FIR filter coefficients at 0x0f, 0x1f ... 0x7f.
	FIR = 0x0f
)

// bits of the FLG register.
const (
	flgReset       = 0x80
	flgMute        = 0x40
	flgEchoDisable = 0x20
	flgNoiseFreq   = 0x1f
)

// Write a value to one of the 128 DSP registers. Writes take effect in both
// the internal and the bus visible register file immediately.
//
// Two registers have side effects. A write to KON arms the key-on bitmask
// that is consumed on the next key latch. A write to ENDX clears all eight
// end flags regardless of the value written.
func (d *DSP) Write(reg uint8, data uint8) {
	reg &= 0x7f
	d.busRegs[reg] = data

	switch reg {
	case KON:
		d.newKeyOn = data
	case ENDX:
		d.busRegs[ENDX] = 0
		d.regs[ENDX] = 0
		return
	}

	d.regs[reg] = data
}

// Read a value from one of the 128 DSP registers. Reads return the bus
// visible register file. For the DSP generated registers, ENVX, OUTX and
// ENDX, the bus visible value trails the internal value by one sample cycle.
func (d *DSP) Read(reg uint8) uint8 {
	return d.busRegs[reg&0x7f]
}

// LoadRegisters imports a complete 128 byte register image, as found in an
// SPC file, into both register views. Unlike Write() no side effects are
// triggered, except that the KON image is armed so that voices keyed on at
// dump time start playing.
func (d *DSP) LoadRegisters(regs [128]uint8) {
	d.regs = regs
	d.busRegs = regs
	d.newKeyOn = regs[KON]
}

// the bus visible copies of the DSP generated registers are brought up to
// date at the start of every sample cycle. a CPU read between cycles
// therefore sees the value from the previous cycle.
func (d *DSP) commitBusRegs() {
	d.busRegs[ENDX] = d.regs[ENDX]
	for i := 0; i < numVoices; i++ {
		vx := uint8(i << 4)
		d.busRegs[vx|ENVX] = d.regs[vx|ENVX]
		d.busRegs[vx|OUTX] = d.regs[vx|OUTX]
	}
}
