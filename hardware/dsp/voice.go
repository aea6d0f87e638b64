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

// voice is one of the eight playback channels of the DSP.
type voice struct {
	idx int
	bit uint8

	// decoded sample ring. holds the eight samples of the current BRR block
	// plus four samples carried over for the interpolator
	ring    [12]int16
	ringPos int

	// address of the header byte of the current BRR block and the offset of
	// the next byte pair to decode. the offset runs 1, 3, 5, 7 and wraps to
	// 1 when the block is exhausted
	brrAddr   uint16
	brrOffset uint16

	// 4.12 fixed point position of the interpolator within the ring
	interpPos int32

	envMode envelopeMode

	// env is the 11 bit envelope level as seen by the output stage. it only
	// picks up a newly computed level on samples where the voice's rate
	// counter fires. hiddenEnv is the level computed every sample and is
	// what the bent-line increase mode compares against
	env       int32
	hiddenEnv int32

	// a freshly keyed-on voice spends five samples setting up before the
	// envelope starts. counts down to zero
	konDelay uint8

	// latched post-envelope output. read back through OUTX and used as the
	// pitch modulation source for the next voice
	output int32
}

// number of sample cycles a voice spends in the key-on window.
const konDelaySamples = 5

// run the voice for one sample cycle. pmod is the output of the previous
// voice, used when pitch modulation is enabled for this voice. returns this
// voice's output for the same purpose.
func (v *voice) run(d *DSP, pmod int32) int32 {
	vx := uint8(v.idx << 4)

	header := d.mem.Read8(v.brrAddr)

	// 14 bit pitch, scaled by the previous voice's output when pitch
	// modulation is enabled. voice 0 has no previous voice to modulate by
	pitch := int32(d.regs[vx|PITCHL]) | int32(d.regs[vx|PITCHH])<<8
	pitch &= 0x3fff
	if v.idx > 0 && d.regs[PMON]&v.bit != 0 {
		pitch += ((pmod >> 5) * pitch) >> 10
	}

	// key-on startup. the envelope is held at zero and the pitch counter
	// does not advance. on the second sample of the window the BRR decoder
	// is pointed at the start of the sample
	if v.konDelay > 0 {
		v.konDelay--
		if v.konDelay == 4 {
			v.brrAddr = d.samplePtr(vx, false)
			v.brrOffset = 1
			v.ringPos = 0
			header = 0
		}
		v.env = 0
		v.hiddenEnv = 0
		if v.konDelay&3 != 0 {
			v.interpPos = 0x4000
		} else {
			v.interpPos = 0
		}
		pitch = 0
	}

	// interpolate and apply the envelope. a noise enabled voice substitutes
	// the LFSR value for the interpolator output
	var output int32
	if v.env != 0 {
		if d.regs[NON]&v.bit != 0 {
			output = int32(int16(d.noise << 1))
		} else {
			output = v.interpolate()
		}
		output = (output * v.env >> 11) &^ 1
	}
	v.output = output

	// the internal ENVX and OUTX registers update now. the bus visible
	// copies follow at the start of the next sample cycle
	d.regs[vx|ENVX] = uint8(v.env >> 4)
	d.regs[vx|OUTX] = uint8(output >> 8)

	// contribution to the main and echo mix. saturation applies after every
	// voice, not just at the end
	for ch := 0; ch < 2; ch++ {
		vol := int32(int8(d.regs[vx|uint8(VOLL+ch)]))
		amp := (output * vol) >> 7
		d.mainOut[ch] = clamp16(d.mainOut[ch] + amp)
		if d.regs[EON]&v.bit != 0 {
			d.echoOut[ch] = clamp16(d.echoOut[ch] + amp)
		}
	}

	// soft reset, or a block with the end flag but no loop flag, silences
	// the voice immediately
	if d.regs[FLG]&flgReset != 0 || header&0x03 == 0x01 {
		v.envMode = envRelease
		v.env = 0
	}

	if d.everyOtherSample {
		if d.keyOff&v.bit != 0 {
			v.envMode = envRelease
		}
		if d.keyOn&v.bit != 0 {
			v.konDelay = konDelaySamples
			v.envMode = envAttack
			d.regs[ENDX] &^= v.bit
		}
	}

	// the envelope does not run during the key-on window
	if v.konDelay == 0 {
		v.tickEnvelope(d, vx)
	}

	// advance the pitch counter and decode the next four samples if the
	// previous position stepped past the end of a group
	prev := v.interpPos
	next := (prev & 0x3fff) + pitch
	if next > 0x7fff {
		next = 0x7fff
	}
	v.interpPos = next

	if prev >= 0x4000 {
		v.decodeGroup(d, vx, header)
	}

	return output
}
