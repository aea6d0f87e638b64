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

// envelopeMode is the phase the envelope generator of a voice is in. gain
// controlled voices also cycle through these phases; the distinction
// between ADSR and GAIN is made from the ADSR1 register at tick time.
type envelopeMode int

// list of valid envelopeMode values. release is the zero value, which is
// also the power-on state of every voice.
const (
	envRelease envelopeMode = iota
	envAttack
	envDecay
	envSustain
)

func (m envelopeMode) String() string {
	switch m {
	case envRelease:
		return "release"
	case envAttack:
		return "attack"
	case envDecay:
		return "decay"
	case envSustain:
		return "sustain"
	}
	return "unknown"
}

// period of each of the 32 envelope rates, in samples. rate 0 never fires.
var ratePeriods = [32]int32{
	0, 2048, 1536,
	1280, 1024, 768,
	640, 512, 384,
	320, 256, 192,
	160, 128, 96,
	80, 64, 48,
	40, 32, 24,
	20, 16, 12,
	10, 8, 6,
	5, 4, 3,
	2, 1,
}

// phase offset applied to the shared counter for each rate. the three rate
// families fire staggered relative to one another, as on real hardware.
var rateOffsets = [32]int32{
	0, 0, 1040,
	536, 0, 1040,
	536, 0, 1040,
	536, 0, 1040,
	536, 0, 1040,
	536, 0, 1040,
	536, 0, 1040,
	536, 0, 1040,
	536, 0, 1040,
	536, 0, 1040,
	0, 0,
}

// the shared rate counter decrements once per sample and wraps such that
// every rate's period divides the full cycle.
func (d *DSP) updateCounter() {
	d.counter--
	if d.counter < 0 {
		d.counter = 0x77ff
	}
}

// counterFired reports whether events at the given rate run on the current
// sample.
func (d *DSP) counterFired(rate int32) bool {
	if ratePeriods[rate] == 0 {
		return false
	}
	return (d.counter+rateOffsets[rate])%ratePeriods[rate] == 0
}

// advance the envelope of a voice by one sample. the new level only takes
// effect on samples where the voice's current rate fires; release is the
// exception and runs every sample.
func (v *voice) tickEnvelope(d *DSP, vx uint8) {
	if v.envMode == envRelease {
		v.env -= 8
		if v.env < 0 {
			v.env = 0
		}
		return
	}

	env := v.env

	var rate int32

	ctl := int32(d.regs[vx|ADSR1])
	data := int32(d.regs[vx|ADSR2])

	if ctl&0x80 != 0 {
		// ADSR operation
		switch v.envMode {
		case envAttack:
			rate = (ctl&0x0f)<<1 | 1
			if rate < 31 {
				env += 0x20
			} else {
				// the fastest attack steps in quarters of full scale
				env += 0x400
			}
		case envDecay:
			env--
			env -= env >> 8
			rate = ((ctl >> 3) & 0x0e) + 0x10
		default:
			// sustain
			env--
			env -= env >> 8
			rate = data & 0x1f
		}
	} else {
		// GAIN operation
		data = int32(d.regs[vx|GAIN])
		mode := data >> 5
		if mode < 4 {
			// direct: bit 7 clear, the remaining bits set the level
			env = data << 4
			rate = 31
		} else {
			rate = data & 0x1f
			switch mode {
			case 4:
				// linear decrease
				env -= 0x20
			case 5:
				// exponential decrease
				env--
				env -= env >> 8
			case 6:
				// linear increase
				env += 0x20
			case 7:
				// bent increase: linear up to 0x600, then a shallow slope
				env += 0x20
				if uint32(v.hiddenEnv) >= 0x600 {
					env += 0x8 - 0x20
				}
			}
		}
	}

	// decay gives way to sustain when the level reaches the programmed
	// sustain level. note that for gain voices the comparison runs against
	// the GAIN register, as on real hardware
	if env>>8 == data>>5 && v.envMode == envDecay {
		v.envMode = envSustain
	}

	v.hiddenEnv = env

	// clamp to the 11 bit range. a full scale attack step can cross the
	// maximum, at which point the envelope enters decay
	if env < 0 || env > 0x7ff {
		if env < 0 {
			env = 0
		} else {
			env = 0x7ff
		}
		if v.envMode == envAttack {
			v.envMode = envDecay
		}
	}

	if d.counterFired(rate) {
		v.env = env
	}
}
