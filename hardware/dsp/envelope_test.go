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

import (
	"testing"

	"github.com/telengard/gopher700/test"
)

func TestEnvelopeAttackToDecay(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)

	// fastest attack rate steps by 0x400 every sample
	d.regs[ADSR1] = 0x8f
	d.regs[ADSR2] = 0xe0

	v := &d.voices[0]
	v.envMode = envAttack
	v.env = 0

	// counter value of zero fires every rate
	d.counter = 0

	v.tickEnvelope(d, 0)
	test.Equate(t, int(v.env), 0x400)
	test.Equate(t, v.envMode.String(), "attack")

	// the second step crosses the maximum. the level clamps and the
	// envelope hands over to decay
	v.tickEnvelope(d, 0)
	test.Equate(t, int(v.env), 0x7ff)
	test.Equate(t, v.envMode.String(), "decay")
}

func TestEnvelopeDecayToSustain(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)

	// sustain level 7: decay ends as soon as the top three bits of the
	// level match
	d.regs[ADSR1] = 0x8f
	d.regs[ADSR2] = 0xe0

	v := &d.voices[0]
	v.envMode = envDecay
	v.env = 0x7ff

	d.counter = 0

	// one decay step: 0x7ff - 1 - (0x7fe >> 8) = 0x7f7. the level is
	// already within the sustain band so the mode changes immediately
	v.tickEnvelope(d, 0)
	test.Equate(t, int(v.env), 0x7f7)
	test.Equate(t, v.envMode.String(), "sustain")
}

func TestEnvelopeRelease(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)

	v := &d.voices[0]
	v.envMode = envRelease
	v.env = 0x20

	// release ignores the rate counter and falls by 8 every sample,
	// stopping at exactly zero
	for i := 0; i < 4; i++ {
		v.tickEnvelope(d, 0)
	}
	test.Equate(t, int(v.env), 0)

	v.tickEnvelope(d, 0)
	test.Equate(t, int(v.env), 0)
}

func TestEnvelopeGainDirect(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)

	d.regs[ADSR1] = 0x00
	d.regs[GAIN] = 0x7f

	v := &d.voices[0]
	v.envMode = envSustain
	v.env = 0

	d.counter = 0

	v.tickEnvelope(d, 0)
	test.Equate(t, int(v.env), 0x7f0)
}

func TestEnvelopeGainBent(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)

	// bent increase at the fastest rate
	d.regs[ADSR1] = 0x00
	d.regs[GAIN] = 0xff

	v := &d.voices[0]
	v.envMode = envSustain
	v.env = 0x5f0
	v.hiddenEnv = 0x5f0

	d.counter = 0

	// below the bend the slope is the same as linear increase
	v.tickEnvelope(d, 0)
	test.Equate(t, int(v.env), 0x610)

	// above the bend the slope drops to 8 per step
	v.tickEnvelope(d, 0)
	test.Equate(t, int(v.env), 0x618)
}

func TestRateCounter(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)

	// rate 0 never fires, rate 31 always fires
	for c := int32(0); c < 4096; c++ {
		d.counter = c
		test.Equate(t, d.counterFired(0), false)
		test.Equate(t, d.counterFired(31), true)
	}

	// rate 1 has a period of 2048 samples
	fired := 0
	for c := int32(0); c < 0x7800; c++ {
		d.counter = c
		if d.counterFired(1) {
			fired++
		}
	}
	test.Equate(t, fired, 15)

	// rate 27 belongs to the family with a phase offset of 536
	fired = 0
	for c := int32(0); c < 0x7800; c++ {
		d.counter = c
		if d.counterFired(27) {
			fired++
		}
	}
	test.Equate(t, fired, 0x7800/5)
}
