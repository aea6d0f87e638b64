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

// set up a looping sample of constant full-scale values and configure the
// given voices to play it at unity pitch with maximum direct gain. echo
// writeback is left disabled.
func setupTone(d *DSP, mem *testMem, voices uint8) {
	// directory on page 1, entry 0: start and loop both at 0x1000
	mem.data[0x0100] = 0x00
	mem.data[0x0101] = 0x10
	mem.data[0x0102] = 0x00
	mem.data[0x0103] = 0x10

	// end+loop block, shift 12, filter 0. every sample decodes to 28672
	pokeBlock(mem, 0x1000, 0xc3, [16]uint8{
		7, 7, 7, 7, 7, 7, 7, 7,
		7, 7, 7, 7, 7, 7, 7, 7,
	})

	d.Write(DIR, 0x01)
	for v := uint8(0); v < 8; v++ {
		if voices&(1<<v) == 0 {
			continue
		}
		vx := v << 4
		d.Write(vx|VOLL, 0x7f)
		d.Write(vx|VOLR, 0x7f)
		d.Write(vx|PITCHL, 0x00)
		d.Write(vx|PITCHH, 0x10)
		d.Write(vx|GAIN, 0x7f)
	}
	d.Write(MVOLL, 0x7f)
	d.Write(MVOLR, 0x7f)

	// clear reset and mute but keep echo writeback disabled
	d.Write(FLG, 0x20)

	d.Write(KON, voices)
}

func TestUnityPitchTone(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)
	setupTone(d, mem, 0x01)

	// five samples of key-on delay plus one sample for the envelope to
	// reach full level
	for i := 0; i < 6; i++ {
		d.Step()
	}
	samples := d.Samples()
	for i := range samples {
		test.Equate(t, samples[i], int16(0))
	}
	d.ResetOutput()

	// a constant 28672 in the sample ring interpolates to 28686. the
	// envelope scales that to 28460, the voice volume to 28237 and the
	// main volume to 28016. all stages exact
	for i := 0; i < 16; i++ {
		d.Step()
	}
	samples = d.Samples()
	test.Equate(t, len(samples), 32)
	for i := range samples {
		test.Equate(t, samples[i], int16(28016))
	}
}

func TestMixSaturation(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)
	setupTone(d, mem, 0xff)

	for i := 0; i < 20; i++ {
		d.Step()
	}

	// eight full-scale voices saturate the voice mix to exactly the
	// positive extreme, with no wrap around
	test.Equate(t, d.mainOut[0], int32(32767))
	test.Equate(t, d.mainOut[1], int32(32767))

	samples := d.Samples()
	test.Equate(t, samples[len(samples)-1], int16(32511))
}

func TestMixSaturationNegative(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)
	setupTone(d, mem, 0xff)

	// invert every voice volume
	for v := uint8(0); v < 8; v++ {
		d.Write(v<<4|VOLL, 0x80)
		d.Write(v<<4|VOLR, 0x80)
	}

	for i := 0; i < 20; i++ {
		d.Step()
	}

	test.Equate(t, d.mainOut[0], int32(-32768))
	test.Equate(t, d.mainOut[1], int32(-32768))
}

func TestEndFlag(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)
	setupTone(d, mem, 0x01)

	// the voice loops over a single block with the end flag set. once the
	// key-on window has passed, every block wrap latches the end flag
	for i := 0; i < 100; i++ {
		d.Step()
	}
	test.Equate(t, d.Read(ENDX), uint8(0x01))

	// writing any value to ENDX clears all bits in both register views
	d.Write(ENDX, 0xff)
	test.Equate(t, d.Read(ENDX), uint8(0x00))
}

func TestRegisterVisibility(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)
	setupTone(d, mem, 0x01)

	// CPU writes are visible immediately
	d.Write(EFB, 0x55)
	test.Equate(t, d.Read(EFB), uint8(0x55))

	// the bus visible ENVX trails the internal value by one sample. find
	// the transition to full level and check the stale value is returned
	found := false
	for i := 0; i < 50; i++ {
		d.Step()
		if d.regs[ENVX] == 0x7f && d.busRegs[ENVX] == 0x00 {
			found = true
			break
		}
	}
	test.Equate(t, found, true)
	test.Equate(t, d.Read(ENVX), uint8(0x00))

	d.Step()
	test.Equate(t, d.Read(ENVX), uint8(0x7f))
}

func TestKeyOnActedOnce(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)
	setupTone(d, mem, 0x01)

	d.Step()
	test.Equate(t, int(d.voices[0].konDelay), 5)

	// the key-on window counts down without being re-triggered, even
	// though the CPU never cleared the KON register
	for i := 0; i < 5; i++ {
		d.Step()
	}
	test.Equate(t, int(d.voices[0].konDelay), 0)
}

func TestNoiseGenerator(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)

	test.Equate(t, d.noise, int32(0x4000))

	// noise rate 31 clocks the LFSR every sample
	d.Write(FLG, 0x3f)
	d.Step()
	test.Equate(t, d.noise, int32(0x2000))
	d.Step()
	test.Equate(t, d.noise, int32(0x1000))
}

func TestPitchModulation(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)
	setupTone(d, mem, 0x03)
	d.Write(PMON, 0x02)

	for i := 0; i < 20; i++ {
		d.Step()
	}

	// voice 1's pitch counter advances by the written pitch scaled by
	// voice 0's output from the same sample cycle
	for i := 0; i < 20; i++ {
		prev := d.voices[1].interpPos
		d.Step()

		mod := d.voices[0].output >> 5
		pitch := int32(0x1000) + ((mod * 0x1000) >> 10)
		want := (prev & 0x3fff) + pitch
		if want > 0x7fff {
			want = 0x7fff
		}
		test.Equate(t, d.voices[1].interpPos, want)
	}
}

func TestSnapshotDeterminism(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)
	setupTone(d, mem, 0x05)

	for i := 0; i < 100; i++ {
		d.Step()
	}
	d.ResetOutput()

	snap := d.Snapshot()

	for i := 0; i < 50; i++ {
		d.Step()
	}
	first := make([]int16, len(d.Samples()))
	copy(first, d.Samples())

	// resuming from the snapshot must reproduce the same sample stream
	snap.Plumb(mem)
	snap.ResetOutput()
	for i := 0; i < 50; i++ {
		snap.Step()
	}
	second := snap.Samples()

	test.Equate(t, len(second), len(first))
	for i := range first {
		test.Equate(t, second[i], first[i])
	}
}
