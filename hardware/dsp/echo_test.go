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

func TestEchoFilterImpulse(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)

	// delay buffer at 0x1000 with a single non-zero frame. samples read
	// from the buffer are halved before entering the filter history
	mem.data[0x1000] = 0x00
	mem.data[0x1001] = 0x20
	mem.data[0x1002] = 0x00
	mem.data[0x1003] = 0x20

	d.Write(ESA, 0x10)
	d.Write(EDL, 0x01)
	d.Write(FIR|7<<4, 0x7f)
	d.Write(EVOLL, 0x7f)
	d.Write(EVOLR, 0x7f)
	d.Write(FLG, 0x20)

	// tap 7 weighs the sample read this cycle: 8192 halved to 4096,
	// filtered to 8128 and scaled by the echo volume to 8064
	d.Step()
	samples := d.Samples()
	test.Equate(t, samples[0], int16(8064))
	test.Equate(t, samples[1], int16(8064))

	// the impulse has passed tap 7 and every other coefficient is zero
	for i := 0; i < 8; i++ {
		d.Step()
	}
	samples = d.Samples()
	for i := 2; i < len(samples); i++ {
		test.Equate(t, samples[i], int16(0))
	}

	// writeback is disabled so the buffer is untouched
	test.Equate(t, mem.data[0x1001], uint8(0x20))
}

func TestEchoFilterSaturation(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)

	// the most negative frame against the most negative tap 7 coefficient:
	// -16384 * -128 >> 6 overflows 16 bits and must saturate, it is only
	// the running sum of the first seven taps that wraps
	mem.data[0x1000] = 0x00
	mem.data[0x1001] = 0x80
	mem.data[0x1002] = 0x00
	mem.data[0x1003] = 0x80

	d.Write(ESA, 0x10)
	d.Write(EDL, 0x01)
	d.Write(FIR|7<<4, 0x80)
	d.Write(EVOLL, 0x7f)
	d.Write(EVOLR, 0x7f)
	d.Write(FLG, 0x20)

	// +32768 clamps to 32767, drops its low bit to 32766 and scales by the
	// echo volume to 32510
	d.Step()
	samples := d.Samples()
	test.Equate(t, samples[0], int16(32510))
	test.Equate(t, samples[1], int16(32510))
}

func TestEchoFeedbackDecay(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)

	mem.data[0x1000] = 0x00
	mem.data[0x1001] = 0x10
	mem.data[0x1002] = 0x00
	mem.data[0x1003] = 0x10
	for i := uint16(0x1004); i < 0x100c; i++ {
		mem.data[i] = 0xaa
	}

	// an EDL of zero degenerates to a single four byte frame. with only
	// tap 7 active and half strength feedback the frame decays in place
	d.Write(ESA, 0x10)
	d.Write(EDL, 0x00)
	d.Write(FIR|7<<4, 0x7f)
	d.Write(EFB, 0x40)
	d.Write(FLG, 0x00)

	readFrame := func() (int32, int32) {
		l := int32(int16(uint16(mem.data[0x1000]) | uint16(mem.data[0x1001])<<8))
		r := int32(int16(uint16(mem.data[0x1002]) | uint16(mem.data[0x1003])<<8))
		return l, r
	}

	d.Step()
	l, r := readFrame()
	test.Equate(t, l, int32(2032))
	test.Equate(t, r, int32(2032))

	d.Step()
	l, r = readFrame()
	test.Equate(t, l, int32(1008))
	test.Equate(t, r, int32(1008))

	// nothing outside the four byte frame is written
	for i := uint16(0x1004); i < 0x100c; i++ {
		test.Equate(t, mem.data[i], uint8(0xaa))
	}
}

func TestEchoWriteGating(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)

	for i := uint16(0x1000); i < 0x1800; i++ {
		mem.data[i] = 0xaa
	}

	d.Write(ESA, 0x10)
	d.Write(EDL, 0x01)
	d.Write(EFB, 0x7f)
	d.Write(FLG, 0x20)

	for i := 0; i < 600; i++ {
		d.Step()
	}

	// the buffer is read every sample but never written while FLG bit 5
	// is set
	for i := uint16(0x1000); i < 0x1800; i++ {
		test.Equate(t, mem.data[i], uint8(0xaa))
	}
}

func TestEchoLengthRelatch(t *testing.T) {
	mem := &testMem{}
	d := NewDSP(mem)

	d.Write(EDL, 0x01)
	d.Write(FLG, 0x20)

	d.Step()
	test.Equate(t, d.echoOffset, int32(4))
	test.Equate(t, d.echoLength, int32(2048))

	// a new EDL value is ignored until the cursor next leaves position
	// zero
	d.Write(EDL, 0x02)
	for i := 0; i < 510; i++ {
		d.Step()
	}
	test.Equate(t, d.echoOffset, int32(2044))
	test.Equate(t, d.echoLength, int32(2048))

	d.Step()
	test.Equate(t, d.echoOffset, int32(0))
	test.Equate(t, d.echoLength, int32(2048))

	d.Step()
	test.Equate(t, d.echoOffset, int32(4))
	test.Equate(t, d.echoLength, int32(4096))
}
