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

// run the echo unit for one sample cycle and produce the final stereo
// output. the delay buffer in audio RAM is read even when echo is disabled;
// only the writeback is gated by the FLG register.
func (d *DSP) echoStep() (int16, int16) {
	d.echoHistPos = (d.echoHistPos + 1) & 7

	addr := uint16(d.regs[ESA])<<8 + uint16(d.echoOffset)

	// pull the oldest delay line samples into the filter history
	for ch := 0; ch < 2; ch++ {
		o := addr + uint16(ch*2)
		s := int32(int16(uint16(d.mem.Read8(o)) | uint16(d.mem.Read8(o+1))<<8))
		d.echoHist[d.echoHistPos][ch] = s >> 1
	}

	// 8 tap FIR over the history ring. the running sum of the first seven
	// taps wraps to 16 bits before the last tap is added. the result then
	// saturates and drops its least significant bit
	var echoIn [2]int32
	for ch := 0; ch < 2; ch++ {
		var s int32
		for i := 0; i < 7; i++ {
			s += d.fir(i, ch)
		}
		s = int32(int16(s))
		s += d.fir(7, ch)
		echoIn[ch] = clamp16(s) &^ 1
	}

	// final mix of the dry voice sum and the filtered echo, each through
	// its own volume register
	var out [2]int16
	for ch := 0; ch < 2; ch++ {
		mvol := int32(int8(d.regs[uint8(MVOLL+ch*0x10)]))
		evol := int32(int8(d.regs[uint8(EVOLL+ch*0x10)]))

		o := int32(int16(d.mainOut[ch]*mvol>>7)) + int32(int16(echoIn[ch]*evol>>7))
		o = clamp16(o)
		if d.regs[FLG]&flgMute != 0 {
			o = 0
		}
		out[ch] = int16(o)
	}

	// feedback and writeback to the delay buffer
	if d.regs[FLG]&flgEchoDisable == 0 {
		efb := int32(int8(d.regs[EFB]))
		for ch := 0; ch < 2; ch++ {
			w := clamp16(d.echoOut[ch]+int32(int16(echoIn[ch]*efb>>7))) &^ 1
			o := addr + uint16(ch*2)
			d.mem.Write8(o, uint8(w))
			d.mem.Write8(o+1, uint8(w>>8))
		}
	}

	// advance the buffer cursor. the length is relatched from EDL only as
	// the cursor leaves position zero, so a change to EDL takes effect on
	// the next wrap. EDL of zero degenerates to a four byte buffer
	if d.echoOffset == 0 {
		d.echoLength = int32(d.regs[EDL]&0x0f) << 11
	}
	d.echoOffset += 4
	if d.echoOffset >= d.echoLength {
		d.echoOffset = 0
	}

	return out[0], out[1]
}

// one tap of the echo FIR filter. tap 7 weighs the most recent history
// entry.
func (d *DSP) fir(i int, ch int) int32 {
	h := d.echoHist[(d.echoHistPos+i+1)&7][ch]
	c := int32(int8(d.regs[uint8(FIR+i*0x10)]))
	return (h * c) >> 6
}
