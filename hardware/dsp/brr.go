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

// decode the next four BRR samples into the ring buffer and advance the
// block position. when the block is exhausted the decoder moves to the next
// block, or to the loop point if the end flag is set in the header.
func (v *voice) decodeGroup(d *DSP, vx uint8, header uint8) {
	nyb := uint16(d.mem.Read8(v.brrAddr+v.brrOffset))<<8 |
		uint16(d.mem.Read8(v.brrAddr+v.brrOffset+1))

	shift := header >> 4
	filter := (header >> 2) & 0x03

	wp := v.ringPos
	for i := 0; i < 4; i++ {
		// sign extend the top nibble and shift the next one into place
		s := int32(int16(nyb)) >> 12
		nyb <<= 4

		// shift values 13 to 15 are degenerate: negative residuals decode
		// to -2048 and everything else to 0
		if shift <= 12 {
			s = (s << shift) >> 1
		} else {
			s &^= 0x7ff
		}

		// IIR prediction from the previous two samples. the second sample
		// back contributes at half weight
		p1 := int32(v.ring[(wp+11)%12])
		p2 := int32(v.ring[(wp+10)%12]) >> 1

		switch filter {
		case 1:
			s += p1 >> 1
			s += (-p1) >> 5
		case 2:
			s += p1
			s -= p2
			s += p2 >> 4
			s += (p1 * -3) >> 6
		case 3:
			s += p1
			s -= p2
			s += (p1 * -13) >> 7
			s += (p2 * 3) >> 4
		}

		// two stage clamp: saturate to 16 bits, then double with wrap to
		// 15 bit precision
		s = clamp16(s)
		v.ring[wp] = int16(s << 1)
		wp = (wp + 1) % 12
	}
	v.ringPos = wp

	v.brrOffset += 2
	if v.brrOffset >= 9 {
		v.brrAddr += 9
		if header&0x01 != 0 {
			v.brrAddr = d.samplePtr(vx, true)
			if v.konDelay == 0 {
				d.regs[ENDX] |= v.bit
			}
		}
		v.brrOffset = 1
	}
}
