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
	"fmt"
)

// SampleFreq is the native output rate of the DSP. every call to Step()
// produces one stereo sample pair at this rate.
const SampleFreq = 32000

// the number of voices mixed by the DSP.
const numVoices = 8

// capacity of the output buffer in interleaved int16 values. 4096 stereo
// sample pairs, or 128ms of audio.
const outBufferLen = 0x2000

// Memory is the DSP's access to the shared 64KiB audio RAM. the DSP reads
// BRR sample data and the sample directory through it and, when the echo
// unit is enabled, writes the echo delay buffer back through it.
type Memory interface {
	Read8(address uint16) uint8
	Write8(address uint16, data uint8)
}

// DSP implements the S-DSP sample playback chip.
type DSP struct {
	mem Memory

	// two views of the 128 entry register file. regs is what the DSP itself
	// works with. busRegs is what Read() returns; for the DSP generated
	// registers it trails regs by one sample cycle. see commitBusRegs()
	regs    [128]uint8
	busRegs [128]uint8

	voices [numVoices]voice

	// single counter shared by all envelope rates. decremented once per
	// sample and compared against the per rate period/offset tables
	counter int32

	// key-on/key-off handling. writes to KON arm newKeyOn; the masks acted
	// on by the voices are latched on alternate samples
	newKeyOn         uint8
	keyOn            uint8
	keyOff           uint8
	everyOtherSample bool

	// 15 bit LFSR shared by all noise enabled voices
	noise int32

	// echo unit state
	echoHist    [8][2]int32
	echoHistPos int
	echoOffset  int32
	echoLength  int32

	// mix accumulators for the sample cycle in progress
	mainOut [2]int32
	echoOut [2]int32

	// interleaved stereo output, appended to by Step() and drained with
	// Samples()/ResetOutput()
	out      [outBufferLen]int16
	outCount int
}

// NewDSP is the preferred method of initialisation for the DSP type. the
// memory argument must not be nil.
func NewDSP(mem Memory) *DSP {
	if mem == nil {
		panic("dsp: memory is nil")
	}

	d := &DSP{mem: mem}

	for i := range d.voices {
		d.voices[i].idx = i
		d.voices[i].bit = 1 << i
	}

	d.Reset()

	return d
}

// Reset the DSP to its power-on state. all registers are cleared except FLG,
// which comes up with reset, mute and echo-disable set. the contents of
// audio RAM are not touched.
func (d *DSP) Reset() {
	d.regs = [128]uint8{}
	d.busRegs = [128]uint8{}
	d.regs[FLG] = flgReset | flgMute | flgEchoDisable
	d.busRegs[FLG] = d.regs[FLG]

	for i := range d.voices {
		v := &d.voices[i]
		v.ring = [12]int16{}
		v.ringPos = 0
		v.brrAddr = 0
		v.brrOffset = 1
		v.interpPos = 0
		v.envMode = envRelease
		v.env = 0
		v.hiddenEnv = 0
		v.konDelay = 0
		v.output = 0
	}

	d.counter = 0
	d.newKeyOn = 0
	d.keyOn = 0
	d.keyOff = 0
	d.everyOtherSample = false
	d.noise = 0x4000

	d.echoHist = [8][2]int32{}
	d.echoHistPos = 0
	d.echoOffset = 0
	d.echoLength = 0

	d.outCount = 0
}

// Step runs the DSP for one sample cycle: all eight voices followed by the
// echo unit. one stereo sample pair is appended to the output buffer. if
// the buffer is full the sample pair is dropped.
func (d *DSP) Step() {
	d.updateCounter()

	// key masks are consumed on alternate samples. a key-on bit is acted on
	// exactly once even if the CPU leaves it set
	d.everyOtherSample = !d.everyOtherSample
	if d.everyOtherSample {
		d.newKeyOn &^= d.keyOn
		d.keyOn = d.newKeyOn
		d.keyOff = d.regs[KOF]
	}

	// clock the noise generator at the rate given by the low bits of FLG
	if d.counterFired(int32(d.regs[FLG] & flgNoiseFreq)) {
		feedback := (d.noise << 13) ^ (d.noise << 14)
		d.noise = (feedback & 0x4000) ^ (d.noise >> 1)
	}

	d.commitBusRegs()

	d.mainOut[0] = 0
	d.mainOut[1] = 0
	d.echoOut[0] = 0
	d.echoOut[1] = 0

	// voices run in order. each voice receives the output of the previous
	// voice as its pitch modulation source
	var pmod int32
	for i := range d.voices {
		pmod = d.voices[i].run(d, pmod)
	}

	l, r := d.echoStep()

	if d.outCount*2 < len(d.out) {
		d.out[d.outCount*2] = l
		d.out[d.outCount*2+1] = r
		d.outCount++
	}
}

// SampleCount returns the number of stereo sample pairs currently in the
// output buffer.
func (d *DSP) SampleCount() int {
	return d.outCount
}

// Samples returns the buffered output as interleaved left/right int16
// values. the returned slice is only valid until the next call to Step() or
// ResetOutput().
func (d *DSP) Samples() []int16 {
	return d.out[:d.outCount*2]
}

// ResetOutput empties the output buffer.
func (d *DSP) ResetOutput() {
	d.outCount = 0
}

// read a little-endian 16bit word from the sample directory. which entry is
// read depends on the loop argument: the start address or the loop address.
func (d *DSP) samplePtr(vx uint8, loop bool) uint16 {
	a := uint16(d.regs[DIR])<<8 + uint16(d.regs[vx|SRCN])*4
	if loop {
		a += 2
	}
	return uint16(d.mem.Read8(a)) | uint16(d.mem.Read8(a+1))<<8
}

func (d *DSP) String() string {
	return fmt.Sprintf("flg: %#02x  kon: %#02x  endx: %#02x  noise: %#04x",
		d.regs[FLG], d.regs[KON], d.regs[ENDX], d.noise)
}

// saturate to the signed 16bit range.
func clamp16(v int32) int32 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return v
}
