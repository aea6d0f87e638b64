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

// Package dsp implements the S-DSP, the sample playback chip of the SNES
// audio subsystem. The chip mixes eight voices, each playing BRR compressed
// sample data fetched from the shared 64KiB audio RAM, and produces one
// stereo sample pair per call to the Step() function, at a native rate of
// 32000Hz.
//
// The implementation aims for bit-exact integer arithmetic throughout: BRR
// decoding, gaussian interpolation, envelope ramps, the echo FIR filter and
// every saturation point produce the same values as the original hardware.
// The one simplification is scheduling. Real hardware interleaves voice
// processing over 32 clocks per sample; here each voice runs to completion
// in turn, voice 0 through voice 7, followed by the echo unit. The order of
// observable effects is preserved.
//
// The DSP does not execute SPC700 code. Register writes arrive from the
// outside through the Write() function and RAM access goes through the
// Memory interface supplied at creation.
package dsp
