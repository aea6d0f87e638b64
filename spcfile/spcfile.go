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

// Package spcfile loads SPC files, the standard dump format for SNES music.
// An SPC file is a register snapshot plus a complete image of the 64KiB
// audio RAM and the 128 DSP registers, taken while the tune was playing.
// Most files also carry an ID666 tag with the song title, game, artist and
// play length.
package spcfile

import (
	"os"
	"strconv"
	"strings"

	"github.com/telengard/gopher700/curated"
	"github.com/telengard/gopher700/hardware/memory"
)

// magic string at the start of every SPC file.
const magic = "SNES-SPC700 Sound File Data"

// file layout offsets.
const (
	offsetID666Tag = 0x23
	offsetPC       = 0x25
	offsetA        = 0x27
	offsetX        = 0x28
	offsetY        = 0x29
	offsetPSW      = 0x2a
	offsetSP       = 0x2b
	offsetSong     = 0x2e
	offsetGame     = 0x4e
	offsetDumper   = 0x6e
	offsetComments = 0x7e
	offsetLength   = 0xa9
	offsetFade     = 0xac
	offsetArtist   = 0xb1
	offsetRAM      = 0x100
	offsetDSPRegs  = 0x10100
	minFileSize    = 0x10180
)

// SPC is the result of loading an SPC file. The RAM image and DSP registers
// are what the player attaches to the hardware. The SPC700 register values
// are informational only; Gopher700 does not execute SPC700 code.
type SPC struct {
	Filename string

	RAM          [memory.RAMSize]uint8
	DSPRegisters [128]uint8

	// SPC700 register snapshot at dump time
	PC  uint16
	A   uint8
	X   uint8
	Y   uint8
	PSW uint8
	SP  uint8

	// ID666 tag. the bool indicates whether the tag was present at all
	HasID666 bool
	Song     string
	Game     string
	Dumper   string
	Comments string
	Artist   string

	// intended play length and fade out, from the ID666 tag. zero when the
	// tag is missing or the field is empty
	LengthSeconds int
	FadeMillis    int
}

// Load an SPC file from disk.
func Load(filename string) (*SPC, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("spcfile: %v", err)
	}

	spc, err := parse(data)
	if err != nil {
		return nil, err
	}
	spc.Filename = filename

	return spc, nil
}

func parse(data []byte) (*SPC, error) {
	if len(data) < minFileSize {
		return nil, curated.Errorf("spcfile: file too short to be an SPC file")
	}

	if string(data[:len(magic)]) != magic {
		return nil, curated.Errorf("spcfile: not an SPC file")
	}

	spc := &SPC{}

	spc.PC = uint16(data[offsetPC]) | uint16(data[offsetPC+1])<<8
	spc.A = data[offsetA]
	spc.X = data[offsetX]
	spc.Y = data[offsetY]
	spc.PSW = data[offsetPSW]
	spc.SP = data[offsetSP]

	// a value of 26 at the tag offset means the header carries an ID666 tag
	spc.HasID666 = data[offsetID666Tag] == 26
	if spc.HasID666 {
		spc.Song = tagString(data[offsetSong : offsetSong+32])
		spc.Game = tagString(data[offsetGame : offsetGame+32])
		spc.Dumper = tagString(data[offsetDumper : offsetDumper+16])
		spc.Comments = tagString(data[offsetComments : offsetComments+32])
		spc.Artist = tagString(data[offsetArtist : offsetArtist+32])
		spc.LengthSeconds = tagNumber(data[offsetLength : offsetLength+3])
		spc.FadeMillis = tagNumber(data[offsetFade : offsetFade+5])
	}

	copy(spc.RAM[:], data[offsetRAM:offsetRAM+memory.RAMSize])
	copy(spc.DSPRegisters[:], data[offsetDSPRegs:offsetDSPRegs+128])

	return spc, nil
}

// tag strings are fixed width, padded with zeroes or spaces.
func tagString(field []byte) string {
	return strings.TrimRight(strings.TrimRight(string(field), "\x00"), " ")
}

// numeric tag fields are stored as ASCII decimal in text format files.
func tagNumber(field []byte) int {
	n, err := strconv.Atoi(tagString(field))
	if err != nil {
		return 0
	}
	return n
}
