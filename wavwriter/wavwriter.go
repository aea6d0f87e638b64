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

// Package wavwriter accumulates the sample stream produced by the DSP and
// writes it to disk as a 16bit stereo WAV file at the native sample rate.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/telengard/gopher700/curated"
	"github.com/telengard/gopher700/hardware/dsp"
	"github.com/telengard/gopher700/logger"
)

// WavWriter mixes the DSP output stream into an in-memory buffer, to be
// written to disk with EndMixing().
type WavWriter struct {
	filename string
	buffer   []int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type. nothing is written to disk until EndMixing() is called.
func NewWavWriter(filename string) *WavWriter {
	return &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, dsp.SampleFreq*2),
	}
}

// Write interleaved stereo samples to the mix.
func (ww *WavWriter) Write(samples []int16) {
	for _, s := range samples {
		ww.buffer = append(ww.buffer, int(s))
	}
}

// EndMixing writes the accumulated samples to disk.
func (ww *WavWriter) EndMixing() error {
	f, err := os.Create(ww.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			logger.Log("wavwriter", err.Error())
		}
	}()

	enc := wav.NewEncoder(f, dsp.SampleFreq, 16, 2, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 2,
			SampleRate:  dsp.SampleFreq,
		},
		Data:           ww.buffer,
		SourceBitDepth: 16,
	}

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "%d samples written to %s", len(ww.buffer)/2, ww.filename)

	return nil
}
