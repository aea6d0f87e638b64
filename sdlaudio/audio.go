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

// Package sdlaudio plays the sample stream produced by the DSP through SDL.
// Samples are queued to the audio device as they arrive; the emulation loop
// paces itself against the amount of queued audio.
package sdlaudio

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/telengard/gopher700/curated"
	"github.com/telengard/gopher700/hardware/dsp"
	"github.com/telengard/gopher700/logger"
)

// the device buffer length in sample frames. not critical, but too small a
// value risks underruns and too large a value adds latency to the controls.
const bufferLength = 1024

// keep roughly this many queued bytes in the device. at 4 bytes per stereo
// frame this is a quarter of a second of audio.
const queueTarget = dsp.SampleFreq

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
}

// NewAudio is the preferred method of initialisation for the Audio type. the
// device is opened paused; playback starts with the first Queue().
func NewAudio() (*Audio, error) {
	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     dsp.SampleFreq,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  uint16(bufferLength),
	}

	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud.spec = actualSpec

	logger.Logf("sdlaudio", "device opened: %dHz, %d channels", aud.spec.Freq, aud.spec.Channels)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Queue interleaved stereo samples for playback.
func (aud *Audio) Queue(samples []int16) error {
	// convert to the little-endian byte stream the device was opened with
	b := make([]uint8, len(samples)*2)
	for i, s := range samples {
		b[i*2] = uint8(s)
		b[i*2+1] = uint8(uint16(s) >> 8)
	}

	err := sdl.QueueAudio(aud.id, b)
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// QueuedBytes returns the amount of audio waiting in the device queue.
func (aud *Audio) QueuedBytes() uint32 {
	return sdl.GetQueuedAudioSize(aud.id)
}

// Ahead returns true if enough audio is queued that the emulation should
// pause before producing more.
func (aud *Audio) Ahead() bool {
	return aud.QueuedBytes() > queueTarget
}

// EndMixing closes the audio device.
func (aud *Audio) EndMixing() error {
	sdl.CloseAudioDevice(aud.id)
	return nil
}
