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

// Package playmode is the normal mode of operation for Gopher700: load an
// SPC file, run the DSP and send the output to the sound card. Playback can
// be paused and rewound from the terminal.
package playmode

import (
	"fmt"
	"os"
	"time"

	"github.com/telengard/gopher700/hardware"
	"github.com/telengard/gopher700/hardware/dsp"
	"github.com/telengard/gopher700/rewind"
	"github.com/telengard/gopher700/sdlaudio"
	"github.com/telengard/gopher700/spcfile"
)

// number of DSP steps to run between checks of the audio queue and the
// keyboard. 32ms of audio.
const stepChunk = 1024

// Options for the Play() function.
type Options struct {
	// play length in seconds. zero means use the length from the ID666 tag,
	// or play until interrupted if there is no tag
	Length int

	// do not take rewind snapshots
	NoRewind bool
}

// Play an SPC file until it ends or until the user quits.
func Play(filename string, opts Options) error {
	spc, err := spcfile.Load(filename)
	if err != nil {
		return err
	}

	apu := hardware.NewAPU()
	apu.AttachSPC(spc)

	aud, err := sdlaudio.NewAudio()
	if err != nil {
		return err
	}
	defer aud.EndMixing()

	var rw *rewind.Rewind
	if !opts.NoRewind {
		rw = rewind.NewRewind(apu)
	}

	ctrl, err := newControls(os.Stdin)
	if err != nil {
		return err
	}
	defer ctrl.cleanUp()

	banner(spc)

	// how many samples to play. zero means forever
	endAfter := opts.Length * dsp.SampleFreq
	if endAfter == 0 && spc.HasID666 && spc.LengthSeconds > 0 {
		endAfter = spc.LengthSeconds*dsp.SampleFreq + spc.FadeMillis*(dsp.SampleFreq/1000)
	}

	played := 0
	paused := false

	for {
		select {
		case k := <-ctrl.events:
			switch k {
			case 'q', 3: // ctrl-c arrives as a plain key in cbreak mode
				return nil
			case 'p', ' ':
				paused = !paused
			case 'r':
				if rw != nil && rw.StepBack() {
					played -= rewindStepSamples(played)
					if played < 0 {
						played = 0
					}
				}
			}
		default:
		}

		if paused || aud.Ahead() {
			time.Sleep(5 * time.Millisecond)
			continue
		}

		for i := 0; i < stepChunk; i++ {
			apu.Step()
			if rw != nil {
				rw.Step()
			}
		}
		played += stepChunk

		err = aud.Queue(apu.DSP.Samples())
		if err != nil {
			return err
		}
		apu.DSP.ResetOutput()

		if endAfter > 0 && played >= endAfter {
			return nil
		}
	}
}

// the number of samples a single rewind step covers. kept in sync with the
// snapshot interval of the rewind package.
func rewindStepSamples(played int) int {
	if played < rewind.SnapshotInterval {
		return played
	}
	return rewind.SnapshotInterval
}

func banner(spc *spcfile.SPC) {
	if spc.HasID666 && spc.Song != "" {
		fmt.Printf("playing: %s", spc.Song)
		if spc.Game != "" {
			fmt.Printf(" (%s)", spc.Game)
		}
		fmt.Println()
	} else {
		fmt.Printf("playing: %s\n", spc.Filename)
	}
	fmt.Println("controls: [p]ause  [r]ewind  [q]uit")
}
