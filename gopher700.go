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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/telengard/gopher700/hardware"
	"github.com/telengard/gopher700/hardware/dsp"
	"github.com/telengard/gopher700/logger"
	"github.com/telengard/gopher700/modalflag"
	"github.com/telengard/gopher700/playmode"
	"github.com/telengard/gopher700/spcfile"
	"github.com/telengard/gopher700/version"
	"github.com/telengard/gopher700/wavwriter"
)

const defaultWavSeconds = 120

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("PLAY", "WAV", "INFO", "VERSION")

	log := md.AddBool("log", false, "echo log entries to stderr")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		os.Exit(10)
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)
	case "WAV":
		err = renderWav(md)
	case "INFO":
		err = info(md)
	case "VERSION":
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version())
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		os.Exit(20)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	length := md.AddInt("length", 0, "play length in seconds (0 = use ID666 tag)")
	noRewind := md.AddBool("norewind", false, "disable rewind snapshots")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("%s mode expects a single SPC file", md.Mode())
	}

	return playmode.Play(md.GetArg(0), playmode.Options{
		Length:   *length,
		NoRewind: *noRewind,
	})
}

func renderWav(md *modalflag.Modes) error {
	md.NewMode()

	length := md.AddInt("length", 0, "render length in seconds (0 = use ID666 tag)")
	output := md.AddString("o", "", "output filename (default is the SPC filename with a wav extension)")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("%s mode expects a single SPC file", md.Mode())
	}

	spc, err := spcfile.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	filename := *output
	if filename == "" {
		filename = strings.TrimSuffix(spc.Filename, filepath.Ext(spc.Filename)) + ".wav"
	}

	// length of the render and of the closing fade, in samples
	renderLen := *length * dsp.SampleFreq
	fadeLen := 0
	if renderLen == 0 {
		if spc.HasID666 && spc.LengthSeconds > 0 {
			renderLen = spc.LengthSeconds * dsp.SampleFreq
			fadeLen = spc.FadeMillis * (dsp.SampleFreq / 1000)
		} else {
			renderLen = defaultWavSeconds * dsp.SampleFreq
		}
	}

	apu := hardware.NewAPU()
	apu.AttachSPC(spc)

	ww := wavwriter.NewWavWriter(filename)

	total := renderLen + fadeLen
	for played := 0; played < total; {
		apu.Step()
		played++

		// drain the DSP buffer well before it can fill
		if apu.DSP.SampleCount() >= 1024 || played >= total {
			samples := apu.DSP.Samples()

			// apply a linear fade over the closing stretch of the render
			if fadeLen > 0 && played > renderLen {
				n := len(samples) / 2
				for i := 0; i < n; i++ {
					pos := played - n + i
					if pos > renderLen {
						remaining := int32(total - pos)
						samples[i*2] = int16(int32(samples[i*2]) * remaining / int32(fadeLen))
						samples[i*2+1] = int16(int32(samples[i*2+1]) * remaining / int32(fadeLen))
					}
				}
			}

			ww.Write(samples)
			apu.DSP.ResetOutput()
		}
	}

	return ww.EndMixing()
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("%s mode expects a single SPC file", md.Mode())
	}

	spc, err := spcfile.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	fmt.Printf("file: %s\n", spc.Filename)

	if spc.HasID666 {
		fmt.Printf("song: %s\n", spc.Song)
		fmt.Printf("game: %s\n", spc.Game)
		fmt.Printf("artist: %s\n", spc.Artist)
		fmt.Printf("dumper: %s\n", spc.Dumper)
		if spc.Comments != "" {
			fmt.Printf("comments: %s\n", spc.Comments)
		}
		fmt.Printf("length: %ds (fade %dms)\n", spc.LengthSeconds, spc.FadeMillis)
	} else {
		fmt.Println("no ID666 tag")
	}

	fmt.Printf("spc700: pc=%#04x a=%#02x x=%#02x y=%#02x psw=%#02x sp=%#02x\n",
		spc.PC, spc.A, spc.X, spc.Y, spc.PSW, spc.SP)
	fmt.Printf("dsp: flg=%#02x kon=%#02x mvol=%#02x/%#02x evol=%#02x/%#02x edl=%#02x\n",
		spc.DSPRegisters[dsp.FLG], spc.DSPRegisters[dsp.KON],
		spc.DSPRegisters[dsp.MVOLL], spc.DSPRegisters[dsp.MVOLR],
		spc.DSPRegisters[dsp.EVOLL], spc.DSPRegisters[dsp.EVOLR],
		spc.DSPRegisters[dsp.EDL])

	return nil
}
