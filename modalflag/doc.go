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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes). Modes are unflagged arguments that alter the flags that are
// available to the program; for Gopher700 the top level modes are PLAY, WAV
// and INFO.
//
// The basic pattern of usage is to initialise the Modes struct with the
// command line arguments, add the available sub-modes and flags, and then
// Parse(). The mode found during parsing selects which flags to add for the
// next layer, with NewMode() marking the transition:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "WAV", "INFO")
//
//	r, err := md.Parse()
//	... handle result ...
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		... add flags for PLAY mode; Parse() again ...
//	}
//
// Help messages (triggered with -help or when a flag is unrecognised) are
// printed to the Output field of the Modes struct.
package modalflag
