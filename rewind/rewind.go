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

// Package rewind coordinates the periodic snapshotting of the APU and makes
// it possible to step playback backwards in time. Because the echo unit of
// the DSP writes into audio RAM, snapshots carry the full RAM image; resuming
// from one reproduces the exact sample stream that followed it the first
// time around.
package rewind

import (
	"fmt"

	"github.com/telengard/gopher700/hardware"
)

// the number of snapshots to keep. the oldest snapshot is lost when a new
// one is added to a full history.
const maxEntries = 240

// SnapshotInterval is the number of sample cycles between automatic
// snapshots. half a second of audio at the native sample rate.
const SnapshotInterval = 16000

// Rewind provides the rewind system for the emulation.
type Rewind struct {
	apu *hardware.APU

	// circular array of snapshotted states
	entries [maxEntries]*hardware.State
	start   int
	end     int

	// count of sample cycles since the last snapshot
	sampleCt int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
func NewRewind(apu *hardware.APU) *Rewind {
	r := &Rewind{apu: apu}
	r.Reset()
	return r
}

// Reset rewind system and take a snapshot of the current state, so that
// there is always something to rewind to.
func (r *Rewind) Reset() {
	for i := range r.entries {
		r.entries[i] = nil
	}
	r.start = 0
	r.end = 0
	r.sampleCt = 0
	r.append(r.apu.Snapshot())
}

// Step should be called once per APU step. a snapshot is taken every
// SnapshotInterval calls.
func (r *Rewind) Step() {
	r.sampleCt++
	if r.sampleCt >= SnapshotInterval {
		r.sampleCt = 0
		r.append(r.apu.Snapshot())
	}
}

func (r *Rewind) append(state *hardware.State) {
	e := (r.end + 1) % maxEntries

	// the circular array is full. drop the oldest entry
	if e == r.start {
		r.start = (r.start + 1) % maxEntries
	}

	r.entries[r.end] = state
	r.end = e
}

// NumStates returns the number of snapshots in the history.
func (r *Rewind) NumStates() int {
	return (r.end - r.start + maxEntries) % maxEntries
}

// StepBack restores the most recent snapshot, removing it from the history.
// the very first snapshot is never removed; restoring it repeatedly replays
// from the same point. returns false if there was no state to restore.
func (r *Rewind) StepBack() bool {
	n := r.NumStates()
	if n == 0 {
		return false
	}

	e := (r.end - 1 + maxEntries) % maxEntries
	state := r.entries[e]

	// keep the oldest state in the history so that the beginning of the
	// recording is always reachable
	if n > 1 {
		r.entries[e] = nil
		r.end = e
	}

	// plumb a copy into the APU. the stored state must survive being
	// restored more than once
	r.apu.Plumb(state.Snapshot())

	// samples that were pending when the snapshot was taken have already
	// been heard. playback resumes from an empty output buffer
	r.apu.DSP.ResetOutput()
	r.sampleCt = 0

	return true
}

func (r *Rewind) String() string {
	return fmt.Sprintf("rewind: %d states", r.NumStates())
}
