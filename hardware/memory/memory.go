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

// Package memory implements the 64KiB of audio RAM shared by the SPC700 and
// the DSP. Sample data, the sample directory and the echo delay buffer all
// live here.
package memory

// RAMSize is the size of audio RAM in bytes.
const RAMSize = 0x10000

// RAM is the shared audio work RAM. all addresses are valid; the address
// space wraps naturally with the uint16 address type.
type RAM struct {
	data [RAMSize]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

// Snapshot creates a copy of the RAM in its current state.
func (r *RAM) Snapshot() *RAM {
	n := *r
	return &n
}

// Read8 returns the byte at the specified address.
func (r *RAM) Read8(address uint16) uint8 {
	return r.data[address]
}

// Write8 stores a byte at the specified address.
func (r *RAM) Write8(address uint16, data uint8) {
	r.data[address] = data
}

// LoadImage copies a complete 64KiB image into RAM. used when attaching an
// SPC file.
func (r *RAM) LoadImage(image [RAMSize]uint8) {
	r.data = image
}

// Clear sets every byte of RAM to zero.
func (r *RAM) Clear() {
	r.data = [RAMSize]uint8{}
}
