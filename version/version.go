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

// Package version records the version of the Gopher700 binary.
package version

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher700"

// set through the linker by the makefile for release builds. empty for
// manual builds.
var version string

// Version returns the version string for the current build. the version
// string is "unreleased" when the project has been built manually, ie. not
// with the makefile.
func Version() string {
	if version == "" {
		return "unreleased"
	}
	return version
}
