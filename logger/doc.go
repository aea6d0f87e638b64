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

// Package logger is the central log for the entire application. There is
// only one log and it is accessible through the package level functions,
// the most important of which are Log() and Logf().
//
// The contents of the log can be written to an io.Writer at any time with
// the Write() and Tail() functions. Alternatively, with SetEcho(), new
// entries can be streamed to an io.Writer as they arrive. The log keeps a
// bounded number of entries, discarding the oldest; entries that repeat the
// previous one are coalesced rather than stored again.
package logger
