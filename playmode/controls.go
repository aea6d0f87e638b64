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

package playmode

import (
	"os"
	"syscall"

	"github.com/pkg/term/termios"

	"github.com/telengard/gopher700/curated"
)

// controls reads single keypresses from the terminal while the player is
// running. the terminal is put into cbreak mode so that keys arrive without
// waiting for a newline; the previous mode is restored by cleanUp().
type controls struct {
	input *os.File

	canAttr    syscall.Termios
	cbreakAttr syscall.Termios

	// keypresses as they arrive. the reading goroutine drops keys if the
	// channel is full
	events chan rune
}

func newControls(input *os.File) (*controls, error) {
	c := &controls{
		input:  input,
		events: make(chan rune, 8),
	}

	err := termios.Tcgetattr(input.Fd(), &c.canAttr)
	if err != nil {
		return nil, curated.Errorf("controls: %v", err)
	}

	c.cbreakAttr = c.canAttr
	termios.Cfmakecbreak(&c.cbreakAttr)

	err = termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &c.cbreakAttr)
	if err != nil {
		return nil, curated.Errorf("controls: %v", err)
	}

	go func() {
		b := make([]byte, 1)
		for {
			n, err := input.Read(b)
			if err != nil {
				return
			}
			if n == 1 {
				select {
				case c.events <- rune(b[0]):
				default:
				}
			}
		}
	}()

	return c, nil
}

// cleanUp returns the terminal to the mode it was in before newControls().
func (c *controls) cleanUp() {
	_ = termios.Tcsetattr(c.input.Fd(), termios.TCIFLUSH, &c.canAttr)
}
