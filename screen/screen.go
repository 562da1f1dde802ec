//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package screen

import (
	"log"

	"github.com/nsf/termbox-go"

	"github.com/timburks/red/commander"
	red "github.com/timburks/red/types"
)

// The Screen owns the terminal: it reads keys and draws cells.
type Screen struct{}

func NewScreen() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(c *commander.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorDefault)
	c.Render(s)
	if err := termbox.Flush(); err != nil {
		log.Printf("flush: %+v", err)
	}
}

func (s *Screen) GetSize() red.Size {
	cols, rows := termbox.Size()
	return red.Size{Rows: rows, Cols: cols}
}

func (s *Screen) SetCell(col int, row int, c rune, fg red.Color, bg red.Color) {
	termbox.SetCell(col, row, c, termbox.Attribute(fg), termbox.Attribute(bg))
}

func (s *Screen) SetCursor(p red.Point) {
	termbox.SetCursor(p.Col, p.Row)
}

// GetNextEvent blocks until the terminal reports a key or a resize.
func (s *Screen) GetNextEvent() *red.Event {
	for {
		event := termbox.PollEvent()
		switch event.Type {
		case termbox.EventKey:
			if event.Key == termbox.KeySpace {
				return red.CharEvent(' ')
			}
			if event.Ch != 0 {
				return red.CharEvent(event.Ch)
			}
			return red.KeyEvent(key(event.Key))
		case termbox.EventResize:
			return &red.Event{Type: red.EventResize}
		case termbox.EventError:
			log.Printf("input: %+v", event.Err)
		}
	}
}

func key(k termbox.Key) red.Key {
	switch k {
	case termbox.KeyArrowUp:
		return red.KeyArrowUp
	case termbox.KeyArrowDown:
		return red.KeyArrowDown
	case termbox.KeyArrowLeft:
		return red.KeyArrowLeft
	case termbox.KeyArrowRight:
		return red.KeyArrowRight
	case termbox.KeyEnter:
		return red.KeyEnter
	case termbox.KeyEsc:
		return red.KeyEsc
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return red.KeyBackspace
	case termbox.KeyTab:
		return red.KeyTab
	default:
		return red.KeyUnsupported
	}
}
