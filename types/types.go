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
package types

// Editor modes
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeCommand
	ModeSearch
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeCommand:
		return "command"
	case ModeSearch:
		return "search"
	default:
		return "unknown"
	}
}

// TabWidth is the number of spaces inserted for a tab in insert mode.
const TabWidth = 2

// EscapeDelimiter typed twice in insert mode returns to normal mode.
const EscapeDelimiter = ','

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Event types
const (
	EventKey = iota
	EventResize
)

type Key int

// Special keys. Printable characters arrive with Key == 0 and a non-zero Ch.
const (
	KeyUnsupported Key = iota + 1
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyTab
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

// KeyEvent returns an event for a named special key.
func KeyEvent(k Key) *Event {
	return &Event{Type: EventKey, Key: k}
}

// CharEvent returns an event for a printable character.
func CharEvent(ch rune) *Event {
	return &Event{Type: EventKey, Ch: ch}
}

type Color int

// Colors follow the termbox attribute numbering.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// A Display receives rendered cells.
type Display interface {
	SetCell(col int, row int, c rune, fg Color, bg Color)
	SetCursor(p Point)
	GetSize() Size
}
