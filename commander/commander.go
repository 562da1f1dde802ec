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
package commander

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/red/editor"
	red "github.com/timburks/red/types"
)

var openPattern = regexp.MustCompile(`^tn (.+)$`)

// Normal-mode keys that only call a buffer method.
var normalKeys = map[red.Key]func(*editor.Buffer){
	red.KeyArrowUp:    (*editor.Buffer).Up,
	red.KeyArrowDown:  (*editor.Buffer).Down,
	red.KeyArrowLeft:  (*editor.Buffer).Left,
	red.KeyArrowRight: (*editor.Buffer).Right,
}

var normalChars = map[rune]func(*editor.Buffer){
	'k': (*editor.Buffer).Up,
	'j': (*editor.Buffer).Down,
	'h': (*editor.Buffer).Left,
	'l': (*editor.Buffer).Right,
	's': (*editor.Buffer).Up,
	't': (*editor.Buffer).Down,
	'r': (*editor.Buffer).Right,
	'g': (*editor.Buffer).FirstLine,
	'G': (*editor.Buffer).LastLine,
	'^': (*editor.Buffer).First,
	'$': (*editor.Buffer).Last,
	'w': (*editor.Buffer).Word,
	'b': (*editor.Buffer).BackWord,
	'u': (*editor.Buffer).Undo,
	'p': (*editor.Buffer).Paste,
	'x': (*editor.Buffer).RemoveNext,
}

// The Commander converts user input into commands for the open buffers.
type Commander struct {
	registry *editor.Registry
	state    State
	running  bool
}

func NewCommander(r *editor.Registry) *Commander {
	return &Commander{registry: r, state: State{Mode: red.ModeNormal}, running: r.Len() > 0}
}

func (c *Commander) GetState() State {
	return c.state
}

func (c *Commander) GetMode() red.Mode {
	return c.state.Mode
}

func (c *Commander) GetRegistry() *editor.Registry {
	return c.registry
}

// IsRunning is false once the session has been ended by a quit command
// or by closing the last buffer.
func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) ProcessEvent(event *red.Event) error {
	switch event.Type {
	case red.EventKey:
		c.state = c.processKey(c.state, event)
	case red.EventResize:
		// the next render picks up the new size
	}
	return nil
}

func (c *Commander) processKey(s State, event *red.Event) State {
	b := c.registry.Active()
	if b == nil || !c.running {
		return s
	}
	switch s.Mode {
	case red.ModeNormal:
		return c.processKeyNormalMode(s, b, event)
	case red.ModeInsert:
		return c.processKeyInsertMode(s, b, event)
	case red.ModeCommand, red.ModeSearch:
		return c.processKeyPromptMode(s, b, event)
	default:
		log.Printf("key in unknown mode %d", s.Mode)
		s.Mode = red.ModeNormal
		return s
	}
}

func (c *Commander) processKeyNormalMode(s State, b *editor.Buffer, event *red.Event) State {
	s.Result = ""
	key, ch := event.Key, event.Ch

	// multikey commands have highest precedence
	if s.EditKeys != "" {
		switch s.EditKeys {
		case "d":
			if key == 0 && ch == 'd' {
				b.Delete()
			}
		}
		s.EditKeys = ""
		return s
	}
	if key != 0 {
		if f, ok := normalKeys[key]; ok {
			f(b)
		}
		return s
	}
	if f, ok := normalChars[ch]; ok {
		f(b)
		return s
	}
	switch ch {
	case ':':
		s.Mode = red.ModeCommand
		s.Pending = ""
	case '/':
		s.Mode = red.ModeSearch
		s.Pending = ""
	case 'i':
		s.Mode = red.ModeInsert
	case 'o':
		b.NewLine()
		s.Mode = red.ModeInsert
	case 'O':
		b.NewLineAbove()
		s.Mode = red.ModeInsert
	case 'd':
		s.EditKeys = "d"
	case '>':
		c.registry.Next()
	case '<':
		c.registry.Previous()
	case 'Q':
		c.closeBuffer()
	}
	return s
}

func (c *Commander) processKeyInsertMode(s State, b *editor.Buffer, event *red.Event) State {
	s.Result = ""
	if s.EscapeArmed {
		s.EscapeArmed = false
		if event.Key == 0 && event.Ch == red.EscapeDelimiter {
			b.RemovePrevious()
			s.Mode = red.ModeNormal
			return s
		}
	}
	switch event.Key {
	case red.KeyTab:
		b.Insert(strings.Repeat(" ", red.TabWidth))
	case red.KeyEnter:
		b.NewLine()
	case red.KeyEsc:
		s.Mode = red.ModeNormal
	case red.KeyBackspace:
		b.RemovePrevious()
	case 0:
		if event.Ch != 0 {
			b.Insert(string(event.Ch))
			s.EscapeArmed = event.Ch == red.EscapeDelimiter
		}
	}
	return s
}

func (c *Commander) processKeyPromptMode(s State, b *editor.Buffer, event *red.Event) State {
	switch event.Key {
	case red.KeyEnter:
		if s.Mode == red.ModeCommand {
			s.Result = c.performCommand(b, s.Pending)
		} else {
			s.Result = c.performSearch(b, s.Pending)
		}
		s.Mode = red.ModeNormal
		s.Pending = ""
	case red.KeyEsc:
		s.Mode = red.ModeNormal
		s.Pending = ""
	case red.KeyBackspace:
		if len(s.Pending) > 0 {
			_, size := utf8.DecodeLastRuneInString(s.Pending)
			s.Pending = s.Pending[0 : len(s.Pending)-size]
		}
	case 0:
		if event.Ch != 0 {
			s.Pending += string(event.Ch)
		}
	}
	return s
}

// performCommand tries the editor commands first and then passes the
// text to the active buffer.
func (c *Commander) performCommand(b *editor.Buffer, text string) string {
	if result, ok := c.performEditorCommand(text); ok {
		return result
	}
	result := b.Command(text)
	if strings.HasSuffix(result, ": unknown command") {
		log.Printf("unknown command %q", text)
	}
	return result
}

func (c *Commander) performEditorCommand(text string) (string, bool) {
	if match := openPattern.FindStringSubmatch(text); match != nil {
		if _, err := c.registry.OpenFile(match[1]); err != nil {
			log.Printf("%+v", err)
			return err.Error(), true
		}
		return "ok", true
	}
	switch text {
	case "q":
		c.closeBuffer()
		return "ok", true
	case "qa":
		c.running = false
		return "ok", true
	}
	if strings.HasPrefix(text, "(") {
		return c.parseEval(text), true
	}
	return "", false
}

func (c *Commander) performSearch(b *editor.Buffer, text string) string {
	if b.Search(text) {
		return ""
	}
	return text + ": not found"
}

// closeBuffer closes the active buffer and ends the session when it was
// the last one.
func (c *Commander) closeBuffer() {
	if !c.registry.CloseActive() {
		c.running = false
	}
}

func (c *Commander) getModeColor() red.Color {
	switch c.state.Mode {
	case red.ModeNormal:
		return red.ColorBlue
	case red.ModeInsert:
		return red.ColorGreen
	case red.ModeCommand:
		return red.ColorRed
	case red.ModeSearch:
		return red.ColorMagenta
	default:
		return red.ColorWhite
	}
}

// GetStatusText returns the status line padded or cut to length cells.
func (c *Commander) GetStatusText(length int) string {
	statuses := make([]string, 0, c.registry.Len())
	for i, b := range c.registry.Buffers() {
		if i == c.registry.GetIndex() {
			statuses = append(statuses, " "+b.Status()+" ")
		} else {
			statuses = append(statuses, b.Status())
		}
	}
	line := fmt.Sprintf("%s %s %s %s",
		strings.ToUpper(c.state.Mode.String()),
		strings.Join(statuses, "─"),
		c.state.Pending,
		c.state.Result)
	line = runewidth.Truncate(line, length, "")
	return runewidth.FillRight(line, length)
}

// Render draws the active buffer and the status line.
func (c *Commander) Render(d red.Display) {
	b := c.registry.Active()
	if b == nil {
		return
	}
	size := d.GetSize()
	b.Render(d, size)
	color := c.getModeColor()
	x := 0
	for _, ch := range c.GetStatusText(size.Cols) {
		d.SetCell(x, size.Rows-1, ch, red.ColorBlack, color)
		x += runewidth.RuneWidth(ch)
	}
}
