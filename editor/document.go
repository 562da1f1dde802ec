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
package editor

import (
	"strings"
)

// A Document is the ordered sequence of lines of one buffer,
// along with the log of actions that can be undone.
// A Document always contains at least one line.
type Document struct {
	lines   []string
	actions []Action
	dirty   bool
}

func NewDocument(lines ...string) *Document {
	d := &Document{}
	if len(lines) == 0 {
		d.lines = []string{""}
	} else {
		d.lines = append([]string(nil), lines...)
	}
	return d
}

// ParseDocument splits text into lines. A single trailing newline
// terminates the last line and does not start a new one.
func ParseDocument(text string) *Document {
	text = strings.TrimSuffix(text, "\n")
	return NewDocument(strings.Split(text, "\n")...)
}

// Bytes joins the lines with newlines and terminates the last line.
func (d *Document) Bytes() []byte {
	return []byte(strings.Join(d.lines, "\n") + "\n")
}

func (d *Document) Len() int {
	return len(d.lines)
}

func (d *Document) Line(i int) string {
	return d.lines[i]
}

func (d *Document) SetLine(i int, text string) {
	d.lines[i] = text
}

// Lines returns a copy of the lines of the document.
func (d *Document) Lines() []string {
	return append([]string(nil), d.lines...)
}

// Map replaces every line with the result of f.
func (d *Document) Map(f func(string) string) {
	for i, line := range d.lines {
		d.lines[i] = f(line)
	}
}

// Wrap converts any row number into a valid index by modular arithmetic.
// Negative rows count back from the end.
func (d *Document) Wrap(i int) int {
	n := len(d.lines)
	return ((i % n) + n) % n
}

func (d *Document) Dirty() bool {
	return d.dirty
}

func (d *Document) ClearDirty() {
	d.dirty = false
}

// Actions returns a copy of the action log, oldest first.
func (d *Document) Actions() []Action {
	return append([]Action(nil), d.actions...)
}

// DeleteAt removes line i and logs it so that it can be restored.
// Callers must pass 0 <= i < Len().
func (d *Document) DeleteAt(i int) {
	d.actions = append(d.actions, Delete{At: i, Text: d.lines[i]})
	d.remove(i)
	d.dirty = true
}

// InsertBlankAfter adds an empty line below line i. Passing -1 adds
// the line at the top of the document.
func (d *Document) InsertBlankAfter(i int) {
	d.actions = append(d.actions, InsertBlank{At: i + 1})
	d.insert(i+1, "")
}

// PasteAt inserts the text of the most recent action at line i.
// It does nothing if there is no action to take text from.
func (d *Document) PasteAt(i int) {
	if len(d.actions) == 0 {
		return
	}
	text := d.actions[len(d.actions)-1].Line()
	d.actions = append(d.actions, PasteRepeat{At: i, Text: text})
	d.insert(i, text)
	d.dirty = true
}

// Undo reverts the most recent action and removes it from the log.
func (d *Document) Undo() {
	if len(d.actions) == 0 {
		return
	}
	last := len(d.actions) - 1
	action := d.actions[last]
	d.actions = d.actions[0:last]
	switch a := action.(type) {
	case InsertBlank:
		if a.At >= 0 && a.At < len(d.lines) {
			d.remove(a.At)
		}
	case Delete:
		d.insert(a.At, a.Text)
	case PasteRepeat:
		d.insert(a.At, a.Text)
	}
}

// insert places text at row i, clipping i to the valid insertion range.
func (d *Document) insert(i int, text string) {
	i = clipToRange(i, 0, len(d.lines))
	d.lines = append(d.lines, "")
	copy(d.lines[i+1:], d.lines[i:])
	d.lines[i] = text
}

// remove deletes row i. Removing the only line leaves one empty line.
func (d *Document) remove(i int) {
	if len(d.lines) == 1 {
		d.lines[0] = ""
		return
	}
	d.lines = append(d.lines[0:i], d.lines[i+1:]...)
}

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}
