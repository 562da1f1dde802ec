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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	red "github.com/timburks/red/types"
)

// A word starts where whitespace is followed by word characters.
// The match begins at the whitespace.
var wordPattern = regexp.MustCompile(`\s\w+`)

// A Buffer represents a file being edited.
// The cursor is never normalized when it moves; rows wrap and columns
// clip only when the document is read or changed.
type Buffer struct {
	path     string
	document *Document
	cursor   red.Point
}

// NewBuffer creates a buffer for path containing lines.
func NewBuffer(path string, lines ...string) *Buffer {
	return &Buffer{path: path, document: NewDocument(lines...)}
}

// Open reads the file at path into a new buffer.
// A file that doesn't exist opens as a single empty line.
func Open(path string) (*Buffer, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewBuffer(path), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Buffer{path: path, document: ParseDocument(string(b))}, nil
}

// Save overwrites the file at the buffer's path with its lines.
func (b *Buffer) Save() error {
	if err := os.WriteFile(b.path, b.document.Bytes(), 0644); err != nil {
		return err
	}
	b.document.ClearDirty()
	return nil
}

func (b *Buffer) GetPath() string {
	return b.path
}

func (b *Buffer) GetDocument() *Document {
	return b.document
}

func (b *Buffer) GetCursor() red.Point {
	return b.cursor
}

func (b *Buffer) SetCursor(cursor red.Point) {
	b.cursor = cursor
}

func (b *Buffer) GetDirty() bool {
	return b.document.Dirty()
}

// Language returns the highlighting tag for the buffer's file.
func (b *Buffer) Language() string {
	if strings.HasSuffix(b.path, ".go") {
		return "go"
	}
	return "text"
}

// Row returns the index of the line under the cursor.
func (b *Buffer) Row() int {
	return b.document.Wrap(b.cursor.Row)
}

// LineAt returns the line for any row number, wrapping rows that are
// outside the document.
func (b *Buffer) LineAt(i int) string {
	return b.document.Line(b.document.Wrap(i))
}

func (b *Buffer) currentLine() []rune {
	return []rune(b.LineAt(b.cursor.Row))
}

func (b *Buffer) setCurrentLine(r []rune) {
	b.document.SetLine(b.Row(), string(r))
}

// Status describes the buffer for the status line.
func (b *Buffer) Status() string {
	s := fmt.Sprintf("%s(%d,%d)", b.path, b.cursor.Row, b.cursor.Col)
	if b.document.Dirty() {
		s += "(+)"
	}
	return s
}

// cursor movement

func (b *Buffer) Left() {
	if b.cursor.Col > 0 {
		b.cursor.Col--
	}
}

func (b *Buffer) Right() {
	b.cursor.Col++
}

func (b *Buffer) Up() {
	b.cursor.Row--
}

func (b *Buffer) Down() {
	b.cursor.Row++
}

func (b *Buffer) First() {
	b.cursor.Col = 0
}

func (b *Buffer) Last() {
	b.cursor.Col = len(b.currentLine())
}

func (b *Buffer) FirstLine() {
	b.cursor.Row = 0
}

func (b *Buffer) LastLine() {
	b.cursor.Row = b.document.Len() - 1
}

// Word moves to the next word start after the cursor.
// The cursor stays put when there is none.
func (b *Buffer) Word() {
	line := b.currentLine()
	start := b.cursor.Col + 1
	if start < 0 || start > len(line) {
		return
	}
	if offset, ok := findWord(line[start:]); ok {
		b.cursor.Col = start + offset
	}
}

// BackWord moves to the previous word start by scanning the reversed line.
func (b *Buffer) BackWord() {
	line := b.currentLine()
	reversed := make([]rune, len(line))
	for i, c := range line {
		reversed[len(line)-1-i] = c
	}
	start := len(line) - b.cursor.Col + 1
	if start < 0 {
		start = 0
	}
	if start > len(reversed) {
		return
	}
	if offset, ok := findWord(reversed[start:]); ok {
		b.cursor.Col = len(line) - (start + offset)
	}
}

// findWord returns the rune offset of the first word start in text.
func findWord(text []rune) (int, bool) {
	s := string(text)
	loc := wordPattern.FindStringIndex(s)
	if loc == nil {
		return 0, false
	}
	return utf8.RuneCountInString(s[:loc[0]]), true
}

// editing

// Insert adds text at the cursor and moves the cursor past it.
// Text typed beyond the end of the line is appended.
func (b *Buffer) Insert(text string) {
	line := b.currentLine()
	col := clipToRange(b.cursor.Col, 0, len(line))
	result := make([]rune, 0, len(line)+len(text))
	result = append(result, line[0:col]...)
	result = append(result, []rune(text)...)
	result = append(result, line[col:]...)
	b.setCurrentLine(result)
	b.cursor.Col += utf8.RuneCountInString(text)
}

// RemovePrevious deletes the character before the cursor and moves left.
func (b *Buffer) RemovePrevious() {
	line := b.currentLine()
	col := b.cursor.Col
	if col >= 1 && col <= len(line) {
		b.setCurrentLine(append(line[0:col-1], line[col:]...))
	}
	b.Left()
}

// RemoveNext deletes the character under the cursor.
func (b *Buffer) RemoveNext() {
	line := b.currentLine()
	col := b.cursor.Col
	if col >= 0 && col < len(line) {
		b.setCurrentLine(append(line[0:col], line[col+1:]...))
	}
}

// NewLine opens an empty line below the cursor and moves to it.
func (b *Buffer) NewLine() {
	row := b.Row()
	b.document.InsertBlankAfter(row)
	b.cursor.Row = row + 1
	b.cursor.Col = 0
}

// NewLineAbove opens an empty line above the cursor and moves to it.
func (b *Buffer) NewLineAbove() {
	row := b.Row()
	b.document.InsertBlankAfter(row - 1)
	b.cursor.Row = row
	b.cursor.Col = 0
}

// Delete removes the line under the cursor.
func (b *Buffer) Delete() {
	b.document.DeleteAt(b.Row())
}

// Paste inserts the most recently logged line at the cursor row.
func (b *Buffer) Paste() {
	b.document.PasteAt(b.Row())
}

func (b *Buffer) Undo() {
	b.document.Undo()
}

// Search moves the cursor to the first line at or below the cursor
// that contains text. It reports whether a line was found.
func (b *Buffer) Search(text string) bool {
	for i := b.Row(); i < b.document.Len(); i++ {
		if strings.Contains(b.document.Line(i), text) {
			b.cursor.Row = i
			return true
		}
	}
	return false
}
