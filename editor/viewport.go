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
	"github.com/mattn/go-runewidth"

	red "github.com/timburks/red/types"
)

// Viewport returns the text rows shown for a screen of the given size.
// The cursor row sits in the middle of the screen and rows wrap around
// the ends of the document. The last screen row is left for the status
// line. Short lines are padded with spaces; long lines are not cut.
func (b *Buffer) Viewport(size red.Size) []string {
	if size.Rows < 1 {
		return nil
	}
	first := b.cursor.Row - size.Rows/2
	rows := make([]string, 0, size.Rows-1)
	for i := 0; i < size.Rows-1; i++ {
		rows = append(rows, runewidth.FillRight(b.LineAt(first+i), size.Cols))
	}
	return rows
}

// Render draws the viewport and places the cursor.
func (b *Buffer) Render(display red.Display, size red.Size) {
	h := HighlighterForLanguage(b.Language())
	for row, line := range b.Viewport(size) {
		colors := h.Highlight(line)
		col := 0
		for j, c := range line {
			display.SetCell(col, row, c, colors[j], red.ColorDefault)
			col += runewidth.RuneWidth(c)
		}
	}
	b.ShowCursor(display, size)
}

// ShowCursor puts the terminal cursor on the middle row of the screen.
func (b *Buffer) ShowCursor(display red.Display, size red.Size) {
	display.SetCursor(red.Point{Row: size.Rows / 2, Col: b.cursor.Col})
}
