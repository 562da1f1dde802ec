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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/red/editor"
	red "github.com/timburks/red/types"
)

func setup(lines ...string) (*Commander, *editor.Buffer) {
	b := editor.NewBuffer("test.txt", lines...)
	return NewCommander(editor.NewRegistry(b)), b
}

func typeText(c *Commander, text string) {
	for _, ch := range text {
		c.ProcessEvent(red.CharEvent(ch))
	}
}

func press(c *Commander, keys ...red.Key) {
	for _, k := range keys {
		c.ProcessEvent(red.KeyEvent(k))
	}
}

func TestInitialState(t *testing.T) {
	c, _ := setup("a")
	assert.Equal(t, red.ModeNormal, c.GetMode())
	assert.True(t, c.IsRunning())
}

func TestNormalMotions(t *testing.T) {
	c, b := setup("foo bar", "second")
	typeText(c, "jj")
	assert.Equal(t, 2, b.GetCursor().Row)
	typeText(c, "k")
	press(c, red.KeyArrowUp, red.KeyArrowDown, red.KeyArrowUp)
	assert.Equal(t, 0, b.GetCursor().Row)
	typeText(c, "lll")
	press(c, red.KeyArrowRight, red.KeyArrowLeft)
	typeText(c, "h")
	assert.Equal(t, 2, b.GetCursor().Col)
	typeText(c, "$")
	assert.Equal(t, 7, b.GetCursor().Col)
	typeText(c, "^w")
	assert.Equal(t, 3, b.GetCursor().Col)
	typeText(c, "G")
	assert.Equal(t, 1, b.GetCursor().Row)
	typeText(c, "g")
	assert.Equal(t, 0, b.GetCursor().Row)
}

func TestDeleteLineTakesTwoKeys(t *testing.T) {
	c, b := setup("a", "b", "c")
	typeText(c, "j")
	typeText(c, "d")
	assert.Equal(t, []string{"a", "b", "c"}, b.GetDocument().Lines())
	assert.Equal(t, "d", c.GetState().EditKeys)
	typeText(c, "d")
	assert.Equal(t, []string{"a", "c"}, b.GetDocument().Lines())
	assert.True(t, b.GetDirty())

	// any other key cancels the sequence and is consumed
	typeText(c, "dj")
	assert.Equal(t, []string{"a", "c"}, b.GetDocument().Lines())
	assert.Equal(t, 1, b.GetCursor().Row)
	assert.Equal(t, "", c.GetState().EditKeys)

	typeText(c, "u")
	assert.Equal(t, []string{"a", "b", "c"}, b.GetDocument().Lines())
	typeText(c, "ddp")
	assert.Equal(t, []string{"a", "b", "c"}, b.GetDocument().Lines())
}

func TestInsertMode(t *testing.T) {
	c, b := setup("")
	typeText(c, "i")
	assert.Equal(t, red.ModeInsert, c.GetMode())
	typeText(c, "hi")
	assert.Equal(t, "hi", b.LineAt(0))
	assert.Equal(t, 2, b.GetCursor().Col)
	press(c, red.KeyTab)
	typeText(c, "x")
	assert.Equal(t, "hi  x", b.LineAt(0))
	press(c, red.KeyBackspace)
	assert.Equal(t, "hi  ", b.LineAt(0))
	press(c, red.KeyEnter)
	typeText(c, "yo")
	assert.Equal(t, []string{"hi  ", "yo"}, b.GetDocument().Lines())
	assert.Equal(t, red.Point{Row: 1, Col: 2}, b.GetCursor())
	press(c, red.KeyEsc)
	assert.Equal(t, red.ModeNormal, c.GetMode())
	assert.False(t, b.GetDirty())
}

func TestInsertModeDoubleDelimiterEscapes(t *testing.T) {
	c, b := setup("")
	typeText(c, "iab,,")
	assert.Equal(t, red.ModeNormal, c.GetMode())
	assert.Equal(t, "ab", b.LineAt(0))
	assert.Equal(t, 2, b.GetCursor().Col)
}

func TestInsertModeSingleDelimiter(t *testing.T) {
	c, b := setup("")
	typeText(c, "ia,b")
	assert.Equal(t, red.ModeInsert, c.GetMode())
	assert.Equal(t, "a,b", b.LineAt(0))
	assert.False(t, c.GetState().EscapeArmed)

	// the key after a delimiter keeps its usual meaning
	typeText(c, ",")
	press(c, red.KeyEsc)
	assert.Equal(t, red.ModeNormal, c.GetMode())
	assert.Equal(t, "a,b,", b.LineAt(0))
}

func TestOpenLineKeys(t *testing.T) {
	c, b := setup("a", "b")
	typeText(c, "o")
	assert.Equal(t, red.ModeInsert, c.GetMode())
	typeText(c, "x")
	press(c, red.KeyEsc)
	assert.Equal(t, []string{"a", "x", "b"}, b.GetDocument().Lines())
	typeText(c, "Oy")
	press(c, red.KeyEsc)
	assert.Equal(t, []string{"a", "y", "x", "b"}, b.GetDocument().Lines())
}

func TestSearchMode(t *testing.T) {
	c, b := setup("a", "ab", "c")
	typeText(c, "/b")
	assert.Equal(t, red.ModeSearch, c.GetMode())
	assert.Equal(t, "b", c.GetState().Pending)
	press(c, red.KeyEnter)
	assert.Equal(t, red.ModeNormal, c.GetMode())
	assert.Equal(t, 1, b.GetCursor().Row)
	assert.Equal(t, "", c.GetState().Pending)

	typeText(c, "/zz")
	press(c, red.KeyEnter)
	assert.Equal(t, 1, b.GetCursor().Row)
	assert.Equal(t, "zz: not found", c.GetState().Result)
}

func TestCommandEditing(t *testing.T) {
	c, b := setup("foo1", "nofoo")
	typeText(c, ":%s,foo,baz")
	press(c, red.KeyBackspace)
	typeText(c, "r,g")
	assert.Equal(t, "%s,foo,bar,g", c.GetState().Pending)
	press(c, red.KeyEnter)
	assert.Equal(t, []string{"bar1", "nobar"}, b.GetDocument().Lines())
	assert.Equal(t, "done", c.GetState().Result)

	// the result is cleared by the next normal-mode key
	typeText(c, "j")
	assert.Equal(t, "", c.GetState().Result)
}

func TestCommandEscapeCancels(t *testing.T) {
	c, b := setup("a")
	typeText(c, ":qa")
	press(c, red.KeyEsc)
	assert.Equal(t, red.ModeNormal, c.GetMode())
	assert.Equal(t, "", c.GetState().Pending)
	assert.True(t, c.IsRunning())
	assert.Equal(t, []string{"a"}, b.GetDocument().Lines())
}

func TestUnknownCommand(t *testing.T) {
	c, b := setup("a")
	typeText(c, ":frob")
	press(c, red.KeyEnter)
	assert.Equal(t, "frob: unknown command", c.GetState().Result)
	assert.Equal(t, []string{"a"}, b.GetDocument().Lines())
}

func TestWriteCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	b := editor.NewBuffer(path, "x", "y")
	c := NewCommander(editor.NewRegistry(b))
	typeText(c, ":w")
	press(c, red.KeyEnter)
	assert.Equal(t, "written", c.GetState().Result)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x\ny\n", string(data))
}

func TestOpenAndQuitBuffers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.txt")
	c, _ := setup("a")
	typeText(c, ":tn "+path)
	press(c, red.KeyEnter)
	assert.Equal(t, "ok", c.GetState().Result)
	r := c.GetRegistry()
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 1, r.GetIndex())
	assert.Equal(t, path, r.Active().GetPath())
	assert.Equal(t, []string{""}, r.Active().GetDocument().Lines())

	typeText(c, ":tn "+dir)
	press(c, red.KeyEnter)
	assert.Equal(t, 2, r.Len())
	assert.NotEqual(t, "ok", c.GetState().Result)

	typeText(c, ":q")
	press(c, red.KeyEnter)
	assert.True(t, c.IsRunning())
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, "test.txt", r.Active().GetPath())

	typeText(c, ":q")
	press(c, red.KeyEnter)
	assert.False(t, c.IsRunning())
}

func TestQuitAllIgnoresDirtyBuffers(t *testing.T) {
	c, b := setup("a", "b")
	typeText(c, "dd")
	assert.True(t, b.GetDirty())
	typeText(c, ":qa")
	press(c, red.KeyEnter)
	assert.False(t, c.IsRunning())
}

func TestBufferKeys(t *testing.T) {
	r := editor.NewRegistry(editor.NewBuffer("a"), editor.NewBuffer("b"), editor.NewBuffer("c"))
	c := NewCommander(r)
	typeText(c, ">>>")
	assert.Equal(t, 0, r.GetIndex())
	typeText(c, "<")
	assert.Equal(t, "c", r.Active().GetPath())
	typeText(c, "Q")
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "b", r.Active().GetPath())
	typeText(c, "QQ")
	assert.False(t, c.IsRunning())
}

func TestStatusText(t *testing.T) {
	c, _ := setup("x")
	typeText(c, ":w")
	assert.Equal(t, "COMMAND  test.txt(0,0)  w     ", c.GetStatusText(30))
	assert.Equal(t, "COMMAND  t", c.GetStatusText(10))

	r := editor.NewRegistry(editor.NewBuffer("a.txt", "x"), editor.NewBuffer("b.txt", "y"))
	c = NewCommander(r)
	typeText(c, ">jj")
	status := c.GetStatusText(60)
	assert.True(t, strings.HasPrefix(status, "NORMAL a.txt(0,0)─ b.txt(2,0)  "), status)
}

func TestRender(t *testing.T) {
	c, _ := setup("one", "two")
	d := newFakeDisplay(3, 20)
	c.Render(d)
	assert.Equal(t, red.Point{Row: 1, Col: 0}, d.cursor)
	assert.Equal(t, red.ColorBlue, d.bg[red.Point{Row: 2, Col: 0}])
	typeText(c, "i")
	c.Render(d)
	assert.Equal(t, red.ColorGreen, d.bg[red.Point{Row: 2, Col: 0}])
	assert.Equal(t, 'I', d.cells[red.Point{Row: 2, Col: 0}])
}

type fakeDisplay struct {
	size   red.Size
	cells  map[red.Point]rune
	bg     map[red.Point]red.Color
	cursor red.Point
}

func newFakeDisplay(rows, cols int) *fakeDisplay {
	return &fakeDisplay{
		size:  red.Size{Rows: rows, Cols: cols},
		cells: make(map[red.Point]rune),
		bg:    make(map[red.Point]red.Color),
	}
}

func (d *fakeDisplay) SetCell(col int, row int, c rune, fg red.Color, bg red.Color) {
	d.cells[red.Point{Row: row, Col: col}] = c
	d.bg[red.Point{Row: row, Col: col}] = bg
}

func (d *fakeDisplay) SetCursor(p red.Point) {
	d.cursor = p
}

func (d *fakeDisplay) GetSize() red.Size {
	return d.size
}
