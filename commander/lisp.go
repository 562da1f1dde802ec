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
	"errors"
	"log"
	"strings"

	"github.com/steelseries/golisp"

	"github.com/timburks/red/editor"
)

// scripted is the commander whose active buffer lisp primitives act on.
// It is only set while an expression is being evaluated.
var scripted *Commander

func init() {
	motions := map[string]func(*editor.Buffer){
		"up":          (*editor.Buffer).Up,
		"down":        (*editor.Buffer).Down,
		"left":        (*editor.Buffer).Left,
		"right":       (*editor.Buffer).Right,
		"line-start":  (*editor.Buffer).First,
		"line-end":    (*editor.Buffer).Last,
		"first-line":  (*editor.Buffer).FirstLine,
		"last-line":   (*editor.Buffer).LastLine,
		"word":        (*editor.Buffer).Word,
		"bword":       (*editor.Buffer).BackWord,
		"undo":        (*editor.Buffer).Undo,
		"paste":       (*editor.Buffer).Paste,
		"delete-line": (*editor.Buffer).Delete,
		"new-line":    (*editor.Buffer).NewLine,
	}
	for name, f := range motions {
		golisp.MakePrimitiveFunction(name, "0", bufferPrimitive(f))
	}
	golisp.MakePrimitiveFunction("insert", "1", InsertImpl)
	golisp.MakePrimitiveFunction("search", "1", SearchImpl)
	golisp.MakePrimitiveFunction("goto-line", "1", GotoLineImpl)
	golisp.MakePrimitiveFunction("line-count", "0", LineCountImpl)
	golisp.MakePrimitiveFunction("current-line", "0", CurrentLineImpl)
	golisp.MakePrimitiveFunction("buffer-name", "0", BufferNameImpl)
	golisp.MakePrimitiveFunction("next-buffer", "0", NextBufferImpl)
	golisp.MakePrimitiveFunction("previous-buffer", "0", PreviousBufferImpl)
}

func activeBuffer() (*editor.Buffer, error) {
	if scripted == nil {
		return nil, errors.New("no editor is running")
	}
	b := scripted.registry.Active()
	if b == nil {
		return nil, errors.New("no buffer is open")
	}
	return b, nil
}

func bufferPrimitive(f func(*editor.Buffer)) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
		b, err := activeBuffer()
		if err != nil {
			return nil, err
		}
		f(b)
		return golisp.IntegerWithValue(int64(b.GetCursor().Row)), nil
	}
}

func InsertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	b, err := activeBuffer()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert requires a string argument")
	}
	b.Insert(golisp.StringValue(val))
	return golisp.IntegerWithValue(int64(b.GetCursor().Col)), nil
}

func SearchImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	b, err := activeBuffer()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("search requires a string argument")
	}
	return golisp.BooleanWithValue(b.Search(golisp.StringValue(val))), nil
}

func GotoLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	b, err := activeBuffer()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("goto-line requires an integer argument")
	}
	cursor := b.GetCursor()
	cursor.Row = int(golisp.IntegerValue(val))
	b.SetCursor(cursor)
	return golisp.IntegerWithValue(int64(cursor.Row)), nil
}

func LineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	b, err := activeBuffer()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(b.GetDocument().Len())), nil
}

func CurrentLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	b, err := activeBuffer()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(b.LineAt(b.GetCursor().Row)), nil
}

func BufferNameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	b, err := activeBuffer()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(b.GetPath()), nil
}

func NextBufferImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if _, err := activeBuffer(); err != nil {
		return nil, err
	}
	scripted.registry.Next()
	return golisp.IntegerWithValue(int64(scripted.registry.GetIndex())), nil
}

func PreviousBufferImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if _, err := activeBuffer(); err != nil {
		return nil, err
	}
	scripted.registry.Previous()
	return golisp.IntegerWithValue(int64(scripted.registry.GetIndex())), nil
}

// parseEval evaluates a lisp expression against the active buffer and
// returns the printed value.
func (c *Commander) parseEval(command string) string {
	scripted = c
	defer func() { scripted = nil }()
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return strings.TrimSpace(err.Error())
	}
	return golisp.String(value)
}
