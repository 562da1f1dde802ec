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

// An Action records one undoable change to a Document.
// There are exactly three kinds: Delete, InsertBlank and PasteRepeat.
type Action interface {
	Line() string // text captured with the change
	action()
}

// Delete records the removal of Text from row At.
type Delete struct {
	At   int
	Text string
}

// InsertBlank records the insertion of an empty row at At.
type InsertBlank struct {
	At int
}

// PasteRepeat records the insertion of Text at row At by a paste.
type PasteRepeat struct {
	At   int
	Text string
}

func (a Delete) Line() string      { return a.Text }
func (a InsertBlank) Line() string { return "" }
func (a PasteRepeat) Line() string { return a.Text }

func (Delete) action()      {}
func (InsertBlank) action() {}
func (PasteRepeat) action() {}
