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

// Package editor implements the text editing functions of red.
// A Document holds the lines of a file and a log of line-level changes
// that can be undone. A Buffer adds a file path and a cursor to a
// Document; the cursor moves freely and is only mapped onto the document
// when lines are read or changed. A Registry holds the open buffers.
package editor
