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
	"fmt"
	"log"
	"regexp"
	"strings"
)

var substitutePattern = regexp.MustCompile(`%s,(.+),(.+),g`)

// Command runs a buffer command and returns a message for the status line.
// Unrecognized commands leave the buffer unchanged.
func (b *Buffer) Command(text string) string {
	if text == "w" {
		if err := b.Save(); err != nil {
			log.Printf("save %s: %+v", b.path, err)
			return fmt.Sprintf("%s: %s", b.path, err)
		}
		return "written"
	}
	if match := substitutePattern.FindStringSubmatch(text); match != nil {
		find, replace := match[1], match[2]
		b.document.Map(func(line string) string {
			return strings.ReplaceAll(line, find, replace)
		})
		return "done"
	}
	return text + ": unknown command"
}
