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
	red "github.com/timburks/red/types"
)

// State is everything the commander remembers between keys.
type State struct {
	Mode        red.Mode
	Pending     string // command or search text as it is being typed
	Result      string // message from the last command
	EditKeys    string // normal-mode key sequence in progress
	EscapeArmed bool   // insert mode: the escape delimiter was just typed
}
