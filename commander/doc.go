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

// Package commander converts keystrokes into editing commands.
// It is a modal state machine: each key is handled according to the
// current mode, and the resulting state replaces the previous one before
// the next key is read. Normal-mode keys move the cursor and make line
// edits, insert-mode keys change text, and command and search modes
// collect a line of text that is run when enter is pressed.
package commander
