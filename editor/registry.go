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

// A Registry holds the open buffers in order and tracks the active one.
type Registry struct {
	buffers []*Buffer
	active  int
}

func NewRegistry(buffers ...*Buffer) *Registry {
	return &Registry{buffers: buffers}
}

// OpenFile reads path into a new buffer and makes it active.
func (r *Registry) OpenFile(path string) (*Buffer, error) {
	b, err := Open(path)
	if err != nil {
		return nil, err
	}
	r.Add(b)
	return b, nil
}

// Add appends a buffer and makes it active.
func (r *Registry) Add(b *Buffer) {
	r.buffers = append(r.buffers, b)
	r.active = len(r.buffers) - 1
}

func (r *Registry) Len() int {
	return len(r.buffers)
}

func (r *Registry) GetIndex() int {
	return r.active
}

// Buffers returns the open buffers in order.
func (r *Registry) Buffers() []*Buffer {
	return append([]*Buffer(nil), r.buffers...)
}

// Active returns the active buffer, or nil if none are open.
func (r *Registry) Active() *Buffer {
	if len(r.buffers) == 0 {
		return nil
	}
	return r.buffers[r.active]
}

func (r *Registry) Next() {
	r.cycle(1)
}

func (r *Registry) Previous() {
	r.cycle(-1)
}

func (r *Registry) cycle(delta int) {
	n := len(r.buffers)
	if n == 0 {
		return
	}
	r.active = ((r.active+delta)%n + n) % n
}

// CloseActive removes the active buffer. It returns false when no
// buffers remain.
func (r *Registry) CloseActive() bool {
	if len(r.buffers) == 0 {
		return false
	}
	r.buffers = append(r.buffers[0:r.active], r.buffers[r.active+1:]...)
	if r.active >= len(r.buffers) && r.active > 0 {
		r.active = len(r.buffers) - 1
	}
	return len(r.buffers) > 0
}
