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
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/timburks/red/commander"
	"github.com/timburks/red/editor"
	"github.com/timburks/red/screen"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: red file...")
		os.Exit(1)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "red: standard input is not a terminal")
		os.Exit(1)
	}

	// Open a log file.
	f, err := os.OpenFile(filepath.Join(os.Getenv("HOME"), ".redlog"), os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	log.SetOutput(f)

	// Each file on the command line gets a buffer; the first is active.
	buffers := make([]*editor.Buffer, 0)
	for _, filename := range os.Args[1:] {
		b, err := editor.Open(filename)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			log.Printf("%+v", err)
			continue
		}
		buffers = append(buffers, b)
	}
	if len(buffers) == 0 {
		os.Exit(1)
	}
	registry := editor.NewRegistry(buffers...)

	// The commander converts user inputs into commands for the buffers.
	c := commander.NewCommander(registry)

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	log.Printf("editing %d files", registry.Len())
	// Run the main event loop.
	for c.IsRunning() {
		s.Render(c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
	log.Printf("session ended")
}
