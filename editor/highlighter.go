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
	"encoding/hex"
	"regexp"
	"unicode"

	red "github.com/timburks/red/types"
)

const defaultColor red.Color = 0xff

// A Highlighter assigns a color to every byte of a line.
type Highlighter interface {
	Highlight(line string) []red.Color
}

// HighlighterForLanguage returns the highlighter for a language tag.
func HighlighterForLanguage(language string) Highlighter {
	switch language {
	case "go":
		return goHighlighter
	default:
		return plainHighlighter{}
	}
}

type plainHighlighter struct{}

func (plainHighlighter) Highlight(line string) []red.Color {
	return uniformColors(len(line))
}

func uniformColors(n int) []red.Color {
	colors := make([]red.Color, n)
	for j := range colors {
		colors[j] = defaultColor
	}
	return colors
}

var goHighlighter = NewGoHighlighter()

// The GoHighlighter highlights Go code.
type GoHighlighter struct {
	hexPattern          *regexp.Regexp
	punctuationPattern  *regexp.Regexp
	commentPattern      *regexp.Regexp
	quotedStringPattern *regexp.Regexp
	keywordPattern      *regexp.Regexp
	numberPattern       *regexp.Regexp
}

func NewGoHighlighter() *GoHighlighter {
	h := &GoHighlighter{}
	h.hexPattern = regexp.MustCompile("0x[0-9a-f][0-9a-f]")
	h.punctuationPattern = regexp.MustCompile("\\(|\\)|,|:|=|\\[|\\]|\\{|\\}|\\+|-|\\*|<|>|;")
	h.commentPattern = regexp.MustCompile("\\/\\/.*$")
	h.quotedStringPattern = regexp.MustCompile("\"[^\"]*\"")
	h.keywordPattern = regexp.MustCompile("break|default|func|interface|select|case|defer|go|map|struct|chan|else|goto|package|switch|const|fallthrough|if|range|type|continue|for|import|return|var")
	h.keywordPattern.Longest()
	h.numberPattern = regexp.MustCompile("([0-9]+(\\.[0-9]*)?)|(([0-9]*\\.)?[0-9]+)")
	return h
}

func (h *GoHighlighter) Highlight(line string) []red.Color {
	colors := uniformColors(len(line))
	paint := func(pattern *regexp.Regexp, color red.Color, wholeWords bool) {
		for _, match := range pattern.FindAllStringIndex(line, -1) {
			// if there's an alphanumeric character on either side, skip this
			if wholeWords && checkalphanum(line, match[0], match[1]) {
				continue
			}
			for k := match[0]; k < match[1]; k++ {
				colors[k] = color
			}
		}
	}
	paint(h.keywordPattern, 0x70, true)
	paint(h.numberPattern, 0x83, true)
	paint(h.punctuationPattern, 0x71, false)
	// hex literals pick their own color
	for _, match := range h.hexPattern.FindAllStringIndex(line, -1) {
		x, err := hex.DecodeString(line[match[0]+2 : match[1]])
		if err != nil {
			continue
		}
		for k := match[0]; k < match[1]; k++ {
			colors[k] = red.Color(x[0])
		}
	}
	paint(h.quotedStringPattern, 0xe0, false)
	paint(h.commentPattern, 0xf8, false)
	return colors
}

func checkalphanum(line string, start, end int) bool {
	if start > 0 {
		c := rune(line[start-1])
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			return true
		}
	}
	if end < len(line) {
		c := rune(line[end])
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			return true
		}
	}
	return false
}
