// Package count computes byte, line, word and character counts of a text content.
package count

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/CZERTAINLY/cwc/internal/model"
)

// Count returns a record labeled label with exactly the requested metrics set.
// Metrics which were not requested are not computed.
func Count(label, content string, requested model.Metrics) model.Record {
	rec := model.NewRecord(label)
	for m := range requested.All() {
		switch m {
		case model.Lines:
			rec.Set(m, Lines(content))
		case model.Words:
			rec.Set(m, Words(content))
		case model.Bytes:
			rec.Set(m, Bytes(content))
		case model.Chars:
			rec.Set(m, Chars(content))
		}
	}
	return rec
}

// Bytes is the length of the UTF-8 encoded content.
func Bytes(content string) int {
	return len(content)
}

// Lines is the number of '\n' in content. A final segment without a newline is not counted.
func Lines(content string) int {
	return strings.Count(content, "\n")
}

// Words is the number of maximal runs of non white space characters.
func Words(content string) int {
	n := 0
	inWord := false
	for _, r := range content {
		if unicode.IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			n++
			inWord = true
		}
	}
	return n
}

// Chars is the number of Unicode code points in content.
func Chars(content string) int {
	return utf8.RuneCountInString(content)
}
