package extraction

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

var skippedTags = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"head":     {},
	"template": {},
}

// HTMLToText extracts the visible text of an HTML page, dropping script,
// style and head content. Text nodes are joined with spaces; the evaluator
// normalizes whitespace afterwards anyway.
func HTMLToText(raw []byte) string {
	tokenizer := html.NewTokenizer(bytes.NewReader(raw))

	var b strings.Builder
	skipDepth := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if _, skip := skippedTags[string(name)]; skip {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if _, skip := skippedTags[string(name)]; skip && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
				b.WriteByte(' ')
			}
		}
	}
}
