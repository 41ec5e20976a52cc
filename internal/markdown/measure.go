package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// WordsPerMinute is the reading speed used for ReadingTime.
const WordsPerMinute = 200

var parser = goldmark.New().Parser()

// WordCount counts the words of prose in a markdown document. Code blocks
// and markup are not counted.
func WordCount(body string) int {
	src := []byte(body)
	doc := parser.Parse(text.NewReader(src))
	words := 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			words += len(strings.Fields(string(node.Segment.Value(src))))
		}
		return ast.WalkContinue, nil
	})
	return words
}

// ReadingTime estimates minutes to read body, at least one.
func ReadingTime(body string) int {
	words := WordCount(body)
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
