package parser

import (
	"go/ast"
	"strings"
)

const (
	dtoDirective       = "componentgen:dto"
	componentDirective = "componentgen:component"
	oneventDirective   = "componentgen:onevent"
)

// directive scans a comment group for a //componentgen:<name> line and
// returns its attribute tokens. Directive comments are not part of
// CommentGroup.Text(), so the raw list is inspected.
func directive(doc *ast.CommentGroup, name string) (attrs []string, ok bool) {
	if doc == nil {
		return nil, false
	}
	for _, c := range doc.List {
		text := strings.TrimPrefix(c.Text, "//")
		if !strings.HasPrefix(text, name) {
			continue
		}
		rest := text[len(name):]
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}
		return strings.Fields(rest), true
	}
	return nil, false
}
