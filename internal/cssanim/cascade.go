package cssanim

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"

	"github.com/ivlev/svg2pptx/internal/dom"
)

// resolver matches stylesheet rules against elements and folds in
// inline style attributes. Priority: !important beats normal, inline
// beats stylesheet, later declarations win ties.
type resolver struct {
	rules []matchedRule
}

type matchedRule struct {
	sel   simpleSelector
	decls []*css.Declaration
}

// simpleSelector is the subset of CSS selectors the cascade supports:
// an optional type name, #id and .class parts, or the universal *.
type simpleSelector struct {
	tag       string
	id        string
	class     string
	universal bool
}

func newResolver(sheet *css.Stylesheet) *resolver {
	r := &resolver{}
	for _, rule := range sheet.Rules {
		if rule.Kind != css.QualifiedRule || len(rule.Declarations) == 0 {
			continue
		}
		for _, selText := range rule.Selectors {
			sel, ok := parseSimpleSelector(selText)
			if !ok {
				continue
			}
			r.rules = append(r.rules, matchedRule{sel: sel, decls: rule.Declarations})
		}
	}
	return r
}

// parseSimpleSelector reads a compound like rect, .cls, #id, rect.cls
// or *. Combinators take the rightmost compound.
func parseSimpleSelector(s string) (simpleSelector, bool) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return simpleSelector{}, false
	}
	s = fields[len(fields)-1]

	var sel simpleSelector
	if s == "*" {
		sel.universal = true
		return sel, true
	}
	for s != "" {
		var kind byte
		switch s[0] {
		case '#', '.':
			kind = s[0]
			s = s[1:]
		default:
			kind = 0
		}
		end := strings.IndexAny(s, "#.")
		if end < 0 {
			end = len(s)
		}
		part := s[:end]
		s = s[end:]
		if part == "" {
			return simpleSelector{}, false
		}
		switch kind {
		case '#':
			sel.id = part
		case '.':
			sel.class = part
		default:
			sel.tag = part
		}
	}
	return sel, true
}

func (s simpleSelector) matches(el *dom.Element) bool {
	if s.universal {
		return true
	}
	if s.tag != "" && !strings.EqualFold(s.tag, el.Name) {
		return false
	}
	if s.id != "" && s.id != el.ID() {
		return false
	}
	if s.class != "" && !hasClass(el, s.class) {
		return false
	}
	return s.tag != "" || s.id != "" || s.class != ""
}

func hasClass(el *dom.Element, class string) bool {
	for _, c := range strings.Fields(el.Attr("class")) {
		if c == class {
			return true
		}
	}
	return false
}

// declarations returns the resolved property map for one element.
// Scoring: important adds 2, inline adds 1, later declarations win
// ties, so inline-normal beats sheet-normal but loses to
// sheet-important, and inline-important beats everything.
func (r *resolver) declarations(el *dom.Element) map[string]string {
	type winner struct {
		value string
		score int
	}
	props := make(map[string]winner)

	apply := func(decl *css.Declaration, inline bool) {
		score := 0
		if decl.Important {
			score += 2
		}
		if inline {
			score++
		}
		name := strings.ToLower(strings.TrimSpace(decl.Property))
		if cur, ok := props[name]; ok && cur.score > score {
			return
		}
		props[name] = winner{value: strings.TrimSpace(decl.Value), score: score}
	}

	for _, rule := range r.rules {
		if !rule.sel.matches(el) {
			continue
		}
		for _, decl := range rule.decls {
			apply(decl, false)
		}
	}

	if style := el.Attr("style"); style != "" {
		decls, err := parser.ParseDeclarations(style)
		if err == nil {
			for _, decl := range decls {
				apply(decl, true)
			}
		}
	}

	out := make(map[string]string, len(props))
	for name, w := range props {
		out[name] = w.value
	}
	return out
}
