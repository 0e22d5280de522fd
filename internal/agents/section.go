// Package agents extracts and checks the agents section of node documents.
package agents

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// SectionResult is the outcome of checking one document.
type SectionResult struct {
	MissingSection bool
	// Agents lists every entry of the section in document order, repeats included.
	Agents []string
	// Duplicates lists names seen more than once, each reported once.
	Duplicates []string
	// Invalid lists names outside the roster, each reported once.
	Invalid []string
}

// Parser locates the agents section using the markdown block structure.
type Parser struct {
	title  string
	roster *Roster
	md     goldmark.Markdown
}

// Option configures a Parser.
type Option func(*Parser)

// WithSectionTitle overrides the heading text that opens the section.
func WithSectionTitle(title string) Option {
	return func(p *Parser) {
		if strings.TrimSpace(title) != "" {
			p.title = strings.TrimSpace(title)
		}
	}
}

// WithRoster overrides the recognized agent set.
func WithRoster(r *Roster) Option {
	return func(p *Parser) {
		if r != nil {
			p.roster = r
		}
	}
}

// NewParser creates a Parser using DefaultSectionTitle and DefaultRoster unless overridden.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		title:  DefaultSectionTitle,
		roster: NewRoster(DefaultRoster...),
		md:     goldmark.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Title returns the section heading the parser looks for.
func (p *Parser) Title() string {
	return p.title
}

// Parse checks the agents section of a document.
//
// The section starts at the first heading of any level whose text matches the title
// (case-insensitive) and ends at the next heading, a thematic break or the end of the
// document. Entries are the items of lists placed directly in the section.
func (p *Parser) Parse(doc string) SectionResult {
	src := []byte(doc)
	root := p.md.Parser().Parse(text.NewReader(src))

	start := p.findSection(root, src)
	if start == nil {
		return SectionResult{MissingSection: true}
	}

	var res SectionResult
	for n := start.NextSibling(); n != nil; n = n.NextSibling() {
		if n.Kind() == ast.KindHeading || n.Kind() == ast.KindThematicBreak {
			break
		}
		list, ok := n.(*ast.List)
		if !ok {
			continue
		}
		for item := list.FirstChild(); item != nil; item = item.NextSibling() {
			if entry := itemText(item, src); entry != "" {
				res.Agents = append(res.Agents, entry)
			}
		}
	}

	res.Duplicates, res.Invalid = p.check(res.Agents)
	return res
}

func (p *Parser) findSection(root ast.Node, src []byte) ast.Node {
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(inlineText(heading, src)), p.title) {
			return heading
		}
	}
	return nil
}

func (p *Parser) check(entries []string) (duplicates, invalid []string) {
	seen := make(map[string]int, len(entries))
	flaggedInvalid := make(map[string]bool)
	for _, entry := range entries {
		seen[entry]++
		if seen[entry] == 2 {
			duplicates = append(duplicates, entry)
		}
		if !p.roster.Contains(entry) && !flaggedInvalid[entry] {
			flaggedInvalid[entry] = true
			invalid = append(invalid, entry)
		}
	}
	return duplicates, invalid
}

// itemText returns the text of the first text block of a list item.
// Nested lists are not part of the entry.
func itemText(item ast.Node, src []byte) string {
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.Kind() {
		case ast.KindParagraph, ast.KindTextBlock:
			return strings.TrimSpace(inlineText(c, src))
		}
	}
	return ""
}

// inlineText concatenates the literal text below n, dropping emphasis and code markers.
func inlineText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := child.(type) {
		case *ast.Text:
			sb.Write(v.Value(src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
