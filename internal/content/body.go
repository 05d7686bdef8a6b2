package content

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var bodyMarkdown = goldmark.New()

// ParseBody converts manager textarea input into body blocks. Blocks are
// separated by blank lines; a block whose lines all start with a list marker
// becomes a list, anything else collapses into a single paragraph. Unicode
// bullets are accepted alongside the markdown dash.
func ParseBody(input string) []BodyBlock {
	normalized := normalizeBullets(input)

	source := []byte(normalized)
	doc := bodyMarkdown.Parser().Parse(text.NewReader(source))

	var blocks []BodyBlock
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		switch typed := node.(type) {
		case *ast.List:
			items := listItems(typed, source)
			if len(items) > 0 {
				blocks = append(blocks, List(items...))
			}
		default:
			if para := nodeText(node, source); para != "" {
				blocks = append(blocks, Paragraph(para))
			}
		}
	}
	return blocks
}

// FormatBody renders body blocks back into the textarea form ParseBody
// accepts: paragraphs verbatim, list items one per line with a leading dash,
// blocks separated by blank lines.
func FormatBody(blocks []BodyBlock) string {
	segments := make([]string, 0, len(blocks))
	for _, block := range blocks {
		switch block.Type {
		case BlockList:
			lines := make([]string, 0, len(block.Items))
			for _, item := range block.Items {
				if item = strings.TrimSpace(item); item != "" {
					lines = append(lines, "- "+item)
				}
			}
			if len(lines) > 0 {
				segments = append(segments, strings.Join(lines, "\n"))
			}
		default:
			if text := strings.TrimSpace(block.Text); text != "" {
				segments = append(segments, text)
			}
		}
	}
	return strings.Join(segments, "\n\n")
}

func normalizeBullets(input string) string {
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "•") {
			lines[i] = "- " + strings.TrimSpace(strings.TrimPrefix(trimmed, "•"))
		}
	}
	return strings.Join(lines, "\n")
}

func listItems(list *ast.List, source []byte) []string {
	var items []string
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		if text := nodeText(item, source); text != "" {
			items = append(items, text)
		}
	}
	return items
}

// nodeText flattens a block node into a single line of plain text, joining
// its source lines with spaces the way the site joins wrapped paragraphs.
func nodeText(node ast.Node, source []byte) string {
	var lines []string
	collectLines(node, source, &lines)
	return strings.TrimSpace(strings.Join(lines, " "))
}

func collectLines(node ast.Node, source []byte, out *[]string) {
	if node.Type() == ast.TypeBlock {
		segments := node.Lines()
		for i := 0; i < segments.Len(); i++ {
			segment := segments.At(i)
			if line := strings.TrimSpace(string(segment.Value(source))); line != "" {
				*out = append(*out, line)
			}
		}
	}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		collectLines(child, source, out)
	}
}
