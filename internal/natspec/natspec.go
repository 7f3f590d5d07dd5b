package natspec

import (
	"strings"

	"solparse/ast"
	"solparse/token"
)

var knownTags = map[string]bool{
	ast.TagDev:    true,
	ast.TagTitle:  true,
	ast.TagAuthor: true,
	ast.TagReturn: true,
}

// Extract builds the documentation record for a declaration from the
// comments that precede its first token. It returns nil when there is no
// documentation comment or the comment holds no tag.
func Extract(leading []token.Comment) *ast.Natspec {
	lines := docLines(leading)
	if lines == nil {
		return nil
	}
	return parseLines(lines)
}

// docLines selects the last documentation comment in the trivia run and
// splits it into logical lines. A "///" comment is merged with the "///"
// comments on the directly preceding lines.
func docLines(leading []token.Comment) []string {
	last := -1
	for i := len(leading) - 1; i >= 0; i-- {
		if leading[i].IsDoc() {
			last = i
			break
		}
	}
	if last < 0 {
		return nil
	}

	if leading[last].Kind == token.BlockDoc {
		return blockLines(leading[last].Text)
	}

	first := last
	for first > 0 {
		prev := leading[first-1]
		if prev.Kind != token.LineDoc || prev.Position.Line != leading[first].Position.Line-1 {
			break
		}
		first--
	}

	lines := make([]string, 0, last-first+1)
	for _, c := range leading[first : last+1] {
		lines = append(lines, strings.TrimSpace(strings.TrimPrefix(c.Text, "///")))
	}
	return lines
}

func blockLines(text string) []string {
	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimSuffix(text, "*/")

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "*")
		lines = append(lines, strings.TrimSpace(line))
	}

	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// parseLines runs the tag state machine. Each line either opens a tag or
// continues the most recently opened one; lines before the first tag are
// dropped.
func parseLines(lines []string) *ast.Natspec {
	doc := &ast.Natspec{}
	current := -1

	for _, line := range lines {
		if tag, rest, ok := splitTag(line); ok {
			if idx, opened := openEntry(doc, tag, rest); opened {
				current = idx
				continue
			}
		}
		if current < 0 {
			continue
		}
		entry := &doc.Entries[current]
		if entry.Text == "" {
			entry.Text = line
		} else {
			entry.Text += "\n" + line
		}
	}

	if len(doc.Entries) == 0 {
		return nil
	}
	for i := range doc.Entries {
		doc.Entries[i].Text = strings.TrimRight(doc.Entries[i].Text, "\n")
	}
	return doc
}

func splitTag(line string) (tag, rest string, ok bool) {
	if !strings.HasPrefix(line, "@") {
		return "", "", false
	}
	word, rest, _ := strings.Cut(line[1:], " ")
	if word == "" {
		return "", "", false
	}
	return word, strings.TrimSpace(rest), true
}

// openEntry starts (or reopens) the entry for tag and returns its index. A
// repeated tag appends to the existing entry.
func openEntry(doc *ast.Natspec, tag, rest string) (int, bool) {
	var name string
	switch {
	case tag == ast.TagParam:
		var found bool
		name, rest, found = strings.Cut(rest, " ")
		if name == "" {
			return 0, false
		}
		if found {
			rest = strings.TrimSpace(rest)
		}
	case !knownTags[tag]:
		return 0, false
	}

	for i := range doc.Entries {
		e := &doc.Entries[i]
		if e.Tag == tag && e.Name == name {
			if rest != "" {
				if e.Text == "" {
					e.Text = rest
				} else {
					e.Text += "\n" + rest
				}
			}
			return i, true
		}
	}

	doc.Entries = append(doc.Entries, ast.NatspecEntry{Tag: tag, Name: name, Text: rest})
	return len(doc.Entries) - 1, true
}
