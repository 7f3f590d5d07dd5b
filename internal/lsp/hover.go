package lsp

import (
	"fmt"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"solparse/ast"
)

// offsetAt maps an LSP position onto a byte offset. Characters are counted
// as bytes; positions past the end of a line clamp to its end.
func offsetAt(text string, pos protocol.Position) int {
	offset := 0
	for line := uint32(0); line < pos.Line; line++ {
		i := strings.IndexByte(text[offset:], '\n')
		if i < 0 {
			return len(text)
		}
		offset += i + 1
	}
	end := len(text)
	if i := strings.IndexByte(text[offset:], '\n'); i >= 0 {
		end = offset + i
	}
	if offset+int(pos.Character) > end {
		return end
	}
	return offset + int(pos.Character)
}

// hover returns the documentation of the innermost documented declaration
// containing offset.
func hover(unit *ast.SourceUnit, offset int) *protocol.Hover {
	path := ast.Path(unit, offset)
	for i := len(path) - 1; i >= 0; i-- {
		title, doc := documented(path[i])
		if doc == nil {
			continue
		}
		r := toRange(path[i])
		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: renderNatspec(title, doc),
			},
			Range: &r,
		}
	}
	return nil
}

func documented(n ast.Node) (string, *ast.Natspec) {
	switch n := n.(type) {
	case *ast.ContractDefinition:
		return n.Kind + " " + n.Name, n.Natspec
	case *ast.FunctionDefinition:
		return "function " + functionName(n), n.Natspec
	case *ast.ModifierDefinition:
		return "modifier " + n.Name, n.Natspec
	case *ast.EventDefinition:
		return "event " + n.Name, n.Natspec
	case *ast.StructDefinition:
		return "struct " + n.Name, n.Natspec
	case *ast.StateVariableDeclaration:
		if name := n.Variables[0].Name; name != nil {
			return *name, n.Natspec
		}
	}
	return "", nil
}

func renderNatspec(title string, doc *ast.Natspec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", title)
	for _, tag := range []string{ast.TagTitle, ast.TagDev, ast.TagAuthor} {
		if text, ok := doc.Get(tag); ok {
			fmt.Fprintf(&b, "\n*@%s* %s\n", tag, text)
		}
	}
	if params := doc.Params(); len(params) > 0 {
		b.WriteString("\n")
		for _, name := range params {
			text, _ := doc.Param(name)
			fmt.Fprintf(&b, "- `%s`: %s\n", name, text)
		}
	}
	if text, ok := doc.Get(ast.TagReturn); ok {
		fmt.Fprintf(&b, "\n*@return* %s\n", text)
	}
	return strings.TrimRight(b.String(), "\n")
}
