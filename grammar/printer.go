package grammar

import (
	"fmt"
	"strings"
)

func indent(level int) string {
	return strings.Repeat("    ", level)
}

func (b *Block) String() string {
	return b.StringWithIndent(0)
}

func (b *Block) StringWithIndent(level int) string {
	if len(b.Items) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, item := range b.Items {
		sb.WriteString(indent(level+1) + item.StringWithIndent(level+1) + "\n")
	}
	sb.WriteString(indent(level) + "}")
	return sb.String()
}

func (i *Item) StringWithIndent(level int) string {
	switch {
	case i.Block != nil:
		return i.Block.StringWithIndent(level)
	case i.Let != nil:
		return i.Let.String()
	case i.Function != nil:
		return i.Function.StringWithIndent(level)
	case i.If != nil:
		return fmt.Sprintf("if %s %s", i.If.Condition, i.If.Body.StringWithIndent(level))
	case i.For != nil:
		return i.For.StringWithIndent(level)
	case i.Switch != nil:
		return i.Switch.StringWithIndent(level)
	case i.Break:
		return "break"
	case i.Continue:
		return "continue"
	case i.Leave:
		return "leave"
	case i.StackAssign != nil:
		return "=: " + i.StackAssign.Value
	case i.Label != nil:
		return i.Label.Name.Value + ":"
	case i.Assignment != nil:
		return fmt.Sprintf("%s := %s", names(i.Assignment.Names), i.Assignment.Value)
	case i.Expression != nil:
		return i.Expression.String()
	}
	return ""
}

func (l *Let) String() string {
	if l.Value == nil {
		return "let " + names(l.Names)
	}
	return fmt.Sprintf("let %s := %s", names(l.Names), l.Value)
}

func (f *Function) StringWithIndent(level int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "function %s(%s)", f.Name.Value, names(f.Params))
	if len(f.Returns) > 0 {
		fmt.Fprintf(&b, " -> %s", names(f.Returns))
	}
	b.WriteString(" " + f.Body.StringWithIndent(level))
	return b.String()
}

func (f *For) StringWithIndent(level int) string {
	return fmt.Sprintf("for %s %s %s %s",
		f.Pre.StringWithIndent(level),
		f.Condition,
		f.Post.StringWithIndent(level),
		f.Body.StringWithIndent(level))
}

func (p *ForPart) StringWithIndent(level int) string {
	if p.Block != nil {
		return p.Block.StringWithIndent(level)
	}
	return p.Expression.String()
}

func (s *Switch) StringWithIndent(level int) string {
	var b strings.Builder
	b.WriteString("switch " + s.Expression.String())
	for _, c := range s.Cases {
		if c.Default {
			b.WriteString("\n" + indent(level) + "default " + c.Body.StringWithIndent(level))
			continue
		}
		fmt.Fprintf(&b, "\n%scase %s %s", indent(level), c.Value.Raw(), c.Body.StringWithIndent(level))
	}
	return b.String()
}

func (e *Expression) String() string {
	if e.Literal != nil {
		return e.Literal.Raw()
	}
	return e.Call.String()
}

func (c *Call) String() string {
	if c.Close == nil {
		return c.Name.Value
	}
	args := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Name.Value, strings.Join(args, ", "))
}

func names(idents []*PosIdent) string {
	out := make([]string, len(idents))
	for i, id := range idents {
		out[i] = id.Value
	}
	return strings.Join(out, ", ")
}
