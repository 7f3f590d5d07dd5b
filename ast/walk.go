package ast

// Visitor is called by Walk for each node. If the returned visitor w is not
// nil, Walk visits each of the node's children with w, followed by a call of
// w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a tree in depth-first order, children in field order.
func Walk(v Visitor, node Node) {
	if isNil(node) {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range Children(node) {
		Walk(v, child)
	}
	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect calls f for every node of the tree. If f returns false the node's
// children are skipped. f is called with nil after a node's children.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Children returns the direct child nodes of n in field order, skipping nil
// entries.
func Children(n Node) []Node {
	var out []Node
	for _, f := range Fields(n) {
		out = appendChildren(out, f.Value)
	}
	return out
}

func appendChildren(out []Node, v any) []Node {
	switch v := v.(type) {
	case Node:
		if !isNil(v) {
			out = append(out, v)
		}
	case []Node:
		for _, child := range v {
			if !isNil(child) {
				out = append(out, child)
			}
		}
	}
	return out
}

// Path returns the chain of nodes from root down to the innermost node
// containing offset.
func Path(root Node, offset int) []Node {
	var path []Node
	Inspect(root, func(n Node) bool {
		if n == nil {
			return false
		}
		if offset < n.NodePos().Offset || offset >= n.NodeEndPos().Offset {
			return false
		}
		path = append(path, n)
		return true
	})
	return path
}
