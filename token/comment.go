// SPDX-License-Identifier: Apache-2.0
package token

type CommentKind int

const (
	LineComment  CommentKind = iota // `// ...`
	BlockComment                    // `/* ... */`
	LineDoc                         // `/// ...`
	BlockDoc                        // `/** ... */`
)

// Comment is a piece of trivia. It never reaches the parser as a token;
// the scanner attaches it to the following token instead.
type Comment struct {
	Kind     CommentKind
	Text     string
	Position Position
}

func (c Comment) IsDoc() bool {
	return c.Kind == LineDoc || c.Kind == BlockDoc
}

func (k CommentKind) String() string {
	switch k {
	case LineComment:
		return "line"
	case BlockComment:
		return "block"
	case LineDoc:
		return "line-doc"
	case BlockDoc:
		return "block-doc"
	default:
		return "unknown"
	}
}
