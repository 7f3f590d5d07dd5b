package ast

// Natspec tags
const (
	TagDev    = "dev"
	TagTitle  = "title"
	TagAuthor = "author"
	TagReturn = "return"
	TagParam  = "param"
)

// NatspecEntry is one accumulated tag. Name is only set for TagParam.
type NatspecEntry struct {
	Tag  string
	Name string
	Text string
}

// Natspec is the structured documentation attached to a declaration.
// Entries keep first-occurrence order.
type Natspec struct {
	Entries []NatspecEntry
}

// Get returns the text of a non-param tag.
func (n *Natspec) Get(tag string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, e := range n.Entries {
		if e.Tag == tag && e.Tag != TagParam {
			return e.Text, true
		}
	}
	return "", false
}

// Param returns the documentation of the named parameter.
func (n *Natspec) Param(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, e := range n.Entries {
		if e.Tag == TagParam && e.Name == name {
			return e.Text, true
		}
	}
	return "", false
}

// Params returns the documented parameter names in order.
func (n *Natspec) Params() []string {
	if n == nil {
		return nil
	}
	var names []string
	for _, e := range n.Entries {
		if e.Tag == TagParam {
			names = append(names, e.Name)
		}
	}
	return names
}
