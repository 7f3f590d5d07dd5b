package abi

import (
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"

	"solparse/ast"
)

// Entry kinds
const (
	KindFunction = "function"
	KindEvent    = "event"
	KindError    = "error"
	KindGetter   = "getter"
)

// Entry is one externally visible declaration with its canonical signature.
// Selector is the 4-byte function/error selector, or the full 32-byte topic
// for events.
type Entry struct {
	Contract  string
	Kind      string
	Name      string
	Signature string
	Selector  string
	Pos       ast.Position
}

// Keccak256 hashes data with the pre-standard Keccak padding used by the EVM.
func Keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// Selector returns the first four bytes of the signature hash as 0x-hex.
func Selector(signature string) string {
	return "0x" + hex.EncodeToString(Keccak256([]byte(signature))[:4])
}

// Topic returns the full signature hash as 0x-hex.
func Topic(signature string) string {
	return "0x" + hex.EncodeToString(Keccak256([]byte(signature)))
}

// Collect walks every contract of unit and returns its functions, public
// state variable getters, events and errors in source order. Declarations
// whose parameter types cannot be expressed in the ABI are reported in the
// joined error; the remaining entries are still returned.
func Collect(unit *ast.SourceUnit) ([]Entry, error) {
	r := newResolver(unit)
	var entries []Entry
	var errs []error

	add := func(contract, kind, name string, params []*ast.VariableDeclaration, pos ast.Position) {
		sig, err := r.signature(name, params)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s:%d:%d: %s %s: %w", pos.Filename, pos.Line, pos.Column, kind, name, err))
			return
		}
		e := Entry{Contract: contract, Kind: kind, Name: name, Signature: sig, Pos: pos}
		if kind == KindEvent {
			e.Selector = Topic(sig)
		} else {
			e.Selector = Selector(sig)
		}
		entries = append(entries, e)
	}

	for _, child := range unit.Children {
		switch n := child.(type) {
		case *ast.ContractDefinition:
			for _, sub := range n.SubNodes {
				switch m := sub.(type) {
				case *ast.FunctionDefinition:
					if !isExternal(m) {
						continue
					}
					add(n.Name, KindFunction, *m.Name, m.Parameters, m.NodePos())
				case *ast.StateVariableDeclaration:
					v := m.Variables[0]
					if v.Visibility != ast.VisibilityPublic || v.Name == nil {
						continue
					}
					sig, err := r.getter(*v.Name, v.TypeName)
					if err != nil {
						errs = append(errs, fmt.Errorf("%s:%d:%d: getter %s: %w", v.Pos.Filename, v.Pos.Line, v.Pos.Column, *v.Name, err))
						continue
					}
					entries = append(entries, Entry{
						Contract: n.Name, Kind: KindGetter, Name: *v.Name,
						Signature: sig, Selector: Selector(sig), Pos: v.NodePos(),
					})
				case *ast.EventDefinition:
					if m.IsAnonymous {
						continue
					}
					add(n.Name, KindEvent, m.Name, m.Parameters, m.NodePos())
				case *ast.CustomErrorDefinition:
					add(n.Name, KindError, m.Name, m.Parameters, m.NodePos())
				}
			}
		case *ast.CustomErrorDefinition:
			add("", KindError, n.Name, n.Parameters, n.NodePos())
		}
	}
	return entries, errors.Join(errs...)
}

func isExternal(fn *ast.FunctionDefinition) bool {
	if fn.IsConstructor || fn.IsFallback || fn.IsReceiveEther || fn.Name == nil || *fn.Name == "" {
		return false
	}
	switch fn.Visibility {
	case ast.VisibilityPublic, ast.VisibilityExternal, ast.VisibilityDefault:
		return true
	}
	return false
}
