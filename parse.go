package fieldpath

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/samber/lo"
)

var parsedPaths sync.Map // path -> []Access

// ParseAccess splits a textual path such as Order.Lines[2].Sku into member
// and index accesses. Only identifiers, member selection and non-negative
// decimal indexes are accepted; calls, operators, computed indexes and
// non-decimal literals (0x10, 1_000, 010) fail with *InvalidPathError. A quoted key that is a plain identifier
// (Lines["Sku"]) reads the same as member selection. The blank path is the
// root and yields no accesses.
//
// Results are cached by path text. The returned slice is owned by the caller.
func ParseAccess(path string) ([]Access, error) {
	if v, ok := parsedPaths.Load(path); ok {
		return cloneAccesses(v.([]Access)), nil
	}
	accesses, err := parseAccess(path)
	if err != nil {
		invalidPathInc("text")
		return nil, err
	}
	v, _ := parsedPaths.LoadOrStore(path, accesses)
	return cloneAccesses(v.([]Access)), nil
}

// cloneAccesses copies the cached slice and its index pointers.
func cloneAccesses(accesses []Access) []Access {
	out := slices.Clone(accesses)
	for i, a := range out {
		if a.Index != nil {
			out[i].Index = lo.ToPtr(*a.Index)
		}
	}
	return out
}

func parseAccess(path string) ([]Access, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	if err := checkIndexLiterals(path); err != nil {
		return nil, err
	}
	tree, err := parser.Parse(path)
	if err != nil {
		return nil, &InvalidPathError{Path: path, Reason: "malformed path", Err: err}
	}
	var out []Access
	if err := collectAccess(path, tree.Node, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func collectAccess(path string, node ast.Node, out *[]Access) error {
	switch n := node.(type) {
	case *ast.IdentifierNode:
		if !isIdentifier(n.Value) {
			return invalidPath(path, fmt.Sprintf("%q is not a simple member name", n.Value))
		}
		*out = append(*out, Access{Symbol: n.Value})
		return nil
	case *ast.MemberNode:
		if n.Optional || n.Method {
			return invalidPath(path, "optional chaining and method calls are not member accesses")
		}
		if err := collectAccess(path, n.Node, out); err != nil {
			return err
		}
		return collectProperty(path, n.Property, out)
	default:
		return invalidPath(path, fmt.Sprintf("unsupported expression %T", node))
	}
}

// checkIndexLiterals rejects bracketed integer literals that are not in
// canonical decimal form. The expression parser accepts hex, octal and
// underscored literals and would silently renumber them.
func checkIndexLiterals(path string) error {
	for rest := path; ; {
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			return nil
		}
		rest = rest[open+1:]
		lit, _, _ := strings.Cut(rest, "]")
		lit = strings.TrimSpace(lit)
		if lit == "" || lit[0] < '0' || lit[0] > '9' {
			continue
		}
		if !isDecimal(lit) {
			return invalidPath(path, fmt.Sprintf("index %q is not a decimal literal", lit))
		}
	}
}

func isDecimal(s string) bool {
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func collectProperty(path string, node ast.Node, out *[]Access) error {
	switch p := node.(type) {
	case *ast.StringNode:
		if !isIdentifier(p.Value) {
			return invalidPath(path, fmt.Sprintf("key %q is not a simple member name", p.Value))
		}
		*out = append(*out, Access{Symbol: p.Value})
		return nil
	case *ast.IntegerNode:
		if p.Value < 0 {
			return invalidPath(path, "negative index")
		}
		if last := &(*out)[len(*out)-1]; last.Index == nil {
			last.Index = lo.ToPtr(p.Value)
			return nil
		}
		*out = append(*out, Access{Index: lo.ToPtr(p.Value)})
		return nil
	default:
		return invalidPath(path, fmt.Sprintf("computed index %T", node))
	}
}
